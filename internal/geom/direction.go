package geom

import (
	"fmt"
	"strings"
)

// Direction is one of the eight compass directions, or None.
// Y grows southward, so North has a delta of (0, -1).
type Direction uint8

const (
	None Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Orthogonal returns the four cardinal directions clockwise from North.
func Orthogonal() [4]Direction {
	return [4]Direction{North, East, South, West}
}

// Diagonal returns the four diagonal directions clockwise from NorthEast.
func Diagonal() [4]Direction {
	return [4]Direction{NorthEast, SouthEast, SouthWest, NorthWest}
}

// All returns the eight compass directions clockwise from North.
func All() [8]Direction {
	return [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case None:
		return "None"
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case South:
		return "South"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) unit offset for one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case NorthEast:
		return 1, -1
	case East:
		return 1, 0
	case SouthEast:
		return 1, 1
	case South:
		return 0, 1
	case SouthWest:
		return -1, 1
	case West:
		return -1, 0
	case NorthWest:
		return -1, -1
	default:
		return 0, 0
	}
}

// IsOrthogonal returns true for North, East, South and West.
func (d Direction) IsOrthogonal() bool {
	return d == North || d == East || d == South || d == West
}

// IsDiagonal returns true for the four intercardinal directions.
func (d Direction) IsDiagonal() bool {
	return d == NorthEast || d == SouthEast || d == SouthWest || d == NorthWest
}

// Rotate turns the direction clockwise by steps * 45 degrees.
// Negative steps turn counter-clockwise. None stays None.
func (d Direction) Rotate(steps int) Direction {
	if d == None || d > NorthWest {
		return d
	}
	return Direction(Mod(int(d)-1+steps, 8) + 1)
}

// TurnRight turns 90 degrees clockwise.
func (d Direction) TurnRight() Direction {
	return d.Rotate(2)
}

// TurnLeft turns 90 degrees counter-clockwise.
func (d Direction) TurnLeft() Direction {
	return d.Rotate(-2)
}

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	return d.Rotate(4)
}

// directionBySign is indexed by [sign(dy)+1][sign(dx)+1].
var directionBySign = [3][3]Direction{
	{NorthWest, North, NorthEast},
	{West, None, East},
	{SouthWest, South, SouthEast},
}

// FromDelta normalizes an arbitrary offset to a single direction using only
// the sign of each component. Any offset with both components nonzero is
// diagonal regardless of magnitude; (0, 0) yields None.
func FromDelta(dx, dy int) Direction {
	return directionBySign[Sign(dy)+1][Sign(dx)+1]
}

// ParseDirection accepts full names ("north", "SouthEast"), compass
// abbreviations ("n", "se") and screen aliases ("up", "right", "down", "left").
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north", "up", "u":
		return North, nil
	case "ne", "northeast", "north-east":
		return NorthEast, nil
	case "e", "east", "right", "r":
		return East, nil
	case "se", "southeast", "south-east":
		return SouthEast, nil
	case "s", "south", "down", "d":
		return South, nil
	case "sw", "southwest", "south-west":
		return SouthWest, nil
	case "w", "west", "left", "l":
		return West, nil
	case "nw", "northwest", "north-west":
		return NorthWest, nil
	case "none", "":
		return None, nil
	}
	return None, fmt.Errorf("geom: unknown direction %q", s)
}
