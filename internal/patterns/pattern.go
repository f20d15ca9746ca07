// Package patterns loads starting boards from YAML pattern files.
//
// A pattern file names the rule it is meant for and carries the board as a
// literal block of tile characters:
//
//	id: glider
//	name: Glider
//	rule: life_infinite
//	max_steps: 40
//	board: |
//	  .#.
//	  ..#
//	  ###
package patterns

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridlab/internal/automaton"
)

var (
	// ErrNoID indicates a pattern file without an id.
	ErrNoID = errors.New("patterns: missing id")
	// ErrNoBoard indicates a pattern file without a board.
	ErrNoBoard = errors.New("patterns: missing board")
	// ErrNotFound indicates an unknown pattern id.
	ErrNotFound = errors.New("patterns: not found")
)

// Pattern is a named starting board.
type Pattern struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rule     string            `yaml:"rule"`
	MaxSteps int               `yaml:"max_steps,omitempty"`
	Board    string            `yaml:"board"`
	Metadata map[string]string `yaml:"metadata,omitempty"`

	// FilePath is where the pattern was read from; empty for built-ins.
	FilePath string `yaml:"-"`
}

// Parse decodes and validates a YAML pattern.
func Parse(data []byte) (Pattern, error) {
	var p Pattern
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Pattern{}, fmt.Errorf("patterns: yaml unmarshal: %w", err)
	}
	if p.ID == "" {
		return Pattern{}, ErrNoID
	}
	if strings.TrimSpace(p.Board) == "" {
		return Pattern{}, fmt.Errorf("%w: %s", ErrNoBoard, p.ID)
	}
	if p.Name == "" {
		p.Name = p.ID
	}
	return p, nil
}

// NewBoard parses the pattern's board into a fresh grid.
func (p Pattern) NewBoard() (*automaton.Board, error) {
	b, err := automaton.ParseBoard(strings.TrimRight(p.Board, "\n"))
	if err != nil {
		return nil, fmt.Errorf("patterns: %s: %w", p.ID, err)
	}
	return b, nil
}

// Marshal encodes the pattern back to YAML.
func (p Pattern) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}
