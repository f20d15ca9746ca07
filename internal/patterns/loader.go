package patterns

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Loader reads pattern files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a new pattern loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all pattern files.
// Files that fail to parse are skipped. Results are sorted by ID.
func (l *Loader) LoadAll() ([]Pattern, error) {
	patterns, err := loadFS(os.DirFS(l.Root), l.Root)
	if err != nil {
		return nil, fmt.Errorf("patterns: walking directory %s: %w", l.Root, err)
	}
	return patterns, nil
}

// LoadFile loads a single pattern file.
func (l *Loader) LoadFile(path string) (Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pattern{}, fmt.Errorf("patterns: reading file %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return Pattern{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	p.FilePath = path
	return p, nil
}

// Builtin returns the patterns compiled into the binary.
func Builtin() ([]Pattern, error) {
	return loadFS(builtinFS, "")
}

func loadFS(fsys fs.FS, root string) ([]Pattern, error) {
	var patterns []Pattern
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		p, err := Parse(data)
		if err != nil {
			// Skip invalid files
			return nil
		}
		if root != "" {
			p.FilePath = filepath.Join(root, path)
		}
		patterns = append(patterns, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(patterns, func(i, j int) bool {
		return patterns[i].ID < patterns[j].ID
	})
	return patterns, nil
}

func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Catalog returns the built-in patterns merged with those found under dir.
// A pattern in dir replaces a built-in with the same ID. An empty dir or a
// dir that does not exist yields only the built-ins.
func Catalog(dir string) ([]Pattern, error) {
	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]Pattern, len(builtin))
	for _, p := range builtin {
		byID[p.ID] = p
	}

	if dir != "" {
		if _, statErr := os.Stat(dir); statErr == nil {
			local, err := NewLoader(dir).LoadAll()
			if err != nil {
				return nil, err
			}
			for _, p := range local {
				byID[p.ID] = p
			}
		}
	}

	out := make([]Pattern, 0, len(byID))
	for _, p := range byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Lookup finds a pattern by ID in the catalog for dir.
func Lookup(dir, id string) (Pattern, error) {
	all, err := Catalog(dir)
	if err != nil {
		return Pattern{}, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return Pattern{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}
