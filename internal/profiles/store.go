package profiles

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/dmitrijs2005/gophpass/internal/common"
	"github.com/dmitrijs2005/gophpass/internal/filex"
	"gopkg.in/yaml.v3"
)

const filePermission = 0o600

type document struct {
	Profiles map[string]Entry `yaml:"profiles"`
}

// Store is an in-memory view of a profile file. Changes are written only
// by Save. A Store is not safe for concurrent use.
type Store struct {
	path     string
	profiles map[string]Entry
}

// Open loads the profile file at path. A missing file yields an empty store.
// Every entry is validated; the first invalid one fails the whole load.
func Open(path string) (*Store, error) {
	s := &Store{path: path, profiles: map[string]Entry{}}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrInvalidProfile, path, err)
	}
	for name, e := range doc.Profiles {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		s.profiles[name] = e
	}
	return s, nil
}

// Path returns the file backing s.
func (s *Store) Path() string { return s.path }

// Names returns the stored profile names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Named pairs an entry with its profile name.
type Named struct {
	Name string
	Entry
}

// All returns every stored entry ordered by name.
func (s *Store) All() []Named {
	all := make([]Named, 0, len(s.profiles))
	for _, name := range s.Names() {
		all = append(all, Named{Name: name, Entry: s.profiles[name]})
	}
	return all
}

// Get returns the entry stored under name.
func (s *Store) Get(name string) (Entry, error) {
	e, ok := s.profiles[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", common.ErrProfileNotFound, name)
	}
	return e, nil
}

// Put validates e and stores it under name, replacing any previous entry.
func (s *Store) Put(name string, e Entry) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", common.ErrInvalidProfile)
	}
	if err := e.Validate(); err != nil {
		return err
	}
	s.profiles[name] = e
	return nil
}

// Delete removes name from the store.
func (s *Store) Delete(name string) error {
	if _, ok := s.profiles[name]; !ok {
		return fmt.Errorf("%w: %q", common.ErrProfileNotFound, name)
	}
	delete(s.profiles, name)
	return nil
}

// Save writes the store to its file, creating parent directories as needed.
// The file is replaced atomically.
func (s *Store) Save() error {
	data, err := yaml.Marshal(document{Profiles: s.profiles})
	if err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}
	if err := filex.WriteFileAtomic(s.path, data, filePermission); err != nil {
		return fmt.Errorf("save profiles: %w", err)
	}
	return nil
}
