// Package links serves per-role reference links (express signup, role
// description, training video) loaded from CSV.
package links

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// ErrLoad indicates a missing or unusable links file.
var ErrLoad = errors.New("role links load failed")

// RoleLinks holds the reference links for one role. Missing links are empty
// strings.
type RoleLinks struct {
	Express     string `json:"express_link"`
	Description string `json:"desc_link"`
	Video       string `json:"video_link"`
}

// Store is a reloadable lookup of role name to links.
type Store struct {
	mu    sync.RWMutex
	path  string
	byRole map[string]RoleLinks
}

// NewStore loads a links store from the given CSV file. The file must have
// role_name, express_link, desc_link, and video_link columns.
func NewStore(path string) (*Store, error) {
	byRole, err := load(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, byRole: byRole}, nil
}

// Lookup returns the links for a role and whether the role is known.
func (s *Store) Lookup(roleName string) (RoleLinks, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	links, ok := s.byRole[roleName]
	return links, ok
}

// Len returns the number of roles with links.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byRole)
}

// Reload replaces the store contents from a new CSV file. On error the
// previous contents are kept.
func (s *Store) Reload(path string) error {
	byRole, err := load(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
	s.byRole = byRole
	return nil
}

func load(path string) (map[string]RoleLinks, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrLoad, path, err)
	}
	defer f.Close()

	return parse(f)
}

func parse(r io.Reader) (map[string]RoleLinks, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrLoad)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrLoad, err)
	}

	index := map[string]int{}
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	nameIdx, ok := index["role_name"]
	if !ok {
		return nil, fmt.Errorf("%w: missing role_name column", ErrLoad)
	}

	field := func(row []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	byRole := map[string]RoleLinks{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read row: %v", ErrLoad, err)
		}

		name := strings.TrimSpace(row[nameIdx])
		if name == "" {
			continue
		}

		byRole[name] = RoleLinks{
			Express:     field(row, "express_link"),
			Description: field(row, "desc_link"),
			Video:       field(row, "video_link"),
		}
	}

	if len(byRole) == 0 {
		return nil, fmt.Errorf("%w: no link rows", ErrLoad)
	}
	return byRole, nil
}
