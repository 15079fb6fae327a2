package roles

import (
	"sync"

	"github.com/mhewson/rolematch/pkg/core/matching"
)

// Catalog is a reloadable role catalog. Reads are safe to share across
// concurrent assessments; Reload swaps the whole record set atomically, so
// engines built before a reload keep scoring against the dataset they were
// constructed with.
type Catalog struct {
	mu      sync.RWMutex
	path    string
	records []matching.RoleRecord
}

// NewCatalog loads a catalog from the given CSV file.
func NewCatalog(path string) (*Catalog, error) {
	records, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Catalog{path: path, records: records}, nil
}

// Records returns the current role records. The returned slice must not be
// mutated.
func (c *Catalog) Records() []matching.RoleRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.records
}

// Len returns the number of roles in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Path returns the file the catalog currently reads from.
func (c *Catalog) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.path
}

// Reload replaces the catalog contents from a new CSV file. On error the
// previous contents are kept.
func (c *Catalog) Reload(path string) error {
	records, err := Load(path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.path = path
	c.records = records
	return nil
}
