package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/graphref/sidegraph/internal/core/domain"
	"github.com/graphref/sidegraph/internal/core/ports/driven"
)

// Catalog resolves reference names to their full metadata records.
// All records are loaded once from the topology store when the graph is
// opened and are immutable afterwards, so lookups are pure in-memory
// reads and safe for concurrent use.
type Catalog struct {
	names  []string
	byName map[string]*domain.Reference
}

// LoadCatalog reads every reference record from the topology store.
func LoadCatalog(ctx context.Context, store driven.TopologyStore) (*Catalog, error) {
	names, err := store.ReferenceNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing references: %w", err)
	}

	c := &Catalog{
		names:  make([]string, 0, len(names)),
		byName: make(map[string]*domain.Reference, len(names)),
	}
	for _, name := range names {
		ref, err := store.Reference(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("loading reference %q: %w", name, err)
		}
		c.names = append(c.names, name)
		c.byName[name] = ref
	}
	sort.Strings(c.names)
	return c, nil
}

// Names returns all reference names, sorted.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Reference returns the record for a named reference.
// Returns domain.ErrNotFound when the name is absent; during traversal
// this is a dead end, not a failure.
func (c *Catalog) Reference(name string) (*domain.Reference, error) {
	ref, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("reference %q: %w", name, domain.ErrNotFound)
	}
	return ref, nil
}

// Has reports whether the catalog holds the named reference.
func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Len returns the number of references in the catalog.
func (c *Catalog) Len() int {
	return len(c.byName)
}
