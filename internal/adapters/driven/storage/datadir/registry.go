// Package datadir discovers side graphs under a data directory.
//
// Each subdirectory of the root that holds exactly one topology
// database (*.db) is a graph, named after the subdirectory; the FASTA
// files for its sequences sit alongside the database. The registry can
// additionally watch the root so long-lived surfaces (MCP server, TUI)
// see graphs appear and disappear.
package datadir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/graphref/sidegraph/internal/core/domain"
	"github.com/graphref/sidegraph/internal/logger"
)

// GraphSource locates one discovered side graph on disk.
type GraphSource struct {
	// Name is the graph's name, the base name of its directory.
	Name string

	// DBPath is the absolute path of the topology database.
	DBPath string

	// FastaDir is the directory holding the graph's FASTA files.
	FastaDir string
}

// Registry tracks the graphs available under one data directory.
type Registry struct {
	root string

	mu     sync.RWMutex
	graphs map[string]GraphSource

	// limiter debounces rescans triggered by filesystem events.
	limiter *rate.Limiter
}

// NewRegistry scans root and returns a registry of the graphs found.
func NewRegistry(root string) (*Registry, error) {
	r := &Registry{
		root:    root,
		graphs:  make(map[string]GraphSource),
		limiter: rate.NewLimiter(rate.Limit(2), 1),
	}
	if err := r.Refresh(); err != nil {
		return nil, err
	}
	return r, nil
}

// Refresh rescans the data directory.
func (r *Registry) Refresh() error {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return fmt.Errorf("reading data directory: %w: %v", domain.ErrStoreUnavailable, err)
	}

	graphs := make(map[string]GraphSource)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(r.root, entry.Name())
		dbs, err := filepath.Glob(filepath.Join(dir, "*.db"))
		if err != nil {
			return fmt.Errorf("globbing %s: %w", dir, err)
		}
		if len(dbs) != 1 {
			if len(dbs) > 1 {
				logger.Warn("skipping %s: %d topology databases, want exactly 1", dir, len(dbs))
			}
			continue
		}
		graphs[entry.Name()] = GraphSource{
			Name:     entry.Name(),
			DBPath:   dbs[0],
			FastaDir: dir,
		}
	}

	r.mu.Lock()
	r.graphs = graphs
	r.mu.Unlock()
	return nil
}

// List returns the discovered graphs, sorted by name.
func (r *Registry) List() []GraphSource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]GraphSource, 0, len(r.graphs))
	for _, g := range r.graphs {
		out = append(out, g)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].Name < out[k].Name })
	return out
}

// Get returns the source for a named graph.
// Returns domain.ErrNotFound when the name is unknown.
func (r *Registry) Get(name string) (GraphSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.graphs[name]
	if !ok {
		return GraphSource{}, fmt.Errorf("graph %q: %w", name, domain.ErrNotFound)
	}
	return g, nil
}

// Watch rescans the data directory whenever its contents change, until
// the context is cancelled. Event bursts (a graph being copied in) are
// coalesced through the rate limiter.
func (r *Registry) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(r.root); err != nil {
		return fmt.Errorf("watching %s: %w", r.root, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if err := r.limiter.Wait(ctx); err != nil {
				return nil
			}
			drain(watcher.Events)
			if err := r.Refresh(); err != nil {
				logger.Warn("refreshing graph registry: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watching data directory: %v", err)
		}
	}
}

// drain discards queued events so one rescan covers the whole burst.
func drain(events chan fsnotify.Event) {
	for {
		select {
		case <-events:
		default:
			return
		}
	}
}
