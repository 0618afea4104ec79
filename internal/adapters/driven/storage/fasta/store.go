// Package fasta implements the sequence store over a directory of
// FASTA files.
//
// Every *.fa file in the directory is parsed at open time and its
// records indexed by name, where a record's name is the first
// whitespace-delimited token of its header line. Sequences are held in
// memory; graph FASTA files are small compared to whole-genome
// assemblies.
package fasta

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/graphref/sidegraph/internal/core/domain"
	"github.com/graphref/sidegraph/internal/core/ports/driven"
)

// Store is a read-only sequence store over a directory of FASTA files.
type Store struct {
	dir  string
	seqs map[string]string

	// files maps each record name to the base name of the file that
	// declared it.
	files map[string]string
}

var _ driven.SequenceStore = (*Store)(nil)

// NewDir opens every FASTA file in dir and indexes its records.
// A record name declared by two files is a malformed store.
func NewDir(dir string) (*Store, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.fa"))
	if err != nil {
		return nil, fmt.Errorf("globbing FASTA files: %w", err)
	}

	s := &Store{
		dir:   dir,
		seqs:  make(map[string]string),
		files: make(map[string]string),
	}
	for _, path := range matches {
		if err := s.loadFile(path); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// loadFile parses one FASTA file into the record index.
func (s *Store) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening FASTA file: %w: %v", domain.ErrStoreUnavailable, err)
	}
	defer f.Close()

	base := filepath.Base(path)
	var record string
	var sb strings.Builder

	flush := func() error {
		if record == "" {
			return nil
		}
		if prev, ok := s.files[record]; ok {
			return fmt.Errorf("%w: record %q declared by both %s and %s",
				domain.ErrInvalidInput, record, prev, base)
		}
		s.seqs[record] = sb.String()
		s.files[record] = base
		sb.Reset()
		return nil
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return err
			}
			// Record name is the first token; the rest of the header
			// line is free-text metadata.
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				return fmt.Errorf("%w: %s: header with no record name", domain.ErrInvalidInput, base)
			}
			record = fields[0]
			continue
		}
		if record == "" {
			return fmt.Errorf("%w: %s: bases before first header", domain.ErrInvalidInput, base)
		}
		sb.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", base, err)
	}
	return flush()
}

// Bases returns the bases of the half-open window [start, end) of the
// named record.
func (s *Store) Bases(_ context.Context, record string, start, end int64) (string, error) {
	seq, ok := s.seqs[record]
	if !ok {
		return "", fmt.Errorf("sequence record %q: %w", record, domain.ErrNotFound)
	}
	if start < 0 || end > int64(len(seq)) || start > end {
		return "", fmt.Errorf("%w: window [%d,%d) outside record %q of length %d",
			domain.ErrInvalidInput, start, end, record, len(seq))
	}
	return seq[start:end], nil
}

// Has reports whether the store holds the named record.
func (s *Store) Has(record string) bool {
	_, ok := s.seqs[record]
	return ok
}

// Records returns the names of all indexed records.
func (s *Store) Records() []string {
	out := make([]string, 0, len(s.seqs))
	for record := range s.seqs {
		out = append(out, record)
	}
	return out
}

// File returns the base name of the file that declared a record.
func (s *Store) File(record string) (string, bool) {
	f, ok := s.files[record]
	return f, ok
}

// Close releases the store. Sequences live in memory, so there is
// nothing to release; Close exists to satisfy the port.
func (s *Store) Close() error {
	return nil
}
