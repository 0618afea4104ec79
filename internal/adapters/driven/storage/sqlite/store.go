package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/graphref/sidegraph/internal/core/domain"
	"github.com/graphref/sidegraph/internal/core/ports/driven"
)

// topologyTables are the relations a topology database must carry.
var topologyTables = []string{
	"Reference", "Sequence", "FASTA", "GraphJoin", "ReferenceAccession",
}

// Store is a read-only topology store backed by a SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.TopologyStore = (*Store)(nil)

// Open opens an existing topology database. A missing file maps to
// domain.ErrNotFound and a database without the topology relations to
// domain.ErrMalformedTopology.
func Open(dbPath string) (*Store, error) {
	if _, err := os.Stat(dbPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("topology database %s: %w", dbPath, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("topology database %s: %w: %v", dbPath, domain.ErrStoreUnavailable, err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_pragma=query_only(1)")
	if err != nil {
		return nil, fmt.Errorf("opening topology database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.validateSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Create builds a new topology database with the embedded schema and
// opens it writable. Used by tests and by loaders that produce
// topology databases for the engine to consume.
func Create(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("creating topology database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// validateSchema checks the expected topology relations exist.
func (s *Store) validateSchema() error {
	rows, err := s.db.Query("SELECT name FROM sqlite_master WHERE type = 'table'")
	if err != nil {
		return fmt.Errorf("reading schema: %w: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("scanning schema: %w", err)
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating schema: %w", err)
	}

	for _, table := range topologyTables {
		if !present[table] {
			return fmt.Errorf("%w: missing table %s in %s", domain.ErrMalformedTopology, table, s.path)
		}
	}
	return nil
}

// ReferenceNames returns the names of all references in the graph.
func (s *Store) ReferenceNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM Reference ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying reference names: %w", err)
	}
	defer rows.Close()

	var names []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning reference name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reference names: %w", err)
	}
	return names, nil
}

// Reference returns the full metadata record for a named reference,
// including its source accessions.
func (s *Store) Reference(ctx context.Context, name string) (*domain.Reference, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT R.ID, R.name, S.sequenceRecordName, R.start, S.length,
			S.md5checksum, R.isDerived, R.sourceDivergence, R.ncbiTaxonID
		FROM Reference R
		JOIN Sequence S ON R.sequenceID = S.ID
		WHERE R.name = ?
	`, name)

	var ref domain.Reference
	var isDerived string
	var divergence sql.NullFloat64
	var taxon sql.NullInt64
	if err := row.Scan(&ref.ID, &ref.Name, &ref.SequenceID, &ref.Start, &ref.Length,
		&ref.MD5Checksum, &isDerived, &divergence, &taxon); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reference %q: %w", name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning reference: %w", err)
	}

	ref.IsDerived = isDerived == "TRUE"
	if divergence.Valid {
		ref.SourceDivergence = &divergence.Float64
	}
	if taxon.Valid {
		ref.NCBITaxonID = &taxon.Int64
	}

	accessions, err := s.accessions(ctx, ref.ID)
	if err != nil {
		return nil, err
	}
	ref.SourceAccessions = accessions
	return &ref, nil
}

// accessions returns the source accessions for a reference, in row order.
func (s *Store) accessions(ctx context.Context, referenceID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT accessionID FROM ReferenceAccession
		WHERE referenceID = ? ORDER BY ID
	`, referenceID)
	if err != nil {
		return nil, fmt.Errorf("querying accessions: %w", err)
	}
	defer rows.Close()

	var accessions []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var acc string
		if err := rows.Scan(&acc); err != nil {
			return nil, fmt.Errorf("scanning accession: %w", err)
		}
		accessions = append(accessions, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating accessions: %w", err)
	}
	return accessions, nil
}

// Joins returns the joins matching the filter. Sides are resolved to
// reference names through the sequence each side sits on.
func (s *Store) Joins(ctx context.Context, filter domain.JoinFilter) ([]domain.Join, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := `
		SELECT L.name, J.side1Position,
			(CASE J.side1StrandIsForward WHEN 'TRUE' THEN 'F' ELSE 'R' END),
			R.name, J.side2Position,
			(CASE J.side2StrandIsForward WHEN 'TRUE' THEN 'F' ELSE 'R' END)
		FROM GraphJoin J
		JOIN Reference L ON J.side1SequenceID = L.sequenceID
		JOIN Reference R ON J.side2SequenceID = R.sequenceID
	`
	var args []any
	switch {
	case filter.Reference == "":
		// unrestricted
	case filter.Start != nil && filter.End != nil:
		query += `
		WHERE (L.name = ? AND J.side1Position >= ? AND J.side1Position <= ?)
		OR (R.name = ? AND J.side2Position >= ? AND J.side2Position <= ?)
		`
		args = []any{filter.Reference, *filter.Start, *filter.End,
			filter.Reference, *filter.Start, *filter.End}
	case filter.Start != nil:
		query += `
		WHERE (L.name = ? AND J.side1Position >= ?)
		OR (R.name = ? AND J.side2Position >= ?)
		`
		args = []any{filter.Reference, *filter.Start, filter.Reference, *filter.Start}
	default:
		query += `
		WHERE L.name = ? OR R.name = ?
		`
		args = []any{filter.Reference, filter.Reference}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying joins: %w", err)
	}
	defer rows.Close()

	var joins []domain.Join //nolint:prealloc // size unknown from query
	for rows.Next() {
		var j domain.Join
		var strand1, strand2 string
		if err := rows.Scan(&j.Side1.Reference, &j.Side1.Position, &strand1,
			&j.Side2.Reference, &j.Side2.Position, &strand2); err != nil {
			return nil, fmt.Errorf("scanning join: %w", err)
		}
		if j.Side1.Strand, err = domain.ParseStrand(strand1); err != nil {
			return nil, err
		}
		if j.Side2.Strand, err = domain.ParseStrand(strand2); err != nil {
			return nil, err
		}
		joins = append(joins, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating joins: %w", err)
	}
	return joins, nil
}

// SequenceRecord maps a reference name to its sequence record name and
// the base name of the FASTA file declared as its source. A single
// FASTA file may be shared by multiple references.
func (s *Store) SequenceRecord(ctx context.Context, refName string) (string, string, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT S.sequenceRecordName, F.fastaURI
		FROM Reference R
		JOIN Sequence S ON R.sequenceID = S.ID
		JOIN FASTA F ON S.fastaID = F.ID
		WHERE R.name = ?
	`, refName)

	var record, uri string
	if err := row.Scan(&record, &uri); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", fmt.Errorf("reference %q: %w", refName, domain.ErrNotFound)
		}
		return "", "", fmt.Errorf("scanning sequence record: %w", err)
	}
	return record, path.Base(uri), nil
}
