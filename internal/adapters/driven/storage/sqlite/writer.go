package sqlite

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/graphref/sidegraph/internal/adapters/driven/storage/sqlite/migrations"
)

// migrate runs all pending schema migrations on a writable store.
func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(migrations.FS, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}
	return nil
}

// boolText encodes a boolean in the TRUE/FALSE text convention the
// topology relations use.
func boolText(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

// InsertFASTA records a FASTA source file and returns its row ID.
func (s *Store) InsertFASTA(uri string) (int64, error) {
	res, err := s.db.Exec("INSERT INTO FASTA (fastaURI) VALUES (?)", uri)
	if err != nil {
		return 0, fmt.Errorf("inserting FASTA: %w", err)
	}
	return res.LastInsertId()
}

// InsertSequence records a sequence and returns its row ID.
func (s *Store) InsertSequence(fastaID int64, record, md5 string, length int64) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO Sequence (fastaID, sequenceRecordName, md5checksum, length)
		VALUES (?, ?, ?, ?)
	`, fastaID, record, md5, length)
	if err != nil {
		return 0, fmt.Errorf("inserting sequence: %w", err)
	}
	return res.LastInsertId()
}

// InsertReference records a reference and returns its row ID.
func (s *Store) InsertReference(name string, sequenceID, start int64, isDerived bool) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO Reference (name, sequenceID, start, isDerived)
		VALUES (?, ?, ?, ?)
	`, name, sequenceID, start, boolText(isDerived))
	if err != nil {
		return 0, fmt.Errorf("inserting reference: %w", err)
	}
	return res.LastInsertId()
}

// InsertAccession records a source accession for a reference.
func (s *Store) InsertAccession(referenceID int64, accession string) error {
	if _, err := s.db.Exec(`
		INSERT INTO ReferenceAccession (referenceID, accessionID)
		VALUES (?, ?)
	`, referenceID, accession); err != nil {
		return fmt.Errorf("inserting accession: %w", err)
	}
	return nil
}

// InsertJoin records a join between two sequence sides.
func (s *Store) InsertJoin(seq1 int64, pos1 int64, forward1 bool, seq2 int64, pos2 int64, forward2 bool) error {
	if _, err := s.db.Exec(`
		INSERT INTO GraphJoin (side1SequenceID, side1Position, side1StrandIsForward,
			side2SequenceID, side2Position, side2StrandIsForward)
		VALUES (?, ?, ?, ?, ?, ?)
	`, seq1, pos1, boolText(forward1), seq2, pos2, boolText(forward2)); err != nil {
		return fmt.Errorf("inserting join: %w", err)
	}
	return nil
}
