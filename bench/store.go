package bench

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// csvHeader is the stats schema, one column per Record field.
var csvHeader = []string{
	"Graph", "Nodes", "Edges", "Opt_Size", "Size",
	"Ratio", "Time", "Timeout", "Fallback", "Fallback_Timeout",
}

// Store holds the per-instance records behind the stats CSV. Rows keep
// their file order; updates land in place and new instances append, so
// reruns never duplicate a row. The store assumes a single writer.
type Store struct {
	path string
	recs []Record
	idx  map[string]int
}

// OpenStore loads the stats file at path. A missing file yields an
// empty store; a present but malformed file is an error rather than a
// silent reset.
func OpenStore(path string) (*Store, error) {
	s := &Store{path: path, idx: make(map[string]int)}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("bench: open stats: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("bench: read stats: %w", err)
	}
	if len(rows) == 0 {
		return s, nil
	}
	if !equalRow(rows[0], csvHeader) {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, rows[0])
	}

	for _, row := range rows[1:] {
		rec, err := parseRow(row)
		if err != nil {
			return nil, err
		}
		s.idx[rec.Graph] = len(s.recs)
		s.recs = append(s.recs, rec)
	}
	return s, nil
}

// Get returns the record for name, if any.
func (s *Store) Get(name string) (Record, bool) {
	i, ok := s.idx[name]
	if !ok {
		return Record{}, false
	}
	return s.recs[i], true
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.recs) }

// Records returns a copy of all records in file order.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.recs))
	copy(out, s.recs)
	return out
}

// Upsert replaces the record for rec.Graph in place, or appends it.
func (s *Store) Upsert(rec Record) {
	if i, ok := s.idx[rec.Graph]; ok {
		s.recs[i] = rec
		return
	}
	s.idx[rec.Graph] = len(s.recs)
	s.recs = append(s.recs, rec)
}

// Write rewrites the stats file from the in-memory records. The rows
// land in a temp file that replaces the stats file by rename, so a
// failed or interrupted rewrite leaves the previous file untouched.
func (s *Store) Write() error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("bench: write stats: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("bench: write stats: %w", err)
	}

	w := csv.NewWriter(tmp)
	rows := make([][]string, 0, len(s.recs)+1)
	rows = append(rows, csvHeader)
	for _, rec := range s.recs {
		rows = append(rows, formatRow(rec))
	}
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("bench: write stats: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("bench: write stats: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("bench: replace stats: %w", err)
	}
	return nil
}

func formatRow(rec Record) []string {
	return []string{
		rec.Graph,
		strconv.Itoa(rec.Nodes),
		strconv.Itoa(rec.Edges),
		strconv.Itoa(rec.OptSize),
		strconv.Itoa(rec.Size),
		strconv.FormatFloat(rec.Ratio, 'f', -1, 64),
		strconv.FormatFloat(rec.Time, 'f', -1, 64),
		flag(rec.Timeout),
		flag(rec.Fallback),
		flag(rec.FallbackTimeout),
	}
}

func parseRow(row []string) (Record, error) {
	if len(row) != len(csvHeader) {
		return Record{}, fmt.Errorf("%w: want %d fields, got %d", ErrBadRow, len(csvHeader), len(row))
	}

	var (
		rec  Record
		err  error
		ints = [4]*int{&rec.Nodes, &rec.Edges, &rec.OptSize, &rec.Size}
	)
	rec.Graph = row[0]
	for i, dst := range ints {
		if *dst, err = strconv.Atoi(row[i+1]); err != nil {
			return Record{}, fmt.Errorf("%w: %q: %v", ErrBadRow, row[i+1], err)
		}
	}
	if rec.Ratio, err = strconv.ParseFloat(row[5], 64); err != nil {
		return Record{}, fmt.Errorf("%w: ratio %q: %v", ErrBadRow, row[5], err)
	}
	if rec.Time, err = strconv.ParseFloat(row[6], 64); err != nil {
		return Record{}, fmt.Errorf("%w: time %q: %v", ErrBadRow, row[6], err)
	}
	rec.Timeout = row[7] == "1"
	rec.Fallback = row[8] == "1"
	rec.FallbackTimeout = row[9] == "1"
	return rec, nil
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func equalRow(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
