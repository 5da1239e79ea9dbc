package record

// ============================================================================
// STORE — immutable ordered collection of application records
// ============================================================================
// Loaded once per run. Read-only afterwards: no appends, no updates,
// no deletes. The metrics engine reads through Records().
// ============================================================================

// Store holds the full record set for a run.
type Store struct {
	records []ApplicationRecord
}

// NewStore copies the given records into an immutable store.
func NewStore(records []ApplicationRecord) *Store {
	cp := make([]ApplicationRecord, len(records))
	copy(cp, records)
	return &Store{records: cp}
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// Records returns the record set in load order. Callers must treat the
// returned slice as read-only.
func (s *Store) Records() []ApplicationRecord { return s.records }
