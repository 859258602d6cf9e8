package traffic

import (
	"context"
	"maps"
	"sync"
)

// Storage persists traffic records, unique by fingerprint.
//
// Create must insert atomically and return ErrDuplicateFingerprint when the
// fingerprint exists, leaving the stored record untouched. IncrementVisits
// must be atomic across concurrent callers. GetByFingerprint and
// IncrementVisits return ErrRecordNotFound for unknown fingerprints.
type Storage interface {
	GetByFingerprint(ctx context.Context, fingerprint string) (*Record, error)
	Create(ctx context.Context, rec *Record) (*Record, error)
	IncrementVisits(ctx context.Context, fingerprint string) (*Record, error)
}

// MemoryStorage is an in-process Storage for tests and local development.
type MemoryStorage struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{records: make(map[string]Record)}
}

func (m *MemoryStorage) GetByFingerprint(_ context.Context, fingerprint string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[fingerprint]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return cloneRecord(rec), nil
}

func (m *MemoryStorage) Create(_ context.Context, rec *Record) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[rec.Fingerprint]; ok {
		return nil, ErrDuplicateFingerprint
	}
	stored := *cloneRecord(*rec)
	m.records[rec.Fingerprint] = stored
	return cloneRecord(stored), nil
}

func (m *MemoryStorage) IncrementVisits(_ context.Context, fingerprint string) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[fingerprint]
	if !ok {
		return nil, ErrRecordNotFound
	}
	rec.VisitCount++
	m.records[fingerprint] = rec
	return cloneRecord(rec), nil
}

// Len returns the number of stored records.
func (m *MemoryStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

func cloneRecord(rec Record) *Record {
	rec.QueryParams = maps.Clone(rec.QueryParams)
	return &rec
}
