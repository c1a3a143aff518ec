package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"teamspace-be/internal/entity"
	"teamspace-be/internal/repository/contract"

	"github.com/google/uuid"
)

// RecordRepository emulates one workspace partition. The factory keeps
// one instance per workspace id, which mirrors the schema-per-workspace
// isolation of the real store.
type RecordRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*entity.Record
}

func NewRecordRepository() *RecordRepository {
	return &RecordRepository{
		records: make(map[uuid.UUID]*entity.Record),
	}
}

var _ contract.RecordRepository = (*RecordRepository)(nil)

func cloneRecord(rec *entity.Record) *entity.Record {
	if rec == nil {
		return nil
	}
	c := *rec
	return &c
}

func (r *RecordRepository) Create(ctx context.Context, record *entity.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if record.Id == uuid.Nil {
		record.Id = uuid.New()
	}
	r.records[record.Id] = cloneRecord(record)
	return nil
}

func (r *RecordRepository) Update(ctx context.Context, record *entity.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.Id] = cloneRecord(record)
	return nil
}

func (r *RecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneRecord(r.records[id]), nil
}

func (r *RecordRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return 0, nil
	}
	delete(r.records, id)
	return 1, nil
}

func (r *RecordRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for _, id := range ids {
		if _, ok := r.records[id]; ok {
			delete(r.records, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *RecordRepository) UpdateByIDs(ctx context.Context, ids []uuid.UUID, changes contract.RecordBulkChanges) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched int64
	for _, id := range ids {
		rec, ok := r.records[id]
		if !ok {
			continue
		}
		matched++
		if changes.State != nil {
			rec.State = *changes.State
		}
		t := changes.UpdatedAt
		rec.UpdatedAt = &t
		rec.UpdatedBy = changes.UpdatedBy
	}
	return matched, nil
}

func matchesSearch(rec *entity.Record, fields []string, query string) bool {
	if query == "" || len(fields) == 0 {
		return true
	}
	needle := strings.ToLower(query)
	for _, field := range fields {
		if field == "title" && strings.Contains(strings.ToLower(rec.Title), needle) {
			return true
		}
	}
	return false
}

func (r *RecordRepository) List(ctx context.Context, q contract.RecordListQuery) ([]*entity.Record, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*entity.Record, 0)
	for _, rec := range r.records {
		if matchesSearch(rec, q.SearchFields, q.Search) {
			matched = append(matched, cloneRecord(rec))
		}
	}

	// created_at DESC, id DESC, same as the partition index
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].Id.String() > matched[j].Id.String()
	})

	total := int64(len(matched))
	if q.Offset >= len(matched) {
		return []*entity.Record{}, total, nil
	}
	end := q.Offset + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[q.Offset:end], total, nil
}
