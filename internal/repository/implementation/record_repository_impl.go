package implementation

import (
	"context"
	"errors"

	"teamspace-be/internal/entity"
	"teamspace-be/internal/mapper"
	"teamspace-be/internal/model"
	"teamspace-be/internal/partition"
	"teamspace-be/internal/repository/contract"
	"teamspace-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordRepositoryImpl runs every query through a resolved partition
// handle, so records from different workspaces can never meet in one
// statement.
type RecordRepositoryImpl struct {
	handle *partition.Handle
	mapper *mapper.RecordMapper
}

func NewRecordRepository(handle *partition.Handle) contract.RecordRepository {
	return &RecordRepositoryImpl{
		handle: handle,
		mapper: mapper.NewRecordMapper(),
	}
}

func (r *RecordRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RecordRepositoryImpl) Create(ctx context.Context, record *entity.Record) error {
	m := r.mapper.ToModel(record)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.handle.Records(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *RecordRepositoryImpl) Update(ctx context.Context, record *entity.Record) error {
	m := r.mapper.ToModel(record)
	// Updates with a column map so nil updated_by/updated_at still
	// write NULLs instead of being skipped.
	return r.handle.Records(ctx).
		Where("id = ?", m.Id).
		Updates(map[string]interface{}{
			"title":      m.Title,
			"state":      m.State,
			"created_by": m.CreatedBy,
			"updated_by": m.UpdatedBy,
			"updated_at": m.UpdatedAt,
		}).Error
}

func (r *RecordRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	var m model.Record
	query := r.applySpecifications(r.handle.Records(ctx), specification.ByID{ID: id})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RecordRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	query := r.applySpecifications(r.handle.Records(ctx), specification.ByID{ID: id})
	result := query.Delete(&model.Record{})
	return result.RowsAffected, result.Error
}

func (r *RecordRepositoryImpl) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := r.applySpecifications(r.handle.Records(ctx), specification.ByIDs{IDs: ids})
	result := query.Delete(&model.Record{})
	return result.RowsAffected, result.Error
}

func (r *RecordRepositoryImpl) UpdateByIDs(ctx context.Context, ids []uuid.UUID, changes contract.RecordBulkChanges) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	values := map[string]interface{}{
		"updated_at": changes.UpdatedAt,
		"updated_by": changes.UpdatedBy,
	}
	if changes.State != nil {
		values["state"] = string(*changes.State)
	}

	query := r.applySpecifications(r.handle.Records(ctx), specification.ByIDs{IDs: ids})
	result := query.Updates(values)
	return result.RowsAffected, result.Error
}

func (r *RecordRepositoryImpl) List(ctx context.Context, q contract.RecordListQuery) ([]*entity.Record, int64, error) {
	searchSpecs := make([]specification.Specification, 0, 1)
	if q.Search != "" && len(q.SearchFields) > 0 {
		searchSpecs = append(searchSpecs, specification.FieldSearch{
			Fields: q.SearchFields,
			Query:  q.Search,
		})
	}

	var total int64
	countQuery := r.applySpecifications(r.handle.Records(ctx), searchSpecs...)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	pageSpecs := append(searchSpecs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.OrderBy{Field: "id", Desc: true},
		specification.Pagination{Limit: q.Limit, Offset: q.Offset},
	)

	var models []*model.Record
	query := r.applySpecifications(r.handle.Records(ctx), pageSpecs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	return r.mapper.ToEntities(models), total, nil
}
