package mapper

import (
	"teamspace-be/internal/entity"
	"teamspace-be/internal/model"
)

type RecordMapper struct{}

func NewRecordMapper() *RecordMapper {
	return &RecordMapper{}
}

func (m *RecordMapper) ToEntity(r *model.Record) *entity.Record {
	if r == nil {
		return nil
	}

	state := entity.RecordState(r.State)
	if state == "" {
		state = entity.RecordStateDraft
	}

	return &entity.Record{
		Id:        r.Id,
		Title:     r.Title,
		State:     state,
		CreatedBy: r.CreatedBy,
		UpdatedBy: r.UpdatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (m *RecordMapper) ToModel(r *entity.Record) *model.Record {
	if r == nil {
		return nil
	}

	return &model.Record{
		Id:        r.Id,
		Title:     r.Title,
		State:     string(r.State),
		CreatedBy: r.CreatedBy,
		UpdatedBy: r.UpdatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (m *RecordMapper) ToEntities(records []*model.Record) []*entity.Record {
	entities := make([]*entity.Record, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
