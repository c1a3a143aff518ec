package service

import (
	"context"
	"strings"
	"time"

	"teamspace-be/internal/dto"
	"teamspace-be/internal/entity"
	"teamspace-be/internal/pkg/apperror"
	"teamspace-be/internal/repository/contract"
	"teamspace-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// searchFields maps the client-facing searchBy key to the partition
// columns it matches against. Unknown keys disable filtering rather
// than erroring, matching the behavior of an unrecognized filter in a
// saved client URL.
var searchFields = map[string][]string{
	"all":   {"title"},
	"title": {"title"},
}

type IRecordService interface {
	Create(ctx context.Context, userId uuid.UUID, workspaceId string, req *dto.CreateRecordRequest) (*dto.CreateRecordResponse, error)
	Get(ctx context.Context, userId uuid.UUID, workspaceId string, recordId string) (*dto.RecordResponse, error)
	Update(ctx context.Context, userId uuid.UUID, workspaceId string, recordId string, req *dto.UpdateRecordRequest) error
	Delete(ctx context.Context, userId uuid.UUID, workspaceId string, recordId string) error
	BulkDelete(ctx context.Context, userId uuid.UUID, workspaceId string, req *dto.BulkDeleteRecordsRequest) (*dto.BulkDeleteRecordsResponse, error)
	BulkUpdate(ctx context.Context, userId uuid.UUID, workspaceId string, req *dto.BulkUpdateRecordsRequest) (*dto.BulkUpdateRecordsResponse, error)
	List(ctx context.Context, userId uuid.UUID, workspaceId string, q *dto.ListRecordsQuery) (*dto.ListRecordsResponse, error)
}

type recordService struct {
	uowFactory    unitofwork.RepositoryFactory
	accessService IAccessService
	recordFactory contract.RecordRepositoryFactory
}

func NewRecordService(
	uowFactory unitofwork.RepositoryFactory,
	accessService IAccessService,
	recordFactory contract.RecordRepositoryFactory,
) IRecordService {
	return &recordService{
		uowFactory:    uowFactory,
		accessService: accessService,
		recordFactory: recordFactory,
	}
}

// repoFor authorizes the caller and binds the repository to the
// workspace's partition in one step; every operation starts here.
func (s *recordService) repoFor(ctx context.Context, userId uuid.UUID, workspaceId string) (contract.RecordRepository, error) {
	membership, err := s.accessService.Authorize(ctx, userId, workspaceId)
	if err != nil {
		return nil, err
	}
	if !membership.Can(entity.ActionManageRecords) {
		return nil, apperror.Forbidden("no access to workspace")
	}
	return s.recordFactory.ForWorkspace(ctx, membership.WorkspaceId)
}

func (s *recordService) Create(ctx context.Context, userId uuid.UUID, workspaceId string, req *dto.CreateRecordRequest) (*dto.CreateRecordResponse, error) {
	repo, err := s.repoFor(ctx, userId, workspaceId)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.Validation("title is required")
	}
	state := entity.RecordStateDraft
	if req.State != nil {
		state = entity.RecordState(*req.State)
		if !entity.ValidRecordState(state) {
			return nil, apperror.Validation("invalid record state")
		}
	}

	record := &entity.Record{
		Id:        uuid.New(),
		Title:     title,
		State:     state,
		CreatedBy: &userId,
		CreatedAt: time.Now(),
	}
	if err := repo.Create(ctx, record); err != nil {
		return nil, err
	}

	return &dto.CreateRecordResponse{Id: record.Id}, nil
}

func (s *recordService) Get(ctx context.Context, userId uuid.UUID, workspaceId string, recordId string) (*dto.RecordResponse, error) {
	repo, err := s.repoFor(ctx, userId, workspaceId)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(recordId)
	if err != nil {
		return nil, apperror.InvalidIdentifier("invalid record id")
	}

	record, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NotFound("record not found")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	resolver := newUserResolver(uow.UserRepository())
	summaries, err := resolver.BatchResolve(ctx, collectUserRefs([]*entity.Record{record}))
	if err != nil {
		return nil, err
	}

	return toRecordResponse(record, summaries), nil
}

func (s *recordService) Update(ctx context.Context, userId uuid.UUID, workspaceId string, recordId string, req *dto.UpdateRecordRequest) error {
	repo, err := s.repoFor(ctx, userId, workspaceId)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(recordId)
	if err != nil {
		return apperror.InvalidIdentifier("invalid record id")
	}

	// Validate before the lookup so a bad state never costs a query.
	var state *entity.RecordState
	if req.State != nil {
		st := entity.RecordState(*req.State)
		if !entity.ValidRecordState(st) {
			return apperror.Validation("invalid record state")
		}
		state = &st
	}
	var title *string
	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if trimmed == "" {
			return apperror.Validation("title is required")
		}
		title = &trimmed
	}

	record, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if record == nil {
		return apperror.NotFound("record not found")
	}

	if title != nil {
		record.Title = *title
	}
	if state != nil {
		record.State = *state
	}
	// Audit stamps advance even on a field-less update.
	now := time.Now()
	record.UpdatedAt = &now
	record.UpdatedBy = &userId

	return repo.Update(ctx, record)
}

func (s *recordService) Delete(ctx context.Context, userId uuid.UUID, workspaceId string, recordId string) error {
	repo, err := s.repoFor(ctx, userId, workspaceId)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(recordId)
	if err != nil {
		return apperror.InvalidIdentifier("invalid record id")
	}

	deleted, err := repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperror.NotFound("record not found")
	}
	return nil
}

func (s *recordService) BulkDelete(ctx context.Context, userId uuid.UUID, workspaceId string, req *dto.BulkDeleteRecordsRequest) (*dto.BulkDeleteRecordsResponse, error) {
	repo, err := s.repoFor(ctx, userId, workspaceId)
	if err != nil {
		return nil, err
	}

	ids := normalizeIds(req.Ids)
	if len(ids) == 0 {
		return &dto.BulkDeleteRecordsResponse{DeletedCount: 0}, nil
	}

	deleted, err := repo.DeleteByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &dto.BulkDeleteRecordsResponse{DeletedCount: deleted}, nil
}

func (s *recordService) BulkUpdate(ctx context.Context, userId uuid.UUID, workspaceId string, req *dto.BulkUpdateRecordsRequest) (*dto.BulkUpdateRecordsResponse, error) {
	repo, err := s.repoFor(ctx, userId, workspaceId)
	if err != nil {
		return nil, err
	}

	var state *entity.RecordState
	if req.State != nil {
		st := entity.RecordState(*req.State)
		if !entity.ValidRecordState(st) {
			return nil, apperror.Validation("invalid record state")
		}
		state = &st
	}

	ids := normalizeIds(req.Ids)
	if len(ids) == 0 {
		return &dto.BulkUpdateRecordsResponse{}, nil
	}

	matched, err := repo.UpdateByIDs(ctx, ids, contract.RecordBulkChanges{
		State:     state,
		UpdatedBy: &userId,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}
	// The audit stamps touch every matched row, so matched and
	// modified coincide.
	return &dto.BulkUpdateRecordsResponse{
		MatchedCount:  matched,
		ModifiedCount: matched,
	}, nil
}

func (s *recordService) List(ctx context.Context, userId uuid.UUID, workspaceId string, q *dto.ListRecordsQuery) (*dto.ListRecordsResponse, error) {
	repo, err := s.repoFor(ctx, userId, workspaceId)
	if err != nil {
		return nil, err
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	searchBy := strings.TrimSpace(q.SearchBy)
	if searchBy == "" {
		searchBy = "all"
	}

	records, total, err := repo.List(ctx, contract.RecordListQuery{
		Search:       strings.TrimSpace(q.Search),
		SearchFields: searchFields[searchBy],
		Limit:        pageSize,
		Offset:       (page - 1) * pageSize,
	})
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	resolver := newUserResolver(uow.UserRepository())
	summaries, err := resolver.BatchResolve(ctx, collectUserRefs(records))
	if err != nil {
		return nil, err
	}

	items := make([]*dto.RecordResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, toRecordResponse(rec, summaries))
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	if totalPages < 1 {
		totalPages = 1
	}

	return &dto.ListRecordsResponse{
		Records: items,
		Pagination: dto.Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// normalizeIds parses and deduplicates client-supplied ids; malformed
// entries are dropped so a bulk call never fails on one bad id.
func normalizeIds(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	seen := make(map[uuid.UUID]bool, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(strings.TrimSpace(r))
		if err != nil || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

func toRecordResponse(rec *entity.Record, summaries map[uuid.UUID]*dto.UserSummary) *dto.RecordResponse {
	return &dto.RecordResponse{
		Id:        rec.Id,
		Title:     rec.Title,
		State:     string(rec.State),
		CreatedBy: lookupSummary(summaries, rec.CreatedBy),
		UpdatedBy: lookupSummary(summaries, rec.UpdatedBy),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
