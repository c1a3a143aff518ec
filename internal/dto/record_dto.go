package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRecordRequest struct {
	Title string  `json:"title" validate:"required"`
	State *string `json:"state"`
}

type CreateRecordResponse struct {
	Id uuid.UUID `json:"record_id"`
}

type RecordResponse struct {
	Id        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	State     string       `json:"state"`
	CreatedBy *UserSummary `json:"created_by"`
	UpdatedBy *UserSummary `json:"updated_by"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt *time.Time   `json:"updated_at"`
}

// UpdateRecordRequest merges only the provided fields; nil means
// "leave untouched".
type UpdateRecordRequest struct {
	Id    uuid.UUID
	Title *string `json:"title"`
	State *string `json:"state"`
}

type ListRecordsQuery struct {
	Page     int    `query:"page"`
	PageSize int    `query:"pageSize"`
	Search   string `query:"search"`
	SearchBy string `query:"searchBy"`
}

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

type ListRecordsResponse struct {
	Records    []*RecordResponse `json:"records"`
	Pagination Pagination        `json:"pagination"`
}

type BulkDeleteRecordsRequest struct {
	Ids []string `json:"ids"`
}

type BulkDeleteRecordsResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

type BulkUpdateRecordsRequest struct {
	Ids   []string `json:"ids"`
	State *string  `json:"state"`
}

type BulkUpdateRecordsResponse struct {
	MatchedCount  int64 `json:"matched_count"`
	ModifiedCount int64 `json:"modified_count"`
}
