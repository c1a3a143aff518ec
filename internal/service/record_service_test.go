package service

import (
	"context"
	"fmt"
	"testing"

	"teamspace-be/internal/dto"
	"teamspace-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRecordCreateAndGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")

	created, err := f.recordsSvc.Create(ctx, ownerId, wsId.String(), &dto.CreateRecordRequest{
		Title: "  Quarterly Report  ",
	})
	require.NoError(t, err)

	rec, err := f.recordsSvc.Get(ctx, ownerId, wsId.String(), created.Id.String())
	require.NoError(t, err)

	assert.Equal(t, "Quarterly Report", rec.Title)
	assert.Equal(t, "draft", rec.State)
	require.NotNil(t, rec.CreatedBy)
	assert.Equal(t, ownerId, rec.CreatedBy.Id)
	assert.Equal(t, "owner@example.com", rec.CreatedBy.Email)
	assert.Nil(t, rec.UpdatedBy)
	assert.Nil(t, rec.UpdatedAt)
}

func TestRecordCreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")

	_, err := f.recordsSvc.Create(ctx, ownerId, wsId.String(), &dto.CreateRecordRequest{Title: "   "})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = f.recordsSvc.Create(ctx, ownerId, wsId.String(), &dto.CreateRecordRequest{
		Title: "Report",
		State: strPtr("frozen"),
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestRecordUpdateStampsAuditFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	editorId := f.seedUser(t, "editor@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")
	f.seedMember(t, wsId, editorId, "editor")

	created, err := f.recordsSvc.Create(ctx, ownerId, wsId.String(), &dto.CreateRecordRequest{Title: "Report"})
	require.NoError(t, err)

	// Field-less update still advances the audit trail.
	err = f.recordsSvc.Update(ctx, editorId, wsId.String(), created.Id.String(), &dto.UpdateRecordRequest{})
	require.NoError(t, err)

	rec, err := f.recordsSvc.Get(ctx, ownerId, wsId.String(), created.Id.String())
	require.NoError(t, err)
	assert.Equal(t, "Report", rec.Title)
	require.NotNil(t, rec.UpdatedAt)
	require.NotNil(t, rec.UpdatedBy)
	assert.Equal(t, editorId, rec.UpdatedBy.Id)

	err = f.recordsSvc.Update(ctx, editorId, wsId.String(), created.Id.String(), &dto.UpdateRecordRequest{
		Title: strPtr("  Annual Report  "),
		State: strPtr("published"),
	})
	require.NoError(t, err)

	rec, err = f.recordsSvc.Get(ctx, ownerId, wsId.String(), created.Id.String())
	require.NoError(t, err)
	assert.Equal(t, "Annual Report", rec.Title)
	assert.Equal(t, "published", rec.State)
}

func TestRecordUpdateRejectsBadState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")

	created, err := f.recordsSvc.Create(ctx, ownerId, wsId.String(), &dto.CreateRecordRequest{Title: "Report"})
	require.NoError(t, err)

	err = f.recordsSvc.Update(ctx, ownerId, wsId.String(), created.Id.String(), &dto.UpdateRecordRequest{
		State: strPtr("gone"),
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	err = f.recordsSvc.Update(ctx, ownerId, wsId.String(), created.Id.String(), &dto.UpdateRecordRequest{
		Title: strPtr("   "),
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestRecordDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")

	created, err := f.recordsSvc.Create(ctx, ownerId, wsId.String(), &dto.CreateRecordRequest{Title: "Report"})
	require.NoError(t, err)

	require.NoError(t, f.recordsSvc.Delete(ctx, ownerId, wsId.String(), created.Id.String()))

	err = f.recordsSvc.Delete(ctx, ownerId, wsId.String(), created.Id.String())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	_, err = f.recordsSvc.Get(ctx, ownerId, wsId.String(), created.Id.String())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestRecordInvalidIdentifiers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")

	_, err := f.recordsSvc.Get(ctx, ownerId, wsId.String(), "not-a-uuid")
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidIdentifier))

	_, err = f.recordsSvc.Get(ctx, ownerId, "not-a-uuid", uuid.NewString())
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidIdentifier))
}

func TestRecordBulkDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")

	var ids []string
	for i := 0; i < 3; i++ {
		created, err := f.recordsSvc.Create(ctx, ownerId, wsId.String(), &dto.CreateRecordRequest{
			Title: fmt.Sprintf("Doc %d", i),
		})
		require.NoError(t, err)
		ids = append(ids, created.Id.String())
	}

	// Malformed and duplicated ids are dropped, never fatal.
	req := &dto.BulkDeleteRecordsRequest{
		Ids: append([]string{"garbage", ids[0]}, ids...),
	}
	res, err := f.recordsSvc.BulkDelete(ctx, ownerId, wsId.String(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.DeletedCount)

	res, err = f.recordsSvc.BulkDelete(ctx, ownerId, wsId.String(), &dto.BulkDeleteRecordsRequest{
		Ids: []string{"nope", "also-nope"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.DeletedCount)
}

func TestRecordBulkUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")

	var ids []string
	for i := 0; i < 2; i++ {
		created, err := f.recordsSvc.Create(ctx, ownerId, wsId.String(), &dto.CreateRecordRequest{
			Title: fmt.Sprintf("Doc %d", i),
		})
		require.NoError(t, err)
		ids = append(ids, created.Id.String())
	}

	res, err := f.recordsSvc.BulkUpdate(ctx, ownerId, wsId.String(), &dto.BulkUpdateRecordsRequest{
		Ids:   append(ids, uuid.NewString()), // one unknown id
		State: strPtr("archived"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.MatchedCount)
	assert.Equal(t, int64(2), res.ModifiedCount)

	rec, err := f.recordsSvc.Get(ctx, ownerId, wsId.String(), ids[0])
	require.NoError(t, err)
	assert.Equal(t, "archived", rec.State)
	require.NotNil(t, rec.UpdatedBy)
	assert.Equal(t, ownerId, rec.UpdatedBy.Id)

	_, err = f.recordsSvc.BulkUpdate(ctx, ownerId, wsId.String(), &dto.BulkUpdateRecordsRequest{
		Ids:   ids,
		State: strPtr("bogus"),
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	res, err = f.recordsSvc.BulkUpdate(ctx, ownerId, wsId.String(), &dto.BulkUpdateRecordsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.MatchedCount)
}

func TestRecordListPagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")

	for i := 0; i < 25; i++ {
		_, err := f.recordsSvc.Create(ctx, ownerId, wsId.String(), &dto.CreateRecordRequest{
			Title: fmt.Sprintf("Doc %02d", i),
		})
		require.NoError(t, err)
	}

	res, err := f.recordsSvc.List(ctx, ownerId, wsId.String(), &dto.ListRecordsQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, res.Records, 10)
	assert.Equal(t, int64(25), res.Pagination.Total)
	assert.Equal(t, int64(3), res.Pagination.TotalPages)

	res, err = f.recordsSvc.List(ctx, ownerId, wsId.String(), &dto.ListRecordsQuery{Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, res.Records, 5)

	// Out-of-range page yields an empty page, same totals.
	res, err = f.recordsSvc.List(ctx, ownerId, wsId.String(), &dto.ListRecordsQuery{Page: 9, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, res.Records, 0)
	assert.Equal(t, int64(25), res.Pagination.Total)

	// Defaults and clamps.
	res, err = f.recordsSvc.List(ctx, ownerId, wsId.String(), &dto.ListRecordsQuery{Page: -4, PageSize: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pagination.Page)
	assert.Equal(t, 10, res.Pagination.PageSize)

	res, err = f.recordsSvc.List(ctx, ownerId, wsId.String(), &dto.ListRecordsQuery{PageSize: 5000})
	require.NoError(t, err)
	assert.Equal(t, 100, res.Pagination.PageSize)
}

func TestRecordListEmptyWorkspace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")

	res, err := f.recordsSvc.List(ctx, ownerId, wsId.String(), &dto.ListRecordsQuery{})
	require.NoError(t, err)
	assert.Len(t, res.Records, 0)
	assert.Equal(t, int64(0), res.Pagination.Total)
	assert.Equal(t, int64(1), res.Pagination.TotalPages)
}

func TestRecordListSearch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")

	titles := []string{"Quarterly Report", "Board report draft", "Meeting notes"}
	for _, title := range titles {
		_, err := f.recordsSvc.Create(ctx, ownerId, wsId.String(), &dto.CreateRecordRequest{Title: title})
		require.NoError(t, err)
	}

	res, err := f.recordsSvc.List(ctx, ownerId, wsId.String(), &dto.ListRecordsQuery{Search: "report"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Pagination.Total)

	res, err = f.recordsSvc.List(ctx, ownerId, wsId.String(), &dto.ListRecordsQuery{Search: "report", SearchBy: "title"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Pagination.Total)

	// Unknown searchBy keys disable filtering.
	res, err = f.recordsSvc.List(ctx, ownerId, wsId.String(), &dto.ListRecordsQuery{Search: "report", SearchBy: "owner"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Pagination.Total)
}

func TestRecordAccessDeniedForNonMembers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	strangerId := f.seedUser(t, "stranger@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")

	_, err := f.recordsSvc.List(ctx, strangerId, wsId.String(), &dto.ListRecordsQuery{})
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))

	_, err = f.recordsSvc.Create(ctx, strangerId, wsId.String(), &dto.CreateRecordRequest{Title: "Sneaky"})
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
}

func TestRecordWorkspaceIsolation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	wsA := f.seedWorkspace(t, ownerId, "Alpha")
	wsB := f.seedWorkspace(t, ownerId, "Beta")

	created, err := f.recordsSvc.Create(ctx, ownerId, wsA.String(), &dto.CreateRecordRequest{Title: "Alpha doc"})
	require.NoError(t, err)

	// The same record id does not resolve through another workspace.
	_, err = f.recordsSvc.Get(ctx, ownerId, wsB.String(), created.Id.String())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	res, err := f.recordsSvc.List(ctx, ownerId, wsB.String(), &dto.ListRecordsQuery{})
	require.NoError(t, err)
	assert.Len(t, res.Records, 0)
}
