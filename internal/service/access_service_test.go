package service

import (
	"context"
	"testing"

	"teamspace-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessAuthorize(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	strangerId := f.seedUser(t, "stranger@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")

	m, err := f.access.Authorize(ctx, ownerId, wsId.String())
	require.NoError(t, err)
	assert.Equal(t, wsId, m.WorkspaceId)
	assert.Equal(t, "owner", string(m.Role))

	_, err = f.access.Authorize(ctx, strangerId, wsId.String())
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))

	// A non-existent workspace is indistinguishable from one the
	// caller cannot see.
	_, err = f.access.Authorize(ctx, ownerId, uuid.NewString())
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))

	_, err = f.access.Authorize(ctx, ownerId, "not-a-uuid")
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidIdentifier))
}
