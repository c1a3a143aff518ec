package service

import (
	"context"
	"testing"

	"teamspace-be/internal/dto"
	"teamspace-be/internal/entity"
	"teamspace-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceCreateGrantsOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	userId := f.seedUser(t, "owner@example.com")

	created, err := f.workspaces.Create(ctx, userId, &dto.CreateWorkspaceRequest{Name: "  Acme  "})
	require.NoError(t, err)

	ws, err := f.workspaces.Get(ctx, userId, created.Id.String())
	require.NoError(t, err)
	assert.Equal(t, "Acme", ws.Name)
	assert.Equal(t, "owner", ws.Role)
}

func TestWorkspaceCreateRequiresName(t *testing.T) {
	f := newFixture(t)
	userId := f.seedUser(t, "owner@example.com")

	_, err := f.workspaces.Create(context.Background(), userId, &dto.CreateWorkspaceRequest{Name: "   "})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestWorkspaceListAnnotatesRoles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	editorId := f.seedUser(t, "editor@example.com")

	wsId := f.seedWorkspace(t, ownerId, "Acme")
	f.seedMember(t, wsId, editorId, entity.MemberRoleEditor)
	f.seedWorkspace(t, editorId, "Side Project")

	owned, err := f.workspaces.List(ctx, ownerId)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "owner", owned[0].Role)

	joined, err := f.workspaces.List(ctx, editorId)
	require.NoError(t, err)
	require.Len(t, joined, 2)

	roles := map[string]string{}
	for _, w := range joined {
		roles[w.Name] = w.Role
	}
	assert.Equal(t, "editor", roles["Acme"])
	assert.Equal(t, "owner", roles["Side Project"])
}

func TestWorkspaceUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	editorId := f.seedUser(t, "editor@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")
	f.seedMember(t, wsId, editorId, entity.MemberRoleEditor)

	// Editors may rename; blank names are ignored but still stamp.
	require.NoError(t, f.workspaces.Update(ctx, editorId, wsId.String(), &dto.UpdateWorkspaceRequest{Name: "Acme Corp"}))

	ws, err := f.workspaces.Get(ctx, ownerId, wsId.String())
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", ws.Name)
	assert.NotNil(t, ws.UpdatedAt)

	require.NoError(t, f.workspaces.Update(ctx, ownerId, wsId.String(), &dto.UpdateWorkspaceRequest{Name: "   "}))
	ws, err = f.workspaces.Get(ctx, ownerId, wsId.String())
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", ws.Name)
}

func TestWorkspaceDeleteRequiresConfirmationName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")

	err := f.workspaces.Delete(ctx, ownerId, wsId.String(), &dto.DeleteWorkspaceRequest{ConfirmationName: "acme"})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	// Mismatch leaves everything intact.
	ws, err := f.workspaces.Get(ctx, ownerId, wsId.String())
	require.NoError(t, err)
	assert.Equal(t, "Acme", ws.Name)

	require.NoError(t, f.workspaces.Delete(ctx, ownerId, wsId.String(), &dto.DeleteWorkspaceRequest{ConfirmationName: "Acme"}))

	_, err = f.workspaces.Get(ctx, ownerId, wsId.String())
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))

	list, err := f.workspaces.List(ctx, ownerId)
	require.NoError(t, err)
	assert.Len(t, list, 0)
}

func TestWorkspaceDeleteOwnerOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	editorId := f.seedUser(t, "editor@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")
	f.seedMember(t, wsId, editorId, entity.MemberRoleEditor)

	err := f.workspaces.Delete(ctx, editorId, wsId.String(), &dto.DeleteWorkspaceRequest{ConfirmationName: "Acme"})
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
}

func TestWorkspaceGetDeniedForNonMembers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	strangerId := f.seedUser(t, "stranger@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")

	_, err := f.workspaces.Get(ctx, strangerId, wsId.String())
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
}
