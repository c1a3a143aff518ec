package service

import (
	"context"
	"encoding/json"
	"testing"

	"teamspace-be/internal/dto"
	"teamspace-be/internal/entity"
	"teamspace-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberInviteCreatesPendingUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")

	res, err := f.members.Invite(ctx, ownerId, wsId.String(), &dto.InviteMemberRequest{
		Email: "  New.Person@Example.COM ",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", res.Status)
	assert.False(t, res.AlreadyMember)

	// Email was normalized before the account was created.
	u, err := f.shared.Users.FindByEmail(ctx, "new.person@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.False(t, u.HasCredential())

	// Invite mail went out on the bus.
	require.Len(t, f.mail.payloads, 1)
	var msg dto.MailMessage
	require.NoError(t, json.Unmarshal(f.mail.payloads[0], &msg))
	assert.Equal(t, dto.MailKindInvite, msg.Kind)
	assert.Equal(t, "new.person@example.com", msg.To)
	assert.Equal(t, "Acme", msg.WorkspaceName)

	list, err := f.members.List(ctx, ownerId, wsId.String())
	require.NoError(t, err)
	require.Len(t, list.Members, 2)
}

func TestMemberInviteExistingUserIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	otherId := f.seedUser(t, "other@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")

	res, err := f.members.Invite(ctx, ownerId, wsId.String(), &dto.InviteMemberRequest{Email: "other@example.com"})
	require.NoError(t, err)
	assert.Equal(t, otherId, res.UserId)
	assert.Equal(t, "active", res.Status)
	assert.False(t, res.AlreadyMember)

	res, err = f.members.Invite(ctx, ownerId, wsId.String(), &dto.InviteMemberRequest{Email: "other@example.com"})
	require.NoError(t, err)
	assert.True(t, res.AlreadyMember)

	list, err := f.members.List(ctx, ownerId, wsId.String())
	require.NoError(t, err)
	assert.Len(t, list.Members, 2)
}

func TestMemberInviteOwnerOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	editorId := f.seedUser(t, "editor@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")
	f.seedMember(t, wsId, editorId, entity.MemberRoleEditor)

	_, err := f.members.Invite(ctx, editorId, wsId.String(), &dto.InviteMemberRequest{Email: "x@example.com"})
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
}

func TestMemberListHydratesUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	editorId := f.seedUser(t, "editor@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")
	f.seedMember(t, wsId, editorId, entity.MemberRoleEditor)

	list, err := f.members.List(ctx, editorId, wsId.String())
	require.NoError(t, err)
	assert.Equal(t, editorId, list.CurrentUserId)
	assert.Equal(t, "editor", list.CurrentUserRole)
	require.Len(t, list.Members, 2)

	byEmail := map[string]*dto.MemberResponse{}
	for _, m := range list.Members {
		byEmail[m.Email] = m
	}
	assert.Equal(t, "owner", byEmail["owner@example.com"].Role)
	assert.Equal(t, "active", byEmail["owner@example.com"].Status)
	assert.Equal(t, "editor", byEmail["editor@example.com"].Role)
}

func TestMemberRemove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	editorId := f.seedUser(t, "editor@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")
	f.seedMember(t, wsId, editorId, entity.MemberRoleEditor)

	require.NoError(t, f.members.Remove(ctx, ownerId, wsId.String(), editorId.String()))

	// Removed members lose access entirely.
	_, err := f.members.List(ctx, editorId, wsId.String())
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))

	err = f.members.Remove(ctx, ownerId, wsId.String(), editorId.String())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	err = f.members.Remove(ctx, ownerId, wsId.String(), uuid.NewString())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestMemberRemoveSelfRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")

	err := f.members.Remove(ctx, ownerId, wsId.String(), ownerId.String())
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestMemberRemoveOwnerOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	editorId := f.seedUser(t, "editor@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")
	f.seedMember(t, wsId, editorId, entity.MemberRoleEditor)

	err := f.members.Remove(ctx, editorId, wsId.String(), ownerId.String())
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
}

func TestMemberPromoteOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ownerId := f.seedUser(t, "owner@example.com")
	editorId := f.seedUser(t, "editor@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")
	f.seedMember(t, wsId, editorId, entity.MemberRoleEditor)

	require.NoError(t, f.members.PromoteOwner(ctx, ownerId, wsId.String(), editorId.String()))

	list, err := f.members.List(ctx, editorId, wsId.String())
	require.NoError(t, err)
	assert.Equal(t, "owner", list.CurrentUserRole)

	// Promoting an owner again is a no-op.
	require.NoError(t, f.members.PromoteOwner(ctx, ownerId, wsId.String(), editorId.String()))

	err = f.members.PromoteOwner(ctx, ownerId, wsId.String(), uuid.NewString())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
