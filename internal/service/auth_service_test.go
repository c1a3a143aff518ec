package service

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"testing"
	"time"

	"teamspace-be/internal/dto"
	"teamspace-be/internal/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.auth.Register(ctx, &dto.RegisterRequest{
		Email:    "  User@Example.COM ",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", res.Email)
	assert.NotEmpty(t, res.Token)

	// The token carries the user id and expires.
	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, res.Id.String(), claims["user_id"])
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	login, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "user@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	_, err = f.auth.Login(ctx, &dto.LoginRequest{Email: "user@example.com", Password: "wrong"})
	assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))

	_, err = f.auth.Login(ctx, &dto.LoginRequest{Email: "ghost@example.com", Password: "supersecret"})
	assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
}

func TestAuthRegisterConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, &dto.RegisterRequest{Email: "user@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = f.auth.Register(ctx, &dto.RegisterRequest{Email: "user@example.com", Password: "othersecret"})
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestAuthRegisterClaimsInvitedAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Owner invites someone who has never registered.
	ownerId := f.seedUser(t, "owner@example.com")
	wsId := f.seedWorkspace(t, ownerId, "Acme")
	invited, err := f.members.Invite(ctx, ownerId, wsId.String(), &dto.InviteMemberRequest{Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "pending", invited.Status)

	// Registering with the invited email claims the same account and
	// keeps the membership.
	res, err := f.auth.Register(ctx, &dto.RegisterRequest{Email: "new@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, invited.UserId, res.Id)

	me, err := f.auth.Me(ctx, res.Id)
	require.NoError(t, err)
	assert.Equal(t, "active", me.Status)

	workspaces, err := f.workspaces.List(ctx, res.Id)
	require.NoError(t, err)
	require.Len(t, workspaces, 1)
	assert.Equal(t, "editor", workspaces[0].Role)
}

func TestAuthForgotAndResetPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, &dto.RegisterRequest{Email: "user@example.com", Password: "supersecret"})
	require.NoError(t, err)

	// Unknown emails succeed silently and send nothing.
	require.NoError(t, f.auth.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "ghost@example.com"}))
	assert.Len(t, f.mail.payloads, 0)

	require.NoError(t, f.auth.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "user@example.com"}))
	require.Len(t, f.mail.payloads, 1)

	var msg dto.MailMessage
	require.NoError(t, json.Unmarshal(f.mail.payloads[0], &msg))
	assert.Equal(t, dto.MailKindPasswordReset, msg.Kind)

	// Recover the raw token from the reset URL.
	u, err := url.Parse(msg.URL)
	require.NoError(t, err)
	token := u.Query().Get("token")
	require.NotEmpty(t, token)
	assert.True(t, strings.HasPrefix(msg.URL, "http://localhost:5173/reset-password"))

	res, err := f.auth.ResetPassword(ctx, &dto.ResetPasswordRequest{Token: token, Password: "newsecret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	// The token is single use.
	_, err = f.auth.ResetPassword(ctx, &dto.ResetPasswordRequest{Token: token, Password: "again1234"})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = f.auth.Login(ctx, &dto.LoginRequest{Email: "user@example.com", Password: "supersecret"})
	assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))

	_, err = f.auth.Login(ctx, &dto.LoginRequest{Email: "user@example.com", Password: "newsecret1"})
	require.NoError(t, err)
}

func TestAuthResetPasswordRejectsBadToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Token:    "deadbeef",
		Password: "whatever1",
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestAuthMe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.auth.Register(ctx, &dto.RegisterRequest{Email: "user@example.com", Password: "supersecret"})
	require.NoError(t, err)

	me, err := f.auth.Me(ctx, res.Id)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", me.Email)
	assert.Equal(t, "active", me.Status)
}
