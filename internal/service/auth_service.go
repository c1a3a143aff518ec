package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"teamspace-be/internal/dto"
	"teamspace-be/internal/entity"
	"teamspace-be/internal/pkg/apperror"
	"teamspace-be/internal/pkg/logger"
	"teamspace-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL         = time.Hour
	resetTokenTTL    = 15 * time.Minute
	resetTokenLength = 32
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) (*dto.ResetPasswordResponse, error)
}

type authService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	jwtSecret        string
	clientURL        string
	logger           logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	jwtSecret string,
	clientURL string,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		jwtSecret:        jwtSecret,
		clientURL:        clientURL,
		logger:           log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil && user.HasCredential() {
		return nil, apperror.Conflict("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hash := string(hashed)

	now := time.Now()
	if user != nil {
		// Invited placeholder account claiming its credential.
		user.PasswordHash = &hash
		user.Status = entity.UserStatusActive
		user.UpdatedAt = &now
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return nil, err
		}
	} else {
		user = &entity.User{
			Id:           uuid.New(),
			Email:        email,
			PasswordHash: &hash,
			Status:       entity.UserStatusActive,
			CreatedAt:    now,
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, err
		}
	}

	token, err := s.issueToken(user.Id)
	if err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		Id:    user.Id,
		Email: user.Email,
		Token: token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	// One message for every failure mode, account existence stays
	// unobservable.
	if user == nil || !user.HasCredential() {
		return nil, apperror.Unauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	if user.Status != entity.UserStatusActive {
		user.Status = entity.UserStatusActive
		now := time.Now()
		user.UpdatedAt = &now
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return nil, err
		}
	}

	token, err := s.issueToken(user.Id)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByID(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	return &dto.MeResponse{
		Id:        user.Id,
		Email:     user.Email,
		Status:    string(user.ResolveStatus()),
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	// Always succeed so the endpoint cannot be used to probe emails.
	if user == nil {
		return nil
	}

	raw := make([]byte, resetTokenLength)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	token := hex.EncodeToString(raw)
	hash := hashResetToken(token)
	expiry := time.Now().Add(resetTokenTTL)
	now := time.Now()

	user.ResetTokenHash = &hash
	user.ResetTokenExpiresAt = &expiry
	user.UpdatedAt = &now
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return err
	}

	payload, err := json.Marshal(dto.MailMessage{
		Kind: dto.MailKindPasswordReset,
		To:   user.Email,
		URL:  fmt.Sprintf("%s/reset-password?token=%s", s.clientURL, token),
	})
	if err != nil {
		return err
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Error("AuthService", "Failed to publish reset mail", map[string]interface{}{
			"to":    user.Email,
			"error": err.Error(),
		})
	}

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) (*dto.ResetPasswordResponse, error) {
	hash := hashResetToken(strings.TrimSpace(req.Token))

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByResetTokenHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Validation("invalid or expired reset token")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	passwordHash := string(hashed)
	now := time.Now()

	user.PasswordHash = &passwordHash
	user.Status = entity.UserStatusActive
	user.ResetTokenHash = nil
	user.ResetTokenExpiresAt = nil
	user.UpdatedAt = &now
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(user.Id)
	if err != nil {
		return nil, err
	}
	return &dto.ResetPasswordResponse{Token: token}, nil
}

func (s *authService) issueToken(userId uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
