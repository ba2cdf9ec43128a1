package service

import (
	"context"
	"fmt"
	"time"

	"confidential-ledger/internal/core/domain"
	"confidential-ledger/internal/core/ports"
	"confidential-ledger/pkg/apperror"

	"github.com/google/uuid"
)

// AuthServiceImpl implements ports.AuthService. Registration mints the
// identity used by the accumulator and capability modules; the accumulator
// account itself is created lazily on first contribution.
type AuthServiceImpl struct {
	participantRepo ports.ParticipantRepository
	hashSvc         ports.HashService
	tokenSvc        ports.TokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	participantRepo ports.ParticipantRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		participantRepo: participantRepo,
		hashSvc:         hashSvc,
		tokenSvc:        tokenSvc,
	}
}

// Register creates a new participant.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password string) (*domain.Participant, error) {
	existing, err := s.participantRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check username: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrUsernameExists()
	}

	passwordHash, err := s.hashSvc.Hash(password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	p := &domain.Participant{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.participantRepo.Create(ctx, p); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create participant: %w", err))
	}

	return p, nil
}

// Login validates credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	p, err := s.participantRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find participant: %w", err))
	}
	if p == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, p.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(p.ID)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}
