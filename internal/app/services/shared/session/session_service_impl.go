package session

import (
	"context"
	"fmt"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/exceptions"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
	ttl             time.Duration
}

func NewSessionService(redisRepository contracts.RedisRepository, logger *zap.Logger, ttl time.Duration) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		Log:             logger,
		ttl:             ttl,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, userID, email string) (*models.Session, error) {
	session := &models.Session{
		SessionID: uuid.NewString(),
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().UTC().Add(s.ttl),
	}

	err := s.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, s.ttl)
	if err != nil {
		s.Log.Error("sessionService.CreateSession error storing session",
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return nil, err
	}
	return session, nil
}

func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session := new(models.Session)
	found, err := s.RedisRepository.GetInto(ctx, sessionKey(sessionID), session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	return session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, sessionKey(sessionID))
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
}
