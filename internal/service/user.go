package service

import (
	"bopLand/internal/auth"
	"bopLand/internal/domain"
	"bopLand/internal/logger"
	"bopLand/internal/metrics"
	"bopLand/internal/storage"
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/rs/zerolog/log"
)

// Register регистрирует пользователя; пароль сохраняется только как bcrypt хэш
func (s *Service) Register(outerCtx context.Context, input *domain.RegisterInput) (*domain.User, error) {
	requestID := logger.GetRequestID(outerCtx)

	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" {
		return nil, invalidInput("nome is required")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, invalidInput("email is invalid")
	}
	if input.Password == "" {
		return nil, invalidInput("senha is required")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, s.formatError(outerCtx, opRegister, err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	err = s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		return tx.UserRepo().Create(ctx, user)
	})
	if err != nil {
		return nil, s.formatError(outerCtx, opRegister, err)
	}

	metrics.UserRegisteredTotal.Inc()

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("user_id", user.ID).
		Msg("user registered")

	return user, nil
}

// Login проверяет email и пароль и выдаёт access token
func (s *Service) Login(outerCtx context.Context, input *domain.LoginInput) (*domain.LoginResult, error) {
	requestID := logger.GetRequestID(outerCtx)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var user *domain.User
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		user, err = tx.UserRepo().GetByEmail(ctx, email)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, s.formatError(outerCtx, opLogin, err)
	}

	if err := auth.CheckPassword(user.PasswordHash, input.Password); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
		if errors.Is(err, auth.ErrPasswordMismatch) {
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "service").
				Int64("user_id", user.ID).
				Msg("login rejected")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, s.formatError(outerCtx, opLogin, err)
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, s.formatError(outerCtx, opLogin, err)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("user_id", user.ID).
		Msg("user logged in")

	return &domain.LoginResult{AccessToken: token, ExpiresAt: expiresAt}, nil
}

// WhoAmI возвращает пользователя из токена
func (s *Service) WhoAmI(outerCtx context.Context, userID int64) (*domain.User, error) {
	var user *domain.User

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		user, err = tx.UserRepo().GetByID(ctx, userID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, opWhoAmI, err)
	}

	return user, nil
}
