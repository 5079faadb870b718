package service

import (
	"context"
	"fmt"

	"motor_seeder/internal/logger"
	"motor_seeder/internal/models"
	"motor_seeder/internal/motorapi"
)

// tokenPreviewLen limits how much of the credential reaches the logs.
const tokenPreviewLen = 12

// AuthService performs the login stage.
type AuthService struct {
	api   MotorAPI
	creds models.Credentials
	log   *logger.Logger
}

func NewAuthService(api MotorAPI, opts Options) *AuthService {
	opts = opts.withDefaults()
	return &AuthService{api: api, creds: opts.Credentials, log: opts.Logger.Stage("login")}
}

// Login obtains the session credential. Any failure wraps ErrLoginFailed.
func (s *AuthService) Login(ctx context.Context) (motorapi.Session, error) {
	session, err := s.api.Login(ctx, s.creds)
	if err != nil {
		return motorapi.Session{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	fields := []interface{}{"username", s.creds.Username, "token", previewToken(session.Token)}
	if session.Subject != "" {
		fields = append(fields, "subject", session.Subject)
	}
	if !session.ExpiresAt.IsZero() {
		fields = append(fields, "expires_at", session.ExpiresAt.UTC())
	}
	s.log.Infow("token_obtained", fields...)
	return session, nil
}

func previewToken(token string) string {
	if len(token) <= tokenPreviewLen {
		return token
	}
	return token[:tokenPreviewLen] + "..."
}
