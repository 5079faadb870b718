package motorapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"motor_seeder/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoToken is returned when the login reply carries no token.
var ErrNoToken = errors.New("motorapi: login response has no token")

// Session holds the bearer credential obtained at login.
type Session struct {
	Token string

	// Subject and ExpiresAt are read from the token when it is a JWT.
	// The signature is not verified; the remote system owns that.
	Subject   string
	ExpiresAt time.Time
}

type loginResponse struct {
	Data struct {
		Token string `json:"token"`
	} `json:"data"`
}

// Login authenticates and stores the session on the API.
func (a *API) Login(ctx context.Context, creds models.Credentials) (Session, error) {
	res, err := a.rq.Request(ctx, http.MethodPost, pathLogin, creds, "")
	if err != nil {
		return Session{}, err
	}
	if !res.OK() {
		return Session{}, fmt.Errorf("motorapi: login status %d: %s", res.Status, res.String())
	}

	var out loginResponse
	if err := res.Decode(&out); err != nil {
		return Session{}, fmt.Errorf("motorapi: decode login: %w", err)
	}
	if out.Data.Token == "" {
		return Session{}, ErrNoToken
	}

	a.session = inspectToken(out.Data.Token)
	return a.session, nil
}

// inspectToken fills Subject/ExpiresAt for JWTs; opaque tokens pass through.
func inspectToken(token string) Session {
	s := Session{Token: token}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return s
	}
	if sub, err := claims.GetSubject(); err == nil {
		s.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time
	}
	return s
}
