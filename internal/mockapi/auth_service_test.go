package mockapi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestAuthService_SignUpHashesPassword(t *testing.T) {
	repo := &mockAuthRepo{}
	svc := NewAuthService(repo, Options{})

	id, err := svc.SignUp(context.Background(), "alice", "s3cr3t")
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	u := repo.users["alice"]
	if id != 1 || u == nil {
		t.Fatalf("expected user alice with id 1, got id=%d user=%+v", id, u)
	}
	if u.PasswordHash == "s3cr3t" {
		t.Errorf("expected hashed password not equal to raw password")
	}
	if err := verifyPassword(u.PasswordHash, "s3cr3t"); err != nil {
		t.Errorf("stored hash does not verify with original password: %v", err)
	}
}

func TestAuthService_SignUpEmptyPassword(t *testing.T) {
	svc := NewAuthService(&mockAuthRepo{}, Options{})
	if _, err := svc.SignUp(context.Background(), "bob", "   "); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthService_EnsureUserIsIdempotent(t *testing.T) {
	repo := &mockAuthRepo{}
	svc := NewAuthService(repo, Options{})

	for i := 0; i < 2; i++ {
		if err := svc.EnsureUser(context.Background(), "admin", "admin123"); err != nil {
			t.Fatalf("EnsureUser #%d: %v", i+1, err)
		}
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected a single user, got %d", len(repo.users))
	}
}

func TestAuthService_GenerateAndParseToken(t *testing.T) {
	repo := &mockAuthRepo{}
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	svc := NewAuthService(repo, Options{SigningKey: "k", TokenTTL: time.Hour, Now: func() time.Time { return now }})
	if _, err := svc.SignUp(context.Background(), "admin", "admin123"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	token, err := svc.GenerateToken(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	uid, err := svc.ParseToken(token)
	if err != nil || uid != 1 {
		t.Fatalf("ParseToken = %d, %v", uid, err)
	}

	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		t.Fatalf("ParseUnverified: %v", err)
	}
	if claims.Subject != "admin" || !claims.ExpiresAt.Time.Equal(now.Add(time.Hour)) {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestAuthService_GenerateTokenFailures(t *testing.T) {
	repo := &mockAuthRepo{}
	svc := NewAuthService(repo, Options{})
	if _, err := svc.SignUp(context.Background(), "admin", "admin123"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if _, err := svc.GenerateToken(context.Background(), "ghost", "x"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.GenerateToken(context.Background(), "admin", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestAuthService_ParseTokenRejects(t *testing.T) {
	now := time.Now()
	svc := NewAuthService(&mockAuthRepo{}, Options{SigningKey: "right", Now: func() time.Time { return now }})

	other := NewAuthService(&mockAuthRepo{}, Options{SigningKey: "wrong"})
	forged, err := other.issueToken(1, "admin")
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}
	if _, err := svc.ParseToken(forged); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for a foreign key, got %v", err)
	}

	past := NewAuthService(&mockAuthRepo{}, Options{SigningKey: "right", TokenTTL: time.Minute, Now: func() time.Time { return now.Add(-time.Hour) }})
	expired, err := past.issueToken(1, "admin")
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}
	if _, err := svc.ParseToken(expired); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for an expired token, got %v", err)
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := svc.ParseToken(unsigned); err == nil {
		t.Fatalf("expected rejection of an unsigned token")
	}
}
