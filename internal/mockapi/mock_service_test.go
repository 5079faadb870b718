package mockapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"motor_seeder/internal/models"
	"motor_seeder/internal/repository"
	"motor_seeder/internal/repository/db"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastGenUsername string
	lastGenPassword string
	lastParseToken  string
}

func (m *mockAuth) SignUp(context.Context, string, string) (int, error) { return 1, nil }
func (m *mockAuth) EnsureUser(context.Context, string, string) error    { return nil }
func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// mockAuthRepo is a lightweight in-test mock for repository.Authorization.
type mockAuthRepo struct {
	users  map[string]*models.User
	nextID int
}

func (m *mockAuthRepo) Create(_ context.Context, username, hash string) (int, error) {
	if m.users == nil {
		m.users = map[string]*models.User{}
	}
	if _, ok := m.users[username]; ok {
		return 0, repository.ErrDuplicate
	}
	m.nextID++
	m.users[username] = &models.User{ID: m.nextID, Username: username, PasswordHash: hash}
	return m.nextID, nil
}

func (m *mockAuthRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return m.users[username], nil
}

// ---- Shared Test Helpers ----

// fixedClock is a settable clock shared by the backend under test.
type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time          { return c.t }
func (c *fixedClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// newTestBackend wires the real backend over an in-memory database.
func newTestBackend(t *testing.T, clock *fixedClock) (*Service, *gin.Engine) {
	t.Helper()

	conn, err := db.InitDB(":memory:")
	if err != nil {
		t.Fatalf("init sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	opts := Options{SigningKey: "test-key", LearnDelay: 2 * time.Second}
	if clock != nil {
		opts.Now = clock.Now
	}
	svc := NewService(repository.NewRepository(conn), opts)
	if err := Bootstrap(context.Background(), svc, "admin", "admin123", DefaultDevices()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	gin.SetMode(gin.TestMode)
	return svc, NewHandler(svc, nil).InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
