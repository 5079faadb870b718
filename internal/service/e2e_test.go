package service_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"motor_seeder/internal/catalog"
	"motor_seeder/internal/metrics"
	"motor_seeder/internal/mockapi"
	"motor_seeder/internal/models"
	"motor_seeder/internal/motorapi"
	"motor_seeder/internal/repository"
	"motor_seeder/internal/repository/db"
	"motor_seeder/internal/service"
	"motor_seeder/internal/transport"

	"github.com/gin-gonic/gin"
)

// startMockAPI serves the motor API from an in-memory database and runs its learner.
func startMockAPI(t *testing.T) string {
	t.Helper()

	conn, err := db.InitDB(":memory:")
	if err != nil {
		t.Fatalf("init sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	backend := mockapi.NewService(repository.NewRepository(conn), mockapi.Options{
		SigningKey: "e2e",
		LearnDelay: 20 * time.Millisecond,
	})
	if err := mockapi.Bootstrap(context.Background(), backend, "admin", "admin123", mockapi.DefaultDevices()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go backend.Run(ctx, 5*time.Millisecond)

	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(mockapi.NewHandler(backend, nil).InitRoutes())
	t.Cleanup(srv.Close)
	return srv.URL + "/api"
}

func runPipeline(t *testing.T, baseURL string, creds models.Credentials) (*service.Report, error) {
	t.Helper()

	rec := metrics.New()
	client, err := transport.NewClient(baseURL, transport.WithMetrics(rec), transport.WithTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	svc := service.NewService(motorapi.New(client), catalog.Default(), service.Options{
		Credentials:     creds,
		PollInterval:    10 * time.Millisecond,
		BaselineTimeout: 5 * time.Second,
		Metrics:         rec,
	})
	return service.NewPipeline(svc, nil, rec).Run(context.Background())
}

func TestPipeline_AgainstMockAPI_IsIdempotent(t *testing.T) {
	baseURL := startMockAPI(t)
	creds := models.Credentials{Username: "admin", Password: "admin123"}

	first, err := runPipeline(t, baseURL, creds)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if !first.Complete() || first.Models.Created != 2 || first.Instances.Created != 2 {
		t.Fatalf("first run report: reached=%s models=%s instances=%s", first.Reached, first.Models, first.Instances)
	}
	if first.Modes.Created != 6 || first.Mappings.Created == 0 || len(first.Warnings) != 0 {
		t.Fatalf("first run attachments: mappings=%s modes=%s warnings=%v", first.Mappings, first.Modes, first.Warnings)
	}
	for _, row := range first.Diagnosis {
		if row.HealthScore == nil {
			t.Fatalf("diagnosis without score after learning: %+v", row)
		}
	}

	second, err := runPipeline(t, baseURL, creds)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second.Complete() {
		t.Fatalf("second run reached %s", second.Reached)
	}
	if second.Models.Discovered < 1 || second.Instances.Discovered < 1 {
		t.Fatalf("second run must discover existing entities: models=%s instances=%s", second.Models, second.Instances)
	}
	if second.Models.Duplicates != 2 || second.Modes.Duplicates != 6 || second.Mappings.Created != 0 {
		t.Fatalf("second run duplicates: models=%s modes=%s mappings=%s", second.Models, second.Modes, second.Mappings)
	}
	if len(second.Verification) != 2 {
		t.Fatalf("verification rows = %d, want 2", len(second.Verification))
	}
	for _, row := range second.Verification {
		if row.Error != "" || row.Mappings == 0 || row.Modes != 3 || row.Baselines != 3 {
			t.Fatalf("unexpected verification row %+v", row)
		}
	}
}

func TestPipeline_AgainstMockAPI_WrongPasswordIsFatal(t *testing.T) {
	baseURL := startMockAPI(t)

	report, err := runPipeline(t, baseURL, models.Credentials{Username: "admin", Password: "nope"})
	if err == nil {
		t.Fatalf("expected login failure")
	}
	if report.Reached != service.StateLoggedOut {
		t.Fatalf("reached %s, want LoggedOut", report.Reached)
	}
}
