package service

import (
	"context"
	"net/http"
	"testing"

	"motor_seeder/internal/models"
	"motor_seeder/internal/transport"
)

func TestVerify_ReportsDetailCounts(t *testing.T) {
	f := &fakeAPI{
		listInstances: func() (transport.Result, error) {
			return transport.Result{
				Status: http.StatusOK,
				Kind:   transport.KindPaginated,
				Body:   []byte(`[{"instanceId":"i-1","name":"One"},{"instanceId":"i-2","name":"Two"}]`),
			}, nil
		},
		detail: func(id string) (transport.Result, error) {
			if id == "i-2" {
				return errorResult(http.StatusNotFound, "instance not found"), nil
			}
			return jsonResult(http.StatusOK, models.InstanceDetail{
				Model:         &models.MotorModel{Name: "Standard Induction Motor 15kW"},
				Mappings:      make([]models.ParameterMapping, 5),
				Modes:         make([]models.OperationMode, 3),
				BaselineCount: 4,
			}), nil
		},
	}
	svc := NewVerificationService(f, testOptions())

	instances, rows, err := svc.Verify(context.Background())
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if len(instances) != 2 || len(rows) != 2 {
		t.Fatalf("instances=%d rows=%d", len(instances), len(rows))
	}
	want := VerificationRow{Instance: "One", ModelName: "Standard Induction Motor 15kW", Mappings: 5, Modes: 3, Baselines: 4}
	if rows[0] != want {
		t.Fatalf("row = %+v, want %+v", rows[0], want)
	}
	if rows[1].Error != "instance not found" || rows[1].ModelName != "N/A" {
		t.Fatalf("failed detail row = %+v", rows[1])
	}
}

func TestVerify_ErrorListIsEmpty(t *testing.T) {
	f := &fakeAPI{
		listInstances: func() (transport.Result, error) {
			return errorResult(http.StatusUnauthorized, "unauthorized"), nil
		},
	}
	svc := NewVerificationService(f, testOptions())

	instances, rows, err := svc.Verify(context.Background())
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if len(instances) != 0 || len(rows) != 0 {
		t.Fatalf("expected empty verification, got %d/%d", len(instances), len(rows))
	}
}

func TestDiagnose_ScoreOrRawBody(t *testing.T) {
	f := &fakeAPI{
		diagnose: func(id string) (transport.Result, error) {
			switch id {
			case "i-1":
				score := 88.25
				return jsonResult(http.StatusOK, models.DiagnosisResult{HealthScore: &score}), nil
			case "i-2":
				return jsonResult(http.StatusOK, map[string]any{}), nil
			default:
				return errorResult(http.StatusBadRequest, "no baseline for instance"), nil
			}
		},
	}
	svc := NewVerificationService(f, testOptions())

	rows, err := svc.Diagnose(context.Background(), seededInstances())
	if err != nil {
		t.Fatalf("Diagnose() error = %v", err)
	}
	if rows[0].Score() != "88.2" && rows[0].Score() != "88.3" {
		t.Fatalf("score = %q", rows[0].Score())
	}
	if rows[1].Score() != "N/A" || rows[1].Error != "" {
		t.Fatalf("missing score row = %+v", rows[1])
	}
	if rows[2].Error != "no baseline for instance" {
		t.Fatalf("failed diagnosis row = %+v", rows[2])
	}
}
