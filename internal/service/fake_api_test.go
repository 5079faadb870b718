package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"motor_seeder/internal/models"
	"motor_seeder/internal/motorapi"
	"motor_seeder/internal/transport"
)

// fakeAPI is a scriptable MotorAPI. Unset hooks answer with success.
type fakeAPI struct {
	calls []string

	login          func(creds models.Credentials) (motorapi.Session, error)
	createModel    func(m models.MotorModel) (transport.Result, error)
	listModels     func() (transport.Result, error)
	listDevices    func() (transport.Result, error)
	createInstance func(i models.MotorInstance) (transport.Result, error)
	listInstances  func() (transport.Result, error)
	attachMappings func(id string, m []models.ParameterMapping) (transport.Result, error)
	createMode     func(id string, m models.OperationMode) (transport.Result, error)
	startLearning  func(id string, w models.LearningWindow) (transport.Result, error)
	detail         func(id string) (transport.Result, error)
	diagnose       func(id string) (transport.Result, error)

	windows []models.LearningWindow
	modes   []string
}

var _ MotorAPI = (*fakeAPI)(nil)

func jsonResult(status int, v any) transport.Result {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return transport.Result{Status: status, Kind: transport.KindBare, Body: b}
}

func errorResult(status int, text string) transport.Result {
	return transport.Result{Status: status, Kind: transport.KindErrorText, Text: text}
}

func (f *fakeAPI) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeAPI) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeAPI) Login(_ context.Context, creds models.Credentials) (motorapi.Session, error) {
	f.record("POST /auth/login")
	if f.login != nil {
		return f.login(creds)
	}
	return motorapi.Session{Token: "abc"}, nil
}

func (f *fakeAPI) CreateModel(_ context.Context, m models.MotorModel) (transport.Result, error) {
	f.record("POST /motor-models")
	if f.createModel != nil {
		return f.createModel(m)
	}
	m.ModelID = "m-" + m.Name
	return jsonResult(http.StatusCreated, m), nil
}

func (f *fakeAPI) ListModels(context.Context) (transport.Result, error) {
	f.record("GET /motor-models")
	if f.listModels != nil {
		return f.listModels()
	}
	return jsonResult(http.StatusOK, []models.MotorModel{}), nil
}

func (f *fakeAPI) ListDevices(context.Context) (transport.Result, error) {
	f.record("GET /devices")
	if f.listDevices != nil {
		return f.listDevices()
	}
	return jsonResult(http.StatusOK, map[string]any{"data": []models.Device{{DeviceID: "Motor-001", Name: "PLC"}}}), nil
}

func (f *fakeAPI) CreateInstance(_ context.Context, i models.MotorInstance) (transport.Result, error) {
	f.record("POST /motor-instances")
	if f.createInstance != nil {
		return f.createInstance(i)
	}
	i.InstanceID = "i-" + i.DeviceID
	return jsonResult(http.StatusCreated, i), nil
}

func (f *fakeAPI) ListInstances(context.Context) (transport.Result, error) {
	f.record("GET /motor-instances")
	if f.listInstances != nil {
		return f.listInstances()
	}
	return jsonResult(http.StatusOK, []models.MotorInstance{}), nil
}

func (f *fakeAPI) AttachMappings(_ context.Context, id string, m []models.ParameterMapping) (transport.Result, error) {
	f.record("POST /motor-instances/%s/mappings/batch", id)
	if f.attachMappings != nil {
		return f.attachMappings(id, m)
	}
	return jsonResult(http.StatusOK, models.BatchResult{Created: len(m)}), nil
}

func (f *fakeAPI) CreateMode(_ context.Context, id string, m models.OperationMode) (transport.Result, error) {
	f.record("POST /motor-instances/%s/modes", id)
	f.modes = append(f.modes, m.Name)
	if f.createMode != nil {
		return f.createMode(id, m)
	}
	return jsonResult(http.StatusCreated, m), nil
}

func (f *fakeAPI) StartLearning(_ context.Context, id string, w models.LearningWindow) (transport.Result, error) {
	f.record("POST /motor-instances/%s/learn-all", id)
	f.windows = append(f.windows, w)
	if f.startLearning != nil {
		return f.startLearning(id, w)
	}
	return jsonResult(http.StatusOK, map[string]any{"started": true}), nil
}

func (f *fakeAPI) Detail(_ context.Context, id string) (transport.Result, error) {
	f.record("GET /motor-instances/%s/detail", id)
	if f.detail != nil {
		return f.detail(id)
	}
	return jsonResult(http.StatusOK, models.InstanceDetail{BaselineCount: 1}), nil
}

func (f *fakeAPI) Diagnose(_ context.Context, id string) (transport.Result, error) {
	f.record("POST /motor-instances/%s/diagnose", id)
	if f.diagnose != nil {
		return f.diagnose(id)
	}
	score := 97.5
	return jsonResult(http.StatusOK, models.DiagnosisResult{HealthScore: &score}), nil
}
