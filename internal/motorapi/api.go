package motorapi

import (
	"context"
	"net/http"
	"net/url"

	"motor_seeder/internal/models"
	"motor_seeder/internal/transport"
)

// Requester is the transport contract the API is built on.
type Requester interface {
	Request(ctx context.Context, method, path string, body any, credential string) (transport.Result, error)
}

// Endpoint paths relative to the API base address.
const (
	pathLogin     = "/auth/login"
	pathModels    = "/motor-models"
	pathDevices   = "/devices"
	pathInstances = "/motor-instances"
)

// API issues the motor-diagnostics calls. After Login every call carries
// the session credential.
type API struct {
	rq      Requester
	session Session
}

// New constructs an API over a requester.
func New(rq Requester) *API {
	return &API{rq: rq}
}

// Session returns the current session.
func (a *API) Session() Session {
	return a.session
}

func (a *API) do(ctx context.Context, method, path string, body any) (transport.Result, error) {
	return a.rq.Request(ctx, method, path, body, a.session.Token)
}

func instancePath(instanceID, suffix string) string {
	return pathInstances + "/" + url.PathEscape(instanceID) + suffix
}

// CreateModel posts a motor model.
func (a *API) CreateModel(ctx context.Context, m models.MotorModel) (transport.Result, error) {
	return a.do(ctx, http.MethodPost, pathModels, m)
}

// ListModels fetches the motor model collection.
func (a *API) ListModels(ctx context.Context) (transport.Result, error) {
	return a.do(ctx, http.MethodGet, pathModels, nil)
}

// ListDevices fetches the device collection.
func (a *API) ListDevices(ctx context.Context) (transport.Result, error) {
	return a.do(ctx, http.MethodGet, pathDevices, nil)
}

// CreateInstance posts a motor instance.
func (a *API) CreateInstance(ctx context.Context, inst models.MotorInstance) (transport.Result, error) {
	return a.do(ctx, http.MethodPost, pathInstances, inst)
}

// ListInstances fetches the motor instance collection.
func (a *API) ListInstances(ctx context.Context) (transport.Result, error) {
	return a.do(ctx, http.MethodGet, pathInstances, nil)
}

// AttachMappings submits all parameter mappings of an instance as one batch.
func (a *API) AttachMappings(ctx context.Context, instanceID string, mappings []models.ParameterMapping) (transport.Result, error) {
	return a.do(ctx, http.MethodPost, instancePath(instanceID, "/mappings/batch"), mappings)
}

// CreateMode posts one operation mode for an instance.
func (a *API) CreateMode(ctx context.Context, instanceID string, mode models.OperationMode) (transport.Result, error) {
	return a.do(ctx, http.MethodPost, instancePath(instanceID, "/modes"), mode)
}

// StartLearning starts baseline learning over the window.
func (a *API) StartLearning(ctx context.Context, instanceID string, w models.LearningWindow) (transport.Result, error) {
	return a.do(ctx, http.MethodPost, instancePath(instanceID, "/learn-all"), w)
}

// Detail fetches the aggregated instance view.
func (a *API) Detail(ctx context.Context, instanceID string) (transport.Result, error) {
	return a.do(ctx, http.MethodGet, instancePath(instanceID, "/detail"), nil)
}

// Diagnose requests a diagnosis for an instance.
func (a *API) Diagnose(ctx context.Context, instanceID string) (transport.Result, error) {
	return a.do(ctx, http.MethodPost, instancePath(instanceID, "/diagnose"), struct{}{})
}
