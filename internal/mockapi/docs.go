package mockapi

import "github.com/swaggo/swag"

// apiDocTemplate lists the mock endpoints served at /swagger. Keep it in
// step with the @Router annotations on the handlers.
const apiDocTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/sign-up": {"post": {"tags": ["auth"], "summary": "Register a user", "responses": {"201": {"description": "id"}, "409": {"description": "user exists"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Issue a bearer token", "responses": {"200": {"description": "{data:{token}}"}, "401": {"description": "invalid credentials"}}}},
        "/motor-models": {
            "get": {"tags": ["motors"], "summary": "List motor models", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "paginated models"}}},
            "post": {"tags": ["motors"], "summary": "Create a motor model", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "created model"}, "409": {"description": "duplicate name"}}}
        },
        "/devices": {"get": {"tags": ["motors"], "summary": "List registered devices", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "{data:[...]}"}}}},
        "/motor-instances": {
            "get": {"tags": ["instances"], "summary": "List motor instances", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "paginated instances"}}},
            "post": {"tags": ["instances"], "summary": "Create a motor instance", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "created instance"}, "404": {"description": "unknown model"}, "409": {"description": "duplicate instance"}}}
        },
        "/motor-instances/{id}/mappings/batch": {"post": {"tags": ["instances"], "summary": "Attach parameter mappings", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "{created}"}}}},
        "/motor-instances/{id}/modes": {"post": {"tags": ["instances"], "summary": "Create an operation mode", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "created mode"}, "409": {"description": "duplicate mode"}}}},
        "/motor-instances/{id}/learn-all": {"post": {"tags": ["learning"], "summary": "Queue baseline learning", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "queued baselines"}}}},
        "/motor-instances/{id}/detail": {"get": {"tags": ["instances"], "summary": "Instance detail", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "model, mappings, modes, baselineCount"}}}},
        "/motor-instances/{id}/diagnose": {"post": {"tags": ["learning"], "summary": "Run a diagnosis", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "{healthScore}"}, "400": {"description": "no baseline yet"}}}}
    }
}`

// APIDoc describes the mock API for the swagger UI.
var APIDoc = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Motor diagnostics mock API",
	Description:      "Local stand-in for the motor diagnostics service used by the seeder.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  apiDocTemplate,
}

func init() {
	swag.Register(APIDoc.InstanceName(), APIDoc)
}
