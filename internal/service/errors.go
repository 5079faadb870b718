package service

import (
	"errors"
	"net/http"
	"strings"

	"motor_seeder/internal/transport"
)

var (
	// ErrLoginFailed aborts the run; every later stage needs the credential.
	ErrLoginFailed = errors.New("login failed")
	// ErrNoModels aborts the run; instances cannot reference a model.
	ErrNoModels = errors.New("no motor models available after create-or-discover")
	// ErrBaselineTimeout signals that learning did not finish within the poll budget.
	ErrBaselineTimeout = errors.New("baseline learning did not complete in time")
	// ErrInvalidTransition is returned when a state is skipped or repeated.
	ErrInvalidTransition = errors.New("invalid pipeline transition")
)

// IsDuplicate reports a create rejected because the entity already exists:
// 409, or 400/422 whose body says so.
func IsDuplicate(res transport.Result) bool {
	switch res.Status {
	case http.StatusConflict:
		return true
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		text := strings.ToLower(res.Text)
		return strings.Contains(text, "exist") || strings.Contains(text, "duplicate")
	default:
		return false
	}
}
