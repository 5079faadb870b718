package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
)

// Kind tells how a response body was resolved at the transport boundary.
type Kind int

const (
	// KindBare is a 2xx JSON body used as-is.
	KindBare Kind = iota
	// KindPaginated is a 2xx {items,totalCount,pageNumber,pageSize} envelope;
	// Body holds the items value.
	KindPaginated
	// KindErrorText is a non-2xx response; Text holds the raw body.
	KindErrorText
)

func (k Kind) String() string {
	switch k {
	case KindBare:
		return "bare"
	case KindPaginated:
		return "paginated"
	case KindErrorText:
		return "error_text"
	default:
		return "unknown"
	}
}

// Page is the pagination metadata of a KindPaginated result.
type Page struct {
	TotalCount int `json:"totalCount"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// Result is a normalized response.
type Result struct {
	Status int
	Kind   Kind
	Body   json.RawMessage // normalized JSON; nil for KindErrorText
	Page   Page            // set for KindPaginated
	Text   string          // raw body for KindErrorText
}

var (
	// ErrNotSuccess is returned when decoding a non-2xx result.
	ErrNotSuccess = errors.New("transport: response is not a success")
	// ErrInvalidJSON is returned for a 2xx body that is not JSON.
	ErrInvalidJSON = errors.New("transport: invalid json body")
)

// OK reports a 2xx status.
func (r Result) OK() bool {
	return r.Status >= http.StatusOK && r.Status < http.StatusMultipleChoices
}

// Decode unmarshals the normalized body into out.
func (r Result) Decode(out any) error {
	if r.Kind == KindErrorText {
		return ErrNotSuccess
	}
	if len(r.Body) == 0 {
		return json.Unmarshal([]byte("null"), out)
	}
	return json.Unmarshal(r.Body, out)
}

// String returns the raw error text, or the normalized body as compact JSON.
func (r Result) String() string {
	if r.Kind == KindErrorText {
		return r.Text
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, r.Body); err != nil {
		return string(r.Body)
	}
	return buf.String()
}

// normalize resolves a raw body into a Result.
// Non-2xx bodies are kept as text; 2xx bodies must be JSON (or empty).
func normalize(status int, raw []byte) (Result, error) {
	res := Result{Status: status}
	if !res.OK() {
		res.Kind = KindErrorText
		res.Text = string(raw)
		return res, nil
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		res.Kind = KindBare
		res.Body = json.RawMessage("null")
		return res, nil
	}
	if !json.Valid(trimmed) {
		return res, ErrInvalidJSON
	}

	res.Kind = KindBare
	res.Body = json.RawMessage(trimmed)
	if trimmed[0] != '{' {
		return res, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return res, nil
	}
	items, ok := envelope["items"]
	if !ok {
		return res, nil
	}

	res.Kind = KindPaginated
	res.Body = items
	// Page fields are informational; a malformed value leaves them zero.
	_ = json.Unmarshal(trimmed, &res.Page)
	return res, nil
}

// ListOf decodes a list result. Error text, non-list bodies and lists that
// are not JSON arrays yield an empty slice. A bare object carrying a list
// under "data" is accepted as that list. Elements that do not decode into T
// are dropped.
func ListOf[T any](r Result) []T {
	out, _ := DecodeList[T](r)
	return out
}

// DecodeList is ListOf that also reports how many elements were dropped
// because they did not decode into T.
func DecodeList[T any](r Result) ([]T, int) {
	if r.Kind == KindErrorText || !r.OK() {
		return []T{}, 0
	}
	body := bytes.TrimSpace(r.Body)
	if len(body) > 0 && body[0] == '{' {
		var wrapped struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(body, &wrapped); err != nil {
			return []T{}, 0
		}
		body = bytes.TrimSpace(wrapped.Data)
	}
	if len(body) == 0 || body[0] != '[' {
		return []T{}, 0
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return []T{}, 0
	}
	out := make([]T, 0, len(raw))
	skipped := 0
	for _, elem := range raw {
		var v T
		if err := json.Unmarshal(elem, &v); err != nil {
			skipped++
			continue
		}
		out = append(out, v)
	}
	return out, skipped
}
