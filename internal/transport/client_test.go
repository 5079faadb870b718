package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClient_EmptyBaseURL(t *testing.T) {
	if _, err := NewClient("  "); err == nil {
		t.Fatalf("expected error for empty base url")
	}
}

func TestClient_Request_SetsHeadersAndBody(t *testing.T) {
	var (
		gotAuth, gotCT, gotReqID, gotPath, gotMethod string
		gotBody                                      string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		gotReqID = r.Header.Get("X-Request-ID")
		gotPath = r.URL.Path
		gotMethod = r.Method
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"modelId":"m-1"}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL + "/api/")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	res, err := c.Request(context.Background(), http.MethodPost, "/motor-models", map[string]any{"name": "A"}, "abc")
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if res.Status != http.StatusCreated || res.Kind != KindBare {
		t.Fatalf("unexpected result %+v", res)
	}
	if gotAuth != "Bearer abc" {
		t.Fatalf("Authorization = %q, want Bearer abc", gotAuth)
	}
	if gotCT != "application/json" {
		t.Fatalf("Content-Type = %q", gotCT)
	}
	if gotReqID == "" {
		t.Fatalf("expected X-Request-ID header")
	}
	if gotMethod != http.MethodPost || gotPath != "/api/motor-models" {
		t.Fatalf("request = %s %s", gotMethod, gotPath)
	}
	if gotBody != `{"name":"A"}` {
		t.Fatalf("body = %q", gotBody)
	}
}

func TestClient_Request_NoCredentialNoBody(t *testing.T) {
	var hasAuth bool
	var bodyLen int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		b, _ := io.ReadAll(r.Body)
		bodyLen = len(b)
		_, _ = w.Write([]byte(`{"items":[],"totalCount":0,"pageNumber":1,"pageSize":20}`))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)
	res, err := c.Request(context.Background(), http.MethodGet, "/motor-models", nil, "")
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if hasAuth {
		t.Fatalf("expected no Authorization header without credential")
	}
	if bodyLen != 0 {
		t.Fatalf("expected empty body, got %d bytes", bodyLen)
	}
	if res.Kind != KindPaginated || string(res.Body) != "[]" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestClient_Request_ErrorStatusReturnsRawText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"items":["not unwrapped"]}`))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)
	res, err := c.Request(context.Background(), http.MethodPost, "/motor-models", struct{}{}, "t")
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if res.Kind != KindErrorText || res.Status != http.StatusConflict {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Text != `{"items":["not unwrapped"]}` {
		t.Fatalf("text = %q", res.Text)
	}
}

type failingDoer struct{ calls int }

func (f *failingDoer) Do(*http.Request) (*http.Response, error) {
	f.calls++
	return nil, errors.New("connection refused")
}

func TestClient_Request_TransportFailureIsNotRetried(t *testing.T) {
	d := &failingDoer{}
	c, _ := NewClient("http://motors.invalid", WithDoer(d))
	_, err := c.Request(context.Background(), http.MethodGet, "/motor-models", nil, "")
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected transport error, got %v", err)
	}
	if d.calls != 1 {
		t.Fatalf("expected exactly one attempt, got %d", d.calls)
	}
}
