package transport

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		raw      string
		wantKind Kind
		wantBody string
		wantText string
		wantPage Page
	}{
		{
			name:     "paginated envelope unwraps items",
			status:   200,
			raw:      `{"items":[{"modelId":"m1"}],"totalCount":1,"pageNumber":1,"pageSize":20}`,
			wantKind: KindPaginated,
			wantBody: `[{"modelId":"m1"}]`,
			wantPage: Page{TotalCount: 1, PageNumber: 1, PageSize: 20},
		},
		{
			name:     "items alone is enough to unwrap",
			status:   200,
			raw:      `{"items":{"nested":true}}`,
			wantKind: KindPaginated,
			wantBody: `{"nested":true}`,
		},
		{
			name:     "bare object kept unchanged",
			status:   201,
			raw:      `{"modelId":"m1","name":"A"}`,
			wantKind: KindBare,
			wantBody: `{"modelId":"m1","name":"A"}`,
		},
		{
			name:     "bare list kept unchanged",
			status:   200,
			raw:      ` [1,2,3] `,
			wantKind: KindBare,
			wantBody: `[1,2,3]`,
		},
		{
			name:     "empty 2xx body is null",
			status:   204,
			raw:      ``,
			wantKind: KindBare,
			wantBody: `null`,
		},
		{
			name:     "error status keeps raw text",
			status:   409,
			raw:      `{"error":"model already exists"}`,
			wantKind: KindErrorText,
			wantText: `{"error":"model already exists"}`,
		},
		{
			name:     "error status with non-json text",
			status:   500,
			raw:      `upstream exploded`,
			wantKind: KindErrorText,
			wantText: `upstream exploded`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalize(tc.status, []byte(tc.raw))
			if err != nil {
				t.Fatalf("normalize() error = %v", err)
			}
			if got.Kind != tc.wantKind {
				t.Fatalf("kind = %v, want %v", got.Kind, tc.wantKind)
			}
			if got.Status != tc.status {
				t.Fatalf("status = %d, want %d", got.Status, tc.status)
			}
			if string(got.Body) != tc.wantBody {
				t.Fatalf("body = %s, want %s", got.Body, tc.wantBody)
			}
			if got.Text != tc.wantText {
				t.Fatalf("text = %q, want %q", got.Text, tc.wantText)
			}
			if got.Page != tc.wantPage {
				t.Fatalf("page = %+v, want %+v", got.Page, tc.wantPage)
			}
		})
	}
}

func TestNormalize_InvalidJSONOnSuccess(t *testing.T) {
	_, err := normalize(200, []byte("<html>"))
	if !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}
}

func TestResult_DecodeAndString(t *testing.T) {
	res, err := normalize(200, []byte(`{ "created": 4 }`))
	if err != nil {
		t.Fatalf("normalize() error = %v", err)
	}
	var out struct {
		Created int `json:"created"`
	}
	if err := res.Decode(&out); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if out.Created != 4 {
		t.Fatalf("created = %d, want 4", out.Created)
	}
	if res.String() != `{"created":4}` {
		t.Fatalf("String() = %q", res.String())
	}

	errRes, _ := normalize(400, []byte("bad things"))
	if err := errRes.Decode(&out); !errors.Is(err, ErrNotSuccess) {
		t.Fatalf("expected ErrNotSuccess, got %v", err)
	}
	if errRes.String() != "bad things" {
		t.Fatalf("String() = %q, want raw text", errRes.String())
	}
}

type item struct {
	ID string `json:"id"`
}

func TestListOf(t *testing.T) {
	cases := []struct {
		name string
		res  Result
		want []item
	}{
		{
			name: "plain list",
			res:  Result{Status: 200, Kind: KindBare, Body: json.RawMessage(`[{"id":"a"},{"id":"b"}]`)},
			want: []item{{ID: "a"}, {ID: "b"}},
		},
		{
			name: "unwrapped page",
			res:  Result{Status: 200, Kind: KindPaginated, Body: json.RawMessage(`[{"id":"a"}]`)},
			want: []item{{ID: "a"}},
		},
		{
			name: "data envelope",
			res:  Result{Status: 200, Kind: KindBare, Body: json.RawMessage(`{"data":[{"id":"d"}]}`)},
			want: []item{{ID: "d"}},
		},
		{
			name: "data envelope with non-list",
			res:  Result{Status: 200, Kind: KindBare, Body: json.RawMessage(`{"data":{"id":"d"}}`)},
			want: []item{},
		},
		{
			name: "object without data",
			res:  Result{Status: 200, Kind: KindBare, Body: json.RawMessage(`{"id":"x"}`)},
			want: []item{},
		},
		{
			name: "error text",
			res:  Result{Status: 500, Kind: KindErrorText, Text: "boom"},
			want: []item{},
		},
		{
			name: "null",
			res:  Result{Status: 200, Kind: KindBare, Body: json.RawMessage(`null`)},
			want: []item{},
		},
		{
			name: "malformed elements are dropped",
			res:  Result{Status: 200, Kind: KindBare, Body: json.RawMessage(`[{"id":"a"},{"id":7},"x",{"id":"c"}]`)},
			want: []item{{ID: "a"}, {ID: "c"}},
		},
		{
			name: "list of wrong shape",
			res:  Result{Status: 200, Kind: KindBare, Body: json.RawMessage(`["a","b"]`)},
			want: []item{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ListOf[item](tc.res)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ListOf() = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestDecodeList_CountsDroppedElements(t *testing.T) {
	res := Result{Status: 200, Kind: KindPaginated, Body: json.RawMessage(`[{"id":"a"},{"id":{"nested":1}},{"id":"b"}]`)}

	got, skipped := DecodeList[item](res)
	if want := []item{{ID: "a"}, {ID: "b"}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeList() items = %#v, want %#v", got, want)
	}
	if skipped != 1 {
		t.Fatalf("skipped = %d, want 1", skipped)
	}

	if _, skipped := DecodeList[item](Result{Status: 500, Kind: KindErrorText, Text: "boom"}); skipped != 0 {
		t.Fatalf("error text skipped = %d, want 0", skipped)
	}
}
