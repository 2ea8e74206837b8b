// Package helpers provides HTTP test utilities for handler tests.
package helpers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/forgo/places/api/internal/model"
)

// JSONRequest builds a request with body encoded as JSON. A string body is
// sent verbatim so tests can post malformed JSON.
func JSONRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("helpers: encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// Serve runs req through h and returns the recorded response.
func Serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// DecodeJSON decodes the response body into v.
func DecodeJSON(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("helpers: decode response: %v (body %q)", err, rr.Body.String())
	}
}

// RequireProblem asserts the response is a problem document with status.
func RequireProblem(t *testing.T, rr *httptest.ResponseRecorder, status int) *model.ProblemDetails {
	t.Helper()

	if rr.Code != status {
		t.Fatalf("expected status %d, got %d (body %q)", status, rr.Code, rr.Body.String())
	}
	var pd model.ProblemDetails
	DecodeJSON(t, rr, &pd)
	if pd.Status != status {
		t.Fatalf("expected problem status %d, got %d", status, pd.Status)
	}
	return &pd
}
