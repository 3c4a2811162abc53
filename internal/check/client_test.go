package check

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testTarget(t *testing.T, rawURL string) *Target {
	t.Helper()
	target, err := ResolveTarget(TargetOptions{URL: rawURL})
	if err != nil {
		t.Fatalf("ResolveTarget(%q) failed: %v", rawURL, err)
	}
	return target
}

func TestParseRawHeaders(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected map[string]string
	}{
		{
			name:     "empty string",
			raw:      "",
			expected: map[string]string{},
		},
		{
			name:     "single header",
			raw:      "Accept: application/json",
			expected: map[string]string{"Accept": "application/json"},
		},
		{
			name: "multiple headers split on comma",
			raw:  "Accept: application/json,X-Api-Key:secret",
			expected: map[string]string{
				"Accept":    "application/json",
				"X-Api-Key": "secret",
			},
		},
		{
			name:     "leading whitespace trimmed from value only",
			raw:      "X-Token:   abc def",
			expected: map[string]string{"X-Token": "abc def"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			headers, err := ParseRawHeaders(tc.raw)
			if err != nil {
				t.Fatalf("ParseRawHeaders failed: %v", err)
			}
			if len(headers) != len(tc.expected) {
				t.Fatalf("Expected %d headers, got %d", len(tc.expected), len(headers))
			}
			for name, value := range tc.expected {
				if got := headers.Get(name); got != value {
					t.Errorf("Header %s: expected %q, got %q", name, value, got)
				}
			}
		})
	}
}

func TestParseRawHeaders_MissingColon(t *testing.T) {
	_, err := ParseRawHeaders("NotAHeader")
	if err == nil {
		t.Fatal("Expected error for header pair without colon")
	}
}

func TestClient_Exchange_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"vol_name":"tank"}]`))
	}))
	defer srv.Close()

	client := &Client{Method: http.MethodGet, Timeout: 5 * time.Second}
	body, failure := client.Exchange(context.Background(), testTarget(t, srv.URL))
	if failure != nil {
		t.Fatalf("Unexpected failure: %v", failure)
	}
	if string(body) != `[{"vol_name":"tank"}]` {
		t.Errorf("Unexpected body: %q", body)
	}
}

func TestClient_Exchange_RequestShape(t *testing.T) {
	var (
		gotMethod string
		gotBody   string
		gotAccept string
		gotUser   string
		gotPass   string
		gotAuth   bool
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		buf := make([]byte, 64)
		n, _ := r.Body.Read(buf)
		gotBody = string(buf[:n])
		gotAccept = r.Header.Get("Accept")
		gotUser, gotPass, gotAuth = r.BasicAuth()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	headers, err := ParseRawHeaders("Accept: application/json")
	if err != nil {
		t.Fatalf("ParseRawHeaders failed: %v", err)
	}

	client := &Client{
		Method:   http.MethodPost,
		Body:     []byte(`{"probe":true}`),
		Username: "monitor",
		Password: "hunter2",
		Headers:  headers,
		Timeout:  5 * time.Second,
	}
	_, failure := client.Exchange(context.Background(), testTarget(t, srv.URL))
	if failure != nil {
		t.Fatalf("Unexpected failure: %v", failure)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("Expected POST, got %s", gotMethod)
	}
	if gotBody != `{"probe":true}` {
		t.Errorf("Body not delivered, got %q", gotBody)
	}
	if gotAccept != "application/json" {
		t.Errorf("Header not delivered, got %q", gotAccept)
	}
	if !gotAuth || gotUser != "monitor" || gotPass != "hunter2" {
		t.Errorf("Basic auth not attached: ok=%v user=%q pass=%q", gotAuth, gotUser, gotPass)
	}
}

func TestClient_Exchange_Non2xxIsCritical(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`backend exploded`))
	}))
	defer srv.Close()

	client := &Client{Method: http.MethodGet, Timeout: 5 * time.Second}
	_, failure := client.Exchange(context.Background(), testTarget(t, srv.URL))
	if failure == nil {
		t.Fatal("Expected failure for 500 response")
	}
	if failure.Status != StatusCritical {
		t.Fatalf("Expected CRITICAL, got %s", failure.Status)
	}
	if failure.Message != "unexpected status code 500" {
		t.Errorf("Unexpected message: %q", failure.Message)
	}
}

func TestClient_Exchange_WholeResponseIncludesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream gone`))
	}))
	defer srv.Close()

	client := &Client{Method: http.MethodGet, Timeout: 5 * time.Second, WholeResponse: true}
	_, failure := client.Exchange(context.Background(), testTarget(t, srv.URL))
	if failure == nil {
		t.Fatal("Expected failure for 502 response")
	}
	if failure.Message != "unexpected status code 502: upstream gone" {
		t.Errorf("Expected status code and full body, got %q", failure.Message)
	}
}

func TestClient_Exchange_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := &Client{Method: http.MethodGet, Timeout: 50 * time.Millisecond}
	_, failure := client.Exchange(context.Background(), testTarget(t, srv.URL))
	if failure == nil {
		t.Fatal("Expected failure for delayed response")
	}
	if failure.Status != StatusCritical {
		t.Fatalf("Expected CRITICAL, got %s", failure.Status)
	}
	if failure.Message != "Connection timed out" {
		t.Errorf("Unexpected message: %q", failure.Message)
	}
}

func TestClient_Exchange_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := testTarget(t, srv.URL)
	srv.Close()

	client := &Client{Method: http.MethodGet, Timeout: 5 * time.Second}
	_, failure := client.Exchange(context.Background(), target)
	if failure == nil {
		t.Fatal("Expected failure against closed server")
	}
	if failure.Status != StatusCritical {
		t.Fatalf("Expected CRITICAL, got %s", failure.Status)
	}
	if !strings.HasPrefix(failure.Message, "Connection error: ") {
		t.Errorf("Expected connection error message, got %q", failure.Message)
	}
}

func TestClient_Exchange_InsecureTLS(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	strict := &Client{Method: http.MethodGet, Timeout: 5 * time.Second}
	if _, failure := strict.Exchange(context.Background(), testTarget(t, srv.URL)); failure == nil {
		t.Fatal("Expected certificate verification failure without --insecure")
	}

	insecure := &Client{Method: http.MethodGet, Timeout: 5 * time.Second, Insecure: true}
	body, failure := insecure.Exchange(context.Background(), testTarget(t, srv.URL))
	if failure != nil {
		t.Fatalf("Unexpected failure with Insecure set: %v", failure)
	}
	if string(body) != `[]` {
		t.Errorf("Unexpected body: %q", body)
	}
}
