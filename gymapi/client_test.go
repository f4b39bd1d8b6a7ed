package gymapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientAttachesDecorator(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetDecorator(BearerDecorator("tok-123"))

	var out map[string]any
	if err := c.Get(context.Background(), "/me", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}

	c.ClearDecorator()
	if err := c.Get(context.Background(), "/me", &out); err != nil {
		t.Fatalf("Get after clear: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization after clear = %q, want empty", gotAuth)
	}
}

func TestClientErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantStatus  int
		wantMessage string
	}{
		{"message field", http.StatusBadRequest, `{"message":"Email already taken"}`, 400, "Email already taken"},
		{"error field", http.StatusConflict, `{"error":"Duplicate DNI"}`, 409, "Duplicate DNI"},
		{"message wins over error", http.StatusBadRequest, `{"message":"m","error":"e"}`, 400, "m"},
		{"unparseable body", http.StatusBadRequest, `not json`, 400, ""},
		{"server error", http.StatusInternalServerError, `{"message":"boom"}`, 500, "boom"},
		{"unauthorized", http.StatusUnauthorized, `{"message":"expired"}`, 401, "expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := NewClient(srv.URL).Get(context.Background(), "/x", nil)
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("error type = %T, want *Error", err)
			}
			if apiErr.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", apiErr.Status, tt.wantStatus)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestClientTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	err := NewClient(srv.URL).Get(context.Background(), "/x", nil)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if apiErr.Status != 0 {
		t.Errorf("Status = %d, want 0 for transport failure", apiErr.Status)
	}
	if apiErr.Message == "" {
		t.Error("Message should carry the transport error")
	}
}

func TestIsAuthFailure(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{0, false},
		{400, false},
		{401, true},
		{403, true},
		{404, false},
		{500, false},
	}
	for _, tt := range tests {
		e := &Error{Status: tt.status}
		if got := e.IsAuthFailure(); got != tt.want {
			t.Errorf("IsAuthFailure(%d) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
