package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	if _, err := WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Username string `json:"username"`
	}

	tests := []struct {
		name     string
		body     string
		want     string
		wantErr  bool
		emptyErr bool
	}{
		{name: "valid", body: `{"username":"alice"}`, want: "alice"},
		{name: "empty", body: ``, wantErr: true, emptyErr: true},
		{name: "malformed", body: `{"username":`, wantErr: true},
		{name: "two values", body: `{"username":"a"}{"username":"b"}`, wantErr: true},
		{name: "too large", body: `{"username":"` + strings.Repeat("a", MaxRequestBodyBytes) + `"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var p payload
			err := DecodeJSON(w, r, &p)

			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
			if tt.emptyErr && !errors.Is(err, ErrEmptyBody) {
				t.Errorf("expected ErrEmptyBody, got %v", err)
			}
			if !tt.wantErr && p.Username != tt.want {
				t.Errorf("expected %q, got %q", tt.want, p.Username)
			}
		})
	}
}
