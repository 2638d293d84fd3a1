package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"nextact/pkg/gemini"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); !errors.Is(err, gemini.ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}

	c, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Model() != gemini.DefaultModel {
		t.Errorf("Model() = %s, want default", c.Model())
	}
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Path != "/models/test-model:generateContent" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("x-goog-api-key") != "test-api-key" || r.URL.RawQuery != "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch req.Contents[0].Parts[0].Text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"boom"}`))
		case "empty":
			w.Write([]byte(`{"candidates": []}`))
		default:
			w.Write([]byte(`{
				"candidates": [
					{"content": {"parts": [{"text": "Chuẩn bị "}, {"text": "slide trước."}], "role": "model"}}
				]
			}`))
		}
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "test-model", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	t.Run("success", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), gemini.UserText("xin chào"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text, err := resp.Text()
		if err != nil {
			t.Fatalf("Text: %v", err)
		}
		if text != "Chuẩn bị slide trước." {
			t.Errorf("text = %q", text)
		}
	})

	t.Run("server error", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), gemini.UserText("cause_500"))
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
			t.Fatalf("err = %v, want APIError 500", err)
		}
	})

	t.Run("no candidates", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), gemini.UserText("empty"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := resp.Text(); !errors.Is(err, gemini.ErrEmptyResponse) {
			t.Errorf("err = %v, want ErrEmptyResponse", err)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := client.GenerateContent(ctx, gemini.UserText("xin chào")); err == nil {
			t.Error("expected error for cancelled context")
		}
	})
}

func TestGenerateContent_Retry(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch hits.Add(1) {
		case 1:
			w.WriteHeader(http.StatusServiceUnavailable)
		case 2:
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "ok"}]}}]}`))
		}
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{
		APIKey:        "k",
		APIURL:        ts.URL,
		RetryAttempts: 3,
		RetryDelay:    time.Millisecond,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), gemini.UserText("xin chào"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text, _ := resp.Text(); text != "ok" {
		t.Errorf("text = %q", text)
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("hits = %d, want 3", got)
	}
}

func TestGenerateContent_TransportErrorHidesKey(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	apiURL := ts.URL
	ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "secret-api-key", APIURL: apiURL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = client.GenerateContent(context.Background(), gemini.UserText("xin chào"))
	if err == nil {
		t.Fatal("expected error for closed server")
	}
	if strings.Contains(err.Error(), "secret-api-key") {
		t.Errorf("error leaks the api key: %v", err)
	}
}

func TestGenerateContent_NoRetryOnClientError(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{
		APIKey:        "k",
		APIURL:        ts.URL,
		RetryAttempts: 3,
		RetryDelay:    time.Millisecond,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = client.GenerateContent(context.Background(), gemini.UserText("xin chào"))
	var apiErr *gemini.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("err = %v, want APIError 400", err)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("hits = %d, want 1", got)
	}
}
