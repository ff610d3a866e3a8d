package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fonuzi/NutriTrack/services"
)

func TestNormalizeImageStripsDataURIPrefix(t *testing.T) {
	t.Parallel()

	payload, err := services.NormalizeImage("data:image/jpeg;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if payload != "aGVsbG8=" {
		t.Fatalf("expected bare payload, got %q", payload)
	}
}

func TestNormalizeImageBarePayloadPassesThrough(t *testing.T) {
	t.Parallel()

	payload, err := services.NormalizeImage("aGVsbG8=")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if payload != "aGVsbG8=" {
		t.Fatalf("expected no-op, got %q", payload)
	}
}

func TestNormalizeImageRejectsEmptyPayload(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "data:image/jpeg;base64,", "data:image/png", "   "} {
		if _, err := services.NormalizeImage(raw); !errors.Is(err, services.ErrInvalidImageData) {
			t.Fatalf("input %q: expected ErrInvalidImageData, got %v", raw, err)
		}
	}
}

func visionClientFor(ts *httptest.Server) *services.VisionClient {
	c := services.NewVisionClient("test-key")
	c.BaseURL = ts.URL
	c.HTTPClient = ts.Client()
	return c
}

func TestAnalyzeFoodImageParsesUpstreamJSON(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req["model"] != "gpt-4o" {
			t.Errorf("unexpected model %v", req["model"])
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "choices": [
    {
      "message": {
        "content": "{\"name\":\"Oatmeal with Berries\",\"calories\":310,\"protein\":9,\"carbs\":54,\"fat\":6,\"items\":[{\"name\":\"Oatmeal\",\"amount\":\"1 cup\",\"calories\":150}]}"
      }
    }
  ]
}`))
	}))
	defer ts.Close()

	result, err := visionClientFor(ts).AnalyzeFoodImage(context.Background(), "aGVsbG8=")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if result.Name != "Oatmeal with Berries" || result.Calories != 310 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(result.Items) != 1 || result.Items[0].Calories != 150 {
		t.Fatalf("unexpected items: %+v", result.Items)
	}
}

func TestAnalyzeFoodImageCoercesDegradedContent(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"calories\":\"oops\"}"}}]}`))
	}))
	defer ts.Close()

	result, err := visionClientFor(ts).AnalyzeFoodImage(context.Background(), "aGVsbG8=")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if result.Name != "Unknown Food" || result.Calories != 0 || len(result.Items) != 0 {
		t.Fatalf("expected fully defaulted result, got %+v", result)
	}
}

func TestAnalyzeFoodImageEmptyResponse(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{"choices":[]}`, `{"choices":[{"message":{"content":""}}]}`} {
		body := body
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}))

		_, err := visionClientFor(ts).AnalyzeFoodImage(context.Background(), "aGVsbG8=")
		if !errors.Is(err, services.ErrEmptyAnalysisResponse) {
			t.Fatalf("body %s: expected ErrEmptyAnalysisResponse, got %v", body, err)
		}
		ts.Close()
	}
}

func TestAnalyzeFoodImageMalformedContent(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"I cannot identify this image."}}]}`))
	}))
	defer ts.Close()

	_, err := visionClientFor(ts).AnalyzeFoodImage(context.Background(), "aGVsbG8=")
	if !errors.Is(err, services.ErrMalformedAnalysisResponse) {
		t.Fatalf("expected ErrMalformedAnalysisResponse, got %v", err)
	}
}

func TestAnalyzeFoodImageUpstreamFailure(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	_, err := visionClientFor(ts).AnalyzeFoodImage(context.Background(), "aGVsbG8=")
	if !errors.Is(err, services.ErrAnalysisUnavailable) {
		t.Fatalf("expected ErrAnalysisUnavailable, got %v", err)
	}
}
