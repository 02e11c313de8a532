package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestServer() *httptest.Server {
	log := logrus.New()
	log.SetOutput(io.Discard)
	s := New(":0", log)
	return httptest.NewServer(s.Router())
}

func TestHandleCapacity(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	body := `{
  "name": "B300x600",
  "width": 300,
  "height": 600,
  "reinforcement": [
    {"y": 43, "area": 402.12},
    {"y": 557, "area": 804.25}
  ]
}`

	resp, err := http.Post(ts.URL+"/api/capacity", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out capacityResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if out.Status != "converged" {
		t.Errorf("status = %q, want converged", out.Status)
	}
	if out.MRdKNm < 165 || out.MRdKNm > 200 {
		t.Errorf("mrd_knm = %.2f, want ~183", out.MRdKNm)
	}
	if out.Sign != "top" {
		t.Errorf("sign = %q, want top (default)", out.Sign)
	}
	if out.LeverArmMm == nil || *out.LeverArmMm <= 0 {
		t.Error("lever_arm_mm missing for a section with tension steel")
	}
}

func TestHandleCapacityNullLeverArm(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	// Steel on the compressed edge only: the lever arm is undefined
	// and must serialize as null.
	body := `{"width": 300, "height": 600, "reinforcement": [{"y": 0, "area": 402}]}`

	resp, err := http.Post(ts.URL+"/api/capacity", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatal(err)
	}
	if string(raw["lever_arm_mm"]) != "null" {
		t.Errorf("lever_arm_mm = %s, want null", raw["lever_arm_mm"])
	}
	if string(raw["status"]) != `"sign change not bracketed"` {
		t.Errorf("status = %s", raw["status"])
	}
}

func TestHandleCapacityValidation(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	body := `{"width": -5, "height": 600, "reinforcement": [{"y": 10, "area": 100}]}`

	resp, err := http.Post(ts.URL+"/api/capacity", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}
}

func TestHandleCapacityBadJSON(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/capacity", "application/json", bytes.NewBufferString("{"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRateLimiter(t *testing.T) {
	limiter := newIPRateLimiter(1, 2)
	handler := limiter.limitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Burst of 2 allowed, third rejected.
	codes := make([]int, 3)
	for i := range codes {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		handler.ServeHTTP(rec, req)
		codes[i] = rec.Code
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("burst requests rejected: %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", codes[2])
	}
}
