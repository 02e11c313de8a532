// Package server exposes the capacity evaluator over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/jramirezbandera/ec2fiber/internal/section"
)

// Server wires the evaluator into an HTTP API.
type Server struct {
	addr string
	log  *logrus.Logger
}

// New returns a server listening on addr.
func New(addr string, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{addr: addr, log: log}
}

// Router builds the API routes with per-IP rate limiting.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	limiter := newIPRateLimiter(5, 10)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(limiter.limitMiddleware)
	api.Use(s.logMiddleware)

	api.HandleFunc("/capacity", s.handleCapacity).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutdown signal received, closing connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"remote":   r.RemoteAddr,
			"duration": time.Since(start),
		}).Info("request")
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// capacityResponse is the wire form of an analysis result. The lever
// arm is a pointer so the NaN sentinel becomes JSON null.
type capacityResponse struct {
	Name       string   `json:"name,omitempty"`
	Sign       string   `json:"sign"`
	MRdKNm     float64  `json:"mrd_knm"`
	CMm        float64  `json:"c_mm"`
	LeverArmMm *float64 `json:"lever_arm_mm"`
	Kappa      float64  `json:"kappa"`
	ResidualN  float64  `json:"residual_n"`
	Iterations int      `json:"iterations"`
	Status     string   `json:"status"`
	Message    string   `json:"message"`
}

func (s *Server) handleCapacity(w http.ResponseWriter, r *http.Request) {
	var sec section.Section
	if err := json.NewDecoder(r.Body).Decode(&sec); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	result, err := sec.Analyze()
	if err != nil {
		var verr *section.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Error(), http.StatusUnprocessableEntity)
			return
		}
		s.log.WithError(err).Error("analysis failed")
		http.Error(w, "Analysis error", http.StatusInternalServerError)
		return
	}

	sign := sec.Sign
	if sign == "" {
		sign = section.CompressTop
	}

	resp := capacityResponse{
		Name:       sec.Name,
		Sign:       string(sign),
		MRdKNm:     result.MRd,
		CMm:        result.C,
		Kappa:      result.Kappa,
		ResidualN:  result.ResidualN,
		Iterations: result.Iterations,
		Status:     result.Status.String(),
		Message:    result.Message,
	}
	if !math.IsNaN(result.LeverArm) {
		z := result.LeverArm
		resp.LeverArmMm = &z
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
