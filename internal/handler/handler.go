package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"dealscope/internal/codec"
	"dealscope/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// EvaluationHandler handles evaluation API requests
type EvaluationHandler struct {
	svc    *service.EvaluationService
	codec  *codec.JSONCodec
	logger *zap.Logger
}

// NewEvaluationHandler creates a new evaluation handler
func NewEvaluationHandler(svc *service.EvaluationService, logger *zap.Logger) *EvaluationHandler {
	return &EvaluationHandler{
		svc:    svc,
		codec:  codec.NewJSONCodec(),
		logger: logger,
	}
}

// CreateEvaluation accepts a collector snapshot and returns its report
func (h *EvaluationHandler) CreateEvaluation(w http.ResponseWriter, r *http.Request) {
	snap, err := h.codec.Parse(r.Body)
	if err != nil {
		var decodeErr *codec.DecodeError
		if errors.As(err, &decodeErr) {
			h.writeError(w, "Invalid snapshot", decodeErr.Error(), http.StatusBadRequest)
			return
		}
		h.writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.svc.Evaluate(r.Context(), snap)
	if err != nil {
		h.logger.Error("evaluation failed", zap.Error(err))
		h.writeError(w, "Evaluation failed", err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, report, http.StatusCreated)
}

// ListEvaluations returns summaries of recent reports, newest first
func (h *EvaluationHandler) ListEvaluations(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.svc.ListReports(), http.StatusOK)
}

// GetEvaluation returns one full report
func (h *EvaluationHandler) GetEvaluation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeError(w, "Invalid report ID", "Report ID is required", http.StatusBadRequest)
		return
	}

	report, err := h.svc.GetReport(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			h.writeError(w, "Not found", err.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get report", zap.Error(err))
		h.writeError(w, "Failed to get report", err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, report, http.StatusOK)
}

// Healthz reports liveness
func (h *EvaluationHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// Helper methods

func (h *EvaluationHandler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (h *EvaluationHandler) writeError(w http.ResponseWriter, msg, details string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   msg,
		Details: details,
	}); err != nil {
		h.logger.Warn("failed to encode error response", zap.Error(err))
	}
}
