package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"interest-calculator/service"
)

type setFieldRequest struct {
	Value formValue `json:"value"`
}

type SessionHandler struct {
	service *service.CalculatorService
}

func NewSessionHandler(service *service.CalculatorService) *SessionHandler {
	return &SessionHandler{service: service}
}

func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Start(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, session)
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, session)
}

func (h *SessionHandler) SetField(w http.ResponseWriter, r *http.Request) {
	var req setFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.service.SetField(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "field"), string(req.Value))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, session)
}

func (h *SessionHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	calc, err := h.service.Calculate(r.Context(), chi.URLParam(r, "id"), wantProjection(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, calc)
}

func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Reset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, session)
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
