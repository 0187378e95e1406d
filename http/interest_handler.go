package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"interest-calculator/domain"
	"interest-calculator/service"
)

type calculateRequest struct {
	Principal           formValue `json:"principal"`
	Rate                formValue `json:"rate"`
	Years               formValue `json:"years"`
	CompoundFrequency   formValue `json:"compound_frequency"`
	MonthlyContribution formValue `json:"monthly_contribution"`
	Currency            formValue `json:"currency"`
}

func (req calculateRequest) rawInput() domain.RawInput {
	return domain.RawInput{
		Principal:           string(req.Principal),
		Rate:                string(req.Rate),
		Years:               string(req.Years),
		CompoundFrequency:   string(req.CompoundFrequency),
		MonthlyContribution: string(req.MonthlyContribution),
		Currency:            string(req.Currency),
	}
}

type formatRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type formatResponse struct {
	Formatted string `json:"formatted"`
}

type frequencyOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type InterestHandler struct {
	service *service.InterestService
}

func NewInterestHandler(service *service.InterestService) *InterestHandler {
	return &InterestHandler{service: service}
}

// CalculateInterest evaluates a complete form in one request without keeping any state.
func (h *InterestHandler) CalculateInterest(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	calc, err := h.service.Evaluate(r.Context(), req.rawInput(), wantProjection(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, calc)
}

func (h *InterestHandler) FormatAmount(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	code, err := service.ParseCurrency(req.Currency)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, formatResponse{Formatted: service.FormatCurrency(req.Amount, code)})
}

func (h *InterestHandler) ListFrequencies(w http.ResponseWriter, r *http.Request) {
	options := make([]frequencyOption, 0, len(domain.Frequencies))
	for _, f := range domain.Frequencies {
		options = append(options, frequencyOption{Value: int(f), Label: f.Label()})
	}
	writeJSON(w, r, http.StatusOK, options)
}

func wantProjection(r *http.Request) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get("projection"))
	return err == nil && v
}
