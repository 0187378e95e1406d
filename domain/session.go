package domain

import "time"

// Session is one calculator instance: editable form state plus the last result.
// A nil Result means nothing has been calculated since start or reset.
type Session struct {
	ID        string            `json:"id"`
	Input     RawInput          `json:"input"`
	Result    *InvestmentResult `json:"result,omitempty"`
	UpdatedAt time.Time         `json:"updated_at"`
}
