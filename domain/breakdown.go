package domain

type YearProjection struct {
	Year          float64 `json:"year"`
	Balance       string  `json:"balance"`
	Contributions string  `json:"contributions"`
	Interest      string  `json:"interest"`
}

// Breakdown is a result rendered for display in the selected currency.
type Breakdown struct {
	Currency              CurrencyCode     `json:"currency"`
	FutureValue           string           `json:"future_value"`
	TotalInterest         string           `json:"total_interest"`
	TotalContributions    string           `json:"total_contributions"`
	Principal             string           `json:"principal"`
	TotalMonthlyAdditions string           `json:"total_monthly_additions"`
	Growth                string           `json:"growth"`
	Projection            []YearProjection `json:"projection,omitempty"`
}
