package domain

import "fmt"

// Frequency is the number of times per year interest is applied to the principal.
type Frequency int

const (
	Annually     Frequency = 1
	SemiAnnually Frequency = 2
	Quarterly    Frequency = 4
	Monthly      Frequency = 12
	Weekly       Frequency = 52
	Daily        Frequency = 365
)

// Frequencies lists the selectable compounding frequencies in display order.
var Frequencies = []Frequency{Annually, SemiAnnually, Quarterly, Monthly, Weekly, Daily}

func (f Frequency) Valid() bool {
	switch f {
	case Annually, SemiAnnually, Quarterly, Monthly, Weekly, Daily:
		return true
	}
	return false
}

func (f Frequency) Label() string {
	switch f {
	case Annually:
		return "Annually"
	case SemiAnnually:
		return "Semi-annually"
	case Quarterly:
		return "Quarterly"
	case Monthly:
		return "Monthly"
	case Weekly:
		return "Weekly"
	case Daily:
		return "Daily"
	}
	return fmt.Sprintf("%d times per year", int(f))
}

// CurrencyCode only selects how amounts are displayed.
type CurrencyCode string

const (
	USD CurrencyCode = "USD"
	NGN CurrencyCode = "NGN"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
)

var Currencies = []CurrencyCode{USD, NGN, EUR, GBP}

func (c CurrencyCode) Valid() bool {
	switch c {
	case USD, NGN, EUR, GBP:
		return true
	}
	return false
}

type InvestmentInput struct {
	Principal           float64      `json:"principal"`
	AnnualRatePercent   float64      `json:"annual_rate_percent"`
	Years               float64      `json:"years"`
	CompoundsPerYear    Frequency    `json:"compounds_per_year"`
	MonthlyContribution float64      `json:"monthly_contribution"`
	Currency            CurrencyCode `json:"currency"`
}

// RawInput is the form state exactly as typed, one string per field.
type RawInput struct {
	Principal           string `json:"principal"`
	Rate                string `json:"rate"`
	Years               string `json:"years"`
	CompoundFrequency   string `json:"compound_frequency"`
	MonthlyContribution string `json:"monthly_contribution"`
	Currency            string `json:"currency"`
}

type InvestmentResult struct {
	FutureValue            float64 `json:"future_value"`
	TotalInterest          float64 `json:"total_interest"`
	TotalContributions     float64 `json:"total_contributions"`
	Principal              float64 `json:"principal"`
	TotalMonthlyAdditions  float64 `json:"total_monthly_additions"`
	CompoundAmount         float64 `json:"compound_amount"`
	FutureValueOfAdditions float64 `json:"future_value_of_additions"`
}
