package service

import (
	"math"
	"strconv"
	"strings"

	"interest-calculator/domain"
)

const (
	FieldPrincipal           = "principal"
	FieldRate                = "rate"
	FieldYears               = "years"
	FieldCompoundFrequency   = "compound_frequency"
	FieldMonthlyContribution = "monthly_contribution"
	FieldCurrency            = "currency"
)

// Limits bounds the inputs accepted from a form.
type Limits struct {
	MaxPrincipal   float64
	MaxRatePercent float64
	MaxYears       float64
}

var DefaultLimits = Limits{
	MaxPrincipal:   MaxPrincipal,
	MaxRatePercent: MaxRatePercent,
	MaxYears:       MaxYears,
}

// ParseInput converts raw form values into a validated InvestmentInput using DefaultLimits.
func ParseInput(raw domain.RawInput) (domain.InvestmentInput, error) {
	return ParseInputWithLimits(raw, DefaultLimits)
}

func ParseInputWithLimits(raw domain.RawInput, limits Limits) (domain.InvestmentInput, error) {
	principal, err := parsePositive(FieldPrincipal, raw.Principal, limits.MaxPrincipal)
	if err != nil {
		return domain.InvestmentInput{}, err
	}
	rate, err := parsePositive(FieldRate, raw.Rate, limits.MaxRatePercent)
	if err != nil {
		return domain.InvestmentInput{}, err
	}
	years, err := parsePositive(FieldYears, raw.Years, limits.MaxYears)
	if err != nil {
		return domain.InvestmentInput{}, err
	}
	frequency, err := ParseFrequency(raw.CompoundFrequency)
	if err != nil {
		return domain.InvestmentInput{}, err
	}
	code, err := ParseCurrency(raw.Currency)
	if err != nil {
		return domain.InvestmentInput{}, err
	}

	return domain.InvestmentInput{
		Principal:           principal,
		AnnualRatePercent:   rate,
		Years:               years,
		CompoundsPerYear:    frequency,
		MonthlyContribution: parseContribution(raw.MonthlyContribution),
		Currency:            code,
	}, nil
}

func parsePositive(field, value string, max float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, domain.NewValidationError(field, "%q is not a number", value)
	}
	if v <= 0 {
		return 0, domain.NewValidationError(field, "must be greater than zero")
	}
	if max > 0 && v > max {
		return 0, domain.NewValidationError(field, "exceeds the maximum of %g", max)
	}
	return v, nil
}

// parseContribution never fails: anything unusable means no contribution.
func parseContribution(value string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func ParseFrequency(value string) (domain.Frequency, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultFrequency, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || !domain.Frequency(n).Valid() {
		return 0, domain.NewValidationError(FieldCompoundFrequency, "%q is not a supported compounding frequency", value)
	}
	return domain.Frequency(n), nil
}

// Calculate derives the investment result from input. It is a pure function.
//
// The principal compounds CompoundsPerYear times a year, while the monthly
// contributions are accumulated as an ordinary annuity at rate/12.
func Calculate(input domain.InvestmentInput) (domain.InvestmentResult, error) {
	if err := validate(input); err != nil {
		return domain.InvestmentResult{}, err
	}

	p := input.Principal
	r := input.AnnualRatePercent / 100
	t := input.Years
	n := float64(input.CompoundsPerYear)
	pmt := input.MonthlyContribution
	if math.IsNaN(pmt) || pmt < 0 {
		pmt = 0
	}

	compoundAmount := p * math.Pow(1+r/n, n*t)

	var futureValueOfAdditions float64
	if pmt > 0 {
		monthlyRate := r / ContributionsPerYear
		totalMonths := t * ContributionsPerYear
		if monthlyRate > 0 {
			futureValueOfAdditions = pmt * ((math.Pow(1+monthlyRate, totalMonths) - 1) / monthlyRate)
		} else {
			futureValueOfAdditions = pmt * totalMonths
		}
	}

	futureValue := compoundAmount + futureValueOfAdditions
	if math.IsInf(futureValue, 0) || math.IsNaN(futureValue) {
		return domain.InvestmentResult{}, domain.NewValidationError(FieldYears, "growth exceeds the representable range")
	}

	totalMonthlyAdditions := pmt * t * ContributionsPerYear

	return domain.InvestmentResult{
		FutureValue:            futureValue,
		TotalInterest:          futureValue - p - totalMonthlyAdditions,
		TotalContributions:     p + totalMonthlyAdditions,
		Principal:              p,
		TotalMonthlyAdditions:  totalMonthlyAdditions,
		CompoundAmount:         compoundAmount,
		FutureValueOfAdditions: futureValueOfAdditions,
	}, nil
}

func validate(input domain.InvestmentInput) error {
	checks := []struct {
		field string
		value float64
	}{
		{FieldPrincipal, input.Principal},
		{FieldRate, input.AnnualRatePercent},
		{FieldYears, input.Years},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return domain.NewValidationError(c.field, "is not a number")
		}
		if c.value <= 0 {
			return domain.NewValidationError(c.field, "must be greater than zero")
		}
	}
	if !input.CompoundsPerYear.Valid() {
		return domain.NewValidationError(FieldCompoundFrequency, "%d is not a supported compounding frequency", int(input.CompoundsPerYear))
	}
	return nil
}

// ProjectionPoint is the investment evaluated after Year years.
type ProjectionPoint struct {
	Year   float64
	Result domain.InvestmentResult
}

// Project evaluates the investment at the end of every whole year, and at the
// final fractional year when Years is not whole.
func Project(input domain.InvestmentInput) ([]ProjectionPoint, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	var years []float64
	for y := 1.0; y <= input.Years; y++ {
		years = append(years, y)
	}
	if len(years) == 0 || years[len(years)-1] < input.Years {
		years = append(years, input.Years)
	}

	points := make([]ProjectionPoint, 0, len(years))
	for _, y := range years {
		step := input
		step.Years = y
		result, err := Calculate(step)
		if err != nil {
			return nil, err
		}
		points = append(points, ProjectionPoint{Year: y, Result: result})
	}
	return points, nil
}
