package service

import "interest-calculator/domain"

// NewBreakdown renders result in code. Projection points are rendered in order when given.
func NewBreakdown(result domain.InvestmentResult, code domain.CurrencyCode, projection []ProjectionPoint) domain.Breakdown {
	breakdown := domain.Breakdown{
		Currency:              code,
		FutureValue:           FormatCurrency(result.FutureValue, code),
		TotalInterest:         FormatCurrency(result.TotalInterest, code),
		TotalContributions:    FormatCurrency(result.TotalContributions, code),
		Principal:             FormatCurrency(result.Principal, code),
		TotalMonthlyAdditions: FormatCurrency(result.TotalMonthlyAdditions, code),
		Growth:                FormatGrowth(result),
	}

	for _, point := range projection {
		breakdown.Projection = append(breakdown.Projection, domain.YearProjection{
			Year:          point.Year,
			Balance:       FormatCurrency(point.Result.FutureValue, code),
			Contributions: FormatCurrency(point.Result.TotalContributions, code),
			Interest:      FormatCurrency(point.Result.TotalInterest, code),
		})
	}
	return breakdown
}
