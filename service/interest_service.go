package service

import (
	"context"

	"github.com/rs/zerolog"

	"interest-calculator/domain"
)

// Calculation is a parsed input together with its result and rendered breakdown.
type Calculation struct {
	Input     domain.InvestmentInput  `json:"input"`
	Result    domain.InvestmentResult `json:"result"`
	Breakdown domain.Breakdown        `json:"breakdown"`
}

type InterestService struct {
	limits Limits
}

func NewInterestService(limits Limits) *InterestService {
	return &InterestService{limits: limits}
}

// Evaluate parses raw form values and computes a fresh result from them.
func (s *InterestService) Evaluate(
	ctx context.Context,
	raw domain.RawInput,
	withProjection bool,
) (Calculation, error) {
	logger := zerolog.Ctx(ctx)

	input, err := ParseInputWithLimits(raw, s.limits)
	if err != nil {
		logger.Debug().Err(err).Msg("rejected calculator input")
		return Calculation{}, err
	}

	result, err := Calculate(input)
	if err != nil {
		logger.Debug().Err(err).Msg("calculation failed")
		return Calculation{}, err
	}

	var projection []ProjectionPoint
	if withProjection {
		projection, err = Project(input)
		if err != nil {
			return Calculation{}, err
		}
	}

	logger.Debug().
		Float64("principal", input.Principal).
		Float64("rate", input.AnnualRatePercent).
		Float64("years", input.Years).
		Int("compounds_per_year", int(input.CompoundsPerYear)).
		Float64("future_value", result.FutureValue).
		Msg("calculated compound interest")

	return Calculation{
		Input:     input,
		Result:    result,
		Breakdown: NewBreakdown(result, input.Currency, projection),
	}, nil
}
