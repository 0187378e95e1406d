package service

import "interest-calculator/domain"

const (
	MaxPrincipal   = 1_000_000_000_000.0 // 1 trillion
	MaxRatePercent = 1000.0              // 1000% per year
	MaxYears       = 100.0

	DefaultFrequency = domain.Monthly
	DefaultCurrency  = domain.USD

	// Contributions are always compounded monthly, whatever the principal frequency.
	ContributionsPerYear = 12

	MinDisplayScale = 2
)
