package service

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"interest-calculator/domain"
)

type currencyFormat struct {
	symbol string
	locale language.Tag
}

var currencyFormats = map[domain.CurrencyCode]currencyFormat{
	domain.USD: {symbol: "$", locale: language.AmericanEnglish},
	domain.NGN: {symbol: "₦", locale: language.MustParse("en-NG")},
	domain.EUR: {symbol: "€", locale: language.MustParse("en-IE")},
	domain.GBP: {symbol: "£", locale: language.BritishEnglish},
}

// ParseCurrency accepts an ISO 4217 code the calculator can display.
// An empty value selects DefaultCurrency.
func ParseCurrency(value string) (domain.CurrencyCode, error) {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		return DefaultCurrency, nil
	}
	unit, err := currency.ParseISO(value)
	if err != nil {
		return "", domain.NewValidationError(FieldCurrency, "%q is not an ISO 4217 currency code", value)
	}
	code := domain.CurrencyCode(unit.String())
	if _, ok := currencyFormats[code]; !ok {
		return "", domain.NewValidationError(FieldCurrency, "%s is not supported", code)
	}
	return code, nil
}

// FormatCurrency renders amount in the conventions of the currency's locale,
// for example "$16,470.09" or "-₦250.00". Unknown codes fall back to USD.
func FormatCurrency(amount float64, code domain.CurrencyCode) string {
	format, ok := currencyFormats[code]
	if !ok {
		code = DefaultCurrency
		format = currencyFormats[code]
	}

	scale := MinDisplayScale
	if unit, err := currency.ParseISO(string(code)); err == nil {
		if s, _ := currency.Standard.Rounding(unit); s > scale {
			scale = s
		}
	}

	rounded := decimal.NewFromFloat(amount).Round(int32(scale))
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	p := message.NewPrinter(format.locale)
	return sign + format.symbol + p.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(scale)))
}

// FormatGrowth renders how many times the principal the investment has grown by,
// as FutureValue/Principal - 1 with two decimals.
func FormatGrowth(result domain.InvestmentResult) string {
	if result.Principal == 0 || math.IsNaN(result.FutureValue) {
		return "0.00x"
	}
	growth := decimal.NewFromFloat(result.FutureValue / result.Principal).Sub(decimal.NewFromInt(1))
	return growth.StringFixed(2) + "x"
}
