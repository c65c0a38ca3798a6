package console

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go-currency-converter"
)

var (
	// ErrEmptyInput nothing but whitespace was typed
	ErrEmptyInput = errors.New("Empty input")
	// ErrInsufficientInput the wrong number of fields was typed
	ErrInsufficientInput = errors.New("Insufficient input")
	// ErrInvalidAmount the amount is not a number
	ErrInvalidAmount = errors.New("Invalid amount")
)

// fields upper-cases line and splits it on whitespace
func fields(line string) ([]string, error) {
	line = strings.ToUpper(strings.TrimSpace(line))
	if line == "" {
		return nil, ErrEmptyInput
	}
	return strings.Fields(line), nil
}

// ParseCurrency reads a single base currency code, e.g. "usd", into a listing
// request
func ParseCurrency(line string) (converter.Request, error) {
	tokens, err := fields(line)
	if err != nil {
		return converter.Request{}, err
	}
	if len(tokens) != 1 {
		return converter.Request{}, ErrInsufficientInput
	}

	return converter.Request{
		Base:   converter.Currency(tokens[0]),
		Amount: 1,
	}, nil
}

// ParseConversion reads "BASE TARGET AMOUNT", e.g. "USD EUR 72.34"
func ParseConversion(line string) (converter.Request, error) {
	tokens, err := fields(line)
	if err != nil {
		return converter.Request{}, err
	}
	if len(tokens) != 3 {
		return converter.Request{}, ErrInsufficientInput
	}

	amount, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return converter.Request{}, ErrInvalidAmount
	}

	return converter.Request{
		Base:   converter.Currency(tokens[0]),
		Target: converter.Currency(tokens[1]),
		Amount: converter.Amount(amount),
	}, nil
}
