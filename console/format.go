package console

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
	"go-currency-converter"
)

// fixed renders f with two decimals, rounding half away from zero
func fixed(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'f', 2, 64)
	}
	return decimal.NewFromFloat(f).StringFixed(2)
}

// shortest renders f with as few digits as needed, e.g. 72.34 or 1
func shortest(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return decimal.NewFromFloat(f).String()
}

// writeRates prints a single conversion when rates has exactly one entry,
// otherwise one line per currency ordered by code.
func writeRates(w io.Writer, request converter.Request, rates converter.Rates) {
	fmt.Fprintln(w)

	if len(rates) == 1 {
		for target, rate := range rates {
			fmt.Fprintf(w, "%v %v = %v %v\n",
				shortest(float64(request.Amount)),
				request.Base,
				fixed(float64(converter.Convert(request.Amount, rate))),
				target,
			)
			fmt.Fprintf(w, "Rate: %v\n", fixed(float64(rate)))
		}
		return
	}

	currencies := make([]string, 0, len(rates))
	for currency := range rates {
		currencies = append(currencies, string(currency))
	}
	sort.Strings(currencies)

	for _, currency := range currencies {
		fmt.Fprintf(w, "%v: %v\n", currency, fixed(float64(rates[converter.Currency(currency)])))
	}
}
