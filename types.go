package converter

// Currency a currency code
type Currency string

// Amount a monetary amount
type Amount float64

// Rate an exchange rate
type Rate float64

// Rates maps currency codes to the rate of one unit of a base currency
type Rates map[Currency]Rate

// Request asks for the rates of Base. An empty Target asks for every rate the
// API knows about for Base.
type Request struct {
	Base   Currency
	Target Currency
	Amount Amount
}

// Listing reports whether the request asks for all rates of Base.
func (r Request) Listing() bool {
	return r.Target == ""
}

// Convert computes amount expressed in another currency at the given rate.
func Convert(amount Amount, rate Rate) Amount {
	return Amount(float64(rate) * float64(amount))
}
