package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go-currency-converter"
	"go-currency-converter/exchange"
)

const menu = `
1) All currencies rates
2) Convert currency
3) Exit

`

// Controller drives the interactive menu
type Controller struct {
	service exchange.Service
	in      *bufio.Reader
	out     io.Writer
}

// NewController constructs a Controller reading selections from in and writing
// results to out
func NewController(s exchange.Service, in io.Reader, out io.Writer) *Controller {
	return &Controller{
		service: s,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Run shows the menu until the user picks exit or input ends. Errors from
// individual requests are printed and the menu is shown again. The returned
// error is only non-nil when reading input fails.
func (c *Controller) Run(ctx context.Context) error {
	for {
		fmt.Fprint(c.out, menu)

		line, err := c.readLine()
		if err == io.EOF && line == "" {
			return nil
		}
		if err != nil && err != io.EOF {
			return fmt.Errorf("reading menu selection: %w", err)
		}

		switch strings.TrimSpace(line) {
		case "1":
			fmt.Fprintln(c.out, "Example of usage: USD")
			fmt.Fprintln(c.out, "Type currency code:")
			c.dispatch(ctx, ParseCurrency)
		case "2":
			fmt.Fprintln(c.out, "Example of usage: USD EUR 72.34")
			fmt.Fprintln(c.out, "Type base currency, target currency and amount:")
			c.dispatch(ctx, ParseConversion)
		case "3":
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid input")
		}
	}
}

// dispatch reads one line of request input, parses it and prints the result
func (c *Controller) dispatch(ctx context.Context, parse func(string) (converter.Request, error)) {
	line, err := c.readLine()
	if err != nil && err != io.EOF {
		fmt.Fprintln(c.out, err)
		return
	}

	request, err := parse(line)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}

	rates, err := c.service.Rates(ctx, request)
	if err != nil {
		fmt.Fprintln(c.out, err)
		return
	}

	writeRates(c.out, request, rates)
}

func (c *Controller) readLine() (string, error) {
	return c.in.ReadString('\n')
}
