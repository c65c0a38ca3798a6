package freecurrency

import (
	"encoding/json"
	"fmt"

	"go-currency-converter"
)

// Parse decodes a latest rates response of the form {"data": {"EUR": 0.92, ...}}.
func Parse(body string) (converter.Rates, error) {
	type Response struct {
		Data converter.Rates `json:"data"`
	}

	var response Response
	err := json.Unmarshal([]byte(body), &response)
	if err != nil {
		return nil, converter.Decode(fmt.Sprintf("Failed to parse JSON: %v", err))
	}
	if response.Data == nil {
		return nil, converter.Decode("Failed to parse JSON: missing field `data`")
	}

	return response.Data, nil
}
