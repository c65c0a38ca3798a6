package converter

import "fmt"

// ErrorKind classifies an APIError
type ErrorKind int

const (
	// TransportFailure covers network errors and non-2xx responses
	TransportFailure ErrorKind = iota
	// DecodeFailure covers malformed or unexpectedly shaped JSON
	DecodeFailure
)

func (k ErrorKind) String() string {
	switch k {
	case TransportFailure:
		return "TransportFailure"
	case DecodeFailure:
		return "DecodeFailure"
	default:
		return "Unknown"
	}
}

// APIError is returned by the exchange rate API client. It is passed up to the
// console unchanged.
type APIError struct {
	Kind    ErrorKind
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind, e.Message)
}

// Transport builds a TransportFailure
func Transport(message string) *APIError {
	return &APIError{Kind: TransportFailure, Message: message}
}

// Decode builds a DecodeFailure
func Decode(message string) *APIError {
	return &APIError{Kind: DecodeFailure, Message: message}
}
