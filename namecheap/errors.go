package namecheap

import (
	"fmt"
	"strings"
)

// The client reports five distinct failure kinds so callers can branch on
// them with errors.As: transport, unparseable response, remote-reported
// error, invalid response structure and invalid caller input.

// TransportError covers network failures, timeouts and non-2xx HTTP
// statuses. It may be worth retrying; the client itself never does.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("namecheap: request failed: %v", e.Err)
	}
	return fmt.Sprintf("namecheap: http %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError means the response body was not well-formed XML, or a field the
// call depends on (a date) could not be parsed.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("namecheap: unparseable %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("namecheap: unparseable response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// APIMessage is one Error element of an ERROR envelope. Numbers are assigned
// by the remote service and are not enumerable client-side.
type APIMessage struct {
	Number  string `xml:"Number,attr"`
	Message string `xml:",chardata"`
}

// APIError is a well-formed envelope with Status="ERROR". It carries every
// embedded error code and message.
type APIError struct {
	Messages []APIMessage
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return "namecheap: API returned ERROR status"
	}
	parts := make([]string, 0, len(e.Messages))
	for _, m := range e.Messages {
		parts = append(parts, strings.TrimSpace(m.Message))
	}
	return "namecheap: " + strings.Join(parts, ", ")
}

// StructureError means a structurally required response element was absent.
// It indicates a contract mismatch with the provider and is always fatal to
// the call.
type StructureError struct {
	Element string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("namecheap: response missing required element %s", e.Element)
}

// InputError is a caller-input rejection raised before any network activity.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "namecheap: " + e.Reason
}
