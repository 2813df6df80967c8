package namecheap

import (
	"encoding/xml"
	"strings"
)

// Envelope is the shared top of every ApiResponse document. Per-command
// response types embed it next to their CommandResponse extraction.
type Envelope struct {
	XMLName xml.Name     `xml:"ApiResponse"`
	Status  string       `xml:"Status,attr"`
	Errors  []APIMessage `xml:"Errors>Error"`
}

func (e *Envelope) env() *Envelope { return e }

type enveloped interface {
	env() *Envelope
}

// parseEnvelope unmarshals body into out and maps a Status=ERROR envelope to
// *APIError. Malformed XML is a *ParseError, a distinct failure class from a
// well-formed error envelope.
func parseEnvelope(body []byte, out enveloped) error {
	if err := xml.Unmarshal(body, out); err != nil {
		return &ParseError{Err: err}
	}
	if strings.EqualFold(out.env().Status, "ERROR") {
		return &APIError{Messages: out.env().Errors}
	}
	return nil
}
