package namecheap

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// Tld describes one supported top-level domain.
type Tld struct {
	Name              string
	Description       string
	NonRealTime       bool
	MinRegisterYears  int
	MaxRegisterYears  int
	IsApiRegisterable bool
	IsApiRenewable    bool
	IsEppRequired     bool
	Type              string
	Category          string
}

// TldList holds the supported TLDs in document order plus the time the list
// was retrieved.
type TldList struct {
	RetrievedAt time.Time
	Tlds        []Tld
}

type tldListResponse struct {
	Envelope
	Result *struct {
		Tlds []struct {
			Name              string `xml:"Name,attr"`
			NonRealTime       string `xml:"NonRealTime,attr"`
			MinRegisterYears  string `xml:"MinRegisterYears,attr"`
			MaxRegisterYears  string `xml:"MaxRegisterYears,attr"`
			IsApiRegisterable string `xml:"IsApiRegisterable,attr"`
			IsApiRenewable    string `xml:"IsApiRenewable,attr"`
			IsEppRequired     string `xml:"IsEppRequired,attr"`
			Type              string `xml:"Type,attr"`
			Category          string `xml:"Category,attr"`
			Description       string `xml:",chardata"`
		} `xml:"Tld"`
	} `xml:"CommandResponse>Tlds"`
}

// DomainsGetTldList fetches the TLDs the account may register through the API.
func (c *Client) DomainsGetTldList(ctx context.Context) (*TldList, error) {
	var resp tldListResponse
	if err := c.call(ctx, "namecheap.domains.gettldlist", url.Values{}, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, &StructureError{Element: "Tlds"}
	}

	out := &TldList{
		RetrievedAt: time.Now().UTC(),
		Tlds:        make([]Tld, 0, len(resp.Result.Tlds)),
	}
	for _, t := range resp.Result.Tlds {
		out.Tlds = append(out.Tlds, Tld{
			Name:              t.Name,
			Description:       strings.TrimSpace(t.Description),
			NonRealTime:       attrBool(t.NonRealTime),
			MinRegisterYears:  attrInt(t.MinRegisterYears),
			MaxRegisterYears:  attrInt(t.MaxRegisterYears),
			IsApiRegisterable: attrBool(t.IsApiRegisterable),
			IsApiRenewable:    attrBool(t.IsApiRenewable),
			IsEppRequired:     attrBool(t.IsEppRequired),
			Type:              t.Type,
			Category:          t.Category,
		})
	}
	return out, nil
}
