package namecheap

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/tbramble/namecheap-go/internal/domain"
)

// MaxCheckBatch is the largest number of names the API accepts in one
// domains.check call.
const MaxCheckBatch = 50

// DomainCheck is the availability outcome for one domain.
type DomainCheck struct {
	Domain                   string
	Available                bool
	IsPremiumName            bool
	IcannFee                 float64
	PremiumRegistrationPrice float64
	PremiumRenewalPrice      float64
	PremiumRestorePrice      float64
	PremiumTransferPrice     float64
	EapFee                   float64
}

// CheckResult holds one entry per checked name plus the inputs that were
// dropped client-side before the call.
type CheckResult struct {
	Domains []DomainCheck
	// Dropped lists inputs that failed hostname validation and were excluded
	// from the request, in input order. A non-empty Dropped is not an error.
	Dropped []string
}

type checkResponse struct {
	Envelope
	CommandResponse *struct {
		Results []struct {
			Domain                   string `xml:"Domain,attr"`
			Available                string `xml:"Available,attr"`
			IsPremiumName            string `xml:"IsPremiumName,attr"`
			IcannFee                 string `xml:"IcannFee,attr"`
			PremiumRegistrationPrice string `xml:"PremiumRegistrationPrice,attr"`
			PremiumRenewalPrice      string `xml:"PremiumRenewalPrice,attr"`
			PremiumRestorePrice      string `xml:"PremiumRestorePrice,attr"`
			PremiumTransferPrice     string `xml:"PremiumTransferPrice,attr"`
			EapFee                   string `xml:"EapFee,attr"`
		} `xml:"DomainCheckResult"`
	} `xml:"CommandResponse"`
}

// DomainsCheck checks availability for up to MaxCheckBatch names in a single
// namecheap.domains.check call. Batches of zero or more than MaxCheckBatch
// names are rejected with *InputError before any network activity. Names
// failing hostname validation are dropped (reported in CheckResult.Dropped)
// and the call proceeds with the rest; if nothing valid remains the result is
// returned without issuing a request.
func (c *Client) DomainsCheck(ctx context.Context, names ...string) (*CheckResult, error) {
	if len(names) == 0 {
		return nil, &InputError{Reason: "domains.check requires at least one domain name"}
	}
	if len(names) > MaxCheckBatch {
		return nil, &InputError{Reason: fmt.Sprintf("domains.check accepts at most %d names, got %d", MaxCheckBatch, len(names))}
	}

	out := &CheckResult{}
	valid := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		ascii, err := domain.Normalize(name)
		if err != nil {
			out.Dropped = append(out.Dropped, name)
			continue
		}
		if _, ok := seen[ascii]; ok {
			continue
		}
		seen[ascii] = struct{}{}
		valid = append(valid, ascii)
	}

	if len(out.Dropped) > 0 {
		c.log.WithField("dropped", len(out.Dropped)).Debug("invalid domain names excluded from check")
	}
	if len(valid) == 0 {
		return out, nil
	}

	params := url.Values{}
	params.Set("DomainList", strings.Join(valid, ","))

	var resp checkResponse
	if err := c.call(ctx, "namecheap.domains.check", params, &resp); err != nil {
		return nil, err
	}
	if resp.CommandResponse == nil {
		return nil, &StructureError{Element: "CommandResponse"}
	}

	out.Domains = make([]DomainCheck, 0, len(resp.CommandResponse.Results))
	for _, r := range resp.CommandResponse.Results {
		out.Domains = append(out.Domains, DomainCheck{
			Domain:                   r.Domain,
			Available:                attrBool(r.Available),
			IsPremiumName:            attrBool(r.IsPremiumName),
			IcannFee:                 attrFloat(r.IcannFee),
			PremiumRegistrationPrice: attrFloat(r.PremiumRegistrationPrice),
			PremiumRenewalPrice:      attrFloat(r.PremiumRenewalPrice),
			PremiumRestorePrice:      attrFloat(r.PremiumRestorePrice),
			PremiumTransferPrice:     attrFloat(r.PremiumTransferPrice),
			EapFee:                   attrFloat(r.EapFee),
		})
	}
	return out, nil
}
