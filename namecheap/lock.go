package namecheap

import (
	"context"
	"net/url"
	"strings"
)

type getLockResponse struct {
	Envelope
	Result *struct {
		Domain              string  `xml:"Domain,attr"`
		RegistrarLockStatus *string `xml:"RegistrarLockStatus,attr"`
	} `xml:"CommandResponse>DomainGetRegistrarLockResult"`
}

// DomainsGetRegistrarLock reports whether the registrar lock is enabled. The
// lock status attribute is the sole purpose of the call, so unlike other
// optional attributes its absence is fatal.
func (c *Client) DomainsGetRegistrarLock(ctx context.Context, domainName string) (bool, error) {
	if domainName == "" {
		return false, &InputError{Reason: "domains.getRegistrarLock requires a domain name"}
	}

	params := url.Values{}
	params.Set("DomainName", domainName)

	var resp getLockResponse
	if err := c.call(ctx, "namecheap.domains.getRegistrarLock", params, &resp); err != nil {
		return false, err
	}
	if resp.Result == nil {
		return false, &StructureError{Element: "DomainGetRegistrarLockResult"}
	}
	if resp.Result.RegistrarLockStatus == nil || strings.TrimSpace(*resp.Result.RegistrarLockStatus) == "" {
		return false, &StructureError{Element: "DomainGetRegistrarLockResult.RegistrarLockStatus"}
	}

	return attrBool(*resp.Result.RegistrarLockStatus), nil
}

// SetLockResult is the outcome of domains.setRegistrarLock.
type SetLockResult struct {
	Domain    string
	IsSuccess bool
}

type setLockResponse struct {
	Envelope
	Result *struct {
		Domain    string `xml:"Domain,attr"`
		IsSuccess string `xml:"IsSuccess,attr"`
	} `xml:"CommandResponse>DomainSetRegistrarLockResult"`
}

// DomainsSetRegistrarLock locks or unlocks the domain against transfers.
func (c *Client) DomainsSetRegistrarLock(ctx context.Context, domainName string, lock bool) (*SetLockResult, error) {
	if domainName == "" {
		return nil, &InputError{Reason: "domains.setRegistrarLock requires a domain name"}
	}

	action := "LOCK"
	if !lock {
		action = "UNLOCK"
	}

	params := url.Values{}
	params.Set("DomainName", domainName)
	params.Set("LockAction", action)

	var resp setLockResponse
	if err := c.call(ctx, "namecheap.domains.setRegistrarLock", params, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, &StructureError{Element: "DomainSetRegistrarLockResult"}
	}

	return &SetLockResult{
		Domain:    resp.Result.Domain,
		IsSuccess: attrBool(resp.Result.IsSuccess),
	}, nil
}
