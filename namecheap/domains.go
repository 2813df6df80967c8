package namecheap

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// CreateRequest is the input to domains.create. DomainName, Years and all
// four contact sets are required by the API.
type CreateRequest struct {
	DomainName string
	Years      int
	Contacts   ContactsRequest

	PromotionCode     string
	Nameservers       []string
	AddFreeWhoisguard bool
	WGEnabled         bool
}

func (r *CreateRequest) values() (url.Values, error) {
	if r == nil {
		return nil, &InputError{Reason: "domains.create requires a request"}
	}
	if r.DomainName == "" {
		return nil, &InputError{Reason: "domains.create requires a domain name"}
	}
	if r.Years < 1 || r.Years > 10 {
		return nil, &InputError{Reason: fmt.Sprintf("registration years %d out of range [1,10]", r.Years)}
	}
	if err := r.Contacts.validate(); err != nil {
		return nil, err
	}

	v := url.Values{}
	v.Set("DomainName", r.DomainName)
	v.Set("Years", strconv.Itoa(r.Years))
	r.Contacts.values(v)
	if r.PromotionCode != "" {
		v.Set("PromotionCode", r.PromotionCode)
	}
	if len(r.Nameservers) > 0 {
		v.Set("Nameservers", strings.Join(r.Nameservers, ","))
	}
	if r.AddFreeWhoisguard {
		v.Set("AddFreeWhoisguard", "yes")
	}
	if r.WGEnabled {
		v.Set("WGEnabled", "yes")
	}
	return v, nil
}

// CreateResult is the outcome of domains.create.
type CreateResult struct {
	Domain            string
	Registered        bool
	ChargedAmount     float64
	DomainID          int
	OrderID           int
	TransactionID     int
	WhoisguardEnable  bool
	NonRealTimeDomain bool
}

type createResponse struct {
	Envelope
	Result *struct {
		Domain            string `xml:"Domain,attr"`
		Registered        string `xml:"Registered,attr"`
		ChargedAmount     string `xml:"ChargedAmount,attr"`
		DomainID          string `xml:"DomainID,attr"`
		OrderID           string `xml:"OrderID,attr"`
		TransactionID     string `xml:"TransactionID,attr"`
		WhoisguardEnable  string `xml:"WhoisguardEnable,attr"`
		NonRealTimeDomain string `xml:"NonRealTimeDomain,attr"`
	} `xml:"CommandResponse>DomainCreateResult"`
}

// DomainsCreate registers a new domain.
func (c *Client) DomainsCreate(ctx context.Context, req *CreateRequest) (*CreateResult, error) {
	params, err := req.values()
	if err != nil {
		return nil, err
	}

	var resp createResponse
	if err := c.call(ctx, "namecheap.domains.create", params, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, &StructureError{Element: "DomainCreateResult"}
	}

	return &CreateResult{
		Domain:            resp.Result.Domain,
		Registered:        attrBool(resp.Result.Registered),
		ChargedAmount:     attrFloat(resp.Result.ChargedAmount),
		DomainID:          attrInt(resp.Result.DomainID),
		OrderID:           attrInt(resp.Result.OrderID),
		TransactionID:     attrInt(resp.Result.TransactionID),
		WhoisguardEnable:  attrBool(resp.Result.WhoisguardEnable),
		NonRealTimeDomain: attrBool(resp.Result.NonRealTimeDomain),
	}, nil
}

// DomainInfo is the registration metadata returned by domains.getInfo.
type DomainInfo struct {
	ID          int
	DomainName  string
	OwnerName   string
	IsOwner     bool
	Status      string
	CreatedDate time.Time
	ExpiredDate time.Time

	WhoisGuardEnabled bool
	DNSProviderType   string
	Nameservers       []string
}

type getInfoResponse struct {
	Envelope
	Result *struct {
		ID            string `xml:"ID,attr"`
		DomainName    string `xml:"DomainName,attr"`
		OwnerName     string `xml:"OwnerName,attr"`
		IsOwner       string `xml:"IsOwner,attr"`
		Status        string `xml:"Status,attr"`
		DomainDetails struct {
			CreatedDate string `xml:"CreatedDate"`
			ExpiredDate string `xml:"ExpiredDate"`
		} `xml:"DomainDetails"`
		Whoisguard struct {
			Enabled string `xml:"Enabled,attr"`
		} `xml:"Whoisguard"`
		DNSDetails struct {
			ProviderType string   `xml:"ProviderType,attr"`
			Nameservers  []string `xml:"Nameserver"`
		} `xml:"DnsDetails"`
	} `xml:"CommandResponse>DomainGetInfoResult"`
}

// DomainsGetInfo fetches registration metadata for one domain.
func (c *Client) DomainsGetInfo(ctx context.Context, domainName string) (*DomainInfo, error) {
	if domainName == "" {
		return nil, &InputError{Reason: "domains.getInfo requires a domain name"}
	}

	params := url.Values{}
	params.Set("DomainName", domainName)

	var resp getInfoResponse
	if err := c.call(ctx, "namecheap.domains.getInfo", params, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, &StructureError{Element: "DomainGetInfoResult"}
	}

	created, err := parseDate("CreatedDate", resp.Result.DomainDetails.CreatedDate)
	if err != nil {
		return nil, err
	}
	expired, err := parseDate("ExpiredDate", resp.Result.DomainDetails.ExpiredDate)
	if err != nil {
		return nil, err
	}

	return &DomainInfo{
		ID:                attrInt(resp.Result.ID),
		DomainName:        resp.Result.DomainName,
		OwnerName:         resp.Result.OwnerName,
		IsOwner:           attrBool(resp.Result.IsOwner),
		Status:            resp.Result.Status,
		CreatedDate:       created,
		ExpiredDate:       expired,
		WhoisGuardEnabled: attrBool(resp.Result.Whoisguard.Enabled),
		DNSProviderType:   resp.Result.DNSDetails.ProviderType,
		Nameservers:       resp.Result.DNSDetails.Nameservers,
	}, nil
}

// GetListRequest narrows and pages domains.getList. The zero value lists the
// first page of all domains.
type GetListRequest struct {
	// ListType is ALL, EXPIRING or EXPIRED; the API defaults to ALL.
	ListType   string
	SearchTerm string
	Page       int
	PageSize   int
	SortBy     string
}

func (r GetListRequest) values() url.Values {
	v := url.Values{}
	if r.ListType != "" {
		v.Set("ListType", r.ListType)
	}
	if r.SearchTerm != "" {
		v.Set("SearchTerm", r.SearchTerm)
	}
	if r.Page > 0 {
		v.Set("Page", strconv.Itoa(r.Page))
	}
	if r.PageSize > 0 {
		v.Set("PageSize", strconv.Itoa(r.PageSize))
	}
	if r.SortBy != "" {
		v.Set("SortBy", r.SortBy)
	}
	return v
}

// DomainSummary is one row of a domains.getList page.
type DomainSummary struct {
	ID         int
	Name       string
	User       string
	Created    time.Time
	Expires    time.Time
	IsExpired  bool
	IsLocked   bool
	AutoRenew  bool
	WhoisGuard string
}

// Paging reports the server-side pagination state of a list call.
type Paging struct {
	TotalItems  int
	CurrentPage int
	PageSize    int
}

// DomainListPage is one page of the account's domains, in document order.
type DomainListPage struct {
	Domains []DomainSummary
	Paging  Paging
}

type getListResponse struct {
	Envelope
	Result *struct {
		Domains []struct {
			ID         string `xml:"ID,attr"`
			Name       string `xml:"Name,attr"`
			User       string `xml:"User,attr"`
			Created    string `xml:"Created,attr"`
			Expires    string `xml:"Expires,attr"`
			IsExpired  string `xml:"IsExpired,attr"`
			IsLocked   string `xml:"IsLocked,attr"`
			AutoRenew  string `xml:"AutoRenew,attr"`
			WhoisGuard string `xml:"WhoisGuard,attr"`
		} `xml:"Domain"`
	} `xml:"CommandResponse>DomainGetListResult"`
	Paging struct {
		TotalItems  string `xml:"TotalItems"`
		CurrentPage string `xml:"CurrentPage"`
		PageSize    string `xml:"PageSize"`
	} `xml:"CommandResponse>Paging"`
}

// DomainsGetList fetches one page of the domains in the account.
func (c *Client) DomainsGetList(ctx context.Context, req GetListRequest) (*DomainListPage, error) {
	var resp getListResponse
	if err := c.call(ctx, "namecheap.domains.getList", req.values(), &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, &StructureError{Element: "DomainGetListResult"}
	}

	page := &DomainListPage{
		Domains: make([]DomainSummary, 0, len(resp.Result.Domains)),
		Paging: Paging{
			TotalItems:  attrInt(resp.Paging.TotalItems),
			CurrentPage: attrInt(resp.Paging.CurrentPage),
			PageSize:    attrInt(resp.Paging.PageSize),
		},
	}
	for _, d := range resp.Result.Domains {
		created, err := parseDate("Created", d.Created)
		if err != nil {
			return nil, err
		}
		expires, err := parseDate("Expires", d.Expires)
		if err != nil {
			return nil, err
		}
		page.Domains = append(page.Domains, DomainSummary{
			ID:         attrInt(d.ID),
			Name:       d.Name,
			User:       d.User,
			Created:    created,
			Expires:    expires,
			IsExpired:  attrBool(d.IsExpired),
			IsLocked:   attrBool(d.IsLocked),
			AutoRenew:  attrBool(d.AutoRenew),
			WhoisGuard: d.WhoisGuard,
		})
	}
	return page, nil
}

// RenewResult is the outcome of domains.renew.
type RenewResult struct {
	DomainName    string
	DomainID      int
	Renewed       bool
	ChargedAmount float64
	OrderID       int
	TransactionID int
	ExpiredDate   time.Time
}

type renewResponse struct {
	Envelope
	Result *struct {
		DomainName    string `xml:"DomainName,attr"`
		DomainID      string `xml:"DomainID,attr"`
		Renew         string `xml:"Renew,attr"`
		ChargedAmount string `xml:"ChargedAmount,attr"`
		OrderID       string `xml:"OrderID,attr"`
		TransactionID string `xml:"TransactionID,attr"`
		DomainDetails struct {
			ExpiredDate string `xml:"ExpiredDate"`
		} `xml:"DomainDetails"`
	} `xml:"CommandResponse>DomainRenewResult"`
}

// DomainsRenew extends a registration by the given number of years.
func (c *Client) DomainsRenew(ctx context.Context, domainName string, years int, promotionCode string) (*RenewResult, error) {
	if domainName == "" {
		return nil, &InputError{Reason: "domains.renew requires a domain name"}
	}
	if years < 1 || years > 10 {
		return nil, &InputError{Reason: fmt.Sprintf("renewal years %d out of range [1,10]", years)}
	}

	params := url.Values{}
	params.Set("DomainName", domainName)
	params.Set("Years", strconv.Itoa(years))
	if promotionCode != "" {
		params.Set("PromotionCode", promotionCode)
	}

	var resp renewResponse
	if err := c.call(ctx, "namecheap.domains.renew", params, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, &StructureError{Element: "DomainRenewResult"}
	}

	expired, err := parseDate("ExpiredDate", resp.Result.DomainDetails.ExpiredDate)
	if err != nil {
		return nil, err
	}

	return &RenewResult{
		DomainName:    resp.Result.DomainName,
		DomainID:      attrInt(resp.Result.DomainID),
		Renewed:       attrBool(resp.Result.Renew),
		ChargedAmount: attrFloat(resp.Result.ChargedAmount),
		OrderID:       attrInt(resp.Result.OrderID),
		TransactionID: attrInt(resp.Result.TransactionID),
		ExpiredDate:   expired,
	}, nil
}

// ReactivateResult is the outcome of domains.reactivate.
type ReactivateResult struct {
	Domain        string
	IsSuccess     bool
	ChargedAmount float64
	OrderID       int
	TransactionID int
}

type reactivateResponse struct {
	Envelope
	Result *struct {
		Domain        string `xml:"Domain,attr"`
		IsSuccess     string `xml:"IsSuccess,attr"`
		ChargedAmount string `xml:"ChargedAmount,attr"`
		OrderID       string `xml:"OrderID,attr"`
		TransactionID string `xml:"TransactionID,attr"`
	} `xml:"CommandResponse>DomainReactivateResult"`
}

// DomainsReactivate reactivates an expired domain.
func (c *Client) DomainsReactivate(ctx context.Context, domainName string) (*ReactivateResult, error) {
	if domainName == "" {
		return nil, &InputError{Reason: "domains.reactivate requires a domain name"}
	}

	params := url.Values{}
	params.Set("DomainName", domainName)

	var resp reactivateResponse
	if err := c.call(ctx, "namecheap.domains.reactivate", params, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, &StructureError{Element: "DomainReactivateResult"}
	}

	return &ReactivateResult{
		Domain:        resp.Result.Domain,
		IsSuccess:     attrBool(resp.Result.IsSuccess),
		ChargedAmount: attrFloat(resp.Result.ChargedAmount),
		OrderID:       attrInt(resp.Result.OrderID),
		TransactionID: attrInt(resp.Result.TransactionID),
	}, nil
}
