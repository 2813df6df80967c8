package namecheap

import (
	"context"
	"net/url"
)

// Contact is one registrant/tech/admin/aux-billing contact record. Fields
// map one-to-one onto the API's role-prefixed parameters.
type Contact struct {
	FirstName           string
	LastName            string
	OrganizationName    string
	JobTitle            string
	Address1            string
	Address2            string
	City                string
	StateProvince       string
	StateProvinceChoice string
	PostalCode          string
	Country             string
	Phone               string
	PhoneExt            string
	Fax                 string
	EmailAddress        string
}

// values appends the contact's parameters under the given role prefix
// (Registrant, Tech, Admin, AuxBilling). Serialization is explicit per field;
// optional fields are omitted when empty.
func (ct Contact) values(role string, v url.Values) {
	v.Set(role+"FirstName", ct.FirstName)
	v.Set(role+"LastName", ct.LastName)
	v.Set(role+"Address1", ct.Address1)
	v.Set(role+"City", ct.City)
	v.Set(role+"StateProvince", ct.StateProvince)
	v.Set(role+"PostalCode", ct.PostalCode)
	v.Set(role+"Country", ct.Country)
	v.Set(role+"Phone", ct.Phone)
	v.Set(role+"EmailAddress", ct.EmailAddress)
	if ct.OrganizationName != "" {
		v.Set(role+"OrganizationName", ct.OrganizationName)
	}
	if ct.JobTitle != "" {
		v.Set(role+"JobTitle", ct.JobTitle)
	}
	if ct.Address2 != "" {
		v.Set(role+"Address2", ct.Address2)
	}
	if ct.StateProvinceChoice != "" {
		v.Set(role+"StateProvinceChoice", ct.StateProvinceChoice)
	}
	if ct.PhoneExt != "" {
		v.Set(role+"PhoneExt", ct.PhoneExt)
	}
	if ct.Fax != "" {
		v.Set(role+"Fax", ct.Fax)
	}
}

func (ct Contact) complete() bool {
	return ct.FirstName != "" && ct.LastName != "" && ct.Address1 != "" &&
		ct.City != "" && ct.StateProvince != "" && ct.PostalCode != "" &&
		ct.Country != "" && ct.Phone != "" && ct.EmailAddress != ""
}

// ContactsRequest carries the four contact sets the API requires on
// domains.create and domains.setContacts.
type ContactsRequest struct {
	Registrant Contact
	Tech       Contact
	Admin      Contact
	AuxBilling Contact
}

// AllRoles fills every role from a single contact, the common case for
// individual registrants.
func AllRoles(ct Contact) ContactsRequest {
	return ContactsRequest{Registrant: ct, Tech: ct, Admin: ct, AuxBilling: ct}
}

func (r ContactsRequest) values(v url.Values) {
	r.Registrant.values("Registrant", v)
	r.Tech.values("Tech", v)
	r.Admin.values("Admin", v)
	r.AuxBilling.values("AuxBilling", v)
}

func (r ContactsRequest) validate() error {
	for _, role := range []struct {
		name string
		ct   Contact
	}{
		{"registrant", r.Registrant},
		{"tech", r.Tech},
		{"admin", r.Admin},
		{"aux billing", r.AuxBilling},
	} {
		if !role.ct.complete() {
			return &InputError{Reason: role.name + " contact is missing required fields"}
		}
	}
	return nil
}

// ContactsResult is the outcome of domains.getContacts.
type ContactsResult struct {
	Domain     string
	Registrant Contact
	Tech       Contact
	Admin      Contact
	AuxBilling Contact
}

// SetContactsResult is the outcome of domains.setContacts.
type SetContactsResult struct {
	Domain    string
	IsSuccess bool
}

type contactXML struct {
	FirstName           string `xml:"FirstName"`
	LastName            string `xml:"LastName"`
	OrganizationName    string `xml:"OrganizationName"`
	JobTitle            string `xml:"JobTitle"`
	Address1            string `xml:"Address1"`
	Address2            string `xml:"Address2"`
	City                string `xml:"City"`
	StateProvince       string `xml:"StateProvince"`
	StateProvinceChoice string `xml:"StateProvinceChoice"`
	PostalCode          string `xml:"PostalCode"`
	Country             string `xml:"Country"`
	Phone               string `xml:"Phone"`
	PhoneExt            string `xml:"PhoneExt"`
	Fax                 string `xml:"Fax"`
	EmailAddress        string `xml:"EmailAddress"`
}

func (x contactXML) contact() Contact {
	return Contact{
		FirstName:           x.FirstName,
		LastName:            x.LastName,
		OrganizationName:    x.OrganizationName,
		JobTitle:            x.JobTitle,
		Address1:            x.Address1,
		Address2:            x.Address2,
		City:                x.City,
		StateProvince:       x.StateProvince,
		StateProvinceChoice: x.StateProvinceChoice,
		PostalCode:          x.PostalCode,
		Country:             x.Country,
		Phone:               x.Phone,
		PhoneExt:            x.PhoneExt,
		Fax:                 x.Fax,
		EmailAddress:        x.EmailAddress,
	}
}

type getContactsResponse struct {
	Envelope
	Result *struct {
		Domain     string     `xml:"Domain,attr"`
		Registrant contactXML `xml:"Registrant"`
		Tech       contactXML `xml:"Tech"`
		Admin      contactXML `xml:"Admin"`
		AuxBilling contactXML `xml:"AuxBilling"`
	} `xml:"CommandResponse>DomainContactsResult"`
}

type setContactsResponse struct {
	Envelope
	Result *struct {
		Domain    string `xml:"Domain,attr"`
		IsSuccess string `xml:"IsSuccess,attr"`
	} `xml:"CommandResponse>DomainSetContactResult"`
}

// DomainsGetContacts fetches the four contact sets on record for a domain.
func (c *Client) DomainsGetContacts(ctx context.Context, domainName string) (*ContactsResult, error) {
	if domainName == "" {
		return nil, &InputError{Reason: "domains.getContacts requires a domain name"}
	}

	params := url.Values{}
	params.Set("DomainName", domainName)

	var resp getContactsResponse
	if err := c.call(ctx, "namecheap.domains.getContacts", params, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, &StructureError{Element: "DomainContactsResult"}
	}

	return &ContactsResult{
		Domain:     resp.Result.Domain,
		Registrant: resp.Result.Registrant.contact(),
		Tech:       resp.Result.Tech.contact(),
		Admin:      resp.Result.Admin.contact(),
		AuxBilling: resp.Result.AuxBilling.contact(),
	}, nil
}

// DomainsSetContacts replaces all four contact sets for a domain.
func (c *Client) DomainsSetContacts(ctx context.Context, domainName string, contacts ContactsRequest) (*SetContactsResult, error) {
	if domainName == "" {
		return nil, &InputError{Reason: "domains.setContacts requires a domain name"}
	}
	if err := contacts.validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("DomainName", domainName)
	contacts.values(params)

	var resp setContactsResponse
	if err := c.call(ctx, "namecheap.domains.setContacts", params, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, &StructureError{Element: "DomainSetContactResult"}
	}

	return &SetContactsResult{
		Domain:    resp.Result.Domain,
		IsSuccess: attrBool(resp.Result.IsSuccess),
	}, nil
}
