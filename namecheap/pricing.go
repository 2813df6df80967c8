package namecheap

import (
	"context"
	"net/url"
)

// PricingRequest narrows users.getPricing. ProductType is required (e.g.
// "DOMAIN", "SSLCERTIFICATE"); the remaining fields filter the catalog.
type PricingRequest struct {
	ProductType     string
	ProductCategory string
	PromotionCode   string
	ActionName      string
	ProductName     string
}

func (r PricingRequest) values() (url.Values, error) {
	if r.ProductType == "" {
		return nil, &InputError{Reason: "users.getPricing requires a product type"}
	}
	v := url.Values{}
	v.Set("ProductType", r.ProductType)
	if r.ProductCategory != "" {
		v.Set("ProductCategory", r.ProductCategory)
	}
	if r.PromotionCode != "" {
		v.Set("PromotionCode", r.PromotionCode)
	}
	if r.ActionName != "" {
		v.Set("ActionName", r.ActionName)
	}
	if r.ProductName != "" {
		v.Set("ProductName", r.ProductName)
	}
	return v, nil
}

// PriceTier is one duration's pricing for a product.
type PriceTier struct {
	Duration     int
	DurationType string
	Price        float64
	RegularPrice float64
	YourPrice    float64
	Currency     string
}

// PricingProduct is one product (e.g. a TLD) and its tiers in document order.
type PricingProduct struct {
	Name  string
	Tiers []PriceTier
}

// PricingCategory is one action category (register, renew, ...) and its
// products in document order.
type PricingCategory struct {
	Name     string
	Products []PricingProduct
}

// PricingResult is the nested price catalog for one product type.
type PricingResult struct {
	ProductType string
	Categories  []PricingCategory
}

type pricingResponse struct {
	Envelope
	Result *struct {
		ProductType *struct {
			Name       string `xml:"Name,attr"`
			Categories []struct {
				Name     string `xml:"Name,attr"`
				Products []struct {
					Name   string `xml:"Name,attr"`
					Prices []struct {
						Duration     string `xml:"Duration,attr"`
						DurationType string `xml:"DurationType,attr"`
						Price        string `xml:"Price,attr"`
						RegularPrice string `xml:"RegularPrice,attr"`
						YourPrice    string `xml:"YourPrice,attr"`
						Currency     string `xml:"Currency,attr"`
					} `xml:"Price"`
				} `xml:"Product"`
			} `xml:"ProductCategory"`
		} `xml:"ProductType"`
	} `xml:"CommandResponse>UserGetPricingResult"`
}

// UsersGetPricing fetches the price catalog for a product type. Category,
// product and tier ordering follows the response document.
func (c *Client) UsersGetPricing(ctx context.Context, req PricingRequest) (*PricingResult, error) {
	params, err := req.values()
	if err != nil {
		return nil, err
	}

	var resp pricingResponse
	if err := c.call(ctx, "namecheap.users.getPricing", params, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, &StructureError{Element: "UserGetPricingResult"}
	}
	if resp.Result.ProductType == nil {
		return nil, &StructureError{Element: "UserGetPricingResult.ProductType"}
	}

	out := &PricingResult{
		ProductType: resp.Result.ProductType.Name,
		Categories:  make([]PricingCategory, 0, len(resp.Result.ProductType.Categories)),
	}
	for _, cat := range resp.Result.ProductType.Categories {
		pc := PricingCategory{
			Name:     cat.Name,
			Products: make([]PricingProduct, 0, len(cat.Products)),
		}
		for _, p := range cat.Products {
			pp := PricingProduct{
				Name:  p.Name,
				Tiers: make([]PriceTier, 0, len(p.Prices)),
			}
			for _, t := range p.Prices {
				pp.Tiers = append(pp.Tiers, PriceTier{
					Duration:     attrInt(t.Duration),
					DurationType: t.DurationType,
					Price:        attrFloat(t.Price),
					RegularPrice: attrFloat(t.RegularPrice),
					YourPrice:    attrFloat(t.YourPrice),
					Currency:     t.Currency,
				})
			}
			pc.Products = append(pc.Products, pp)
		}
		out.Categories = append(out.Categories, pc)
	}
	return out, nil
}
