package namecheap

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersGetPricing_PreservesCatalogOrder(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "namecheap.users.getPricing", q.Get("Command"))
		assert.Equal(t, "DOMAIN", q.Get("ProductType"))
		_, _ = w.Write([]byte(okEnvelope(`
<UserGetPricingResult>
  <ProductType Name="domains">
    <ProductCategory Name="register">
      <Product Name="com">
        <Price Duration="1" DurationType="YEAR" Price="10.87" RegularPrice="11.98" YourPrice="10.87" Currency="USD" />
        <Price Duration="2" DurationType="YEAR" Price="21.74" RegularPrice="23.96" YourPrice="21.74" Currency="USD" />
      </Product>
    </ProductCategory>
    <ProductCategory Name="renew">
      <Product Name="com">
        <Price Duration="1" DurationType="YEAR" Price="12.99" RegularPrice="13.50" YourPrice="12.99" Currency="USD" />
        <Price Duration="2" DurationType="YEAR" Price="25.98" RegularPrice="27.00" YourPrice="25.98" Currency="USD" />
      </Product>
    </ProductCategory>
  </ProductType>
</UserGetPricingResult>`)))
	})

	got, err := c.UsersGetPricing(context.Background(), PricingRequest{ProductType: "DOMAIN"})
	require.NoError(t, err)

	assert.Equal(t, "domains", got.ProductType)
	require.Len(t, got.Categories, 2)
	assert.Equal(t, "register", got.Categories[0].Name)
	assert.Equal(t, "renew", got.Categories[1].Name)

	require.Len(t, got.Categories[0].Products, 1)
	reg := got.Categories[0].Products[0]
	assert.Equal(t, "com", reg.Name)
	require.Len(t, reg.Tiers, 2)
	assert.Equal(t, PriceTier{
		Duration:     1,
		DurationType: "YEAR",
		Price:        10.87,
		RegularPrice: 11.98,
		YourPrice:    10.87,
		Currency:     "USD",
	}, reg.Tiers[0])
	assert.Equal(t, 2, reg.Tiers[1].Duration)
	assert.Equal(t, 21.74, reg.Tiers[1].Price)

	renew := got.Categories[1].Products[0]
	require.Len(t, renew.Tiers, 2)
	assert.Equal(t, 12.99, renew.Tiers[0].Price)
	assert.Equal(t, 25.98, renew.Tiers[1].Price)
}

func TestUsersGetPricing_RequiresProductType(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("missing product type must not hit the network")
	})

	_, err := c.UsersGetPricing(context.Background(), PricingRequest{})
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
}

func TestUsersGetPricing_MissingResultIsStructural(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(okEnvelope(``)))
	})

	_, err := c.UsersGetPricing(context.Background(), PricingRequest{ProductType: "DOMAIN"})
	var structErr *StructureError
	require.ErrorAs(t, err, &structErr)
}

func TestDomainsGetTldList_PreservesOrder(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(okEnvelope(`
<Tlds>
  <Tld Name="com" NonRealTime="false" MinRegisterYears="1" MaxRegisterYears="10" IsApiRegisterable="true" IsApiRenewable="true" IsEppRequired="true" Type="GTLD" Category="A">Most recognized TLD</Tld>
  <Tld Name="dev" NonRealTime="false" MinRegisterYears="1" MaxRegisterYears="10" IsApiRegisterable="true" IsApiRenewable="true" IsEppRequired="true" Type="GTLD" Category="A">For developers</Tld>
  <Tld Name="co.uk" NonRealTime="true" MinRegisterYears="2" MaxRegisterYears="2" IsApiRegisterable="false" IsApiRenewable="false" IsEppRequired="false" Type="CCTLD" Category="B">United Kingdom</Tld>
</Tlds>`)))
	})

	got, err := c.DomainsGetTldList(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Tlds, 3)
	assert.False(t, got.RetrievedAt.IsZero())

	assert.Equal(t, []string{"com", "dev", "co.uk"}, []string{got.Tlds[0].Name, got.Tlds[1].Name, got.Tlds[2].Name})
	assert.Equal(t, "Most recognized TLD", got.Tlds[0].Description)
	assert.True(t, got.Tlds[0].IsApiRegisterable)
	assert.Equal(t, "CCTLD", got.Tlds[2].Type)
	assert.True(t, got.Tlds[2].NonRealTime)
	assert.Equal(t, 2, got.Tlds[2].MinRegisterYears)
	assert.False(t, got.Tlds[2].IsApiRegisterable)
}
