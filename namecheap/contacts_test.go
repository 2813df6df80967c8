package namecheap

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainsGetContacts_RoundTrip(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "namecheap.domains.getContacts", r.URL.Query().Get("Command"))
		_, _ = w.Write([]byte(okEnvelope(`
<DomainContactsResult Domain="example.com">
  <Registrant ReadOnly="false">
    <OrganizationName>Example Inc</OrganizationName>
    <FirstName>Jane</FirstName>
    <LastName>Doe</LastName>
    <Address1>123 Main Street</Address1>
    <City>New York</City>
    <StateProvince>NY</StateProvince>
    <PostalCode>10001</PostalCode>
    <Country>US</Country>
    <Phone>+1.2125551234</Phone>
    <EmailAddress>jane@example.com</EmailAddress>
  </Registrant>
  <Tech>
    <FirstName>Tom</FirstName>
    <LastName>Ops</LastName>
  </Tech>
  <Admin>
    <FirstName>Ann</FirstName>
    <LastName>Admin</LastName>
  </Admin>
  <AuxBilling>
    <FirstName>Bill</FirstName>
    <LastName>Pay</LastName>
  </AuxBilling>
</DomainContactsResult>`)))
	})

	got, err := c.DomainsGetContacts(context.Background(), "example.com")
	require.NoError(t, err)

	assert.Equal(t, "example.com", got.Domain)
	assert.Equal(t, "Jane", got.Registrant.FirstName)
	assert.Equal(t, "Example Inc", got.Registrant.OrganizationName)
	assert.Equal(t, "jane@example.com", got.Registrant.EmailAddress)
	assert.Equal(t, "Tom", got.Tech.FirstName)
	assert.Equal(t, "Ann", got.Admin.FirstName)
	assert.Equal(t, "Bill", got.AuxBilling.FirstName)
}

func TestDomainsGetContacts_MissingResultIsStructural(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(okEnvelope(``)))
	})

	_, err := c.DomainsGetContacts(context.Background(), "example.com")
	var structErr *StructureError
	require.ErrorAs(t, err, &structErr)
}

func TestDomainsSetContacts_RoundTrip(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "namecheap.domains.setContacts", q.Get("Command"))
		assert.Equal(t, "Jane", q.Get("RegistrantFirstName"))
		assert.Equal(t, "Jane", q.Get("TechFirstName"))
		assert.Equal(t, "Jane", q.Get("AdminFirstName"))
		assert.Equal(t, "Jane", q.Get("AuxBillingFirstName"))
		_, _ = w.Write([]byte(okEnvelope(`<DomainSetContactResult Domain="example.com" IsSuccess="true" />`)))
	})

	got, err := c.DomainsSetContacts(context.Background(), "example.com", AllRoles(testContact()))
	require.NoError(t, err)
	assert.Equal(t, "example.com", got.Domain)
	assert.True(t, got.IsSuccess)
}

func TestDomainsSetContacts_IncompleteContact(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("incomplete contacts must not hit the network")
	})

	ct := testContact()
	ct.EmailAddress = ""

	_, err := c.DomainsSetContacts(context.Background(), "example.com", AllRoles(ct))
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
}
