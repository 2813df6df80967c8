package namecheap

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainsCheck_RoundTrip(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "namecheap.domains.check", r.URL.Query().Get("Command"))
		assert.Equal(t, "example.com", r.URL.Query().Get("DomainList"))
		_, _ = w.Write([]byte(okEnvelope(
			`<DomainCheckResult Domain="example.com" Available="true" IsPremiumName="false" IcannFee="0.18" PremiumRegistrationPrice="0" />`)))
	})

	got, err := c.DomainsCheck(context.Background(), "example.com")
	require.NoError(t, err)
	require.Len(t, got.Domains, 1)

	d := got.Domains[0]
	assert.Equal(t, "example.com", d.Domain)
	assert.True(t, d.Available)
	assert.False(t, d.IsPremiumName)
	assert.Equal(t, 0.18, d.IcannFee)
	assert.Equal(t, 0.0, d.PremiumRegistrationPrice)
	assert.Empty(t, got.Dropped)
}

func TestDomainsCheck_SingleRequestPerBatch(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		names := strings.Split(r.URL.Query().Get("DomainList"), ",")
		var sb strings.Builder
		for _, n := range names {
			fmt.Fprintf(&sb, `<DomainCheckResult Domain=%q Available="true" />`, n)
		}
		_, _ = w.Write([]byte(okEnvelope(sb.String())))
	})

	names := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		names = append(names, fmt.Sprintf("site%02d.com", i))
	}

	got, err := c.DomainsCheck(context.Background(), names...)
	require.NoError(t, err)
	assert.Equal(t, int64(1), requests.Load())
	assert.Len(t, got.Domains, 50)
}

func TestDomainsCheck_BatchLimits(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	})

	var inputErr *InputError

	_, err := c.DomainsCheck(context.Background())
	require.ErrorAs(t, err, &inputErr)

	names := make([]string, 51)
	for i := range names {
		names[i] = fmt.Sprintf("site%02d.com", i)
	}
	_, err = c.DomainsCheck(context.Background(), names...)
	require.ErrorAs(t, err, &inputErr)

	assert.Equal(t, int64(0), requests.Load(), "rejected batches must not hit the network")
}

func TestDomainsCheck_DropsInvalidNames(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "good.com,also-good.org", r.URL.Query().Get("DomainList"))
		_, _ = w.Write([]byte(okEnvelope(
			`<DomainCheckResult Domain="good.com" Available="true" />` +
				`<DomainCheckResult Domain="also-good.org" Available="false" />`)))
	})

	longLabel := strings.Repeat("x", 300) + ".com"
	got, err := c.DomainsCheck(context.Background(), "good.com", "a", "", "also-good.org", longLabel)
	require.NoError(t, err)

	assert.Len(t, got.Domains, 2)
	assert.Equal(t, []string{"a", "", longLabel}, got.Dropped)
}

func TestDomainsCheck_AllInvalidSkipsNetwork(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	})

	got, err := c.DomainsCheck(context.Background(), "a", "", "no_good")
	require.NoError(t, err)
	assert.Empty(t, got.Domains)
	assert.Equal(t, []string{"a", "", "no_good"}, got.Dropped)
	assert.Equal(t, int64(0), requests.Load())
}

func TestDomainsCheck_NormalizesAndDeduplicates(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "example.com", r.URL.Query().Get("DomainList"))
		_, _ = w.Write([]byte(okEnvelope(`<DomainCheckResult Domain="example.com" Available="true" />`)))
	})

	got, err := c.DomainsCheck(context.Background(), "Example.COM", "example.com.")
	require.NoError(t, err)
	assert.Len(t, got.Domains, 1)
}

func TestDomainsCheck_MissingCommandResponse(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<ApiResponse Status="OK"><Errors /></ApiResponse>`))
	})

	_, err := c.DomainsCheck(context.Background(), "example.com")
	var structErr *StructureError
	require.ErrorAs(t, err, &structErr)
}
