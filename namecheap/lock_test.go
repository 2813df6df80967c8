package namecheap

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainsGetRegistrarLock(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "namecheap.domains.getRegistrarLock", r.URL.Query().Get("Command"))
		_, _ = w.Write([]byte(okEnvelope(`<DomainGetRegistrarLockResult Domain="example.com" RegistrarLockStatus="true" />`)))
	})

	locked, err := c.DomainsGetRegistrarLock(context.Background(), "example.com")
	require.NoError(t, err)
	assert.True(t, locked)
}

func TestDomainsGetRegistrarLock_MissingStatusIsFatal(t *testing.T) {
	t.Parallel()

	// The lock status is the sole purpose of the call: unlike other
	// attributes it does not default when absent.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(okEnvelope(`<DomainGetRegistrarLockResult Domain="example.com" />`)))
	})

	_, err := c.DomainsGetRegistrarLock(context.Background(), "example.com")
	var structErr *StructureError
	require.ErrorAs(t, err, &structErr)
}

func TestDomainsSetRegistrarLock(t *testing.T) {
	t.Parallel()

	var action string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		action = r.URL.Query().Get("LockAction")
		_, _ = w.Write([]byte(okEnvelope(`<DomainSetRegistrarLockResult Domain="example.com" IsSuccess="true" />`)))
	})

	got, err := c.DomainsSetRegistrarLock(context.Background(), "example.com", true)
	require.NoError(t, err)
	assert.True(t, got.IsSuccess)
	assert.Equal(t, "LOCK", action)

	_, err = c.DomainsSetRegistrarLock(context.Background(), "example.com", false)
	require.NoError(t, err)
	assert.Equal(t, "UNLOCK", action)
}
