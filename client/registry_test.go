package client_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sultanrasulov/weather-sdk/client"
)

func TestRegistryCreateAndGet(t *testing.T) {
	fp := newFakeProvider()
	defer fp.Close()

	reg := client.NewRegistry()
	defer reg.DestroyAll()

	c, err := reg.Create("key-one", client.WithBaseURL(fp.URL))
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Equal(t, 1, reg.Len())

	require.Same(t, c, reg.Get("key-one"))

	// Keys differing only in case address the same client.
	require.Same(t, c, reg.Get("KEY-ONE"))
	_, err = reg.Create("KEY-ONE", client.WithBaseURL(fp.URL))
	require.ErrorIs(t, err, client.ErrExists)

	c2, err := reg.Create("key-two", client.WithBaseURL(fp.URL))
	require.NoError(t, err)
	require.NotSame(t, c, c2)
	require.Equal(t, 2, reg.Len())

	require.Nil(t, reg.Get("unregistered"))
}

func TestRegistryBlankKey(t *testing.T) {
	reg := client.NewRegistry()

	_, err := reg.Create("   ")
	require.ErrorContains(t, err, "api key must not be blank")
	require.Nil(t, reg.Get("   "))
	reg.Destroy("   ")
	require.Equal(t, 0, reg.Len())
}

func TestRegistryDestroy(t *testing.T) {
	fp := newFakeProvider()
	defer fp.Close()

	reg := client.NewRegistry()
	c, err := reg.Create("key-one", client.WithBaseURL(fp.URL))
	require.NoError(t, err)

	reg.Destroy("key-one")
	require.Equal(t, 0, reg.Len())
	require.Nil(t, reg.Get("key-one"))
	require.True(t, c.IsClosed())

	// Destroying an unregistered key is a no-op.
	reg.Destroy("key-one")

	// The key is free for a new client.
	c2, err := reg.Create("key-one", client.WithBaseURL(fp.URL))
	require.NoError(t, err)
	require.NotSame(t, c, c2)
	reg.Destroy("key-one")
}

func TestRegistryDestroyAll(t *testing.T) {
	fp := newFakeProvider()
	defer fp.Close()

	reg := client.NewRegistry()
	c1, err := reg.Create("key-one", client.WithBaseURL(fp.URL))
	require.NoError(t, err)
	c2, err := reg.Create("key-two", client.WithBaseURL(fp.URL))
	require.NoError(t, err)

	reg.DestroyAll()
	require.Equal(t, 0, reg.Len())
	require.True(t, c1.IsClosed())
	require.True(t, c2.IsClosed())

	// Safe to call again on an empty registry.
	reg.DestroyAll()
}
