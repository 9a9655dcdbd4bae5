package api_test

import (
	"context"
	"testing"

	"courier/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load(context.Background())
	require.NoError(t, err)

	for _, path := range []string{
		"/parcels", "/parcels/{id}", "/parcels/{id}/assign", "/parcels/{id}/tracking",
		"/create-payment-intent", "/payments", "/tracking",
		"/riders", "/riders/pending", "/riders/active", "/riders/available", "/riders/{id}/status",
		"/users/{email}/role",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}

	secured := doc.Paths.Find("/payments").Post.Security
	require.NotNil(t, secured)
	assert.Len(t, *secured, 1)
}
