package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseFault_GenericInternalError(t *testing.T) {
	env := newTestEnv(t)

	sqlDB, err := env.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	cases := []struct {
		method, path string
		body         any
		message      string
	}{
		{http.MethodPost, "/products", shoe, "cannot add product to db"},
		{http.MethodGet, "/products", nil, "cannot get products"},
		{http.MethodGet, "/products/1", nil, "cannot get product"},
		{http.MethodPut, "/products/1", shoe, "cannot update product in db"},
		{http.MethodDelete, "/products/1", nil, "cannot delete product from db"},
		{http.MethodPost, "/cart-items", map[string]int{"product_id": 1, "count": 1}, "cannot add cart item to db"},
		{http.MethodGet, "/cart", nil, "cannot get cart"},
		{http.MethodGet, "/cart-items/1", nil, "cannot get cart item"},
		{http.MethodPut, "/cart-items", map[string]int{"product_id": 1, "count": 2}, "cannot update cart items"},
		{http.MethodDelete, "/cart-items/1", nil, "cannot delete cart items"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := env.doJSONRequest(tc.method, tc.path, tc.body)
			require.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"message":"`+tc.message+`"}`, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "closed")
		})
	}

	assert.Empty(t, env.Events.events)
}
