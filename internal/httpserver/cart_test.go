package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/golden_sneaker/internal/models"
	"github.com/Skotchmaster/golden_sneaker/internal/transport"
)

func (env *testEnv) addCartItem(productID, count int) int {
	env.T.Helper()
	rec := env.doJSONRequest(http.MethodPost, "/cart-items", map[string]int{"product_id": productID, "count": count})
	require.Equal(env.T, http.StatusCreated, rec.Code)
	created := decode[transport.CreatedResponse](env.T, rec)
	assert.Equal(env.T, "Cart item created successfully", created.Message)
	return created.ID
}

func TestCreateAndGetCartItem(t *testing.T) {
	env := newTestEnv(t)

	id := env.addCartItem(3, 2)

	rec := env.doJSONRequest(http.MethodGet, fmt.Sprintf("/cart-items/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.CartItem{ID: id, Count: 2, ProductID: 3}, decode[models.CartItem](t, rec))

	rec = env.doJSONRequest(http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`[{"id":%d,"count":2,"product_id":3}]`, id), rec.Body.String())
}

func TestGetCartItem_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(http.MethodGet, "/cart-items/9", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Cart item not found"}`, rec.Body.String())
}

func TestCreateCartItem_MissingCount(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(http.MethodPost, "/cart-items", map[string]int{"product_id": 1})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"missing required fields","missing":["count"]}`, rec.Body.String())
}

func TestCreateCartItem_EmptyBody(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(http.MethodPost, "/cart-items", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"missing required fields","missing":["product_id","count"]}`, rec.Body.String())
}

func TestUpdateCartItems_AllRowsForProduct(t *testing.T) {
	env := newTestEnv(t)

	env.addCartItem(1, 1)
	env.addCartItem(1, 2)
	env.addCartItem(2, 3)

	rec := env.doJSONRequest(http.MethodPut, "/cart-items", map[string]int{"product_id": 1, "count": 10})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Cart item updated successfully"}`, rec.Body.String())

	items := decode[[]models.CartItem](t, env.doJSONRequest(http.MethodGet, "/cart", nil))
	require.Len(t, items, 3)
	for _, it := range items {
		if it.ProductID == 1 {
			assert.Equal(t, 10, it.Count)
		} else {
			assert.Equal(t, 3, it.Count)
		}
	}
}

func TestUpdateCartItems_NoMatchStillSucceeds(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(http.MethodPut, "/cart-items", map[string]int{"product_id": 404, "count": 1})
	require.Equal(t, http.StatusOK, rec.Code)

	items := decode[[]models.CartItem](t, env.doJSONRequest(http.MethodGet, "/cart", nil))
	assert.Empty(t, items)
}

func TestUpdateCartItems_MissingProductID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(http.MethodPut, "/cart-items", map[string]int{"count": 1})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"missing required fields","missing":["product_id"]}`, rec.Body.String())
}

func TestDeleteCartItems_AllRowsForProduct(t *testing.T) {
	env := newTestEnv(t)

	env.addCartItem(1, 1)
	env.addCartItem(1, 2)
	keep := env.addCartItem(2, 3)

	rec := env.doJSONRequest(http.MethodDelete, "/cart-items/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Cart item deleted successfully"}`, rec.Body.String())

	items := decode[[]models.CartItem](t, env.doJSONRequest(http.MethodGet, "/cart", nil))
	require.Len(t, items, 1)
	assert.Equal(t, keep, items[0].ID)

	last := env.Events.events[len(env.Events.events)-1]
	assert.Equal(t, "cart_items_deleted", last["type"])
	assert.EqualValues(t, 2, last["rows"])
}

func TestDeleteCartItems_InvalidProductID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(http.MethodDelete, "/cart-items/x", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
