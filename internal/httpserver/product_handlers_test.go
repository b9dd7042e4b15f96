package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkotelnikov/shop-backend/internal/models"
)

func addProductBody(name string) map[string]interface{} {
	return map[string]interface{}{
		"brand":       "test_brand",
		"name":        name,
		"description": "test_description",
		"image":       "http://localhost/images/p.png",
		"category":    "women",
		"new_price":   10.5,
		"old_price":   20.5,
	}
}

func TestAddProduct_AsAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.seedAdmin("admin@x.com", "admin_password")
	token := env.login("admin@x.com", "admin_password")

	rec := env.doJSON(http.MethodPost, "/addproduct", addProductBody("jacket"), authHeader(token))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "jacket", resp["name"])

	rec = env.doJSON(http.MethodGet, "/allproducts", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].ID)
	assert.Equal(t, "jacket", items[0].Name)
}

func TestAddProduct_MissingField(t *testing.T) {
	env := newTestEnv(t)
	env.seedAdmin("admin@x.com", "admin_password")
	token := env.login("admin@x.com", "admin_password")

	body := addProductBody("jacket")
	delete(body, "category")

	rec := env.doJSON(http.MethodPost, "/addproduct", body, authHeader(token))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductWrites_RequireAdminRole(t *testing.T) {
	env := newTestEnv(t)
	userToken := env.signup("user@x.com")

	rec := env.doJSON(http.MethodPost, "/addproduct", addProductBody("jacket"), authHeader(userToken))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.doJSON(http.MethodPost, "/removeproduct", map[string]int{"id": 1}, authHeader(userToken))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProductWrites_RequireToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodPost, "/addproduct", addProductBody("jacket"), nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRemoveProduct(t *testing.T) {
	env := newTestEnv(t)
	env.seedProducts(2)
	env.seedAdmin("admin@x.com", "admin_password")
	token := env.login("admin@x.com", "admin_password")

	rec := env.doJSON(http.MethodPost, "/removeproduct",
		map[string]interface{}{"id": 1, "name": "product_1"}, authHeader(token))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "product_1", resp["name"])

	rec = env.doJSON(http.MethodGet, "/allproducts", nil, nil)
	var items []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, uint(2), items[0].ID)
}

func TestRemoveProduct_MissingIDIsSilent(t *testing.T) {
	env := newTestEnv(t)
	env.seedProducts(1)
	env.seedAdmin("admin@x.com", "admin_password")
	token := env.login("admin@x.com", "admin_password")

	rec := env.doJSON(http.MethodPost, "/removeproduct",
		map[string]interface{}{"id": 42}, authHeader(token))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}

func TestPopularInWomen_FirstFour(t *testing.T) {
	env := newTestEnv(t)
	env.seedProducts(5) // all seeded in the "women" category

	rec := env.doJSON(http.MethodGet, "/popularinwomen", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 4)
	for i, p := range items {
		assert.Equal(t, uint(i+1), p.ID)
	}
}

func TestNewCollections(t *testing.T) {
	env := newTestEnv(t)
	env.seedProducts(12)

	rec := env.doJSON(http.MethodGet, "/newcollections", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 8)
	assert.Equal(t, uint(5), items[0].ID)
	assert.Equal(t, uint(12), items[7].ID)
}

func TestLiveness(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}
