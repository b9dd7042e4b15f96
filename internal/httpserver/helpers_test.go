package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dkotelnikov/shop-backend/internal/hash"
	"github.com/dkotelnikov/shop-backend/internal/models"
	"github.com/dkotelnikov/shop-backend/internal/repo"
	"github.com/dkotelnikov/shop-backend/internal/service"
	"github.com/dkotelnikov/shop-backend/internal/tokens"
	"github.com/dkotelnikov/shop-backend/internal/validation"
)

var testJWTSecret = []byte("test-jwt-secret")

type testEnv struct {
	T    *testing.T
	E    *echo.Echo
	Repo *repo.GormRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to in-memory db")
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.User{}, &models.UploadedFile{}),
		"failed to migrate tables")

	r := repo.New(db)

	e := echo.New()
	e.Validator = validation.New()

	Register(e, &Deps{
		ProductHandler: &ProductHTTP{Svc: &service.CatalogService{Repo: r}},
		AuthHandler:    &AuthHTTP{Svc: &service.AccountService{Repo: r}, JWTSecret: testJWTSecret},
		CartHandler:    &CartHTTP{Svc: &service.CartService{Repo: r}},
		UploadHandler:  &UploadHTTP{Store: newTestStore(t, r)},
		JWTSecret:      testJWTSecret,
	})

	return &testEnv{T: t, E: e, Repo: r}
}

func (env *testEnv) doJSON(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) seedProducts(n int) {
	env.T.Helper()
	svc := service.CatalogService{Repo: env.Repo}
	for i := 1; i <= n; i++ {
		p := models.Product{
			Brand:       "test_brand",
			Name:        fmt.Sprintf("product_%d", i),
			Description: "test_description",
			Image:       "http://localhost/images/p.png",
			Category:    "women",
			NewPrice:    10,
			OldPrice:    20,
		}
		require.NoError(env.T, svc.AddProduct(context.Background(), &p))
	}
}

func (env *testEnv) seedAdmin(email, password string) {
	env.T.Helper()
	passwordHash, err := hash.HashPassword(password)
	require.NoError(env.T, err)
	require.NoError(env.T, env.Repo.CreateUser(context.Background(), &models.User{
		Name:         "admin",
		Email:        email,
		PasswordHash: passwordHash,
		Role:         "admin",
		Cart:         models.CartData{},
	}))
}

func (env *testEnv) signup(email string) string {
	env.T.Helper()
	rec := env.doJSON(http.MethodPost, "/signup", map[string]string{
		"username": "test_user",
		"email":    email,
		"password": "password",
	}, nil)
	require.Equal(env.T, http.StatusOK, rec.Code)
	return tokenFrom(env.T, rec)
}

func (env *testEnv) login(email, password string) string {
	env.T.Helper()
	rec := env.doJSON(http.MethodPost, "/login", map[string]string{
		"email":    email,
		"password": password,
	}, nil)
	require.Equal(env.T, http.StatusOK, rec.Code)
	return tokenFrom(env.T, rec)
}

func tokenFrom(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func authHeader(token string) map[string]string {
	return map[string]string{"auth-token": token}
}

// signedToken mints a token directly, bypassing the API, for middleware
// tests.
func signedToken(t *testing.T, userID uint, role string) string {
	t.Helper()
	token, err := tokens.Sign(userID, role, testJWTSecret)
	require.NoError(t, err)
	return token
}
