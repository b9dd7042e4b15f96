package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkotelnikov/shop-backend/internal/middleware/authmw"
)

type Deps struct {
	ProductHandler *ProductHTTP
	AuthHandler    *AuthHTTP
	CartHandler    *CartHTTP
	UploadHandler  *UploadHTTP
	JWTSecret      []byte
}

// Register wires the legacy storefront routes. Paths and bodies are the
// wire contract of the existing frontend and must not change shape.
func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Shop backend is running")
	})

	e.POST("/upload", d.UploadHandler.Upload)
	e.GET("/images/:filename", d.UploadHandler.Serve)

	e.GET("/allproducts", d.ProductHandler.AllProducts)
	e.GET("/newcollections", d.ProductHandler.NewCollections)
	e.GET("/popularinwomen", d.ProductHandler.PopularInWomen)

	e.POST("/signup", d.AuthHandler.Signup)
	e.POST("/login", d.AuthHandler.Login)

	admin := e.Group("", authmw.RequireToken(d.JWTSecret), authmw.AdminOnly)
	admin.POST("/addproduct", d.ProductHandler.AddProduct)
	admin.POST("/removeproduct", d.ProductHandler.RemoveProduct)

	carts := e.Group("", authmw.RequireToken(d.JWTSecret))
	carts.POST("/addtocart", d.CartHandler.AddToCart)
	carts.POST("/getcart", d.CartHandler.GetCart)
	carts.POST("/removefromcart", d.CartHandler.RemoveFromCart)
}
