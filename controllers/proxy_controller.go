package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/COMS4153EcommerceProject/Composite-microservice/clients"
)

// ProxyController re-exposes the atomic services' CRUD endpoints. Each
// handler performs a single upstream call and copies the response through
// verbatim, query string and status code included.
type ProxyController struct {
	user    *clients.Upstream
	product *clients.Upstream
	order   *clients.Upstream
}

func NewProxyController(user, product, order *clients.Upstream) *ProxyController {
	return &ProxyController{user: user, product: product, order: order}
}

// forward builds a pass-through handler. pathFn maps the inbound request to
// the upstream path, letting routes splice in path parameters.
func forward(up *clients.Upstream, method string, pathFn func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := clients.ReadJSONBody(c.Request)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		resp, err := up.Do(c.Request.Context(), method, pathFn(c), c.Request.URL.Query(), c.Request.Header, clients.BodyFromBytes(body))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "upstream request failed"})
			return
		}

		if err := clients.CopyResponse(c.Writer, resp); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to read upstream response"})
			return
		}
	}
}

func static(path string) func(*gin.Context) string {
	return func(*gin.Context) string { return path }
}

func param(prefix, name string) func(*gin.Context) string {
	return func(c *gin.Context) string { return prefix + c.Param(name) }
}

// ── User Service ──

func (p *ProxyController) CreateUser() gin.HandlerFunc {
	return forward(p.user, http.MethodPost, static("/users"))
}

func (p *ProxyController) ListUsers() gin.HandlerFunc {
	return forward(p.user, http.MethodGet, static("/users"))
}

func (p *ProxyController) GetUser() gin.HandlerFunc {
	return forward(p.user, http.MethodGet, param("/users/", "user_id"))
}

func (p *ProxyController) UpdateUser() gin.HandlerFunc {
	return forward(p.user, http.MethodPatch, param("/users/", "user_id"))
}

func (p *ProxyController) DeleteUser() gin.HandlerFunc {
	return forward(p.user, http.MethodDelete, param("/users/", "user_id"))
}

func (p *ProxyController) CreateAddress() gin.HandlerFunc {
	return forward(p.user, http.MethodPost, static("/addresses"))
}

func (p *ProxyController) ListAddresses() gin.HandlerFunc {
	return forward(p.user, http.MethodGet, static("/addresses"))
}

func (p *ProxyController) GetAddress() gin.HandlerFunc {
	return forward(p.user, http.MethodGet, param("/addresses/", "address_id"))
}

func (p *ProxyController) UpdateAddress() gin.HandlerFunc {
	return forward(p.user, http.MethodPatch, param("/addresses/", "address_id"))
}

func (p *ProxyController) DeleteAddress() gin.HandlerFunc {
	return forward(p.user, http.MethodDelete, param("/addresses/", "address_id"))
}

func (p *ProxyController) CreatePreference() gin.HandlerFunc {
	return forward(p.user, http.MethodPost, static("/preferences"))
}

func (p *ProxyController) ListPreferences() gin.HandlerFunc {
	return forward(p.user, http.MethodGet, static("/preferences"))
}

func (p *ProxyController) GetPreference() gin.HandlerFunc {
	return forward(p.user, http.MethodGet, param("/preferences/", "user_id"))
}

func (p *ProxyController) UpdatePreference() gin.HandlerFunc {
	return forward(p.user, http.MethodPatch, param("/preferences/", "user_id"))
}

func (p *ProxyController) DeletePreference() gin.HandlerFunc {
	return forward(p.user, http.MethodDelete, param("/preferences/", "user_id"))
}

func (p *ProxyController) GetUserAddress() gin.HandlerFunc {
	return forward(p.user, http.MethodGet, userAddressPath)
}

func (p *ProxyController) DeleteUserAddress() gin.HandlerFunc {
	return forward(p.user, http.MethodDelete, userAddressPath)
}

func userAddressPath(c *gin.Context) string {
	return "/user_addresses/" + c.Param("user_id") + "/" + c.Param("addr_id")
}

// ── Product Service ──

func (p *ProxyController) CreateProduct() gin.HandlerFunc {
	return forward(p.product, http.MethodPost, static("/products"))
}

func (p *ProxyController) ListProducts() gin.HandlerFunc {
	return forward(p.product, http.MethodGet, static("/products"))
}

func (p *ProxyController) GetProduct() gin.HandlerFunc {
	return forward(p.product, http.MethodGet, param("/products/", "product_id"))
}

func (p *ProxyController) GetProductInventory() gin.HandlerFunc {
	return forward(p.product, http.MethodGet, func(c *gin.Context) string {
		return "/products/" + c.Param("product_id") + "/inventory"
	})
}

// ── Order Service ──

func (p *ProxyController) GetOrder() gin.HandlerFunc {
	return forward(p.order, http.MethodGet, param("/orders/", "order_id"))
}
