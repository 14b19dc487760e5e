package controllers

import (
	"errors"
	"net/http"

	"storefront/kafka"
	"storefront/middleware"
	"storefront/models"
	"storefront/repository"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartController exposes the session cart and the checkout transaction.
type CartController struct {
	carts    repository.CartStore
	catalog  repository.CatalogStore
	users    repository.UserDirectory
	engine   *services.CartService
	producer *kafka.Producer
	persist  *Persister
}

func NewCartController(
	carts repository.CartStore,
	catalog repository.CatalogStore,
	users repository.UserDirectory,
	engine *services.CartService,
	producer *kafka.Producer,
	persist *Persister,
) *CartController {
	return &CartController{
		carts:    carts,
		catalog:  catalog,
		users:    users,
		engine:   engine,
		producer: producer,
		persist:  persist,
	}
}

func (cc *CartController) currentCart(c *gin.Context, userID string) (*models.Cart, bool) {
	cart, err := cc.carts.GetCart(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("Failed to load cart", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get cart"})
		return nil, false
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
	}
	return cart, true
}

func (cc *CartController) saveCart(c *gin.Context, cart *models.Cart) bool {
	if err := cc.carts.SaveCart(c.Request.Context(), cart); err != nil {
		zap.L().Error("Failed to save cart", zap.String("user_id", cart.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return false
	}
	return true
}

// GetCart returns the current cart for the session user.
func (cc *CartController) GetCart(c *gin.Context) {
	session := middleware.GetSession(c)
	cart, ok := cc.currentCart(c, session.UserID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cart)
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// AddItem puts one unit of the product into the cart. The line snapshot is
// refreshed from the catalog; stock is not checked until checkout.
func (cc *CartController) AddItem(c *gin.Context) {
	session := middleware.GetSession(c)

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	product, err := cc.catalog.Get(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	cart, ok := cc.currentCart(c, session.UserID)
	if !ok {
		return
	}

	cart = services.AddToCart(cart, product)
	if !cc.saveCart(c, cart) {
		return
	}
	c.JSON(http.StatusOK, cart)
}

type updateItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Delta     int    `json:"delta" binding:"required"`
}

// UpdateItem adjusts a line's quantity by a signed delta, never below 1.
func (cc *CartController) UpdateItem(c *gin.Context) {
	session := middleware.GetSession(c)

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	cart, ok := cc.currentCart(c, session.UserID)
	if !ok {
		return
	}

	cart = services.UpdateQuantity(cart, req.ProductID, req.Delta)
	if !cc.saveCart(c, cart) {
		return
	}
	c.JSON(http.StatusOK, cart)
}

// RemoveItem drops a line from the cart; removing an unknown id is a no-op.
func (cc *CartController) RemoveItem(c *gin.Context) {
	session := middleware.GetSession(c)
	productID := c.Param("product_id")

	cart, ok := cc.currentCart(c, session.UserID)
	if !ok {
		return
	}

	cart = services.RemoveFromCart(cart, productID)
	if !cc.saveCart(c, cart) {
		return
	}
	c.JSON(http.StatusOK, cart)
}

// ClearCart removes all items from the cart.
func (cc *CartController) ClearCart(c *gin.Context) {
	session := middleware.GetSession(c)

	if err := cc.carts.DeleteCart(c.Request.Context(), session.UserID); err != nil {
		zap.L().Error("Failed to clear cart", zap.String("user_id", session.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

// Checkout converts the cart into a sale, decrements stock, persists both
// records and empties the cart. Guests cannot check out.
func (cc *CartController) Checkout(c *gin.Context) {
	session := middleware.GetSession(c)

	user, err := cc.users.Get(session.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}

	cart, ok := cc.currentCart(c, session.UserID)
	if !ok {
		return
	}

	sale, err := cc.engine.Checkout(cart, &user)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoActingUser):
			c.JSON(http.StatusForbidden, gin.H{"error": "checkout requires a signed-in, non-guest user"})
		case errors.Is(err, services.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		default:
			zap.L().Error("Checkout failed", zap.String("user_id", session.UserID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
		}
		return
	}

	ctx := c.Request.Context()
	cc.persist.SaveProducts(ctx)
	cc.persist.SaveSales(ctx)

	// Best-effort: the sale stands even if the event or the cart cleanup
	// fails.
	_ = cc.producer.SendSaleEvent(ctx, *sale)
	if err := cc.carts.DeleteCart(ctx, session.UserID); err != nil {
		zap.L().Warn("Failed to clear cart after checkout", zap.String("user_id", session.UserID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"sale": sale,
		"cart": models.Cart{UserID: session.UserID, Items: []models.CartItem{}},
	})
}
