package controllers

import (
	"errors"
	"net/http"

	"storefront/models"
	"storefront/repository"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

// ProductController serves the public catalog listing and the admin
// inventory operations.
type ProductController struct {
	catalog  *services.CatalogService
	insights *services.InsightService
	persist  *Persister
}

func NewProductController(catalog *services.CatalogService, insights *services.InsightService, persist *Persister) *ProductController {
	return &ProductController{catalog: catalog, insights: insights, persist: persist}
}

// ListProducts returns the full catalog. The storefront renders every
// product; filtering happens client-side.
func (pc *ProductController) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": pc.catalog.ListProducts()})
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if product.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if product.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}

	created := pc.catalog.CreateProduct(product)
	pc.persist.SaveProducts(c.Request.Context())
	c.JSON(http.StatusCreated, created)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if product.Price < 0 || product.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price and stock must not be negative"})
		return
	}

	updated, err := pc.catalog.UpdateProduct(id, product)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}

	pc.persist.SaveProducts(c.Request.Context())
	c.JSON(http.StatusOK, updated)
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := pc.catalog.DeleteProduct(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}

	pc.persist.SaveProducts(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// DescribeProduct asks the text-generation service for fresh marketing copy
// for an existing product. The copy is returned, not written back; saving
// is the admin's call.
func (pc *ProductController) DescribeProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := pc.catalog.GetProduct(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	description := pc.insights.ProductDescription(c.Request.Context(), product.Name, product.Category)
	c.JSON(http.StatusOK, gin.H{"description": description})
}
