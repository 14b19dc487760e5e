package controllers

import (
	"net/http"

	"storefront/repository"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

// AdminController serves the financials and users tabs of the admin console.
type AdminController struct {
	reporting *services.ReportingService
	insights  *services.InsightService
	users     repository.UserDirectory
}

func NewAdminController(reporting *services.ReportingService, insights *services.InsightService, users repository.UserDirectory) *AdminController {
	return &AdminController{reporting: reporting, insights: insights, users: users}
}

// Financials returns the revenue summary and grouped series.
func (ac *AdminController) Financials(c *gin.Context) {
	c.JSON(http.StatusOK, ac.reporting.Report())
}

// Insight returns AI commentary over the sales ledger.
func (ac *AdminController) Insight(c *gin.Context) {
	insight := ac.insights.BusinessInsight(c.Request.Context(), ac.reporting.ListSales())
	c.JSON(http.StatusOK, gin.H{"insight": insight})
}

// ListUsers returns the full user directory.
func (ac *AdminController) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"users": ac.users.List()})
}

// ListSales returns the ledger in insertion order.
func (ac *AdminController) ListSales(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sales": ac.reporting.ListSales()})
}
