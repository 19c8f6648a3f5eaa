package handlers

import (
	"net/http"
	"strconv"

	vendorRepo "planora/database/repository/vendor"
	"planora/services/matching"
	"planora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VendorHandler serves the vendor marketplace endpoints.
type VendorHandler struct {
	Service matching.MatchingService
	Repo    vendorRepo.VendorRepository
}

// ListVendorsHandler runs the budget-aware filter over the catalog. All
// filter query params are optional; malformed numeric input deactivates the
// corresponding filter instead of failing the request.
func (h *VendorHandler) ListVendorsHandler(c *gin.Context) {
	filters := matching.Filters{
		Category:  c.Query("category"),
		Location:  c.Query("location"),
		Search:    c.Query("search"),
		MinBudget: parseOptionalFloat(c.Query("minBudget")),
		MaxBudget: parseOptionalFloat(c.Query("maxBudget")),
		MinRating: parseOptionalFloat(c.Query("minRating")),
	}

	result, err := h.Service.MatchVendors(c.Request.Context(), c.Query("eventId"), filters)
	if err != nil {
		utils.GetLogger().Error("Vendor matching failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load vendors", err.Error())
		return
	}

	resp := gin.H{
		"vendors":         result.Vendors,
		"count":           len(result.Vendors),
		"budgetExhausted": result.BudgetExhausted,
	}
	if result.BudgetExhausted {
		resp["message"] = "No vendors in this category fit the event budget. Try adjusting the budget."
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VendorHandler) GetVendorByIDHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing vendor ID in path"})
		return
	}

	vendor, err := h.Repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// parseOptionalFloat coerces form input to an optional float. Invalid
// numbers mean "filter inactive", mirroring permissive UI form handling.
func parseOptionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
