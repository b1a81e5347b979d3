package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/COMS4153EcommerceProject/Composite-microservice/models"
	"github.com/COMS4153EcommerceProject/Composite-microservice/services"
)

// CompositeController exposes the orchestrated endpoints: the checkout saga,
// the synchronous order summary, and the async report operations.
type CompositeController struct {
	checkout services.CheckoutService
	summary  services.SummaryService
	reports  services.ReportService
	idem     services.IdempotencyStore // nil when Redis is not configured
}

func NewCompositeController(checkout services.CheckoutService, summary services.SummaryService, reports services.ReportService, idem services.IdempotencyStore) *CompositeController {
	return &CompositeController{checkout: checkout, summary: summary, reports: reports, idem: idem}
}

func (cc *CompositeController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (cc *CompositeController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Composite service ready. Orchestrating User/Order/Product."})
}

// Checkout handles POST /composite/users/:user_id/checkout.
func (cc *CompositeController) Checkout(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	idemKey := c.GetHeader("Idempotency-Key")
	if idemKey != "" && cc.idem != nil {
		if cached, ok := cc.idem.Get(c.Request.Context(), idemKey); ok {
			c.Data(http.StatusCreated, "application/json", cached)
			return
		}
	}

	result, serr := cc.checkout.Checkout(c.Request.Context(), userID, req.Items)
	if serr != nil {
		c.JSON(serr.StatusCode, gin.H{"error": serr.Message})
		return
	}

	if idemKey != "" && cc.idem != nil {
		if body, err := json.Marshal(result); err == nil {
			cc.idem.Save(c.Request.Context(), idemKey, body)
		}
	}

	c.JSON(http.StatusCreated, result)
}

// OrderSummary handles GET /composite/users/:user_id/order-summary.
func (cc *CompositeController) OrderSummary(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	summary, serr := cc.summary.Summarize(c.Request.Context(), userID)
	if serr != nil {
		c.JSON(serr.StatusCode, gin.H{"error": serr.Message})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GenerateReport handles POST /composite/reports/user-orders?user_id=...
func (cc *CompositeController) GenerateReport(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	operationID, serr := cc.reports.Submit(userID)
	if serr != nil {
		c.JSON(serr.StatusCode, gin.H{"error": serr.Message})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"operation_id": operationID,
		"status":       models.OperationPending,
	})
}

// GetReport handles GET /composite/reports/user-orders/:operation_id.
func (cc *CompositeController) GetReport(c *gin.Context) {
	op, serr := cc.reports.Get(c.Request.Context(), c.Param("operation_id"))
	if serr != nil {
		c.JSON(serr.StatusCode, gin.H{"error": serr.Message})
		return
	}

	c.JSON(http.StatusOK, op)
}
