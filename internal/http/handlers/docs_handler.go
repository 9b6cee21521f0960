package handlers

import (
	"net/http"

	"arheb/internal/http/middleware"
	"arheb/internal/repositories"
	"arheb/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/checkout/:orderId/invoice returns the order invoice
// (inline PDF).
func GetOrderInvoicePDF(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	repo := repositories.OrderRepository{}
	order, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !order.OwnedBy(middleware.GetIdentity(c)) {
		RespondError(c, http.StatusForbidden, "Access to this order is forbidden", nil)
		return
	}

	svc := services.DocsService{
		Orders:    repo,
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateInvoice(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
