package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studiopos/salon-api/internal/application/service"
	"github.com/studiopos/salon-api/internal/domain/enum"
	"github.com/studiopos/salon-api/internal/domain/repository"
	"github.com/studiopos/salon-api/internal/presentation/http/dto/request"
	"github.com/studiopos/salon-api/internal/presentation/http/dto/response"
	"github.com/studiopos/salon-api/pkg/pagination"
)

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService       *service.SaleService
	credentialService *service.CredentialService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService, credentialService *service.CredentialService) *SaleHandler {
	return &SaleHandler{
		saleService:       saleService,
		credentialService: credentialService,
	}
}

// RecordSale records a new sale
func (h *SaleHandler) RecordSale(c *gin.Context) {
	var req request.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	method, err := enum.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		response.BadRequest(c, "Invalid payment method")
		return
	}

	input := &service.RecordSaleInput{
		ClientCode:    req.ClientCode,
		ClientName:    req.ClientName,
		StaffCode:     req.StaffCode,
		Discount:      req.Discount,
		Commission:    req.Commission,
		PaymentMethod: method,
		Reference:     req.Reference,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			response.BadRequest(c, "Invalid product ID")
			return
		}
		input.Items = append(input.Items, service.SaleItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	sale, err := h.saleService.RecordSale(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", sale)
}

// GetSale retrieves a sale with its items
func (h *SaleHandler) GetSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// ListSales lists sales with filtering
func (h *SaleHandler) ListSales(c *gin.Context) {
	var req request.SaleFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.SaleFilterParams{
		Pagination: &pagination.Params{Page: req.Page, PerPage: req.PerPage},
		ClientCode: req.ClientCode,
	}

	switch req.Status {
	case "active":
		status := enum.SaleStatusActive
		params.Status = &status
	case "cancelled":
		status := enum.SaleStatusCancelled
		params.Status = &status
	}

	if req.StartDate != "" {
		if t, err := time.Parse("2006-01-02", req.StartDate); err == nil {
			params.StartDate = &t
		}
	}
	if req.EndDate != "" {
		if t, err := time.Parse("2006-01-02", req.EndDate); err == nil {
			params.EndDate = &t
		}
	}

	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// CancelSale flags a sale as cancelled
func (h *SaleHandler) CancelSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	var req request.CancelSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.saleService.CancelSale(c.Request.Context(), id, req.Reason); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale cancelled successfully", nil)
}

// DeleteSale removes a sale. Gated by the admin password.
func (h *SaleHandler) DeleteSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	var req request.DeleteSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.credentialService.Validate(c.Request.Context(), req.AdminPassword); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale deleted successfully", nil)
}

// DeleteAllSales clears the sale history. Gated by the admin password.
func (h *SaleHandler) DeleteAllSales(c *gin.Context) {
	var req request.DeleteSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.credentialService.Validate(c.Request.Context(), req.AdminPassword); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.saleService.DeleteAllSales(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale history cleared successfully", nil)
}
