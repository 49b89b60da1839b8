package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studiopos/salon-api/internal/application/service"
	"github.com/studiopos/salon-api/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt rendering and printing HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// GetReceipt returns the composed receipt as JSON
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	receipt, err := h.receiptService.BuildReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt composed successfully", receipt)
}

// GetReceiptHTML renders the receipt as an HTML page for the browser print
// dialog
func (h *ReceiptHandler) GetReceiptHTML(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	html, err := h.receiptService.RenderHTML(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(200, "text/html; charset=utf-8", html)
}

// PrintReceipt sends the receipt to the thermal printer
func (h *ReceiptHandler) PrintReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	receipt, err := h.receiptService.PrintReceipt(c.Request.Context(), id)
	if err != nil {
		// The receipt is still useful when printing failed; the client
		// can fall back to the HTML rendering.
		if receipt != nil {
			response.Success(c, 200, "Printer unavailable, returning receipt data", receipt)
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", receipt)
}

// GetPrinterStatus returns the thermal printer status
func (h *ReceiptHandler) GetPrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.receiptService.GetPrinterStatus())
}

// TestPrint sends a sample page to the printer
func (h *ReceiptHandler) TestPrint(c *gin.Context) {
	receipt, err := h.receiptService.TestPrint()
	if err != nil {
		response.Success(c, 200, "Printer unavailable, returning test receipt data", receipt)
		return
	}

	response.OK(c, "Test page printed successfully", receipt)
}
