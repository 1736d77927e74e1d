package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/suplefit/backoffice-api/internal/application/service"
	"github.com/suplefit/backoffice-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles receipt printing and rendering HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status reports whether a physical printer is configured and reachable
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.printerService.GetStatus())
}

// TestPrint pushes a sample receipt to the configured printer
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	data, err := h.printerService.TestPrint(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Test receipt printed successfully", data)
}

// PrintOrder sends an order receipt to the physical printer
func (h *PrinterHandler) PrintOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	data, err := h.printerService.PrintOrderReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt printed successfully", data)
}

// PrintQuotation sends a quotation receipt to the physical printer
func (h *PrinterHandler) PrintQuotation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	data, err := h.printerService.PrintQuotationReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt printed successfully", data)
}

// OrderReceiptHTML returns a print-ready HTML rendering of an order receipt
func (h *PrinterHandler) OrderReceiptHTML(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	html, err := h.printerService.OrderReceiptHTML(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// OrderReceiptPDF returns the order receipt as a PDF data URI
func (h *PrinterHandler) OrderReceiptPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	uri, err := h.printerService.OrderReceiptPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt rendered successfully", gin.H{"pdf": uri})
}

// QuotationReceiptHTML returns a print-ready HTML rendering of a quotation
func (h *PrinterHandler) QuotationReceiptHTML(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	html, err := h.printerService.QuotationReceiptHTML(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// QuotationReceiptPDF returns the quotation receipt as a PDF data URI
func (h *PrinterHandler) QuotationReceiptPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	uri, err := h.printerService.QuotationReceiptPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt rendered successfully", gin.H{"pdf": uri})
}
