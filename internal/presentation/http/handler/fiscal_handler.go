package handler

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/suplefit/backoffice-api/internal/application/service"
	"github.com/suplefit/backoffice-api/internal/domain/repository"
	"github.com/suplefit/backoffice-api/internal/presentation/http/dto/request"
	"github.com/suplefit/backoffice-api/internal/presentation/http/dto/response"
	"github.com/suplefit/backoffice-api/pkg/nfe"
	"github.com/suplefit/backoffice-api/pkg/pagination"
)

// maxXMLSize caps uploaded fiscal documents at 5 MB. Real NFe files run a
// few hundred KB at most.
const maxXMLSize = 5 << 20

// FiscalHandler handles fiscal document HTTP requests
type FiscalHandler struct {
	fiscalService *service.FiscalService
}

// NewFiscalHandler creates a new fiscal handler
func NewFiscalHandler(fiscalService *service.FiscalService) *FiscalHandler {
	return &FiscalHandler{fiscalService: fiscalService}
}

// readXML pulls the XML payload from the request. It accepts a multipart
// upload under the "file" field, a JSON body with an "xml" field, or a raw
// XML body.
func readXML(c *gin.Context) ([]byte, error) {
	contentType := c.ContentType()

	if contentType == "multipart/form-data" {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return nil, err
		}
		if fileHeader.Size > maxXMLSize {
			return nil, io.ErrShortBuffer
		}
		f, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxXMLSize))
	}

	if contentType == "application/json" {
		var req request.ImportFiscalXMLRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		return []byte(req.XML), nil
	}

	return io.ReadAll(io.LimitReader(c.Request.Body, maxXMLSize))
}

// Import handles importing an NFe XML document
func (h *FiscalHandler) Import(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	raw, err := readXML(c)
	if err != nil {
		response.BadRequest(c, "Could not read XML payload: "+err.Error())
		return
	}
	if len(raw) == 0 {
		response.BadRequest(c, "XML payload is empty")
		return
	}

	summary, err := h.fiscalService.ImportXML(c.Request.Context(), *userID, raw)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Fiscal document imported successfully", summary)
}

// Get handles getting a single fiscal document with its items
func (h *FiscalHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid fiscal document ID")
		return
	}

	invoice, err := h.fiscalService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Fiscal document retrieved successfully", invoice)
}

// List handles listing fiscal documents with filters
func (h *FiscalHandler) List(c *gin.Context) {
	var filter request.FiscalFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.FiscalInvoiceFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	if filter.Direction != "" {
		direction := nfe.Direction(filter.Direction)
		params.Direction = &direction
	}
	if filter.Status != "" {
		status := nfe.Status(filter.Status)
		params.Status = &status
	}

	result, err := h.fiscalService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Fiscal documents retrieved successfully", result)
}

// Delete handles deleting a fiscal document and its items
func (h *FiscalHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid fiscal document ID")
		return
	}

	if err := h.fiscalService.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
