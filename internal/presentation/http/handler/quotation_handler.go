package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/suplefit/backoffice-api/internal/application/service"
	"github.com/suplefit/backoffice-api/internal/domain/enum"
	"github.com/suplefit/backoffice-api/internal/domain/repository"
	"github.com/suplefit/backoffice-api/internal/presentation/http/dto/request"
	"github.com/suplefit/backoffice-api/internal/presentation/http/dto/response"
	"github.com/suplefit/backoffice-api/pkg/pagination"
)

// QuotationHandler handles quotation-related HTTP requests
type QuotationHandler struct {
	quotationService *service.QuotationService
	orderService     *service.OrderService
}

// NewQuotationHandler creates a new quotation handler
func NewQuotationHandler(quotationService *service.QuotationService, orderService *service.OrderService) *QuotationHandler {
	return &QuotationHandler{
		quotationService: quotationService,
		orderService:     orderService,
	}
}

func quotationItems(items []request.OrderItemRequest) []service.QuotationItemInput {
	out := make([]service.QuotationItemInput, 0, len(items))
	for _, item := range items {
		out = append(out, service.QuotationItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return out
}

func dateOrZero(s *string) time.Time {
	if s == nil || *s == "" {
		return time.Time{}
	}
	t, _ := time.Parse("2006-01-02", *s)
	return t
}

// Create handles creating a quotation
func (h *QuotationHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	quotation, err := h.quotationService.CreateQuotation(c.Request.Context(), &service.CreateQuotationInput{
		UserID:     *userID,
		CustomerID: req.CustomerID,
		Date:       dateOrZero(req.Date),
		Discount:   req.Discount,
		ValidUntil: parseDate(req.ValidUntil),
		Note:       req.Note,
		Items:      quotationItems(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quotation created successfully", quotation)
}

// Get handles getting a single quotation with its lines
func (h *QuotationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	quotation, err := h.quotationService.GetQuotation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation retrieved successfully", quotation)
}

// List handles listing quotations with filters
func (h *QuotationHandler) List(c *gin.Context) {
	var filter request.QuotationFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.QuotationFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	if filter.Status != nil {
		status := enum.QuotationStatus(*filter.Status)
		params.Status = &status
	}

	if filter.CustomerID != "" {
		custID, err := uuid.Parse(filter.CustomerID)
		if err == nil {
			params.CustomerID = &custID
		}
	}

	result, err := h.quotationService.ListQuotations(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Quotations retrieved successfully", result)
}

// Update handles reworking a draft quotation
func (h *QuotationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req request.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	quotation, err := h.quotationService.UpdateQuotation(c.Request.Context(), &service.UpdateQuotationInput{
		ID:         id,
		CustomerID: req.CustomerID,
		Date:       dateOrZero(req.Date),
		Discount:   req.Discount,
		ValidUntil: parseDate(req.ValidUntil),
		Note:       req.Note,
		Items:      quotationItems(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation updated successfully", quotation)
}

// UpdateStatus handles moving a quotation along its lifecycle
func (h *QuotationHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req request.UpdateQuotationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.quotationService.UpdateQuotationStatus(c.Request.Context(), id, enum.QuotationStatus(req.Status)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation status updated successfully", nil)
}

// Convert handles turning an accepted quotation into an order
func (h *QuotationHandler) Convert(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req request.ConvertQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.quotationService.ConvertToOrder(c.Request.Context(), h.orderService, &service.ConvertQuotationInput{
		UserID:        *userID,
		QuotationID:   id,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quotation converted to order successfully", order)
}

// Delete handles deleting a quotation
func (h *QuotationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	if err := h.quotationService.DeleteQuotation(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
