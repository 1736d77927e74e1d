package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/suplefit/backoffice-api/internal/application/service"
	"github.com/suplefit/backoffice-api/internal/presentation/http/dto/request"
	"github.com/suplefit/backoffice-api/internal/presentation/http/dto/response"
)

// TemplateHandler handles WhatsApp template HTTP requests
type TemplateHandler struct {
	templateService *service.TemplateService
	settingsService *service.SettingsService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService *service.TemplateService, settingsService *service.SettingsService) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
		settingsService: settingsService,
	}
}

// List handles listing templates. Pass active=true to get only active ones.
func (h *TemplateHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	templates, err := h.templateService.ListTemplates(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Templates retrieved successfully", templates)
}

// Create handles creating a template
func (h *TemplateHandler) Create(c *gin.Context) {
	var req request.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tmpl, err := h.templateService.CreateTemplate(c.Request.Context(), &service.CreateTemplateInput{
		Name: req.Name,
		Body: req.Body,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Template created successfully", tmpl)
}

// Get handles getting a single template
func (h *TemplateHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid template ID")
		return
	}

	tmpl, err := h.templateService.GetTemplate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Template retrieved successfully", tmpl)
}

// Update handles updating a template
func (h *TemplateHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid template ID")
		return
	}

	var req request.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tmpl, err := h.templateService.UpdateTemplate(c.Request.Context(), &service.UpdateTemplateInput{
		ID:     id,
		Name:   req.Name,
		Body:   req.Body,
		Active: req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Template updated successfully", tmpl)
}

// Delete handles deleting a template
func (h *TemplateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid template ID")
		return
	}

	if err := h.templateService.DeleteTemplate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Render expands a template for a customer and returns the wa.me link
func (h *TemplateHandler) Render(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid template ID")
		return
	}

	var req request.RenderTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	storeName := ""
	if settings, err := h.settingsService.GetSettings(c.Request.Context()); err == nil {
		storeName = settings.Name
	}

	message, err := h.templateService.RenderForCustomer(c.Request.Context(), &service.RenderInput{
		TemplateID: id,
		CustomerID: req.CustomerID,
		OrderID:    req.OrderID,
		StoreName:  storeName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Template rendered successfully", message)
}
