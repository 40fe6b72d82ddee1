package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/leadgrid/leadgrid-backend/internal/api/middleware"
	"github.com/leadgrid/leadgrid-backend/internal/models"
	"github.com/leadgrid/leadgrid-backend/internal/service"
)

// ============================================
// Lead Handler
// ============================================

type LeadHandler struct {
	leadService service.LeadService
}

func NewLeadHandler(leadService service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// List - List the caller's leads, optionally filtered
// GET /api/leads?filter=
func (h *LeadHandler) List(c *gin.Context) {
	user, ok := middleware.RequireUser(c)
	if !ok {
		return
	}

	leads, err := h.leadService.List(c.Request.Context(), user.ID, c.Query("filter"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leads"})
		return
	}

	response := make([]models.LeadResponse, len(leads))
	for i, l := range leads {
		response[i] = toLeadResponse(l)
	}
	c.JSON(http.StatusOK, response)
}

// Get - Get one of the caller's leads
// GET /api/leads/:id
func (h *LeadHandler) Get(c *gin.Context) {
	user, ok := middleware.RequireUser(c)
	if !ok {
		return
	}
	id, ok := leadID(c)
	if !ok {
		return
	}

	lead, err := h.leadService.GetByID(c.Request.Context(), id, user.ID)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lead"})
		return
	}
	c.JSON(http.StatusOK, toLeadResponse(lead))
}

// Create - Create a lead owned by the caller
// POST /api/leads
func (h *LeadHandler) Create(c *gin.Context) {
	user, ok := middleware.RequireUser(c)
	if !ok {
		return
	}

	var req models.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.leadService.Create(c.Request.Context(), user.ID, service.CreateLeadInput{
		Name:             req.Name,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Title:            req.Title,
		Company:          req.Company,
		CompanyLogo:      req.CompanyLogo,
		Avatar:           req.Avatar,
		Status:           req.Status,
		Confidence:       req.Confidence,
		Email:            req.Email,
		Phone:            req.Phone,
		Linkedin:         req.Linkedin,
		Location:         req.Location,
		TechStack:        req.TechStack,
		AIInsight:        req.AIInsight,
		MutualConnection: req.MutualConnection,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lead"})
		return
	}
	c.JSON(http.StatusCreated, toLeadResponse(lead))
}

// Update - Partially update one of the caller's leads
// PATCH /api/leads/:id
func (h *LeadHandler) Update(c *gin.Context) {
	user, ok := middleware.RequireUser(c)
	if !ok {
		return
	}
	id, ok := leadID(c)
	if !ok {
		return
	}

	var req models.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.leadService.Update(c.Request.Context(), id, user.ID, service.UpdateLeadInput{
		Name:             req.Name,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Title:            req.Title,
		Company:          req.Company,
		CompanyLogo:      req.CompanyLogo,
		Avatar:           req.Avatar,
		Status:           req.Status,
		Confidence:       req.Confidence,
		Email:            req.Email,
		Phone:            req.Phone,
		Linkedin:         req.Linkedin,
		Location:         req.Location,
		TechStack:        req.TechStack,
		AIInsight:        req.AIInsight,
		MutualConnection: req.MutualConnection,
	})
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lead"})
		return
	}
	c.JSON(http.StatusOK, toLeadResponse(lead))
}

// Delete - Delete one of the caller's leads
// DELETE /api/leads/:id
func (h *LeadHandler) Delete(c *gin.Context) {
	user, ok := middleware.RequireUser(c)
	if !ok {
		return
	}
	id, ok := leadID(c)
	if !ok {
		return
	}

	if err := h.leadService.Delete(c.Request.Context(), id, user.ID); err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead"})
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

func leadID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead id"})
		return 0, false
	}
	return id, true
}
