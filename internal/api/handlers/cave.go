package handlers

import (
	"net/http"

	"cavemap-backend/internal/auth"
	"cavemap-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CaveHandler handles HTTP requests for caves
type CaveHandler struct {
	service *service.CaveService
}

// NewCaveHandler creates a new cave handler
func NewCaveHandler(service *service.CaveService) *CaveHandler {
	return &CaveHandler{service: service}
}

// CreateCave creates a new cave
// @Summary Create a new cave
// @Description Create a cave record owned by the authenticated user
// @Tags caves
// @Accept json
// @Produce json
// @Param cave body service.CreateCaveRequest true "Cave data"
// @Success 201 {object} service.CaveResponse "Successfully created cave"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Cave name already taken"
// @Security BearerAuth
// @Router /caves [post]
func (h *CaveHandler) CreateCave(c *gin.Context) {
	var req service.CreateCaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cave, err := h.service.CreateCave(&req, auth.UserEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cave)
}

// GetCave retrieves a cave by ID
// @Summary Get cave by ID
// @Description Get a specific cave with its entrances
// @Tags caves
// @Produce json
// @Param id path int true "Cave ID"
// @Success 200 {object} service.CaveResponse "Successfully retrieved cave"
// @Failure 404 {object} map[string]interface{} "Cave not found"
// @Router /caves/{id} [get]
func (h *CaveHandler) GetCave(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	cave, err := h.service.GetCaveByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cave)
}

// ListCaves lists caves with pagination
// @Summary List caves
// @Description List cave records with pagination
// @Tags caves
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} map[string]interface{} "Paginated cave list"
// @Router /caves [get]
func (h *CaveHandler) ListCaves(c *gin.Context) {
	limit, offset := pagination(c)

	caves, total, err := h.service.ListCaves(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"caves":  caves,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// UpdateCave updates a cave
// @Summary Update cave
// @Description Update a cave; requires ownership or group edit rights
// @Tags caves
// @Accept json
// @Produce json
// @Param id path int true "Cave ID"
// @Param cave body service.UpdateCaveRequest true "Updated cave data"
// @Success 200 {object} service.CaveResponse "Successfully updated cave"
// @Failure 403 {object} map[string]interface{} "Edit not allowed"
// @Failure 404 {object} map[string]interface{} "Cave not found"
// @Security BearerAuth
// @Router /caves/{id} [put]
func (h *CaveHandler) UpdateCave(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateCaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cave, err := h.service.UpdateCave(c.Request.Context(), id, &req, auth.UserEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cave)
}

// DeleteCave deletes a cave
// @Summary Delete cave
// @Description Delete a cave; requires ownership or group edit rights
// @Tags caves
// @Param id path int true "Cave ID"
// @Success 204 "Successfully deleted cave"
// @Failure 403 {object} map[string]interface{} "Edit not allowed"
// @Failure 404 {object} map[string]interface{} "Cave not found"
// @Security BearerAuth
// @Router /caves/{id} [delete]
func (h *CaveHandler) DeleteCave(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteCave(c.Request.Context(), id, auth.UserEmail(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
