package handlers

import (
	"net/http"

	"cavemap-backend/internal/auth"
	"cavemap-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GroupHandler handles HTTP requests for groups
type GroupHandler struct {
	service *service.GroupService
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(service *service.GroupService) *GroupHandler {
	return &GroupHandler{service: service}
}

// CreateGroup creates a new group
// @Summary Create a new group
// @Description Create an expedition group owned by the authenticated user
// @Tags groups
// @Accept json
// @Produce json
// @Param group body service.CreateGroupRequest true "Group data"
// @Success 201 {object} service.GroupResponse "Successfully created group"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Group name already taken"
// @Security BearerAuth
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req service.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.service.CreateGroup(&req, auth.UserEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

// GetGroup retrieves a group by ID
// @Summary Get group by ID
// @Description Get a group with its member roster
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} service.GroupResponse "Successfully retrieved group"
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	group, err := h.service.GetGroupByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// ListGroups lists active groups
// @Summary List groups
// @Description List active expedition groups with pagination
// @Tags groups
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} map[string]interface{} "Paginated group list"
// @Router /groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	limit, offset := pagination(c)

	groups, total, err := h.service.ListGroups(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"groups": groups,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// UpdateGroup updates a group
// @Summary Update group
// @Description Update a group; requires admin role
// @Tags groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param group body service.UpdateGroupRequest true "Updated group data"
// @Success 200 {object} service.GroupResponse "Successfully updated group"
// @Failure 403 {object} map[string]interface{} "Admin privileges required"
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [put]
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.service.UpdateGroup(c.Request.Context(), id, &req, auth.UserEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// DeleteGroup deactivates a group
// @Summary Delete group
// @Description Deactivate a group; owner only
// @Tags groups
// @Param id path int true "Group ID"
// @Success 204 "Successfully deleted group"
// @Failure 403 {object} map[string]interface{} "Owner privileges required"
// @Failure 404 {object} map[string]interface{} "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteGroup(id, auth.UserEmail(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
