package handlers

import (
	"net/http"

	"cavemap-backend/internal/auth"
	"cavemap-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for cave assignments
type AssignmentHandler struct {
	service *service.AssignmentService
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(service *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// AssignCave assigns a cave to a group
// @Summary Assign cave to group
// @Description Put a cave under a group's care; requires admin role, one group per cave
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param assignment body service.AssignCaveRequest true "Assignment data"
// @Success 201 {object} service.CaveAssignmentResponse "Successfully assigned cave"
// @Failure 403 {object} map[string]interface{} "Admin privileges required"
// @Failure 409 {object} map[string]interface{} "Cave already assigned"
// @Security BearerAuth
// @Router /groups/{id}/caves [post]
func (h *AssignmentHandler) AssignCave(c *gin.Context) {
	groupID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req service.AssignCaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.service.AssignCave(c.Request.Context(), groupID, &req, auth.UserEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// ListGroupCaves lists a group's assigned caves
// @Summary List group caves
// @Description List the caves under a group's care; members only
// @Tags assignments
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} map[string]interface{} "Assignment list"
// @Failure 403 {object} map[string]interface{} "Not a group member"
// @Security BearerAuth
// @Router /groups/{id}/caves [get]
func (h *AssignmentHandler) ListGroupCaves(c *gin.Context) {
	groupID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	assignments, err := h.service.ListGroupCaves(c.Request.Context(), groupID, auth.UserEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"caves": assignments})
}

// GetCaveGroup retrieves the group responsible for a cave
// @Summary Get cave's group
// @Description Get the assignment linking a cave to its group
// @Tags assignments
// @Produce json
// @Param cave_id path int true "Cave ID"
// @Success 200 {object} service.CaveAssignmentResponse "Assignment"
// @Failure 404 {object} map[string]interface{} "Cave not assigned"
// @Router /caves/{cave_id}/group [get]
func (h *AssignmentHandler) GetCaveGroup(c *gin.Context) {
	caveID, ok := uintParam(c, "cave_id")
	if !ok {
		return
	}

	assignment, err := h.service.GetCaveGroup(c.Request.Context(), caveID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// UnassignCave removes a cave from a group
// @Summary Unassign cave
// @Description Remove a cave from a group's care; requires admin role
// @Tags assignments
// @Param id path int true "Group ID"
// @Param cave_id path int true "Cave ID"
// @Success 204 "Successfully unassigned cave"
// @Failure 403 {object} map[string]interface{} "Admin privileges required"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Security BearerAuth
// @Router /groups/{id}/caves/{cave_id} [delete]
func (h *AssignmentHandler) UnassignCave(c *gin.Context) {
	groupID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	caveID, ok := uintParam(c, "cave_id")
	if !ok {
		return
	}

	if err := h.service.UnassignCave(groupID, caveID, auth.UserEmail(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ResolveCaveInheritance answers the inheritance query for a cave
// @Summary Resolve cave inheritance
// @Description Decide who inherits a cave when its owner goes away; internal services only
// @Tags internal
// @Produce json
// @Param cave_id path int true "Cave ID"
// @Param current_owner_email query string true "Email of the departing owner"
// @Success 200 {object} service.InheritanceDecisionResponse "Verdict"
// @Router /groups/caves/{cave_id}/inheritance [get]
func (h *AssignmentHandler) ResolveCaveInheritance(c *gin.Context) {
	caveID, ok := uintParam(c, "cave_id")
	if !ok {
		return
	}

	currentOwner := c.Query("current_owner_email")
	if currentOwner == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current_owner_email is required"})
		return
	}

	decision, err := h.service.ResolveCaveInheritance(caveID, currentOwner)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, decision)
}

// DeleteCaveAssignments removes every assignment of a cave
// @Summary Delete cave assignments
// @Description Drop all assignment rows of a cave; internal services only
// @Tags internal
// @Param cave_id path int true "Cave ID"
// @Success 204 "Assignments removed"
// @Router /caves/{cave_id}/assignments [delete]
func (h *AssignmentHandler) DeleteCaveAssignments(c *gin.Context) {
	caveID, ok := uintParam(c, "cave_id")
	if !ok {
		return
	}

	if _, err := h.service.DeleteAssignmentsForCave(caveID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CheckCavePermission reports whether a user can edit a cave
// @Summary Check cave permission
// @Description Report group-granted edit rights on a cave; internal services only
// @Tags internal
// @Produce json
// @Param cave_id path int true "Cave ID"
// @Param email path string true "User email"
// @Success 200 {object} service.CavePermissionResponse "Permission verdict"
// @Router /caves/{cave_id}/permissions/{email} [get]
func (h *AssignmentHandler) CheckCavePermission(c *gin.Context) {
	caveID, ok := uintParam(c, "cave_id")
	if !ok {
		return
	}

	email := c.Param("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	permission, err := h.service.CheckCavePermission(caveID, email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, permission)
}
