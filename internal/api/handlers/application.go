package handlers

import (
	"net/http"

	"cavemap-backend/internal/auth"
	"cavemap-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler handles HTTP requests for join applications
type ApplicationHandler struct {
	service *service.ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(service *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// ApplyToGroup files a join application
// @Summary Apply to group
// @Description File a join application; the group must use the application policy
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param application body service.CreateApplicationRequest true "Application data"
// @Success 201 {object} service.ApplicationResponse "Successfully filed application"
// @Failure 400 {object} map[string]interface{} "Group does not take applications"
// @Failure 409 {object} map[string]interface{} "Pending application already exists"
// @Security BearerAuth
// @Router /groups/{id}/applications [post]
func (h *ApplicationHandler) ApplyToGroup(c *gin.Context) {
	groupID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	application, err := h.service.ApplyToGroup(groupID, &req, auth.UserEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// ListApplications lists a group's applications
// @Summary List group applications
// @Description List join applications of a group; requires admin role
// @Tags applications
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} map[string]interface{} "Application list"
// @Failure 403 {object} map[string]interface{} "Admin privileges required"
// @Security BearerAuth
// @Router /groups/{id}/applications [get]
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	groupID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	applications, err := h.service.ListApplications(groupID, auth.UserEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

// ReviewApplication records a verdict on an application
// @Summary Review application
// @Description Approve or reject a pending application; requires admin role
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param application_id path int true "Application ID"
// @Param verdict body service.ReviewApplicationRequest true "Verdict"
// @Success 200 {object} service.ApplicationResponse "Recorded verdict"
// @Failure 400 {object} map[string]interface{} "Application no longer pending"
// @Failure 403 {object} map[string]interface{} "Admin privileges required"
// @Security BearerAuth
// @Router /groups/{id}/applications/{application_id} [put]
func (h *ApplicationHandler) ReviewApplication(c *gin.Context) {
	groupID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	applicationID, ok := uintParam(c, "application_id")
	if !ok {
		return
	}

	var req service.ReviewApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	application, err := h.service.ReviewApplication(groupID, applicationID, &req, auth.UserEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}
