package handlers

import (
	"net/http"

	"cavemap-backend/internal/auth"
	"cavemap-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InvitationHandler handles HTTP requests for group invitations
type InvitationHandler struct {
	service *service.InvitationService
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(service *service.InvitationService) *InvitationHandler {
	return &InvitationHandler{service: service}
}

// InviteUser invites a user to a group
// @Summary Invite user to group
// @Description Create a pending invitation; requires admin role
// @Tags invitations
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param invitation body service.CreateInvitationRequest true "Invitation data"
// @Success 201 {object} service.InvitationResponse "Successfully created invitation"
// @Failure 403 {object} map[string]interface{} "Admin privileges required"
// @Failure 409 {object} map[string]interface{} "Pending invitation already exists"
// @Security BearerAuth
// @Router /groups/{id}/invitations [post]
func (h *InvitationHandler) InviteUser(c *gin.Context) {
	groupID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invitation, err := h.service.InviteUser(groupID, &req, auth.UserEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invitation)
}

// ListGroupInvitations lists a group's invitations
// @Summary List group invitations
// @Description List invitations of a group; requires admin role
// @Tags invitations
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} map[string]interface{} "Invitation list"
// @Failure 403 {object} map[string]interface{} "Admin privileges required"
// @Security BearerAuth
// @Router /groups/{id}/invitations [get]
func (h *InvitationHandler) ListGroupInvitations(c *gin.Context) {
	groupID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	invitations, err := h.service.ListGroupInvitations(groupID, auth.UserEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invitations": invitations})
}

// ListMyInvitations lists the authenticated user's invitations
// @Summary List my invitations
// @Description List invitations addressed to the authenticated user
// @Tags invitations
// @Produce json
// @Success 200 {object} map[string]interface{} "Invitation list"
// @Security BearerAuth
// @Router /invitations [get]
func (h *InvitationHandler) ListMyInvitations(c *gin.Context) {
	invitations, err := h.service.ListMyInvitations(auth.UserEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invitations": invitations})
}

// RespondToInvitation answers an invitation
// @Summary Respond to invitation
// @Description Accept or decline a pending invitation; invitee only
// @Tags invitations
// @Accept json
// @Produce json
// @Param id path int true "Invitation ID"
// @Param response body service.RespondInvitationRequest true "Answer"
// @Success 200 {object} service.InvitationResponse "Recorded answer"
// @Failure 400 {object} map[string]interface{} "Invitation no longer pending"
// @Failure 404 {object} map[string]interface{} "Invitation not found"
// @Security BearerAuth
// @Router /invitations/{id} [put]
func (h *InvitationHandler) RespondToInvitation(c *gin.Context) {
	invitationID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req service.RespondInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invitation, err := h.service.RespondToInvitation(c.Request.Context(), invitationID, &req, auth.UserEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invitation)
}
