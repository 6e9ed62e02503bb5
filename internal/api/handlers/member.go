package handlers

import (
	"net/http"

	"cavemap-backend/internal/auth"
	"cavemap-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler handles HTTP requests for group membership
type MemberHandler struct {
	service *service.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(service *service.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

// AddMember adds a member to a group
// @Summary Add group member
// @Description Add a user to a group; requires admin role
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param member body service.AddMemberRequest true "Member data"
// @Success 201 {object} service.MemberResponse "Successfully added member"
// @Failure 403 {object} map[string]interface{} "Admin privileges required"
// @Failure 409 {object} map[string]interface{} "Already a member"
// @Security BearerAuth
// @Router /groups/{id}/members [post]
func (h *MemberHandler) AddMember(c *gin.Context) {
	groupID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.service.AddMember(c.Request.Context(), groupID, &req, auth.UserEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// JoinGroup joins an open group
// @Summary Join group
// @Description Join a group directly; the group must use the open policy
// @Tags members
// @Produce json
// @Param id path int true "Group ID"
// @Success 201 {object} service.MemberResponse "Successfully joined"
// @Failure 400 {object} map[string]interface{} "Group is not open"
// @Failure 409 {object} map[string]interface{} "Already a member"
// @Security BearerAuth
// @Router /groups/{id}/join [post]
func (h *MemberHandler) JoinGroup(c *gin.Context) {
	groupID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	member, err := h.service.JoinGroup(c.Request.Context(), groupID, auth.UserEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// ListMembers lists a group's members
// @Summary List group members
// @Description List the roster of a group; members only
// @Tags members
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} map[string]interface{} "Member list"
// @Failure 403 {object} map[string]interface{} "Not a group member"
// @Security BearerAuth
// @Router /groups/{id}/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	groupID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	members, err := h.service.ListMembers(c.Request.Context(), groupID, auth.UserEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}

// UpdateMemberRole changes a member's role
// @Summary Update member role
// @Description Change a member's role; touching the owner role requires owner
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param member_id path int true "Member ID"
// @Param role body service.UpdateMemberRoleRequest true "New role"
// @Success 200 {object} service.MemberResponse "Successfully updated role"
// @Failure 400 {object} map[string]interface{} "Sole owner cannot be demoted"
// @Failure 403 {object} map[string]interface{} "Insufficient privileges"
// @Security BearerAuth
// @Router /groups/{id}/members/{member_id} [put]
func (h *MemberHandler) UpdateMemberRole(c *gin.Context) {
	groupID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := uintParam(c, "member_id")
	if !ok {
		return
	}

	var req service.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.service.UpdateMemberRole(groupID, memberID, &req, auth.UserEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// RemoveMember removes a member from a group
// @Summary Remove group member
// @Description Remove a member; admins remove members, owners remove anyone
// @Tags members
// @Param id path int true "Group ID"
// @Param member_id path int true "Member ID"
// @Success 204 "Successfully removed member"
// @Failure 400 {object} map[string]interface{} "Sole owner cannot be removed"
// @Failure 403 {object} map[string]interface{} "Insufficient privileges"
// @Security BearerAuth
// @Router /groups/{id}/members/{member_id} [delete]
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	groupID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := uintParam(c, "member_id")
	if !ok {
		return
	}

	if err := h.service.RemoveMember(groupID, memberID, auth.UserEmail(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// LeaveGroup removes the authenticated user from a group
// @Summary Leave group
// @Description Leave a group; the last owner must transfer ownership first
// @Tags members
// @Param id path int true "Group ID"
// @Success 204 "Successfully left group"
// @Failure 400 {object} map[string]interface{} "Sole owner cannot leave"
// @Security BearerAuth
// @Router /groups/{id}/leave [post]
func (h *MemberHandler) LeaveGroup(c *gin.Context) {
	groupID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.LeaveGroup(groupID, auth.UserEmail(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
