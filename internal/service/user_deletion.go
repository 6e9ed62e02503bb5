package service

import (
	"context"
	"encoding/json"
	"fmt"

	"cavemap-backend/internal/database/models"
	"cavemap-backend/internal/events"
	"cavemap-backend/internal/logger"
	"cavemap-backend/internal/repository"

	"gorm.io/gorm"
)

// UserDeletionService reconciles group state when a user account is
// deleted: ownership of each group the user owned is transferred or the
// group is removed, every membership of the user is dropped, and
// assignment attributions are rewritten to the system identity.
//
// The whole cascade for one user.deleted event runs in a single
// transaction; a failure at any step aborts all of it. Two concurrent
// deletions of owners of overlapping groups are not serialized against
// each other here — that race is a known open point, inherited from the
// event-per-user model.
type UserDeletionService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewUserDeletionService creates a new user deletion service
func NewUserDeletionService(db *gorm.DB) *UserDeletionService {
	return &UserDeletionService{db: db, log: logger.New()}
}

// HandleUserDeletedEvent decodes a user.deleted event and runs the cascade
func (s *UserDeletionService) HandleUserDeletedEvent(ctx context.Context, body []byte) error {
	var event events.UserDeletedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("decode user.deleted event: %w", err)
	}
	if event.Email == "" {
		return fmt.Errorf("user.deleted event missing email field")
	}
	return s.HandleUserDeletion(ctx, event.Email)
}

// HandleUserDeletion applies the full cascade for one deleted user
func (s *UserDeletionService) HandleUserDeletion(ctx context.Context, userEmail string) error {
	s.log.Infof("handling user deletion for %s", userEmail)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		groups := repository.NewGroupRepository(tx)
		members := repository.NewMemberRepository(tx)
		assignments := repository.NewAssignmentRepository(tx)

		owned, err := groups.GetOwnedBy(userEmail)
		if err != nil {
			return fmt.Errorf("find groups owned by %s: %w", userEmail, err)
		}
		s.log.Infof("found %d groups owned by %s", len(owned), userEmail)

		for i := range owned {
			if err := s.transferOrDelete(groups, members, &owned[i], userEmail); err != nil {
				return err
			}
		}

		removed, err := members.DeleteByEmail(userEmail)
		if err != nil {
			return fmt.Errorf("remove memberships of %s: %w", userEmail, err)
		}
		s.log.Infof("removed %s from %d group memberships", userEmail, removed)

		reassigned, err := assignments.ReassignAssignedBy(userEmail, models.SystemIdentity)
		if err != nil {
			return fmt.Errorf("reassign cave assignments of %s: %w", userEmail, err)
		}
		s.log.Infof("reattributed %d cave assignments from %s to %s",
			reassigned, userEmail, models.SystemIdentity)

		return nil
	})
	if err != nil {
		s.log.WithError(err).Errorf("user deletion cascade failed for %s", userEmail)
		return err
	}

	s.log.Infof("successfully handled user deletion for %s", userEmail)
	return nil
}

// transferOrDelete resolves one owned group: promote a successor, or
// delete the group when the departing owner was its only member
func (s *UserDeletionService) transferOrDelete(
	groups *repository.GroupRepository,
	members *repository.MemberRepository,
	group *models.Group,
	ownerEmail string,
) error {
	all, err := members.ListByGroup(group.GroupID)
	if err != nil {
		return fmt.Errorf("list members of group %d: %w", group.GroupID, err)
	}

	others := make([]models.GroupMember, 0, len(all))
	for _, m := range all {
		if m.UserEmail != ownerEmail {
			others = append(others, m)
		}
	}

	if len(others) == 0 {
		s.log.Infof("no other members in group %q, deleting group %d", group.Name, group.GroupID)
		if err := groups.DeleteCascade(group.GroupID); err != nil {
			return fmt.Errorf("delete group %d: %w", group.GroupID, err)
		}
		return nil
	}

	successor := SelectGroupSuccessor(others)
	previousRole := successor.Role
	successor.Role = models.MemberRoleOwner
	if err := members.Update(successor); err != nil {
		return fmt.Errorf("promote new owner of group %d: %w", group.GroupID, err)
	}
	// The successor's vacated role is left as-is; only the newly assigned
	// OWNER role matters, and exactly one OWNER existed before the
	// deletion, so no conflicting OWNER row can remain.
	s.log.Infof("transferred ownership of group %q to %s (was %s)",
		group.Name, successor.UserEmail, previousRole)
	return nil
}
