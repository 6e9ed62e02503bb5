package service

import (
	"context"
	"encoding/json"
	"fmt"

	"cavemap-backend/internal/clients"
	"cavemap-backend/internal/events"
	"cavemap-backend/internal/logger"
	"cavemap-backend/internal/repository"
)

// CaveOwnershipService reacts to user deletions on the cave side: every
// cave owned by the departed user is either transferred to an inheritor
// chosen by the group service or deleted.
type CaveOwnershipService struct {
	repo        repository.CaveRepositoryInterface
	caves       *CaveService
	groupClient clients.GroupServiceClient
	log         *logger.Logger
}

// NewCaveOwnershipService creates a new cave ownership service
func NewCaveOwnershipService(
	repo repository.CaveRepositoryInterface,
	caves *CaveService,
	groupClient clients.GroupServiceClient,
) *CaveOwnershipService {
	return &CaveOwnershipService{
		repo:        repo,
		caves:       caves,
		groupClient: groupClient,
		log:         logger.New(),
	}
}

// HandleUserDeletedEvent decodes a user.deleted message and resolves
// ownership of every cave the user held
func (s *CaveOwnershipService) HandleUserDeletedEvent(ctx context.Context, body []byte) error {
	var event events.UserDeletedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("malformed user.deleted payload: %w", err)
	}
	if event.Email == "" {
		return fmt.Errorf("user.deleted payload missing email")
	}
	return s.HandleUserDeletion(ctx, event.Email)
}

// HandleUserDeletion transfers or deletes each cave owned by email. Caves
// are processed independently: a failure on one is logged and skipped
// while the rest still get handled. The event is acknowledged either way,
// so a skipped cave stays with the deleted owner until an operator steps
// in; there is no dead-letter path.
func (s *CaveOwnershipService) HandleUserDeletion(ctx context.Context, email string) error {
	caves, err := s.repo.GetByOwner(email)
	if err != nil {
		return fmt.Errorf("failed to list caves owned by %s: %w", email, err)
	}
	if len(caves) == 0 {
		s.log.Debugf("no caves owned by %s, nothing to resolve", email)
		return nil
	}
	s.log.Infof("resolving ownership of %d cave(s) after deletion of %s", len(caves), email)

	for i := range caves {
		cave := &caves[i]

		decision, err := s.groupClient.CaveInheritance(ctx, cave.CaveID, email)
		if err != nil {
			s.log.WithError(err).Errorf("inheritance lookup failed for cave %d, leaving it untouched", cave.CaveID)
			continue
		}

		switch decision.Action {
		case clients.ActionTransfer:
			if decision.InheritEmail == "" {
				s.log.Errorf("transfer verdict for cave %d carried no inheritor, skipping", cave.CaveID)
				continue
			}
			if err := s.repo.UpdateOwner(cave.CaveID, decision.InheritEmail); err != nil {
				s.log.WithError(err).Errorf("failed to transfer cave %d to %s", cave.CaveID, decision.InheritEmail)
				continue
			}
			s.log.Infof("cave %d transferred from %s to %s", cave.CaveID, email, decision.InheritEmail)

		case clients.ActionDelete:
			if err := s.caves.removeAndNotify(ctx, cave); err != nil {
				s.log.WithError(err).Errorf("failed to delete orphaned cave %d", cave.CaveID)
				continue
			}
			// The assignment rows on the group side are already doomed;
			// this shortcut just tidies them without waiting for fan-out.
			if err := s.groupClient.DeleteCaveAssignments(ctx, cave.CaveID); err != nil {
				s.log.WithError(err).Warnf("assignment cleanup for cave %d failed, cave.deleted fan-out will cover it", cave.CaveID)
			}

		default:
			s.log.Errorf("unknown inheritance action %q for cave %d", decision.Action, cave.CaveID)
		}
	}
	return nil
}
