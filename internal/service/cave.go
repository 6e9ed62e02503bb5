package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cavemap-backend/internal/clients"
	"cavemap-backend/internal/database/models"
	apperrors "cavemap-backend/internal/errors"
	"cavemap-backend/internal/events"
	"cavemap-backend/internal/logger"
	"cavemap-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// CaveService handles business logic for caves
type CaveService struct {
	repo        repository.CaveRepositoryInterface
	publisher   events.PublisherInterface
	groupClient clients.GroupServiceClient
	validator   *validator.Validate
	log         *logger.Logger
}

// NewCaveService creates a new cave service
func NewCaveService(
	repo repository.CaveRepositoryInterface,
	publisher events.PublisherInterface,
	groupClient clients.GroupServiceClient,
	validator *validator.Validate,
) *CaveService {
	return &CaveService{
		repo:        repo,
		publisher:   publisher,
		groupClient: groupClient,
		validator:   validator,
		log:         logger.New(),
	}
}

// EntranceRequest represents one entrance in a cave payload
type EntranceRequest struct {
	Name      string   `json:"name" validate:"max=255"`
	GPSNorth  float64  `json:"gps_n" validate:"required"`
	GPSEast   float64  `json:"gps_e" validate:"required"`
	ASLMeters *float64 `json:"asl_m"`
}

// CreateCaveRequest represents the data needed to create a cave
type CreateCaveRequest struct {
	Name      string            `json:"name" validate:"required,max=255"`
	Code      string            `json:"code" validate:"max=50"`
	DepthM    *float64          `json:"depth_m"`
	LengthM   *float64          `json:"length_m"`
	Zone      string            `json:"zone" validate:"max=100"`
	Entrances []EntranceRequest `json:"entrances" validate:"dive"`
}

// UpdateCaveRequest represents the data needed to update a cave
type UpdateCaveRequest struct {
	Name    *string  `json:"name" validate:"omitempty,max=255"`
	Code    *string  `json:"code" validate:"omitempty,max=50"`
	DepthM  *float64 `json:"depth_m"`
	LengthM *float64 `json:"length_m"`
	Zone    *string  `json:"zone" validate:"omitempty,max=100"`
}

// EntranceResponse represents an entrance in a cave response
type EntranceResponse struct {
	EntranceID uint     `json:"entrance_id"`
	Name       string   `json:"name"`
	GPSNorth   float64  `json:"gps_n"`
	GPSEast    float64  `json:"gps_e"`
	ASLMeters  *float64 `json:"asl_m,omitempty"`
}

// CaveResponse represents the response data for a cave
type CaveResponse struct {
	CaveID     uint               `json:"cave_id"`
	Name       string             `json:"name"`
	Code       string             `json:"code,omitempty"`
	OwnerEmail string             `json:"owner_email"`
	DepthM     *float64           `json:"depth_m,omitempty"`
	LengthM    *float64           `json:"length_m,omitempty"`
	Zone       string             `json:"zone,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	Entrances  []EntranceResponse `json:"entrances"`
}

// CreateCave creates a new cave owned by the acting user
func (s *CaveService) CreateCave(req *CreateCaveRequest, ownerEmail string) (*CaveResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, &apperrors.AlreadyExistsError{Entity: "cave", Context: "with this name"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cave := &models.Cave{
		Name:       req.Name,
		Code:       req.Code,
		OwnerEmail: ownerEmail,
		DepthM:     req.DepthM,
		LengthM:    req.LengthM,
		Zone:       req.Zone,
	}
	for _, e := range req.Entrances {
		cave.Entrances = append(cave.Entrances, models.Entrance{
			Name:      e.Name,
			GPSNorth:  e.GPSNorth,
			GPSEast:   e.GPSEast,
			ASLMeters: e.ASLMeters,
		})
	}

	if err := s.repo.Create(cave); err != nil {
		return nil, err
	}
	return toCaveResponse(cave), nil
}

// GetCaveByID retrieves a cave by ID
func (s *CaveService) GetCaveByID(id uint) (*CaveResponse, error) {
	cave, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCaveNotFound
		}
		return nil, err
	}
	return toCaveResponse(cave), nil
}

// ListCaves retrieves caves with pagination
func (s *CaveService) ListCaves(limit, offset int) ([]CaveResponse, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	caves, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CaveResponse, 0, len(caves))
	for i := range caves {
		responses = append(responses, *toCaveResponse(&caves[i]))
	}
	return responses, total, nil
}

// UpdateCave applies changes to a cave. Non-owners must hold edit rights
// through the cave's group; if the permission check cannot be completed
// the edit is denied.
func (s *CaveService) UpdateCave(ctx context.Context, id uint, req *UpdateCaveRequest, actorEmail string) (*CaveResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	cave, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCaveNotFound
		}
		return nil, err
	}

	if err := s.authorizeEdit(ctx, cave, actorEmail); err != nil {
		return nil, err
	}

	if req.Name != nil {
		cave.Name = *req.Name
	}
	if req.Code != nil {
		cave.Code = *req.Code
	}
	if req.DepthM != nil {
		cave.DepthM = req.DepthM
	}
	if req.LengthM != nil {
		cave.LengthM = req.LengthM
	}
	if req.Zone != nil {
		cave.Zone = *req.Zone
	}

	if err := s.repo.Update(cave); err != nil {
		return nil, err
	}
	return toCaveResponse(cave), nil
}

// DeleteCave removes a cave and notifies the other services. The cave row
// deletion commits first; the notification is best-effort and its failure
// never reverses the deletion.
func (s *CaveService) DeleteCave(ctx context.Context, id uint, actorEmail string) error {
	cave, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCaveNotFound
		}
		return err
	}

	if err := s.authorizeEdit(ctx, cave, actorEmail); err != nil {
		return err
	}

	return s.removeAndNotify(ctx, cave)
}

// removeAndNotify deletes the cave row and publishes cave.deleted with the
// linked media ids so sibling services can clean up
func (s *CaveService) removeAndNotify(ctx context.Context, cave *models.Cave) error {
	mediaIDs, err := s.repo.MediaFileIDs(cave.CaveID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(cave.CaveID); err != nil {
		return err
	}
	s.log.Infof("deleted cave %d (%s)", cave.CaveID, cave.Name)

	event := events.NewCaveDeleted(cave.CaveID, cave.Name, cave.OwnerEmail, mediaIDs)
	if err := s.publisher.Publish(ctx, events.EventCaveDeleted, event); err != nil {
		// The cave row is gone and stays gone; fan-out is at-most-once
		// best-effort and a broker outage must not fail the deletion.
		s.log.WithError(err).Errorf("failed to publish cave.deleted for cave %d", cave.CaveID)
	}
	return nil
}

// authorizeEdit allows the owner outright and otherwise consults the
// group service. Exhausted retries on the permission check deny access:
// this path fails closed, never open.
func (s *CaveService) authorizeEdit(ctx context.Context, cave *models.Cave, actorEmail string) error {
	if actorEmail == cave.OwnerEmail {
		return nil
	}

	canEdit, err := s.groupClient.CheckCavePermission(ctx, cave.CaveID, actorEmail)
	if err != nil {
		s.log.WithError(err).Warnf("permission check failed for cave %d, denying", cave.CaveID)
		return apperrors.ErrEditNotAllowed
	}
	if !canEdit {
		return apperrors.ErrEditNotAllowed
	}
	return nil
}

func toCaveResponse(cave *models.Cave) *CaveResponse {
	resp := &CaveResponse{
		CaveID:     cave.CaveID,
		Name:       cave.Name,
		Code:       cave.Code,
		OwnerEmail: cave.OwnerEmail,
		DepthM:     cave.DepthM,
		LengthM:    cave.LengthM,
		Zone:       cave.Zone,
		CreatedAt:  cave.CreatedAt,
		UpdatedAt:  cave.UpdatedAt,
		Entrances:  make([]EntranceResponse, 0, len(cave.Entrances)),
	}
	for _, e := range cave.Entrances {
		resp.Entrances = append(resp.Entrances, EntranceResponse{
			EntranceID: e.EntranceID,
			Name:       e.Name,
			GPSNorth:   e.GPSNorth,
			GPSEast:    e.GPSEast,
			ASLMeters:  e.ASLMeters,
		})
	}
	return resp
}
