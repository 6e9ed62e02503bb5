package service_test

import (
	"context"
	"errors"
	"testing"

	"cavemap-backend/internal/clients"
	"cavemap-backend/internal/database/models"
	"cavemap-backend/internal/events"
	"cavemap-backend/internal/mocks"
	"cavemap-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CaveOwnershipTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	repo        *mocks.MockCaveRepositoryInterface
	publisher   *mocks.MockPublisherInterface
	groupClient *mocks.MockGroupServiceClient
	svc         *service.CaveOwnershipService
}

func (s *CaveOwnershipTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockCaveRepositoryInterface(s.ctrl)
	s.publisher = mocks.NewMockPublisherInterface(s.ctrl)
	s.groupClient = mocks.NewMockGroupServiceClient(s.ctrl)
	caves := service.NewCaveService(s.repo, s.publisher, s.groupClient, validator.New())
	s.svc = service.NewCaveOwnershipService(s.repo, caves, s.groupClient)
}

func (s *CaveOwnershipTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCaveOwnershipTestSuite(t *testing.T) {
	suite.Run(t, new(CaveOwnershipTestSuite))
}

func (s *CaveOwnershipTestSuite) TestTransferVerdictUpdatesOwner() {
	s.repo.EXPECT().GetByOwner("gone@test.com").Return([]models.Cave{
		{CaveID: 1, Name: "Krubera", OwnerEmail: "gone@test.com"},
	}, nil)
	s.groupClient.EXPECT().CaveInheritance(gomock.Any(), uint(1), "gone@test.com").
		Return(&clients.InheritanceDecision{Action: clients.ActionTransfer, InheritEmail: "heir@test.com"}, nil)
	s.repo.EXPECT().UpdateOwner(uint(1), "heir@test.com").Return(nil)

	s.NoError(s.svc.HandleUserDeletion(context.Background(), "gone@test.com"))
}

func (s *CaveOwnershipTestSuite) TestDeleteVerdictRemovesCaveAndFansOut() {
	s.repo.EXPECT().GetByOwner("gone@test.com").Return([]models.Cave{
		{CaveID: 1, Name: "Krubera", OwnerEmail: "gone@test.com"},
	}, nil)
	s.groupClient.EXPECT().CaveInheritance(gomock.Any(), uint(1), "gone@test.com").
		Return(&clients.InheritanceDecision{Action: clients.ActionDelete}, nil)
	s.repo.EXPECT().MediaFileIDs(uint(1)).Return([]uint{5}, nil)
	s.repo.EXPECT().Delete(uint(1)).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), events.EventCaveDeleted, gomock.Any()).Return(nil)
	s.groupClient.EXPECT().DeleteCaveAssignments(gomock.Any(), uint(1)).Return(nil)

	s.NoError(s.svc.HandleUserDeletion(context.Background(), "gone@test.com"))
}

func (s *CaveOwnershipTestSuite) TestAssignmentCleanupFailureIsTolerated() {
	s.repo.EXPECT().GetByOwner("gone@test.com").Return([]models.Cave{
		{CaveID: 1, Name: "Krubera", OwnerEmail: "gone@test.com"},
	}, nil)
	s.groupClient.EXPECT().CaveInheritance(gomock.Any(), uint(1), "gone@test.com").
		Return(&clients.InheritanceDecision{Action: clients.ActionDelete}, nil)
	s.repo.EXPECT().MediaFileIDs(uint(1)).Return(nil, nil)
	s.repo.EXPECT().Delete(uint(1)).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), events.EventCaveDeleted, gomock.Any()).Return(nil)
	s.groupClient.EXPECT().DeleteCaveAssignments(gomock.Any(), uint(1)).
		Return(errors.New("group service unreachable"))

	s.NoError(s.svc.HandleUserDeletion(context.Background(), "gone@test.com"))
}

func (s *CaveOwnershipTestSuite) TestLookupFailureSkipsCaveButContinues() {
	s.repo.EXPECT().GetByOwner("gone@test.com").Return([]models.Cave{
		{CaveID: 1, Name: "First", OwnerEmail: "gone@test.com"},
		{CaveID: 2, Name: "Second", OwnerEmail: "gone@test.com"},
	}, nil)
	s.groupClient.EXPECT().CaveInheritance(gomock.Any(), uint(1), "gone@test.com").
		Return(nil, errors.New("timeout"))
	s.groupClient.EXPECT().CaveInheritance(gomock.Any(), uint(2), "gone@test.com").
		Return(&clients.InheritanceDecision{Action: clients.ActionTransfer, InheritEmail: "heir@test.com"}, nil)
	s.repo.EXPECT().UpdateOwner(uint(2), "heir@test.com").Return(nil)

	// Cave 1 stays untouched for a later redelivery; cave 2 is resolved.
	s.NoError(s.svc.HandleUserDeletion(context.Background(), "gone@test.com"))
}

func (s *CaveOwnershipTestSuite) TestTransferWithoutInheritorIsSkipped() {
	s.repo.EXPECT().GetByOwner("gone@test.com").Return([]models.Cave{
		{CaveID: 1, Name: "Krubera", OwnerEmail: "gone@test.com"},
	}, nil)
	s.groupClient.EXPECT().CaveInheritance(gomock.Any(), uint(1), "gone@test.com").
		Return(&clients.InheritanceDecision{Action: clients.ActionTransfer}, nil)

	s.NoError(s.svc.HandleUserDeletion(context.Background(), "gone@test.com"))
}

func (s *CaveOwnershipTestSuite) TestNoOwnedCaves() {
	s.repo.EXPECT().GetByOwner("gone@test.com").Return(nil, nil)
	s.NoError(s.svc.HandleUserDeletion(context.Background(), "gone@test.com"))
}

func (s *CaveOwnershipTestSuite) TestEventPayloadValidation() {
	err := s.svc.HandleUserDeletedEvent(context.Background(), []byte("{"))
	s.Error(err)

	err = s.svc.HandleUserDeletedEvent(context.Background(), []byte(`{"event":"user.deleted"}`))
	s.Error(err)
	s.Contains(err.Error(), "email")
}
