package service

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/fsdevblog/groph-deals/internal/repository/repoargs"
	"github.com/fsdevblog/groph-deals/internal/service/mocks"
	"github.com/fsdevblog/groph-deals/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-deals/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type JobServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockUOW     *uowmocks.MockUOW
	mockJobRepo *mocks.MockJobRepository
	service     *JobService
}

func TestJobServiceSuite(t *testing.T) {
	suite.Run(t, new(JobServiceTestSuite))
}

func (s *JobServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockJobRepo = mocks.NewMockJobRepository(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.JobRepoName)).
		Return(s.mockJobRepo, nil)

	var err error
	s.service, err = NewJobService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *JobServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *JobServiceTestSuite) TestListUnpaid() {
	var profileID int64 = 1
	jobs := []domain.Job{
		{
			ID:          2,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
			ContractID:  10,
			Description: gofakeit.Sentence(4),
			Price:       decimal.NewFromInt(200),
		},
		{
			ID:          5,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
			ContractID:  11,
			Description: gofakeit.Sentence(4),
			Price:       decimal.NewFromInt(120),
		},
	}

	s.mockJobRepo.EXPECT().
		GetUnpaidByParty(gomock.Any(), repoargs.UnpaidJobsByParty{
			ProfileID:       profileID,
			ExcludeStatuses: []domain.ContractStatusType{domain.ContractStatusTerminated},
		}).
		Return(jobs, nil)

	got, err := s.service.ListUnpaid(s.T().Context(), profileID)
	s.Require().NoError(err)
	s.Equal(jobs, got)
}

func (s *JobServiceTestSuite) TestListUnpaid_Empty() {
	s.mockJobRepo.EXPECT().
		GetUnpaidByParty(gomock.Any(), gomock.Any()).
		Return([]domain.Job{}, nil)

	got, err := s.service.ListUnpaid(s.T().Context(), 7)
	s.Require().NoError(err)
	s.Empty(got)
}
