package service

import (
	"testing"

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

type ProfileServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockProfileRepo *mocks.MockProfileRepository
	service         *ProfileService
}

func TestProfileServiceSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}

func (s *ProfileServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockProfileRepo = mocks.NewMockProfileRepository(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.ProfileRepoName)).
		Return(s.mockProfileRepo, nil)

	var err error
	s.service, err = NewProfileService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *ProfileServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ProfileServiceTestSuite) TestGet() {
	profile := &domain.Profile{
		ID:         1,
		FirstName:  gofakeit.FirstName(),
		LastName:   gofakeit.LastName(),
		Profession: gofakeit.JobTitle(),
		Type:       domain.ProfileTypeContractor,
		Balance:    decimal.NewFromInt(200),
	}

	s.mockProfileRepo.EXPECT().Find(gomock.Any(), profile.ID).Return(profile, nil)

	got, err := s.service.Get(s.T().Context(), profile.ID)
	s.Require().NoError(err)
	s.Equal(profile, got)
}

func (s *ProfileServiceTestSuite) TestGet_NotFound() {
	s.mockProfileRepo.EXPECT().
		Find(gomock.Any(), int64(404)).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.Get(s.T().Context(), 404)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}
