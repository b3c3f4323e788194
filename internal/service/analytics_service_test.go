package service

import (
	"testing"
	"time"

	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/fsdevblog/groph-deals/internal/repository/repoargs"
	"github.com/fsdevblog/groph-deals/internal/service/mocks"
	"github.com/fsdevblog/groph-deals/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-deals/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockReportRepo *mocks.MockReportRepository
	service        *AnalyticsService
}

func TestAnalyticsServiceSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

func (s *AnalyticsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockReportRepo = mocks.NewMockReportRepository(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.ReportRepoName)).
		Return(s.mockReportRepo, nil)

	var err error
	s.service, err = NewAnalyticsService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *AnalyticsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AnalyticsServiceTestSuite) TestBestProfession() {
	start := time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	expected := &repoargs.ProfessionTotal{
		Profession: "retoucher",
		TotalPaid:  decimal.NewFromInt(1200),
	}

	// Границы периода обрезаются до начала календарного дня UTC.
	s.mockReportRepo.EXPECT().
		BestProfession(gomock.Any(), repoargs.PaidJobsRange{
			From: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		}).
		Return(expected, nil)

	total, err := s.service.BestProfession(s.T().Context(), RangeArgs{Start: &start, End: &end})
	s.Require().NoError(err)
	s.Equal(expected, total)
}

func (s *AnalyticsServiceTestSuite) TestBestProfession_DefaultsToToday() {
	today := time.Now().UTC()
	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	// Отсутствующие границы подставляются как начало текущего дня.
	s.mockReportRepo.EXPECT().
		BestProfession(gomock.Any(), repoargs.PaidJobsRange{From: startOfToday, To: startOfToday}).
		Return(&repoargs.ProfessionTotal{Profession: "colorist", TotalPaid: decimal.NewFromInt(10)}, nil)

	_, err := s.service.BestProfession(s.T().Context(), RangeArgs{})
	s.Require().NoError(err)
}

func (s *AnalyticsServiceTestSuite) TestBestProfession_Empty() {
	s.mockReportRepo.EXPECT().
		BestProfession(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.BestProfession(s.T().Context(), RangeArgs{})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *AnalyticsServiceTestSuite) TestBestClients_DefaultLimit() {
	s.mockReportRepo.EXPECT().
		BestClients(gomock.Any(), gomock.Any(), DefaultBestClientsLimit).
		Return([]repoargs.ClientTotal{
			{ClientID: 7, FullName: "Ash Kethcum", TotalPaid: decimal.NewFromInt(2020)},
			{ClientID: 1, FullName: "Harry Potter", TotalPaid: decimal.NewFromInt(200)},
		}, nil)

	totals, err := s.service.BestClients(s.T().Context(), RangeArgs{}, 0)
	s.Require().NoError(err)
	s.Require().Len(totals, 2)
	s.True(totals[0].TotalPaid.GreaterThanOrEqual(totals[1].TotalPaid))
}

func (s *AnalyticsServiceTestSuite) TestBestClients_ExplicitLimit() {
	s.mockReportRepo.EXPECT().
		BestClients(gomock.Any(), gomock.Any(), uint(5)).
		Return([]repoargs.ClientTotal{}, nil)

	totals, err := s.service.BestClients(s.T().Context(), RangeArgs{}, 5)
	s.Require().NoError(err)
	s.Empty(totals)
}

func (s *AnalyticsServiceTestSuite) TestNormalizeRange_IndependentBounds() {
	end := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	today := time.Now().UTC()
	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	rng := normalizeRange(RangeArgs{End: &end})
	s.Equal(startOfToday, rng.From)
	s.Equal(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), rng.To)
}

func (s *AnalyticsServiceTestSuite) TestNormalizeRange_NonUTCBound() {
	// Граница в локальной зоне приводится к UTC до обрезки: 02:00+03:00 это предыдущий день.
	loc := time.FixedZone("MSK", 3*60*60)
	start := time.Date(2024, 6, 10, 2, 0, 0, 0, loc)

	rng := normalizeRange(RangeArgs{Start: &start, End: &start})
	s.Equal(time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), rng.From)
}
