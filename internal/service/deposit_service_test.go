package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/fsdevblog/groph-deals/internal/repository/repoargs"
	"github.com/fsdevblog/groph-deals/internal/service/mocks"
	"github.com/fsdevblog/groph-deals/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-deals/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DepositServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockProfileRepo *mocks.MockProfileRepository
	mockJobRepo     *mocks.MockJobRepository
	service         *DepositService
}

func TestDepositServiceSuite(t *testing.T) {
	suite.Run(t, new(DepositServiceTestSuite))
}

func (s *DepositServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockProfileRepo = mocks.NewMockProfileRepository(s.mockCtrl)
	s.mockJobRepo = mocks.NewMockJobRepository(s.mockCtrl)

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.ProfileRepoName)).
		Return(s.mockProfileRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.JobRepoName)).
		Return(s.mockJobRepo, nil).AnyTimes()

	s.service = NewDepositService(s.mockUOW)
}

func (s *DepositServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectPending настраивает блокировку профиля и сумму неоплаченных работ клиента.
func (s *DepositServiceTestSuite) expectPending(clientID int64, pending decimal.Decimal) {
	s.mockProfileRepo.EXPECT().
		FindForUpdate(gomock.Any(), clientID).
		Return(&domain.Profile{ID: clientID, Type: domain.ProfileTypeClient}, nil)

	s.mockJobRepo.EXPECT().
		SumUnpaidPrice(gomock.Any(), repoargs.UnpaidPriceSum{
			ClientID:      clientID,
			ExcludeStatus: domain.ContractStatusTerminated,
		}).
		Return(pending, nil)
}

func (s *DepositServiceTestSuite) TestDeposit_WithinCap() {
	var clientID int64 = 1

	// Обязательства на 400 - лимит пополнения 100.
	s.expectPending(clientID, decimal.NewFromInt(400))

	amount := decimal.NewFromInt(100)
	s.mockProfileRepo.EXPECT().
		AdjustBalance(gomock.Any(), clientID, amount).
		Return(&domain.Profile{ID: clientID, Balance: decimal.NewFromInt(130)}, nil)

	profile, err := s.service.Deposit(s.T().Context(), clientID, amount)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(130).Equal(profile.Balance))
}

func (s *DepositServiceTestSuite) TestDeposit_ExceedsCap() {
	var clientID int64 = 1

	s.expectPending(clientID, decimal.NewFromInt(400))

	_, err := s.service.Deposit(s.T().Context(), clientID, decimal.NewFromFloat(100.01))

	var capErr *domain.DepositCapError
	s.Require().ErrorAs(err, &capErr)
	s.True(decimal.NewFromInt(100).Equal(capErr.Cap))
}

func (s *DepositServiceTestSuite) TestDeposit_NoPendingJobs() {
	var clientID int64 = 2

	// Без неоплаченных работ лимит нулевой - любое пополнение отклоняется.
	s.expectPending(clientID, decimal.Zero)

	_, err := s.service.Deposit(s.T().Context(), clientID, decimal.NewFromInt(1))

	var capErr *domain.DepositCapError
	s.Require().ErrorAs(err, &capErr)
	s.True(capErr.Cap.IsZero())
}

func (s *DepositServiceTestSuite) TestDeposit_NonPositiveAmount() {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := s.service.Deposit(s.T().Context(), 1, amount)
		s.Require().ErrorIs(err, domain.ErrInvalidAmount)
	}
}

func (s *DepositServiceTestSuite) TestDeposit_ProfileNotFound() {
	var clientID int64 = 404

	s.mockProfileRepo.EXPECT().
		FindForUpdate(gomock.Any(), clientID).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.Deposit(s.T().Context(), clientID, decimal.NewFromInt(10))
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *DepositServiceTestSuite) TestDeposit_SumError() {
	var clientID int64 = 3
	sumErr := errors.New("connection reset")

	s.mockProfileRepo.EXPECT().
		FindForUpdate(gomock.Any(), clientID).
		Return(&domain.Profile{ID: clientID}, nil)
	s.mockJobRepo.EXPECT().
		SumUnpaidPrice(gomock.Any(), gomock.Any()).
		Return(decimal.Zero, sumErr)

	_, err := s.service.Deposit(s.T().Context(), clientID, decimal.NewFromInt(10))
	s.Require().ErrorIs(err, sumErr)
}
