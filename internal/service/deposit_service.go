package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/fsdevblog/groph-deals/internal/repository/repoargs"
	"github.com/fsdevblog/groph-deals/pkg/uow"
)

// depositCapRate доля от суммы неоплаченных работ клиента, которой ограничено
// разовое пополнение баланса.
var depositCapRate = decimal.NewFromFloat(0.25)

type DepositService struct {
	uow uow.UOW
}

func NewDepositService(u uow.UOW) *DepositService {
	return &DepositService{uow: u}
}

// Deposit пополняет баланс клиента clientID на amount. Сумма пополнения ограничена 25%
// от цены его неоплаченных работ по неразорванным контрактам; превышение лимита
// возвращает *domain.DepositCapError с величиной лимита. Неположительная сумма -
// domain.ErrInvalidAmount.
//
// Чтение суммы обязательств и запись баланса выполняются в одной транзакции под
// блокировкой строки профиля: два конкурентных пополнения не могут пройти проверку
// лимита по одному и тому же устаревшему значению.
func (s *DepositService) Deposit(
	ctx context.Context,
	clientID int64,
	amount decimal.Decimal,
) (*domain.Profile, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("depositing %s to profile %d: %w", amount, clientID, domain.ErrInvalidAmount)
	}

	var updated *domain.Profile

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		profileRepo, profileRepoErr := uow.GetAs[ProfileRepository](tx, uow.RepositoryName(repoargs.ProfileRepoName))
		if profileRepoErr != nil {
			return profileRepoErr //nolint:wrapcheck
		}

		// Блокировка строки сериализует конкурентные пополнения одного клиента.
		if _, lockErr := profileRepo.FindForUpdate(c, clientID); lockErr != nil {
			return lockErr //nolint:wrapcheck
		}

		jobRepo, jobRepoErr := uow.GetAs[JobRepository](tx, uow.RepositoryName(repoargs.JobRepoName))
		if jobRepoErr != nil {
			return jobRepoErr //nolint:wrapcheck
		}

		pending, sumErr := jobRepo.SumUnpaidPrice(c, repoargs.UnpaidPriceSum{
			ClientID:      clientID,
			ExcludeStatus: domain.ContractStatusTerminated,
		})
		if sumErr != nil {
			return sumErr //nolint:wrapcheck
		}

		depositCap := pending.Mul(depositCapRate)
		if amount.GreaterThan(depositCap) {
			return domain.NewDepositCapError(depositCap)
		}

		profile, adjErr := profileRepo.AdjustBalance(c, clientID, amount)
		if adjErr != nil {
			return adjErr //nolint:wrapcheck
		}
		updated = profile
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("depositing %s to profile %d: %w", amount, clientID, txErr)
	}
	return updated, nil
}
