package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/fsdevblog/groph-deals/internal/repository/repoargs"
	"github.com/fsdevblog/groph-deals/pkg/uow"
)

type PaymentService struct {
	uow uow.UOW
}

func NewPaymentService(u uow.UOW) *PaymentService {
	return &PaymentService{uow: u}
}

// PaymentResult итог платежа. Недостаток средств - не сбой, а деловой отказ: в этом
// случае Declined == true, остальные поля не заполняются, а ошибка не возвращается.
type PaymentResult struct {
	Declined          bool
	DeclineReason     string
	Job               *domain.Job
	ClientBalance     decimal.Decimal
	ContractorBalance decimal.Decimal
}

// Pay проводит платеж по работе jobID от имени профиля requesterID. Все проверки и все
// записи выполняются в одной транзакции: списание с клиента, зачисление исполнителю и
// отметка работы оплаченной либо фиксируются вместе, либо не фиксируются вовсе.
//
// Порядок проверок:
//  1. Работа существует и не оплачена, иначе domain.ErrRecordNotFound / domain.ErrAlreadyPaid.
//  2. Контракт работы не разорван, иначе domain.ErrContractTerminated.
//  3. Запрашивающий - сторона контракта, иначе domain.ErrOwnerConflict.
//  4. Баланса клиента хватает на цену работы, иначе отказ (PaymentResult.Declined).
//
// Строки работы и контракта блокируются на время транзакции, а переход unpaid -> paid
// работает как compare-and-set: из конкурентных платежей по одной работе пройдет ровно один.
// Если после платежа под контрактом не осталось неоплаченных работ, контракт помечается
// полностью рассчитанным.
func (s *PaymentService) Pay(ctx context.Context, jobID, requesterID int64) (*PaymentResult, error) {
	var result PaymentResult

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		jobRepo, jobRepoErr := uow.GetAs[JobRepository](tx, uow.RepositoryName(repoargs.JobRepoName))
		if jobRepoErr != nil {
			return jobRepoErr //nolint:wrapcheck
		}

		jwc, findErr := jobRepo.FindWithContractForUpdate(c, jobID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if jwc.Job.Paid {
			return domain.ErrAlreadyPaid
		}
		if jwc.ContractStatus == domain.ContractStatusTerminated {
			return domain.ErrContractTerminated
		}
		if requesterID != jwc.ClientID && requesterID != jwc.ContractorID {
			return domain.ErrOwnerConflict
		}

		profileRepo, profileRepoErr := uow.GetAs[ProfileRepository](tx, uow.RepositoryName(repoargs.ProfileRepoName))
		if profileRepoErr != nil {
			return profileRepoErr //nolint:wrapcheck
		}

		price := jwc.Price()

		client, debitErr := profileRepo.AdjustBalance(c, jwc.ClientID, price.Neg())
		if debitErr != nil {
			if errors.Is(debitErr, domain.ErrNotEnoughBalance) {
				// Деловой отказ: транзакция завершается без изменений.
				result.Declined = true
				result.DeclineReason = "insufficient funds"
				return nil
			}
			return debitErr //nolint:wrapcheck
		}

		contractor, creditErr := profileRepo.AdjustBalance(c, jwc.ContractorID, price)
		if creditErr != nil {
			return creditErr //nolint:wrapcheck
		}

		job, markErr := jobRepo.MarkPaid(c, jobID, time.Now())
		if markErr != nil {
			return markErr //nolint:wrapcheck
		}

		if settleErr := s.settleContract(c, tx, jwc.Job.ContractID); settleErr != nil {
			return settleErr
		}

		result.Job = job
		result.ClientBalance = client.Balance
		result.ContractorBalance = contractor.Balance
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("paying job %d: %w", jobID, txErr)
	}
	return &result, nil
}

// settleContract помечает контракт полностью рассчитанным, если под ним не осталось
// неоплаченных работ. Выполняется внутри платежной транзакции.
func (s *PaymentService) settleContract(ctx context.Context, tx uow.TX, contractID int64) error {
	jobRepo, jobRepoErr := uow.GetAs[JobRepository](tx, uow.RepositoryName(repoargs.JobRepoName))
	if jobRepoErr != nil {
		return jobRepoErr //nolint:wrapcheck
	}
	remaining, countErr := jobRepo.CountUnpaidByContract(ctx, contractID)
	if countErr != nil {
		return countErr //nolint:wrapcheck
	}
	if remaining > 0 {
		return nil
	}

	contractRepo, contractRepoErr := uow.GetAs[ContractRepository](tx, uow.RepositoryName(repoargs.ContractRepoName))
	if contractRepoErr != nil {
		return contractRepoErr //nolint:wrapcheck
	}
	return contractRepo.MarkPaid(ctx, contractID) //nolint:wrapcheck
}
