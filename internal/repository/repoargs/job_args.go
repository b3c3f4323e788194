package repoargs

import (
	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/shopspring/decimal"
)

// UnpaidJobsByParty спецификация выборки неоплаченных работ стороны сделки.
// Работы по контрактам со статусами из ExcludeStatuses не попадают в выборку.
type UnpaidJobsByParty struct {
	ProfileID       int64
	ExcludeStatuses []domain.ContractStatusType
}

// UnpaidPriceSum спецификация суммы неоплаченных работ клиента.
type UnpaidPriceSum struct {
	ClientID      int64
	ExcludeStatus domain.ContractStatusType
}

// JobWithContract работа вместе с данными её контракта. Возвращается заблокированной
// выборкой в платежной транзакции: решение о платеже принимается по этим полям.
type JobWithContract struct {
	Job            domain.Job
	ClientID       int64
	ContractorID   int64
	ContractStatus domain.ContractStatusType
}

// Price удобочитаемый доступ к цене работы.
func (j *JobWithContract) Price() decimal.Decimal {
	return j.Job.Price
}
