package repoargs

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaidJobsRange включающий диапазон дат оплаты [From, To]. Обе границы - начало
// календарного дня.
type PaidJobsRange struct {
	From time.Time
	To   time.Time
}

// ProfessionTotal итог по профессии исполнителей за период.
type ProfessionTotal struct {
	Profession string
	TotalPaid  decimal.Decimal
}

// ClientTotal итог по клиенту за период.
type ClientTotal struct {
	ClientID  int64
	FullName  string
	TotalPaid decimal.Decimal
}
