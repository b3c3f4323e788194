package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type Profile struct {
	ID         int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	FirstName  string
	LastName   string
	Profession string
	Type       ProfileType
	Balance    decimal.Decimal
}

// FullName возвращает полное имя профиля в формате "Имя Фамилия".
func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

type Contract struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ClientID     int64
	ContractorID int64
	Terms        string
	Status       ContractStatusType
	// Paid выставляется в true когда под контрактом не остается неоплаченных работ.
	Paid bool
}

// IsParty сообщает, является ли профиль стороной контракта (клиентом или исполнителем).
func (c *Contract) IsParty(profileID int64) bool {
	return c.ClientID == profileID || c.ContractorID == profileID
}

type Job struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ContractID  int64
	Description string
	Price       decimal.Decimal
	Paid        bool
	// PaymentDate не nil тогда и только тогда, когда Paid == true.
	PaymentDate *time.Time
}
