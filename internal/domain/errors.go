package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrNotEnoughBalance   = errors.New("not enough balance")
	ErrOwnerConflict      = errors.New("owner conflict")
	ErrAlreadyPaid        = errors.New("job already paid")
	ErrContractTerminated = errors.New("contract terminated")
	ErrInvalidAmount      = errors.New("invalid amount")
	// ErrTxConflict сигнализирует о конфликте конкурентных транзакций (SQLSTATE 40001).
	// Такой запрос можно безопасно повторить.
	ErrTxConflict = errors.New("transaction conflict")
)

// DepositCapError возвращается когда сумма пополнения превышает лимит. Лимит считается
// как 25% от суммы неоплаченных работ клиента по неразорванным контрактам.
type DepositCapError struct {
	Cap decimal.Decimal
}

func NewDepositCapError(limit decimal.Decimal) error {
	return &DepositCapError{Cap: limit}
}

func (e *DepositCapError) Error() string {
	return fmt.Sprintf("deposit exceeds cap of %s", e.Cap.String())
}
