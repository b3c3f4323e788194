package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/fsdevblog/groph-deals/internal/repository/repoargs"
	"github.com/fsdevblog/groph-deals/internal/service"
)

// ProfileServicer интерфейс исключительно для моков.
type ProfileServicer interface {
	Get(ctx context.Context, id int64) (*domain.Profile, error)
}

type ContractServicer interface {
	GetForParty(ctx context.Context, contractID, profileID int64) (*domain.Contract, error)
	ListActive(ctx context.Context, profileID int64) ([]domain.Contract, error)
}

type JobServicer interface {
	ListUnpaid(ctx context.Context, profileID int64) ([]domain.Job, error)
}

type PaymentServicer interface {
	Pay(ctx context.Context, jobID, requesterID int64) (*service.PaymentResult, error)
}

type DepositServicer interface {
	Deposit(ctx context.Context, clientID int64, amount decimal.Decimal) (*domain.Profile, error)
}

type AnalyticsServicer interface {
	BestProfession(ctx context.Context, args service.RangeArgs) (*repoargs.ProfessionTotal, error)
	BestClients(ctx context.Context, args service.RangeArgs, limit uint) ([]repoargs.ClientTotal, error)
}
