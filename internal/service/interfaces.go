package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/fsdevblog/groph-deals/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type ProfileRepository interface {
	Find(ctx context.Context, id int64) (*domain.Profile, error)
	FindForUpdate(ctx context.Context, id int64) (*domain.Profile, error)
	AdjustBalance(ctx context.Context, id int64, delta decimal.Decimal) (*domain.Profile, error)
}

type ContractRepository interface {
	Find(ctx context.Context, id int64) (*domain.Contract, error)
	GetByParty(ctx context.Context, args repoargs.ContractsByParty) ([]domain.Contract, error)
	MarkPaid(ctx context.Context, id int64) error
}

type JobRepository interface {
	Find(ctx context.Context, id int64) (*domain.Job, error)
	FindWithContractForUpdate(ctx context.Context, id int64) (*repoargs.JobWithContract, error)
	GetUnpaidByParty(ctx context.Context, args repoargs.UnpaidJobsByParty) ([]domain.Job, error)
	SumUnpaidPrice(ctx context.Context, args repoargs.UnpaidPriceSum) (decimal.Decimal, error)
	MarkPaid(ctx context.Context, id int64, at time.Time) (*domain.Job, error)
	CountUnpaidByContract(ctx context.Context, contractID int64) (int64, error)
}

type ReportRepository interface {
	BestProfession(ctx context.Context, rng repoargs.PaidJobsRange) (*repoargs.ProfessionTotal, error)
	BestClients(ctx context.Context, rng repoargs.PaidJobsRange, limit uint) ([]repoargs.ClientTotal, error)
}
