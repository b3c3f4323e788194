package service

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-deals/internal/repository/repoargs"
	"github.com/fsdevblog/groph-deals/pkg/uow"
)

// DefaultBestClientsLimit количество клиентов в отчете по умолчанию.
const DefaultBestClientsLimit uint = 2

type AnalyticsService struct {
	uow        uow.UOW
	reportRepo ReportRepository
}

func NewAnalyticsService(u uow.UOW) (*AnalyticsService, error) {
	reportRepo, err := uow.GetRepositoryAs[ReportRepository](u, uow.RepositoryName(repoargs.ReportRepoName))
	if err != nil {
		return nil, err
	}
	return &AnalyticsService{
		uow:        u,
		reportRepo: reportRepo,
	}, nil
}

// RangeArgs границы отчетного периода. Отсутствующая граница (nil) подставляется
// независимо от второй как начало текущего дня UTC.
type RangeArgs struct {
	Start *time.Time
	End   *time.Time
}

// BestProfession возвращает профессию исполнителей с наибольшим заработком за период.
// Если оплаченных работ за период нет, возвращает domain.ErrRecordNotFound.
func (s *AnalyticsService) BestProfession(ctx context.Context, args RangeArgs) (*repoargs.ProfessionTotal, error) {
	total, err := s.reportRepo.BestProfession(ctx, normalizeRange(args))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return total, nil
}

// BestClients возвращает не более limit клиентов с наибольшими выплатами за период,
// по убыванию суммы. Нулевой limit заменяется на DefaultBestClientsLimit.
func (s *AnalyticsService) BestClients(
	ctx context.Context,
	args RangeArgs,
	limit uint,
) ([]repoargs.ClientTotal, error) {
	if limit == 0 {
		limit = DefaultBestClientsLimit
	}
	totals, err := s.reportRepo.BestClients(ctx, normalizeRange(args), limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return totals, nil
}

// normalizeRange приводит границы к началу календарного дня UTC. Обе границы включаются
// в период; конец периода - начало указанного дня, а не его конец.
func normalizeRange(args RangeArgs) repoargs.PaidJobsRange {
	today := startOfDay(time.Now().UTC())

	rng := repoargs.PaidJobsRange{From: today, To: today}
	if args.Start != nil {
		rng.From = startOfDay(args.Start.UTC())
	}
	if args.End != nil {
		rng.To = startOfDay(args.End.UTC())
	}
	return rng
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
