package service

import (
	"context"

	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/fsdevblog/groph-deals/internal/repository/repoargs"
	"github.com/fsdevblog/groph-deals/pkg/uow"
)

type JobService struct {
	uow     uow.UOW
	jobRepo JobRepository
}

func NewJobService(u uow.UOW) (*JobService, error) {
	jobRepo, err := uow.GetRepositoryAs[JobRepository](u, uow.RepositoryName(repoargs.JobRepoName))
	if err != nil {
		return nil, err
	}
	return &JobService{
		uow:     u,
		jobRepo: jobRepo,
	}, nil
}

// ListUnpaid возвращает неоплаченные работы стороны сделки по неразорванным контрактам.
// Порядок стабильный - по id работы.
func (s *JobService) ListUnpaid(ctx context.Context, profileID int64) ([]domain.Job, error) {
	jobs, err := s.jobRepo.GetUnpaidByParty(ctx, repoargs.UnpaidJobsByParty{
		ProfileID:       profileID,
		ExcludeStatuses: []domain.ContractStatusType{domain.ContractStatusTerminated},
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return jobs, nil
}
