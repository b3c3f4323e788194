package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/fsdevblog/groph-deals/internal/repository/repoargs"
	"github.com/fsdevblog/groph-deals/pkg/uow"
)

type ContractService struct {
	uow          uow.UOW
	contractRepo ContractRepository
}

func NewContractService(u uow.UOW) (*ContractService, error) {
	contractRepo, err := uow.GetRepositoryAs[ContractRepository](u, uow.RepositoryName(repoargs.ContractRepoName))
	if err != nil {
		return nil, err
	}
	return &ContractService{
		uow:          u,
		contractRepo: contractRepo,
	}, nil
}

// GetForParty возвращает контракт по id для стороны сделки. Если профиль не является
// стороной контракта, возвращает ошибку domain.ErrOwnerConflict; для неизвестного id -
// domain.ErrRecordNotFound.
func (s *ContractService) GetForParty(ctx context.Context, contractID, profileID int64) (*domain.Contract, error) {
	contract, err := s.contractRepo.Find(ctx, contractID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if !contract.IsParty(profileID) {
		return nil, fmt.Errorf("getting contract %d for profile %d: %w", contractID, profileID, domain.ErrOwnerConflict)
	}
	return contract, nil
}

// ListActive возвращает неразорванные контракты, в которых профиль выступает клиентом
// или исполнителем. Порядок стабильный - по id контракта.
func (s *ContractService) ListActive(ctx context.Context, profileID int64) ([]domain.Contract, error) {
	contracts, err := s.contractRepo.GetByParty(ctx, repoargs.ContractsByParty{
		ProfileID:       profileID,
		ExcludeStatuses: []domain.ContractStatusType{domain.ContractStatusTerminated},
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return contracts, nil
}
