package service

import (
	"context"

	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/fsdevblog/groph-deals/internal/repository/repoargs"
	"github.com/fsdevblog/groph-deals/pkg/uow"
)

type ProfileService struct {
	uow         uow.UOW
	profileRepo ProfileRepository
}

func NewProfileService(u uow.UOW) (*ProfileService, error) {
	profileRepo, err := uow.GetRepositoryAs[ProfileRepository](u, uow.RepositoryName(repoargs.ProfileRepoName))
	if err != nil {
		return nil, err
	}
	return &ProfileService{
		uow:         u,
		profileRepo: profileRepo,
	}, nil
}

// Get возвращает профиль по id вместе с текущим балансом.
func (s *ProfileService) Get(ctx context.Context, id int64) (*domain.Profile, error) {
	profile, err := s.profileRepo.Find(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return profile, nil
}
