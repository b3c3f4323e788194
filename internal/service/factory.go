package service

import (
	"fmt"

	"github.com/fsdevblog/groph-deals/pkg/uow"
)

type AppServices struct {
	ProfileService   *ProfileService
	ContractService  *ContractService
	JobService       *JobService
	PaymentService   *PaymentService
	DepositService   *DepositService
	AnalyticsService *AnalyticsService
}

func Factory(unitOfWork uow.UOW) (*AppServices, error) {
	profileService, profileServiceErr := NewProfileService(unitOfWork)
	if profileServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", profileServiceErr.Error())
	}

	contractService, contractServiceErr := NewContractService(unitOfWork)
	if contractServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", contractServiceErr.Error())
	}

	jobService, jobServiceErr := NewJobService(unitOfWork)
	if jobServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", jobServiceErr.Error())
	}

	analyticsService, analyticsServiceErr := NewAnalyticsService(unitOfWork)
	if analyticsServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", analyticsServiceErr.Error())
	}

	return &AppServices{
		ProfileService:   profileService,
		ContractService:  contractService,
		JobService:       jobService,
		PaymentService:   NewPaymentService(unitOfWork),
		DepositService:   NewDepositService(unitOfWork),
		AnalyticsService: analyticsService,
	}, nil
}
