package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/groph-deals/internal/config"
	"github.com/fsdevblog/groph-deals/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-deals/internal/repository/repoargs"
	"github.com/fsdevblog/groph-deals/internal/service"
	"github.com/fsdevblog/groph-deals/internal/transport/api"
	"github.com/fsdevblog/groph-deals/pkg/uow"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:           a.Logger,
		ProfileService:   services.ProfileService,
		ContractService:  services.ContractService,
		JobService:       services.JobService,
		PaymentService:   services.PaymentService,
		DepositService:   services.DepositService,
		AnalyticsService: services.AnalyticsService,
		JWTSecretKey:     []byte(a.Config.JWTProfileSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	// profile repo
	profileRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewProfileRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.ProfileRepoName), profileRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// contract repo
	contractRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewContractRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.ContractRepoName), contractRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// job repo
	jobRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewJobRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.JobRepoName), jobRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// report repo
	reportRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewReportRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.ReportRepoName), reportRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	return unitOfWork, nil
}
