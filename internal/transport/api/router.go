package api

import (
	"time"

	"github.com/fsdevblog/groph-deals/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup          = "/api"
	ProfileRoute        = "/profile"
	ContractsRoute      = "/contracts"
	ContractRoute       = "/contracts/:id"
	UnpaidJobsRoute     = "/jobs/unpaid"
	PayJobRoute         = "/jobs/:id/pay"
	DepositRoute        = "/balance/deposit/:profileID"
	BestProfessionRoute = "/reports/best-profession"
	BestClientsRoute    = "/reports/best-clients"
)

type RouterArgs struct {
	Logger           *logrus.Logger
	ProfileService   ProfileServicer
	ContractService  ContractServicer
	JobService       JobServicer
	PaymentService   PaymentServicer
	DepositService   DepositServicer
	AnalyticsService AnalyticsServicer
	JWTSecretKey     []byte
}

func New(args RouterArgs) *gin.Engine {
	registerValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	profileHandler := NewProfileHandler(args.ProfileService)
	contractsHandler := NewContractsHandler(args.ContractService)
	jobsHandler := NewJobsHandler(args.JobService, args.PaymentService)
	balanceHandler := NewBalanceHandler(args.DepositService)
	reportsHandler := NewReportsHandler(args.AnalyticsService)

	api := r.Group(RouteGroup)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// все роуты группы требуют авторизованного профиля.
	api.GET(ProfileRoute, profileHandler.Show)

	api.GET(ContractsRoute, contractsHandler.Index)
	api.GET(ContractRoute, contractsHandler.Show)

	api.GET(UnpaidJobsRoute, jobsHandler.Unpaid)
	api.POST(PayJobRoute, jobsHandler.Pay)

	api.POST(DepositRoute, balanceHandler.Deposit)

	api.GET(BestProfessionRoute, reportsHandler.BestProfession)
	api.GET(BestClientsRoute, reportsHandler.BestClients)
	return r
}
