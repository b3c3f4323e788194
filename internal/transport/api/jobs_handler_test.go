package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/fsdevblog/groph-deals/internal/logger"
	"github.com/fsdevblog/groph-deals/internal/service"
	"github.com/fsdevblog/groph-deals/internal/service/tokens"
	"github.com/fsdevblog/groph-deals/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-deals/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type JobsHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockJobService     *mocks.MockJobServicer
	mockPaymentService *mocks.MockPaymentServicer
	jwtSecret          []byte
}

func TestJobsHandlerSuite(t *testing.T) {
	suite.Run(t, new(JobsHandlerTestSuite))
}

func (s *JobsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockJobService = mocks.NewMockJobServicer(mockCtrl)
	s.mockPaymentService = mocks.NewMockPaymentServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		JobService:     s.mockJobService,
		PaymentService: s.mockPaymentService,
		JWTSecretKey:   s.jwtSecret,
	})
}

func (s *JobsHandlerTestSuite) profileToken(profileID int64) string {
	token, err := tokens.GenerateProfileJWT(profileID, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

func (s *JobsHandlerTestSuite) TestUnpaid() {
	var profileID int64 = 1
	var emptyProfileID int64 = 2

	jobs := []domain.Job{
		{
			ID:          3,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
			ContractID:  10,
			Description: "color grading",
			Price:       decimal.NewFromInt(200),
		},
	}
	s.mockJobService.EXPECT().ListUnpaid(gomock.Any(), profileID).Return(jobs, nil)
	s.mockJobService.EXPECT().ListUnpaid(gomock.Any(), emptyProfileID).Return([]domain.Job{}, nil)

	cases := []struct {
		name       string
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			jwtToken:   s.profileToken(profileID),
			wantStatus: http.StatusOK,
		}, {
			name:       "not authorized",
			jwtToken:   "",
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "no unpaid jobs",
			jwtToken:   s.profileToken(emptyProfileID),
			wantStatus: http.StatusNoContent,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + UnpaidJobsRoute,
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				authHeader := fmt.Sprintf("Bearer %s", t.jwtToken)
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", authHeader))
			}
			res, err := testutils.MakeRequest(args, reqOpts...)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *JobsHandlerTestSuite) TestPay() {
	var clientID int64 = 1

	paymentDate := time.Now()
	paidJob := &domain.Job{
		ID:          5,
		ContractID:  10,
		Description: "retouching",
		Price:       decimal.NewFromInt(100),
		Paid:        true,
		PaymentDate: &paymentDate,
	}

	s.mockPaymentService.EXPECT().
		Pay(gomock.Any(), int64(5), clientID).
		Return(&service.PaymentResult{
			Job:               paidJob,
			ClientBalance:     decimal.NewFromInt(50),
			ContractorBalance: decimal.NewFromInt(300),
		}, nil)
	s.mockPaymentService.EXPECT().
		Pay(gomock.Any(), int64(6), clientID).
		Return(&service.PaymentResult{Declined: true, DeclineReason: "insufficient funds"}, nil)
	s.mockPaymentService.EXPECT().
		Pay(gomock.Any(), int64(7), clientID).
		Return(nil, fmt.Errorf("paying job 7: %w", domain.ErrAlreadyPaid))
	s.mockPaymentService.EXPECT().
		Pay(gomock.Any(), int64(8), clientID).
		Return(nil, fmt.Errorf("paying job 8: %w", domain.ErrRecordNotFound))
	s.mockPaymentService.EXPECT().
		Pay(gomock.Any(), int64(9), clientID).
		Return(nil, fmt.Errorf("paying job 9: %w", domain.ErrOwnerConflict))
	s.mockPaymentService.EXPECT().
		Pay(gomock.Any(), int64(11), clientID).
		Return(nil, fmt.Errorf("paying job 11: %w", domain.ErrContractTerminated))

	cases := []struct {
		name       string
		jobID      string
		jwtToken   string
		wantStatus int
		wantPaid   *bool
	}{
		{
			name:       "all ok",
			jobID:      "5",
			jwtToken:   s.profileToken(clientID),
			wantStatus: http.StatusOK,
			wantPaid:   boolPtr(true),
		}, {
			name:       "declined",
			jobID:      "6",
			jwtToken:   s.profileToken(clientID),
			wantStatus: http.StatusOK,
			wantPaid:   boolPtr(false),
		}, {
			name:       "already paid",
			jobID:      "7",
			jwtToken:   s.profileToken(clientID),
			wantStatus: http.StatusConflict,
		}, {
			name:       "not found",
			jobID:      "8",
			jwtToken:   s.profileToken(clientID),
			wantStatus: http.StatusNotFound,
		}, {
			name:       "not a party",
			jobID:      "9",
			jwtToken:   s.profileToken(clientID),
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "terminated contract",
			jobID:      "11",
			jwtToken:   s.profileToken(clientID),
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "invalid job id",
			jobID:      "abc",
			jwtToken:   s.profileToken(clientID),
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "not authorized",
			jobID:      "5",
			jwtToken:   "",
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + "/jobs/" + t.jobID + "/pay",
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				authHeader := fmt.Sprintf("Bearer %s", t.jwtToken)
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", authHeader))
			}
			res, err := testutils.MakeRequest(args, reqOpts...)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantPaid != nil {
				var payment PaymentResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&payment))
				s.Equal(*t.wantPaid, payment.Paid)
			}
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}
