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
	"github.com/fsdevblog/groph-deals/internal/service/tokens"
	"github.com/fsdevblog/groph-deals/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-deals/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ProfileHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockProfileService *mocks.MockProfileServicer
	jwtSecret          []byte
}

func TestProfileHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerTestSuite))
}

func (s *ProfileHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockProfileService = mocks.NewMockProfileServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		ProfileService: s.mockProfileService,
		JWTSecretKey:   s.jwtSecret,
	})
}

func (s *ProfileHandlerTestSuite) TestShow() {
	var profileID int64 = 1

	profileJWTToken, jwtErr := tokens.GenerateProfileJWT(profileID, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)
	expiredJWTToken, expJWTErr := tokens.GenerateProfileJWT(profileID, -time.Hour, s.jwtSecret)
	s.Require().NoError(expJWTErr)

	profile := &domain.Profile{
		ID:         profileID,
		FirstName:  "Linus",
		LastName:   "Torvalds",
		Profession: "programmer",
		Type:       domain.ProfileTypeContractor,
		Balance:    decimal.NewFromFloat(1214.33),
	}
	s.mockProfileService.EXPECT().Get(gomock.Any(), profileID).Return(profile, nil)

	cases := []struct {
		name       string
		jwtToken   string
		wantStatus int
		wantID     int64
	}{
		{
			name:       "all ok",
			jwtToken:   profileJWTToken,
			wantStatus: http.StatusOK,
			wantID:     profileID,
		}, {
			name:       "expired token",
			jwtToken:   expiredJWTToken,
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "not authorized",
			jwtToken:   "",
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + ProfileRoute,
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

			if t.wantID != 0 {
				var body ProfileResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.Equal(t.wantID, body.ID)
				s.InDelta(1214.33, body.Balance, 0.001)
			}
		})
	}
}
