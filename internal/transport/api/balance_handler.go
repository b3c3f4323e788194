package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BalanceHandler struct {
	depositSvs DepositServicer
}

func NewBalanceHandler(depositSvs DepositServicer) *BalanceHandler {
	return &BalanceHandler{
		depositSvs: depositSvs,
	}
}

type DepositParams struct {
	Amount decimal.Decimal `json:"amount" binding:"gt=0"`
}

type BalanceResponse struct {
	ID      int64   `json:"id"`
	Balance float64 `json:"balance"`
}

// Deposit POST RouteGroup + DepositRoute. Пополнять можно только собственный баланс;
// превышение лимита пополнения возвращает 401 с величиной лимита.
func (h *BalanceHandler) Deposit(c *gin.Context) {
	currentProfileID := getProfileIDFromContext(c)

	profileID, ok := parseIDParam(c, "profileID")
	if !ok {
		return
	}
	if profileID != currentProfileID {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var params DepositParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	profile, err := h.depositSvs.Deposit(reqCtx, profileID, params.Amount)
	if err != nil {
		var capErr *domain.DepositCapError

		switch {
		case errors.As(err, &capErr):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "deposit cap exceeded",
				"cap":   capErr.Cap.InexactFloat64(),
			})
		case errors.Is(err, domain.ErrInvalidAmount):
			c.AbortWithStatus(http.StatusBadRequest)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrTxConflict):
			c.AbortWithStatus(http.StatusConflict)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{
		ID:      profile.ID,
		Balance: profile.Balance.InexactFloat64(),
	})
}
