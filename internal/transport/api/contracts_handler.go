package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/gin-gonic/gin"
)

type ContractsHandler struct {
	contractSvs ContractServicer
}

func NewContractsHandler(contractSvs ContractServicer) *ContractsHandler {
	return &ContractsHandler{
		contractSvs: contractSvs,
	}
}

type ContractResponse struct {
	CreatedAt    time.Time                 `json:"created_at"`
	Terms        string                    `json:"terms"`
	Status       domain.ContractStatusType `json:"status"`
	ID           int64                     `json:"id"`
	ClientID     int64                     `json:"client_id"`
	ContractorID int64                     `json:"contractor_id"`
	Paid         bool                      `json:"paid"`
}

func newContractResponse(contract *domain.Contract) ContractResponse {
	return ContractResponse{
		CreatedAt:    contract.CreatedAt,
		Terms:        contract.Terms,
		Status:       contract.Status,
		ID:           contract.ID,
		ClientID:     contract.ClientID,
		ContractorID: contract.ContractorID,
		Paid:         contract.Paid,
	}
}

// Show GET RouteGroup + ContractRoute. Контракт отдается только сторонам сделки.
func (h *ContractsHandler) Show(c *gin.Context) {
	currentProfileID := getProfileIDFromContext(c)

	contractID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	contract, err := h.contractSvs.GetForParty(reqCtx, contractID, currentProfileID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrOwnerConflict):
			c.AbortWithStatus(http.StatusUnauthorized)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, newContractResponse(contract))
}

// Index GET RouteGroup + ContractsRoute.
func (h *ContractsHandler) Index(c *gin.Context) {
	currentProfileID := getProfileIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	contracts, err := h.contractSvs.ListActive(reqCtx, currentProfileID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(contracts) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]ContractResponse, len(contracts))
	for i := range contracts {
		response[i] = newContractResponse(&contracts[i])
	}

	c.JSON(http.StatusOK, response)
}
