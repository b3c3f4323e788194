package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/fsdevblog/groph-deals/internal/service"
	"github.com/gin-gonic/gin"
)

// reportDateLayout формат границ отчетного периода в query-параметрах.
const reportDateLayout = "2006-01-02"

type ReportsHandler struct {
	analyticsSvs AnalyticsServicer
}

func NewReportsHandler(analyticsSvs AnalyticsServicer) *ReportsHandler {
	return &ReportsHandler{
		analyticsSvs: analyticsSvs,
	}
}

// parseRangeArgs разбирает start/end из query. Отсутствующий параметр остается nil -
// значение по умолчанию подставит сервис. Некорректная дата - 400.
func parseRangeArgs(c *gin.Context) (service.RangeArgs, bool) {
	var args service.RangeArgs

	for _, bound := range []struct {
		dst  **time.Time
		name string
	}{
		{dst: &args.Start, name: "start"},
		{dst: &args.End, name: "end"},
	} {
		raw, exist := c.GetQuery(bound.name)
		if !exist {
			continue
		}
		parsed, err := time.Parse(reportDateLayout, raw)
		if err != nil {
			_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
			return args, false
		}
		*bound.dst = &parsed
	}
	return args, true
}

type BestProfessionResponse struct {
	Profession string  `json:"profession"`
	Earned     float64 `json:"earned"`
}

// BestProfession GET RouteGroup + BestProfessionRoute.
func (h *ReportsHandler) BestProfession(c *gin.Context) {
	args, ok := parseRangeArgs(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	total, err := h.analyticsSvs.BestProfession(reqCtx, args)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, BestProfessionResponse{
		Profession: total.Profession,
		Earned:     total.TotalPaid.InexactFloat64(),
	})
}

type BestClientResponseItem struct {
	FullName string  `json:"full_name"`
	ID       int64   `json:"id"`
	Paid     float64 `json:"paid"`
}

// BestClients GET RouteGroup + BestClientsRoute.
func (h *ReportsHandler) BestClients(c *gin.Context) {
	args, ok := parseRangeArgs(c)
	if !ok {
		return
	}

	var limit uint
	if raw, exist := c.GetQuery("limit"); exist {
		parsed, parseErr := strconv.ParseUint(raw, 10, 32)
		if parseErr != nil || parsed == 0 {
			_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid limit")).SetType(gin.ErrorTypeBind)
			return
		}
		limit = uint(parsed)
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	totals, err := h.analyticsSvs.BestClients(reqCtx, args, limit)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]BestClientResponseItem, len(totals))
	for i, total := range totals {
		response[i] = BestClientResponseItem{
			FullName: total.FullName,
			ID:       total.ClientID,
			Paid:     total.TotalPaid.InexactFloat64(),
		}
	}

	c.JSON(http.StatusOK, response)
}
