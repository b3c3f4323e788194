package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/gin-gonic/gin"
)

type JobsHandler struct {
	jobSvs     JobServicer
	paymentSvs PaymentServicer
}

func NewJobsHandler(jobSvs JobServicer, paymentSvs PaymentServicer) *JobsHandler {
	return &JobsHandler{
		jobSvs:     jobSvs,
		paymentSvs: paymentSvs,
	}
}

type JobResponse struct {
	CreatedAt   time.Time  `json:"created_at"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
	Description string     `json:"description"`
	ID          int64      `json:"id"`
	ContractID  int64      `json:"contract_id"`
	Price       float64    `json:"price"`
	Paid        bool       `json:"paid"`
}

func newJobResponse(job *domain.Job) JobResponse {
	return JobResponse{
		CreatedAt:   job.CreatedAt,
		PaymentDate: job.PaymentDate,
		Description: job.Description,
		ID:          job.ID,
		ContractID:  job.ContractID,
		Price:       job.Price.InexactFloat64(),
		Paid:        job.Paid,
	}
}

// Unpaid GET RouteGroup + UnpaidJobsRoute.
func (h *JobsHandler) Unpaid(c *gin.Context) {
	currentProfileID := getProfileIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	jobs, err := h.jobSvs.ListUnpaid(reqCtx, currentProfileID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(jobs) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]JobResponse, len(jobs))
	for i := range jobs {
		response[i] = newJobResponse(&jobs[i])
	}

	c.JSON(http.StatusOK, response)
}

type PaymentResponse struct {
	Job               *JobResponse `json:"job,omitempty"`
	DeclineReason     string       `json:"decline_reason,omitempty"`
	ClientBalance     float64      `json:"client_balance,omitempty"`
	ContractorBalance float64      `json:"contractor_balance,omitempty"`
	Paid              bool         `json:"paid"`
}

// Pay POST RouteGroup + PayJobRoute. Недостаток средств у клиента - не ошибка запроса:
// вернется 200 с paid=false и причиной отказа.
func (h *JobsHandler) Pay(c *gin.Context) {
	currentProfileID := getProfileIDFromContext(c)

	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.paymentSvs.Pay(reqCtx, jobID, currentProfileID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrOwnerConflict):
			c.AbortWithStatus(http.StatusUnauthorized)
		case errors.Is(err, domain.ErrAlreadyPaid), errors.Is(err, domain.ErrTxConflict):
			c.AbortWithStatus(http.StatusConflict)
		case errors.Is(err, domain.ErrContractTerminated):
			c.AbortWithStatus(http.StatusUnprocessableEntity)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	if result.Declined {
		c.JSON(http.StatusOK, PaymentResponse{
			Paid:          false,
			DeclineReason: result.DeclineReason,
		})
		return
	}

	job := newJobResponse(result.Job)
	c.JSON(http.StatusOK, PaymentResponse{
		Job:               &job,
		ClientBalance:     result.ClientBalance.InexactFloat64(),
		ContractorBalance: result.ContractorBalance.InexactFloat64(),
		Paid:              true,
	})
}
