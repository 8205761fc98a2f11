package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/fundpulse/internal/batch"
	"github.com/guttosm/fundpulse/internal/domain/dto"
	"github.com/guttosm/fundpulse/internal/middleware"
	"github.com/guttosm/fundpulse/internal/service"
)

// Handler provides HTTP handlers for the fund query endpoints.
//
// Responsibilities:
//   - Validate incoming path and body parameters
//   - Interact with the fund service and batch orchestrator
//   - Translate domain results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc  service.FundService
	orch *batch.Orchestrator
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.FundService): per-fund aggregation logic.
//   - orch (*batch.Orchestrator): bounded-concurrency batch runner.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.FundService, orch *batch.Orchestrator) *Handler {
	return &Handler{svc: svc, orch: orch}
}

// batchRequest is the body of POST /api/fund/batch.
type batchRequest struct {
	Codes []string `json:"codes" example:"110011,161725"`
}

// GetFund handles GET /api/fund/{code} requests.
//
// Responses:
//   - 200 OK: full FundResponse; sub-objects may be null when their source
//     data was unavailable (partial success).
//   - 400 Bad Request: code is not exactly 6 digits.
//   - 404 Not Found: the provider does not know the fund.
//   - 502 Bad Gateway: every upstream sub-fetch failed.
//
// GetFund godoc
// @Summary      Get full fund information
// @Description  Returns live estimate, settled day growth, and 30-day trend statistics for one fund
// @Tags         fund
// @Produce      json
// @Param        code  path      string  true  "6-digit fund code"  example(110011)
// @Success      200   {object}  dto.FundResponse       "Success"
// @Failure      400   {object}  dto.ErrorResponse      "Bad Request"
// @Failure      404   {object}  dto.ErrorResponse      "Not Found"
// @Failure      502   {object}  dto.ErrorResponse      "Upstream Unavailable"
// @Router       /api/fund/{code} [get]
func (h *Handler) GetFund(c *gin.Context) {
	fund, err := h.svc.GetFund(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewFundResponse(fund))
}

// GetEstimate handles GET /api/fund/estimate/{code} requests.
//
// It returns only the live-estimate subset of the fund data. Outside
// trading hours the response still succeeds with has_estimate=false.
//
// GetEstimate godoc
// @Summary      Get live estimate only
// @Description  Returns the intraday valuation estimate subset for one fund
// @Tags         fund
// @Produce      json
// @Param        code  path      string  true  "6-digit fund code"  example(110011)
// @Success      200   {object}  dto.EstimateResponse   "Success"
// @Failure      400   {object}  dto.ErrorResponse      "Bad Request"
// @Failure      404   {object}  dto.ErrorResponse      "Not Found"
// @Failure      502   {object}  dto.ErrorResponse      "Upstream Unavailable"
// @Router       /api/fund/estimate/{code} [get]
func (h *Handler) GetEstimate(c *gin.Context) {
	fund, err := h.svc.GetFund(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewEstimateResponse(fund))
}

// BatchQuery handles POST /api/fund/batch requests.
//
// The body carries up to 20 fund codes; they are fetched concurrently and
// per-code failures end up in the errors map while the batch itself
// answers 200.
//
// BatchQuery godoc
// @Summary      Batch fund query
// @Description  Fetches up to 20 funds concurrently; per-code failures are reported in the errors map
// @Tags         fund
// @Accept       json
// @Produce      json
// @Param        request  body      batchRequest  true  "Fund codes to query"
// @Success      200      {object}  dto.BatchResponse  "Success (possibly partial)"
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Router       /api/fund/batch [post]
func (h *Handler) BatchQuery(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body: codes array required", err)
		return
	}

	result, err := h.orch.Run(c.Request.Context(), req.Codes)
	if err != nil {
		h.writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBatchResponse(result))
}

// writeDomainError maps domain error values onto HTTP statuses.
//
// ValidationError is the caller's fault (400). AggregationError means every
// upstream sub-fetch failed: unknown code (404) or provider down (502).
// Anything else is unclassified and becomes a generic 500.
func (h *Handler) writeDomainError(c *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		middleware.AbortWithError(c, http.StatusBadRequest, verr.Message, nil)
		return
	}

	var aerr *service.AggregationError
	if errors.As(err, &aerr) {
		switch aerr.Kind {
		case service.AggregationNotFound:
			middleware.AbortWithError(c, http.StatusNotFound, "fund "+aerr.Code+" not found", aerr.Cause)
		default:
			middleware.AbortWithError(c, http.StatusBadGateway, "upstream provider unavailable", aerr.Cause)
		}
		return
	}

	middleware.AbortWithError(c, http.StatusInternalServerError, "internal error", err)
}
