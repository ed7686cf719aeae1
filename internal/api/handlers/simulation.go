package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rgehrsitz/mcfolio/internal/api/models"
	"github.com/rgehrsitz/mcfolio/internal/calculation"
	"github.com/rgehrsitz/mcfolio/internal/compare"
	"github.com/rgehrsitz/mcfolio/internal/config"
	"github.com/rgehrsitz/mcfolio/internal/domain"
)

// SimulationHandler runs simulations and allocation comparisons
type SimulationHandler struct {
	engine   *calculation.Engine
	parser   *config.InputParser
	currency string
}

// NewSimulationHandler creates a new simulation handler. The engine holds no
// per-run state, so concurrent requests share it. currency formats the
// display amounts of simulate responses.
func NewSimulationHandler(engine *calculation.Engine, parser *config.InputParser, currency string) *SimulationHandler {
	return &SimulationHandler{engine: engine, parser: parser, currency: currency}
}

// Simulate handles POST /api/v1/simulate
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	in := req.ToInput()
	if err := h.parser.ValidateInput(in); err != nil {
		writeError(c, http.StatusBadRequest, "OUT_OF_RANGE", err)
		return
	}

	result, err := h.run(c.Request.Context(), in, req.Seed)
	if err != nil {
		h.simulationFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewSimulateResponse(result, h.currency))
}

// Compare handles POST /api/v1/compare
func (h *SimulationHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	in := req.ToInput()
	if err := h.parser.ValidateInput(in); err != nil {
		writeError(c, http.StatusBadRequest, "OUT_OF_RANGE", err)
		return
	}
	for _, equity := range req.Equities {
		alt := in
		alt.EquityPercentage = equity
		if err := h.parser.ValidateInput(alt); err != nil {
			writeError(c, http.StatusBadRequest, "OUT_OF_RANGE", err)
			return
		}
	}

	opts := compare.CompareOptions{BaseEquity: in.EquityPercentage, Equities: req.Equities}
	if req.Seed != nil {
		opts.Seed = *req.Seed
	}

	compSet, err := compare.NewCompareEngine(h.engine).Compare(c.Request.Context(), in, opts)
	if err != nil {
		h.simulationFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, compSet)
}

func (h *SimulationHandler) run(ctx context.Context, in domain.SimulationInput, seed *int64) (*domain.SimulationResult, error) {
	if seed != nil && *seed != 0 {
		return h.engine.SimulateWithSeed(ctx, in, *seed)
	}
	return h.engine.Simulate(ctx, in)
}

func (h *SimulationHandler) simulationFailed(c *gin.Context, err error) {
	if errors.Is(err, context.Canceled) {
		log.Printf("SimulationHandler: client went away: %v", err)
		c.Abort()
		return
	}
	writeError(c, http.StatusInternalServerError, "SIMULATION_FAILED", err)
}

func writeError(c *gin.Context, status int, code string, err error) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}
