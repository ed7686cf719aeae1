package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rgehrsitz/mcfolio/internal/api/models"
	"github.com/rgehrsitz/mcfolio/internal/calculation"
	"github.com/rgehrsitz/mcfolio/internal/domain"
)

// ParamsHandler serves the parameter surface: interpolated portfolio
// parameters and the input ranges
type ParamsHandler struct {
	engine *calculation.Engine
	ranges domain.InputRanges
}

// NewParamsHandler creates a new params handler
func NewParamsHandler(engine *calculation.Engine, ranges domain.InputRanges) *ParamsHandler {
	return &ParamsHandler{engine: engine, ranges: ranges}
}

// Params handles GET /api/v1/params. With ?equity=N it returns that single
// mix, otherwise the full table across the equity range.
func (h *ParamsHandler) Params(c *gin.Context) {
	if raw, ok := c.GetQuery("equity"); ok {
		equity, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(c, http.StatusBadRequest, "INVALID_REQUEST", fmt.Errorf("equity must be a number: %w", err))
			return
		}
		if equity < 0 || equity > 100 {
			writeError(c, http.StatusBadRequest, "OUT_OF_RANGE", fmt.Errorf("equity must be between 0 and 100, got %g", equity))
			return
		}
		c.JSON(http.StatusOK, models.ParamsEntry{
			EquityPercentage:    equity,
			PortfolioParameters: h.engine.Params(equity),
		})
		return
	}

	r := h.ranges.EquityPercentage
	step := r.Step
	if step <= 0 {
		step = 5
	}
	resp := models.ParamsResponse{}
	for equity := r.Min; equity <= r.Max+1e-9; equity += step {
		resp.Params = append(resp.Params, models.ParamsEntry{
			EquityPercentage:    equity,
			PortfolioParameters: h.engine.Params(equity),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Ranges handles GET /api/v1/ranges
func (h *ParamsHandler) Ranges(c *gin.Context) {
	c.JSON(http.StatusOK, models.RangesResponse{
		Ranges:   h.ranges,
		Defaults: domain.DefaultInput(),
	})
}
