package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"runway-analyzer/internal/api/models"
	"runway-analyzer/internal/config"
	"runway-analyzer/internal/engine"
)

// Policy handles GET /api/v1/policy. It exposes the fixed policy defaults and
// request validation limits so clients can mirror them in their forms.
func Policy(cfg *config.Config) gin.HandlerFunc {
	resp := models.PolicyResponse{
		MinRequiredRunwayMonths: engine.MinRequiredRunwayMonths,
		TargetRunwayMonths:      engine.TargetRunwayMonths,
		DefaultMonths:           cfg.Defaults.Months,
		DefaultMonteCarloRuns:   cfg.Defaults.MonteCarloRuns,
		MonthsRange:             [2]int{config.MinMonths, config.MaxMonths},
		MonteCarloRunsRange:     [2]int{config.MinRuns, config.MaxRuns},
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, resp)
	}
}
