package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"runway-analyzer/internal/api/models"
	"runway-analyzer/internal/config"
	"runway-analyzer/internal/engine"
)

// ScenariosHandler serves just the scenario cash curves, for chart rendering.
type ScenariosHandler struct {
	cfg *config.Config
}

func NewScenariosHandler(cfg *config.Config) *ScenariosHandler {
	return &ScenariosHandler{cfg: cfg}
}

// Scenarios handles POST /api/v1/scenarios
func (h *ScenariosHandler) Scenarios(c *gin.Context) {
	var req models.ScenariosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	months := req.MonthsOr(h.cfg.Defaults.Months)
	scenarios := engine.ScenarioAnalysis(req.Inputs(), months)

	c.JSON(http.StatusOK, models.ScenariosResponse{
		Months:    months,
		Scenarios: models.NewScenarioViews(scenarios),
	})
}
