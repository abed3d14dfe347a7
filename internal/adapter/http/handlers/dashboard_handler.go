package handlers

import (
	"net/http"

	"clicknova_admin/internal/usecase"
	"clicknova_admin/pkg"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetStats godoc
// @Summary Dashboard counters
// @Description Collection counts plus the per-status lead breakdown
// @Tags dashboard
// @Produce json
// @Success 200 {object} usecase.DashboardStats
// @Router /v1/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		respondError(c, pkg.NewDomainError("INTERNAL_ERROR", "Could not collect dashboard stats", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, stats)
}
