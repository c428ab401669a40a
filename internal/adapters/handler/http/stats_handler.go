package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/domain"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/services"
	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/streak"
)

const (
	defaultStatsDays = 7
	maxStatsDays     = 366
)

type StatsHandler struct {
	svc   *services.StatsService
	clock domain.Clock
}

func NewStatsHandler(svc *services.StatsService, clock domain.Clock) *StatsHandler {
	return &StatsHandler{svc: svc, clock: clock}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats", h.GetPeriodStats)
}

// GetPeriodStats godoc
// @Summary      Completion statistics over a date range
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Param        start_date  query     string  false  "YYYY-MM-DD, defaults to six days before end_date"
// @Param        end_date    query     string  false  "YYYY-MM-DD, defaults to today"
// @Success      200         {object}  domain.PeriodStats
// @Failure      400         {object}  errorResponse
// @Router       /stats [get]
func (h *StatsHandler) GetPeriodStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var endDate, startDate time.Time
	var err error

	if raw := c.Query("end_date"); raw == "" {
		endDate = h.clock.Today()
	} else if endDate, err = streak.ParseDay(raw); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid end_date format, expected YYYY-MM-DD"})
		return
	}

	if raw := c.Query("start_date"); raw == "" {
		startDate = endDate.AddDate(0, 0, -(defaultStatsDays - 1))
	} else if startDate, err = streak.ParseDay(raw); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid start_date format, expected YYYY-MM-DD"})
		return
	}

	startDate, endDate = streak.Day(startDate), streak.Day(endDate)

	if startDate.After(endDate) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "start_date cannot be after end_date"})
		return
	}

	if days := int(endDate.Sub(startDate).Hours()/24) + 1; days > maxStatsDays {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "date range too large, max 366 days allowed"})
		return
	}

	stats, err := h.svc.GetPeriodStats(c.Request.Context(), domain.StatsInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
