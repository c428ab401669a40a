package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/services"
)

type HabitHandler struct {
	svc      *services.HabitService
	entrySvc *services.EntryService
}

func NewHabitHandler(svc *services.HabitService, entrySvc *services.EntryService) *HabitHandler {
	return &HabitHandler{
		svc:      svc,
		entrySvc: entrySvc,
	}
}

type createHabitRequest struct {
	Name string `json:"name" binding:"required"`
}

type updateHabitRequest struct {
	Name    string `json:"name" binding:"required"`
	Version int    `json:"version"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.POST("", h.Create)
		habits.GET("", h.List)
		habits.GET("/:id", h.Get)
		habits.PUT("/:id", h.Update)
		habits.DELETE("/:id", h.Delete)
		habits.GET("/:id/history", h.History)
		habits.POST("/:id/entries", h.LogEntry)
	}
}

// Create godoc
// @Summary      Create a habit
// @Tags         habits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHabitRequest  true  "Habit"
// @Success      201   {object}  domain.Habit
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /habits [post]
func (h *HabitHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	habit, err := h.svc.Create(c.Request.Context(), services.CreateHabitInput{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, habit)
}

// List godoc
// @Summary      List the user's habits
// @Tags         habits
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Habit
// @Router       /habits [get]
func (h *HabitHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	list, err := h.svc.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *HabitHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	habit, err := h.svc.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}

// Update godoc
// @Summary      Rename a habit
// @Tags         habits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Habit ID"
// @Param        body  body      updateHabitRequest  true  "New name and the version being edited"
// @Success      200   {object}  domain.Habit
// @Failure      409   {object}  errorResponse
// @Router       /habits/{id} [put]
func (h *HabitHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req updateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	habit, err := h.svc.Update(c.Request.Context(), services.UpdateHabitInput{
		ID:      c.Param("id"),
		UserID:  userID,
		Name:    req.Name,
		Version: req.Version,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}

func (h *HabitHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// History godoc
// @Summary      Entries of a habit, optionally filtered to one month
// @Tags         habits
// @Produce      json
// @Security     BearerAuth
// @Param        id     path   string  true   "Habit ID"
// @Param        year   query  int     false  "Year"
// @Param        month  query  int     false  "Month (1-12)"
// @Success      200    {object}  domain.HabitHistory
// @Router       /habits/{id}/history [get]
func (h *HabitHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	year, err := optionalInt(c, "year")
	if err != nil {
		handleError(c, services.ErrInvalidHistoryFilter)
		return
	}
	month, err := optionalInt(c, "month")
	if err != nil {
		handleError(c, services.ErrInvalidHistoryFilter)
		return
	}

	history, err := h.entrySvc.History(c.Request.Context(), services.HistoryInput{
		HabitID: c.Param("id"),
		UserID:  userID,
		Year:    year,
		Month:   month,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// LogEntry godoc
// @Summary      Log the outcome of a day
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Habit ID"
// @Param        body  body      createEntryRequest  true  "Entry"
// @Success      201   {object}  domain.HabitEntry
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /habits/{id}/entries [post]
func (h *HabitHandler) LogEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	entry, err := h.entrySvc.Create(c.Request.Context(), services.CreateEntryInput{
		HabitID: c.Param("id"),
		UserID:  userID,
		Date:    req.Date,
		Success: *req.Success,
		Mood:    req.Mood,
		Journal: req.Journal,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// optionalInt reads an integer query parameter, returning 0 when it is absent.
func optionalInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
