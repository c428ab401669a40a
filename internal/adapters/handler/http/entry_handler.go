package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/core/services"
)

type EntryHandler struct {
	svc *services.EntryService
}

func NewEntryHandler(svc *services.EntryService) *EntryHandler {
	return &EntryHandler{
		svc: svc,
	}
}

// Success is a pointer so that an explicit false passes the required check.
type createEntryRequest struct {
	Date    string `json:"date"`
	Success *bool  `json:"success" binding:"required"`
	Mood    string `json:"mood" binding:"required"`
	Journal string `json:"journal" binding:"required"`
}

type updateEntryRequest struct {
	Success *bool  `json:"success" binding:"required"`
	Mood    string `json:"mood" binding:"required"`
	Journal string `json:"journal" binding:"required"`
	Version int    `json:"version"`
}

func (h *EntryHandler) RegisterRoutes(router *gin.RouterGroup) {
	entries := router.Group("/entries")
	{
		entries.GET("/:id", h.Get)
		entries.PUT("/:id", h.Update)
		entries.DELETE("/:id", h.Delete)
	}
}

func (h *EntryHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entry, err := h.svc.GetByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Update godoc
// @Summary      Edit an entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Entry ID"
// @Param        body  body      updateEntryRequest  true  "Entry"
// @Success      200   {object}  domain.HabitEntry
// @Failure      409   {object}  errorResponse
// @Router       /entries/{id} [put]
func (h *EntryHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req updateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	entry, err := h.svc.Update(c.Request.Context(), services.UpdateEntryInput{
		ID:      c.Param("id"),
		UserID:  userID,
		Success: *req.Success,
		Mood:    req.Mood,
		Journal: req.Journal,
		Version: req.Version,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *EntryHandler) Delete(c *gin.Context) {
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
