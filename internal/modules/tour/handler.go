package tour

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetbook/internal/domain"
	"fleetbook/internal/pkg/response"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/tours", h.List)
	rg.GET("/tours/:id", h.Get)
	rg.GET("/tours/:id/capacity", h.RemainingCapacity)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/tours", h.Upsert)
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"tours": h.service.List()})
}

func (h *Handler) Get(c *gin.Context) {
	t, err := h.service.Get(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tour": t})
}

func (h *Handler) RemainingCapacity(c *gin.Context) {
	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid or missing date")
		return
	}

	remaining, err := h.service.RemainingCapacity(c.Param("id"), date)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"remaining": remaining})
}

type upsertTourRequest struct {
	ID             string   `json:"id"`
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	PricePerPerson int64    `json:"price_per_person"`
	Capacity       int      `json:"capacity" binding:"required"`
	DurationHours  int      `json:"duration_hours"`
	Features       []string `json:"features"`
}

func (h *Handler) Upsert(c *gin.Context) {
	var req upsertTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.Upsert(domain.Tour{
		ID:             req.ID,
		Title:          req.Title,
		Description:    req.Description,
		PricePerPerson: req.PricePerPerson,
		Capacity:       req.Capacity,
		DurationHours:  req.DurationHours,
		Features:       req.Features,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"tour": t})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
