package expense

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetbook/internal/pkg/response"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/expenses", h.List)
	rg.POST("/expenses", h.Create)
	rg.DELETE("/expenses/:id", h.Delete)
	rg.GET("/expenses/summary", h.Summary)
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"expenses": h.service.List()})
}

type createExpenseRequest struct {
	Description string `json:"description" binding:"required"`
	Amount      int64  `json:"amount" binding:"required"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date")
			return
		}
		date = parsed
	}

	e, err := h.service.Create(req.Description, req.Category, req.Amount, date)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"expense": e})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Summary(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"by_category": h.service.SummaryByCategory()})
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
