package taxi

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/drivers", h.Drivers)
	rg.POST("/drivers", h.UpsertDriver)
	rg.GET("/settlements", h.Settlements)
	rg.POST("/settlements", h.RecordSettlement)
}

func (h *Handler) Drivers(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"drivers": h.service.Drivers()})
}

type upsertDriverRequest struct {
	ID               string `json:"id"`
	Name             string `json:"name" binding:"required"`
	License          string `json:"license"`
	Phone            string `json:"phone"`
	Status           string `json:"status"`
	CurrentVehicleID string `json:"current_vehicle_id"`
}

func (h *Handler) UpsertDriver(c *gin.Context) {
	var req upsertDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.UpsertDriver(domain.Driver{
		ID:               req.ID,
		Name:             req.Name,
		License:          req.License,
		Phone:            req.Phone,
		Status:           domain.DriverStatus(req.Status),
		CurrentVehicleID: req.CurrentVehicleID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"driver": d})
}

func (h *Handler) Settlements(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"settlements": h.service.Settlements(c.Query("driver_id"))})
}

type recordSettlementRequest struct {
	DriverID string `json:"driver_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Amount   int64  `json:"amount"`
	Notes    string `json:"notes"`
}

func (h *Handler) RecordSettlement(c *gin.Context) {
	var req recordSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date")
		return
	}

	l, err := h.service.RecordSettlement(req.DriverID, date, req.Amount, req.Notes)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"settlement": l})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrDuplicateSettlement):
		response.Error(c, http.StatusConflict, "DUPLICATE_SETTLEMENT", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
