package fleet

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

// RegisterPublicRoutes exposes the browsing surface.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/fleet", h.PublicFleet)
	rg.GET("/fleet/:id", h.Get)
	rg.GET("/fleet/:id/availability", h.Availability)
}

// RegisterAdminRoutes exposes the back-office surface.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/fleet", h.AdminFleet)
	rg.POST("/fleet", h.Upsert)
	rg.PATCH("/fleet/:id/maintenance", h.SetMaintenance)
	rg.DELETE("/fleet/:id", h.Delete)
}

func (h *Handler) PublicFleet(c *gin.Context) {
	start, end, ok := parseOptionalRange(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vehicles": h.service.PublicFleet(start, end)})
}

func (h *Handler) AdminFleet(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"vehicles": h.service.AdminFleet()})
}

func (h *Handler) Get(c *gin.Context) {
	v, err := h.service.Get(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vehicle": v})
}

func (h *Handler) Availability(c *gin.Context) {
	start, end, ok := parseOptionalRange(c)
	if !ok {
		return
	}
	available, err := h.service.Available(c.Param("id"), start, end)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"available": available})
}

func (h *Handler) Upsert(c *gin.Context) {
	var req upsertVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	v := domain.Vehicle{
		ID:           req.ID,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Category:     domain.VehicleCategory(req.Category),
		Transmission: req.Transmission,
		Seats:        req.Seats,
		PricePerDay:  req.PricePerDay,
		Status:       domain.VehicleStatus(req.Status),
		Usage:        domain.UsageType(req.Usage),
		Rating:       req.Rating,
		ReviewCount:  req.ReviewCount,
	}
	if req.Available != nil {
		v.Available = *req.Available
	} else {
		v.Available = v.Status == domain.VehicleAvailable || v.Status == ""
	}

	saved, err := h.service.Upsert(v)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"vehicle": saved})
}

func (h *Handler) SetMaintenance(c *gin.Context) {
	var req maintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.On == nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	v, err := h.service.SetMaintenance(c.Param("id"), *req.On)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vehicle": v})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrHasReservations):
		response.Error(c, http.StatusConflict, "VEHICLE_IN_USE", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}

// parseOptionalRange reads start/end query params; both empty means
// browsing mode. A malformed date writes the error response itself.
func parseOptionalRange(c *gin.Context) (time.Time, time.Time, bool) {
	var start, end time.Time
	if v := c.Query("start"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid start date")
			return start, end, false
		}
		start = t
	}
	if v := c.Query("end"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid end date")
			return start, end, false
		}
		end = t
	}
	return start, end, true
}
