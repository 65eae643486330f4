package reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetbook/internal/domain"
	"fleetbook/internal/modules/pricing"
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
	rg.POST("/reservations", h.Create)
	rg.POST("/reservations/quote", h.Quote)
	rg.GET("/reservations", h.List)
	rg.GET("/reservations/:id", h.GetByID)
	rg.PATCH("/reservations/:id/status", h.Transition)
}

func (h *Handler) Create(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	var (
		r   *domain.Reservation
		err error
	)
	switch domain.ReservationKind(req.Kind) {
	case domain.KindVehicle:
		start, perr := time.Parse(dateLayout, req.StartDate)
		if perr != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid start_date")
			return
		}
		end, perr := time.Parse(dateLayout, req.EndDate)
		if perr != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid end_date")
			return
		}
		r, err = h.service.CreateVehicle(CreateVehicleInput{
			CustomerID:    req.CustomerID,
			VehicleID:     req.VehicleID,
			Start:         start,
			End:           end,
			Extras:        req.Extras,
			Pickup:        req.Pickup,
			PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
			Paid:          req.Paid,
			PayInFull:     req.PayInFull,
		})
	case domain.KindTour:
		date, perr := time.Parse(dateLayout, req.Date)
		if perr != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date")
			return
		}
		r, err = h.service.CreateTour(CreateTourInput{
			CustomerID:    req.CustomerID,
			TourID:        req.TourID,
			Date:          date,
			Passengers:    req.Passengers,
			PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
			Paid:          req.Paid,
			PayInFull:     req.PayInFull,
		})
	default:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "kind must be vehicle or tour")
		return
	}

	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"reservation": r})
}

func (h *Handler) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	switch domain.ReservationKind(req.Kind) {
	case domain.KindVehicle:
		start, perr := time.Parse(dateLayout, req.StartDate)
		if perr != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid start_date")
			return
		}
		end, perr := time.Parse(dateLayout, req.EndDate)
		if perr != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid end_date")
			return
		}
		q, err := h.service.QuoteVehicle(req.VehicleID, start, end, req.Extras, req.Pickup)
		if err != nil {
			h.writeError(c, err)
			return
		}
		response.Success(c, http.StatusOK, quoteResponse{
			Days:         q.Days,
			Base:         q.Base,
			Discount:     q.Discount,
			ExtrasTotal:  q.ExtrasTotal,
			DeliveryCost: q.DeliveryCost,
			Total:        q.Total,
			Deposit:      pricing.Deposit(q.Total),
			PayAtCounter: pricing.PayAtCounter(q.Total),
		})
	case domain.KindTour:
		total, err := h.service.QuoteTour(req.TourID, req.Passengers)
		if err != nil {
			h.writeError(c, err)
			return
		}
		response.Success(c, http.StatusOK, quoteResponse{
			Total:        total,
			Deposit:      pricing.Deposit(total),
			PayAtCounter: pricing.PayAtCounter(total),
		})
	default:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "kind must be vehicle or tour")
	}
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"reservations": h.service.List()})
}

func (h *Handler) GetByID(c *gin.Context) {
	r, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

func (h *Handler) Transition(c *gin.Context) {
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.Transition(c.Param("id"), domain.ReservationStatus(req.Status))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrInvalidDateRange):
		response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", err.Error())
	case errors.Is(err, ErrVehicleUnavailable):
		response.Error(c, http.StatusConflict, "VEHICLE_UNAVAILABLE", err.Error())
	case errors.Is(err, ErrTourCapacityExceeded):
		response.Error(c, http.StatusConflict, "TOUR_CAPACITY_EXCEEDED", err.Error())
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
