package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brandonkimmmm/backend-coding-test/internal/logger"
	"github.com/brandonkimmmm/backend-coding-test/internal/service"
	"github.com/brandonkimmmm/backend-coding-test/internal/validation"
)

// RideHandler handles HTTP requests for rides.
type RideHandler struct {
	rideService *service.RideService
	log         *slog.Logger
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(rideService *service.RideService, log *slog.Logger) *RideHandler {
	return &RideHandler{
		rideService: rideService,
		log:         log,
	}
}

// createRideRequest binds only the declared body fields; anything else
// a client sends never reaches validation. Fields stay untyped here so
// the validation layer owns coercion and rejection.
type createRideRequest struct {
	StartLat      any `json:"start_lat"`
	StartLong     any `json:"start_long"`
	EndLat        any `json:"end_lat"`
	EndLong       any `json:"end_long"`
	RiderName     any `json:"rider_name"`
	DriverName    any `json:"driver_name"`
	DriverVehicle any `json:"driver_vehicle"`
}

// CreateRide handles POST /rides
func (h *RideHandler) CreateRide(c *gin.Context) {
	var req createRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Ctx(c.Request.Context(), h.log).Info("create ride body rejected", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			ErrorCode: CodeValidationError,
			Message:   "Invalid request data",
		})
		return
	}

	ride, err := h.rideService.CreateRide(c.Request.Context(), validation.CreateRideInput{
		StartLat:      req.StartLat,
		StartLong:     req.StartLong,
		EndLat:        req.EndLat,
		EndLong:       req.EndLong,
		RiderName:     req.RiderName,
		DriverName:    req.DriverName,
		DriverVehicle: req.DriverVehicle,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ride)
}

// GetRides handles GET /rides
func (h *RideHandler) GetRides(c *gin.Context) {
	page, err := h.rideService.ListRides(c.Request.Context(), c.Query("limit"), c.Query("page"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetRide handles GET /rides/:id
func (h *RideHandler) GetRide(c *gin.Context) {
	ride, err := h.rideService.GetRide(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ride)
}
