package handlers

import (
	"sync"

	"roadbuddy/internal/http/middleware"
	"roadbuddy/internal/repositories"
	"roadbuddy/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	ServiceName    = "RoadBuddy API"
	ServiceVersion = "1.0.0"
)

// Handler owns the stores and builds request-scoped services from them.
type Handler struct {
	Trips         *repositories.TripStore
	Bookings      *repositories.BookingStore
	Users         repositories.UserDirectory
	StrictSeats   bool
	DefaultUserID string

	routerMu sync.RWMutex
	router   *gin.Engine
}

func New(trips *repositories.TripStore, bookings *repositories.BookingStore, users repositories.UserDirectory) *Handler {
	return &Handler{Trips: trips, Bookings: bookings, Users: users}
}

// SetRouter stores the active gin engine for /api/routes.
func (h *Handler) SetRouter(r *gin.Engine) {
	h.routerMu.Lock()
	defer h.routerMu.Unlock()
	h.router = r
}

func (h *Handler) tripService(c *gin.Context) services.TripService {
	return services.TripService{Store: h.Trips, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		Trips:         h.Trips,
		Bookings:      h.Bookings,
		StrictSeats:   h.StrictSeats,
		DefaultUserID: h.DefaultUserID,
		RequestID:     middleware.GetRequestID(c),
	}
}

func (h *Handler) userService() services.UserService {
	return services.UserService{Directory: h.Users}
}

func (h *Handler) ticketService(c *gin.Context) services.TicketService {
	return services.TicketService{
		Bookings:  h.bookingService(c),
		Users:     h.userService(),
		RequestID: middleware.GetRequestID(c),
	}
}
