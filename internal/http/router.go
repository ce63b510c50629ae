package api

import (
	"log"
	stdhttp "net/http"

	intconfig "roadbuddy/internal/config"
	h "roadbuddy/internal/http/handlers"
	"roadbuddy/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, hd *h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })
	r.NoRoute(hd.NoRoute)

	r.GET("/", hd.Home)

	api := r.Group("/api")
	{
		api.GET("/health", hd.Health)
		api.GET("/routes", hd.Routes)

		trips := api.Group("/trips")
		trips.GET("", hd.ListTrips)
		trips.GET("/search", hd.SearchTrips)
		trips.POST("", hd.CreateTrip)
		trips.GET("/:id", hd.GetTrip)
		trips.POST("/:id/book", hd.BookTrip)

		bookings := api.Group("/bookings")
		bookings.GET("/:id", hd.GetBooking)
		bookings.GET("/:id/ticket", hd.GetBookingTicket)

		users := api.Group("/users")
		users.GET("/:id", hd.GetUser)
		users.GET("/:id/bookings", hd.GetUserBookings)
	}

	hd.SetRouter(r)
	return r
}
