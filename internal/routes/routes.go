package routes

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/Leganyst/booking-platform/internal/config"
	"github.com/Leganyst/booking-platform/internal/handlers"
	"github.com/Leganyst/booking-platform/internal/middleware"
)

// Setup собирает все маршруты приложения.
func Setup(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	calendarHandler *handlers.CalendarHandler,
	bookingHandler *handlers.BookingHandler,
	healthHandler *handlers.HealthHandler,
) http.Handler {
	jwtCfg := &cfg.JWT
	limiter := middleware.NewRateLimiter(cfg.HTTP.AuthRatePerSec, cfg.HTTP.AuthRateBurst)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", healthHandler.Healthz)

	// Аккаунты: регистрация и вход под лимитером.
	mux.HandleFunc("POST /api/auth/signup", limiter.Limit(authHandler.Signup))
	mux.HandleFunc("POST /api/auth/login", limiter.Limit(authHandler.Login))
	mux.HandleFunc("GET /api/users/{username}", authHandler.UserDetail)
	mux.HandleFunc("PATCH /api/users/me", middleware.Auth(authHandler.UpdateProfile, jwtCfg))

	// Календарь: просмотр месяца доступен анонимно, управление — хосту.
	mux.HandleFunc("GET /api/calendars/{username}/month", middleware.OptionalAuth(calendarHandler.MonthView, jwtCfg))
	mux.HandleFunc("POST /api/calendars", middleware.Auth(calendarHandler.CreateCalendar, jwtCfg))
	mux.HandleFunc("PATCH /api/calendars/me", middleware.Auth(calendarHandler.UpdateCalendar, jwtCfg))
	mux.HandleFunc("POST /api/calendars/slots", middleware.Auth(calendarHandler.CreateSlot, jwtCfg))
	mux.HandleFunc("DELETE /api/calendars/slots/{id}", middleware.Auth(calendarHandler.DeleteSlot, jwtCfg))

	// Бронирования гостя.
	mux.HandleFunc("POST /api/bookings", middleware.Auth(bookingHandler.Reserve, jwtCfg))
	mux.HandleFunc("GET /api/bookings", middleware.Auth(bookingHandler.MyBookings, jwtCfg))
	mux.HandleFunc("GET /api/bookings/{id}", middleware.Auth(bookingHandler.BookingDetail, jwtCfg))
	mux.HandleFunc("GET /api/bookings/{id}/history", middleware.Auth(bookingHandler.BookingHistory, jwtCfg))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	return c.Handler(mux)
}
