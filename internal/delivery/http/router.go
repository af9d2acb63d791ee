package http

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"courseplanner/internal/delivery/http/controllers"
	"courseplanner/internal/delivery/http/middleware"
)

// RouterConfig holds the per-route limits applied by NewRouter.
type RouterConfig struct {
	// RegenerateRateLimit is the number of regenerations allowed per course per minute. Zero disables limiting.
	RegenerateRateLimit int
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(scheduleController *controllers.ScheduleController, cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	regenerate := middleware.RateLimit(middleware.RateLimitConfig{
		RequestLimit: cfg.RegenerateRateLimit,
		WindowSize:   time.Minute,
		KeyFuncs:     []httprate.KeyFunc{middleware.KeyByCourse},
	}, http.HandlerFunc(scheduleController.RegenerateSchedule))

	// API Routes
	mux.Handle("POST /courses/{courseID}/schedule/regenerate", regenerate)
	mux.HandleFunc("GET /courses/{courseID}/days", scheduleController.ListCourseDays)
	mux.HandleFunc("POST /courses/{courseID}/rhythms", scheduleController.CreateRhythm)
	mux.HandleFunc("POST /schedule/preview", scheduleController.PreviewSchedule)

	// Operations
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
