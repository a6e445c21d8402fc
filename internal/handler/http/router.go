package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-dashboard/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// Handlers groups every endpoint the router mounts
type Handlers struct {
	State      StateHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Dashboard  DashboardHandler
	Report     ReportHandler
	Events     EventsHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
}

func NewRouter(opts RouterOptions, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
		// the events stream stays open for the whole session
		Skip: func(req *http.Request, respStatus int) bool {
			return req.URL.Path == "/api/v1/events"
		},
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", h.State.GetState)
		r.Get("/dashboard", h.Dashboard.GetDashboard)
		r.Get("/events", h.Events.Stream)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.ListEmployees)
			r.Post("/", h.Employee.CreateEmployee)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Employee.GetEmployee)
				r.Put("/", h.Employee.UpdateEmployee)
				r.Delete("/", h.Employee.DeleteEmployee)
				r.Get("/attendance", h.Employee.GetEmployeeAttendance)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.ListAttendance)
			r.Get("/today", h.Attendance.GetTodayAttendance)
			r.Post("/check-in", h.Attendance.CheckIn)
			r.Post("/check-out", h.Attendance.CheckOut)
			r.Put("/status", h.Attendance.SetStatus)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", h.Report.GetReport)
			r.Get("/trend", h.Report.GetAttendanceTrend)
			r.Get("/departments", h.Report.GetDepartmentStats)
			r.Get("/top-performers", h.Report.GetTopPerformers)
		})
	})

	return r
}
