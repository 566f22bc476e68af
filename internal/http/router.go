package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/wearapparel/admin-console/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/login", handlers.LoginHandler)
		r.Post("/password/forgot", handlers.ForgotPasswordHandler)
		r.Post("/password/reset", handlers.ResetPasswordHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Get("/orders", handlers.GetOrdersHandler)
		r.Patch("/orders/{id}/status", handlers.UpdateOrderStatusHandler)
		r.Get("/orders/export", handlers.ExportOrdersHandler)

		r.Get("/dashboard/stats", handlers.GetDashboardStatsHandler)
		r.Get("/dashboard/charts/revenue", handlers.GetRevenueChartHandler)
		r.Get("/dashboard/charts/status", handlers.GetStatusChartHandler)

		r.Post("/password/change", handlers.ChangePasswordHandler)
		r.Post("/logout", handlers.LogoutHandler)

		r.Group(func(r chi.Router) {
			r.Use(RequireAdmin)
			r.Post("/admin/users", handlers.CreateUserHandler)
			r.Get("/admin/users", handlers.GetUsersHandler)
		})
	})

	return r
}
