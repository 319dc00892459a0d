package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"tally/internal/inventory/controller"
	"tally/internal/reporting"
)

func NewRouter(inventoryCtrl *controller.InventoryController, reportCtrl *reporting.Controller, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", inventoryCtrl.HandleListProducts)
		r.Get("/products/summary", inventoryCtrl.HandleStockSummary)
		r.Post("/products", inventoryCtrl.HandleAddProduct)
		r.Post("/orders", inventoryCtrl.HandleSellProduct)
		r.Get("/reports/sales", reportCtrl.HandleSalesHistory)
		r.Get("/reports/revenue-by-product", reportCtrl.HandleRevenueByProduct)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
