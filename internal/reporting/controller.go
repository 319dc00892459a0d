package reporting

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Controller struct {
	useCase ReportUseCase
	logger  *zap.Logger
}

func NewController(useCase ReportUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) HandleSalesHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := c.useCase.SalesHistory(r.Context())
	if err != nil {
		c.logger.Error("sales history failed", zap.Error(err))
		c.writeInternalError(w)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) HandleRevenueByProduct(w http.ResponseWriter, r *http.Request) {
	resp, err := c.useCase.RevenueByProduct(r.Context())
	if err != nil {
		c.logger.Error("revenue by product failed", zap.Error(err))
		c.writeInternalError(w)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) writeInternalError(w http.ResponseWriter) {
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
