package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tally/internal/domain"
	"tally/internal/dto"
	apperrors "tally/internal/errors"
)

type InventoryUseCase interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	StockSummary(ctx context.Context) (*dto.StockSummaryResponse, error)
	AddProduct(ctx context.Context, req dto.AddProductRequest) (*domain.Product, error)
	SellProduct(ctx context.Context, req dto.SellProductRequest) (*domain.Order, *domain.OrderDetail, error)
}

type InventoryController struct {
	useCase InventoryUseCase
	logger  *zap.Logger
}

func NewInventoryController(useCase InventoryUseCase, logger *zap.Logger) *InventoryController {
	return &InventoryController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *InventoryController) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.useCase.ListProducts(r.Context())
	if err != nil {
		c.logger.Error("list products failed", zap.Error(err))
		c.writeInternalError(w)
		return
	}

	items := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		items = append(items, toProductDTO(p))
	}

	c.writeJSON(w, http.StatusOK, dto.ListProductsResponse{Products: items})
}

func (c *InventoryController) HandleStockSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := c.useCase.StockSummary(r.Context())
	if err != nil {
		c.logger.Error("stock summary failed", zap.Error(err))
		c.writeInternalError(w)
		return
	}

	c.writeJSON(w, http.StatusOK, summary)
}

func (c *InventoryController) HandleAddProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.AddProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	product, err := c.useCase.AddProduct(r.Context(), req)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusCreated, toProductDTO(*product))
}

func (c *InventoryController) HandleSellProduct(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.SellProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	order, detail, err := c.useCase.SellProduct(r.Context(), req)
	if err != nil {
		c.handleSellError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.SellProductResponse{
		TraceID:      traceID,
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		ProductID:    detail.ProductID,
		Quantity:     detail.Quantity,
		SoldPrice:    detail.SoldPrice,
		Total:        detail.Revenue(),
		OrderDate:    order.OrderDate,
	})
}

func (c *InventoryController) handleError(w http.ResponseWriter, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": err.Error(),
		})
		return
	}

	c.logger.Error("unexpected error", zap.Error(err))
	c.writeInternalError(w)
}

func (c *InventoryController) handleSellError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"traceId": traceID,
			"error":   "NOT_FOUND",
			"message": err.Error(),
		})
		return
	}

	if ise, ok := apperrors.IsInsufficientStockError(err); ok {
		c.writeJSON(w, http.StatusConflict, dto.InsufficientStockResponse{
			TraceID:   traceID,
			Error:     "INSUFFICIENT_STOCK",
			Message:   ise.Message,
			Available: ise.Available,
		})
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, map[string]string{
			"traceId": traceID,
			"error":   "CONFLICT",
			"message": err.Error(),
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeInternalError(w)
}

func toProductDTO(p domain.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ID:            p.ID,
		Name:          p.Name,
		CategoryID:    p.CategoryID,
		Category:      p.CategoryName,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
	}
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *InventoryController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *InventoryController) writeInternalError(w http.ResponseWriter) {
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *InventoryController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
