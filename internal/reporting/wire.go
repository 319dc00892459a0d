package reporting

import (
	"database/sql"

	"go.uber.org/zap"

	"tally/internal/reporting/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLSalesRepository(db)
	uc := NewReportUseCase(repo)
	return NewController(uc, logger)
}
