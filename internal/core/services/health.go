package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
	"github.com/trafflux/ragflow-mcp-go/internal/core/ports/driving"
)

// Ensure HealthService implements the interface.
var _ driving.HealthService = (*HealthService)(nil)

// HealthService probes backend reachability by listing datasets through
// the dataset service, so a probe that follows a recent listing is
// served from cache instead of hitting the backend again.
type HealthService struct {
	datasets driving.DatasetService
	baseURL  string
	logger   *zap.Logger
}

// NewHealthService creates a new health service. baseURL is reported
// verbatim so operators can see which backend was probed.
// A nil logger disables logging.
func NewHealthService(datasets driving.DatasetService, baseURL string, logger *zap.Logger) *HealthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthService{
		datasets: datasets,
		baseURL:  baseURL,
		logger:   logger,
	}
}

// Check runs the backend probe. It never returns an error; failures are
// folded into the report so health stays reportable when the backend
// is not.
func (s *HealthService) Check(ctx context.Context) domain.HealthReport {
	report := domain.HealthReport{
		Status:     domain.HealthStatusOK,
		BackendURL: s.baseURL,
		Connection: domain.ConnectionUp,
	}

	catalog, err := s.datasets.List(ctx, false)
	if err != nil {
		s.logger.Warn("health probe failed", zap.Error(err))
		report.Status = domain.HealthStatusError
		report.Connection = domain.ConnectionDown
		report.Error = err.Error()
		return report
	}

	report.DatasetsCount = catalog.Total
	return report
}
