package driving

import (
	"context"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
)

// HealthService probes backend reachability.
type HealthService interface {
	// Check runs a lightweight backend probe. It never returns an error;
	// failures are reported inside the HealthReport.
	Check(ctx context.Context) domain.HealthReport
}
