package reconcile

import "context"

type ReconcileService interface {
	// GenerateBalanceReport reconciles every employee of the caller's
	// company over the requested period. A request without both bounds
	// yields an empty report.
	GenerateBalanceReport(ctx context.Context, req BalanceReportRequest) (BalanceReport, error)
}
