package services

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

// DashboardSvcFacade computes summary statistics from the ledger store.
type DashboardSvcFacade interface {
	// GetSummary runs the independent dashboard queries and joins them.
	// Any underlying query failure fails the whole summary.
	GetSummary(ctx context.Context, userID string) (*domain.DashboardSummary, error)
}
