package services

import (
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/platform/config"
	"github.com/SscSPs/expense_tracker_app/internal/platform/media"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The media service may be nil-backed when Cloudinary is not configured; the
// handler surfaces that as a server error on upload.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo)
	container.Dashboard = NewDashboardService(repos.LedgerRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Media = media.NewCloudinaryService(cfg)

	return container
}
