package services

import (
	portsrepo "github.com/govportal/citizen_services_backend/internal/core/ports/repositories"
	portssvc "github.com/govportal/citizen_services_backend/internal/core/ports/services"
	"github.com/govportal/citizen_services_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(cfg, repos.UserRepo, repos.AdminRepo)
	container.Profile = NewProfileService(repos.ProfileRepo, repos.UserRepo)
	container.Catalog = NewCatalogService(repos.ServiceRepo)
	container.Application = NewApplicationService(repos.ApplicationRepo, repos.ProfileRepo, repos.ServiceRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.ApplicationRepo)
	container.Feedback = NewFeedbackService(repos.FeedbackRepo, repos.UserRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AuthSvcFacade        = (*authService)(nil)
	_ portssvc.ProfileSvcFacade     = (*profileService)(nil)
	_ portssvc.CatalogSvcFacade     = (*catalogService)(nil)
	_ portssvc.ApplicationSvcFacade = (*applicationService)(nil)
	_ portssvc.PaymentSvcFacade     = (*paymentService)(nil)
	_ portssvc.FeedbackSvcFacade    = (*feedbackService)(nil)
)
