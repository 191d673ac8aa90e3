package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo        UserRepository
	AdminRepo       AdminRepository
	ProfileRepo     ProfileRepository
	ServiceRepo     ServiceRepository
	ApplicationRepo ApplicationRepository
	PaymentRepo     PaymentRepository
	FeedbackRepo    FeedbackRepository
}
