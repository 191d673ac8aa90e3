package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/govportal/citizen_services_backend/internal/apperrors"
	"github.com/govportal/citizen_services_backend/internal/core/domain"
	portssvc "github.com/govportal/citizen_services_backend/internal/core/ports/services"
	"github.com/govportal/citizen_services_backend/internal/core/services"
	"github.com/govportal/citizen_services_backend/internal/dto"
)

// --- Mock ApplicationRepository ---
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) CreateApplication(ctx context.Context, app domain.Application) (*domain.Application, error) {
	args := m.Called(ctx, app)
	var created *domain.Application
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.Application)
	}
	return created, args.Error(1)
}

func (m *MockApplicationRepository) FindApplicationByID(ctx context.Context, applicationID int64) (*domain.Application, error) {
	args := m.Called(ctx, applicationID)
	var app *domain.Application
	if args.Get(0) != nil {
		app = args.Get(0).(*domain.Application)
	}
	return app, args.Error(1)
}

func (m *MockApplicationRepository) FindApplicationsByUserID(ctx context.Context, userID int64) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	var apps []domain.Application
	if args.Get(0) != nil {
		apps = args.Get(0).([]domain.Application)
	}
	return apps, args.Error(1)
}

func (m *MockApplicationRepository) FindApplicationsForReview(ctx context.Context) ([]domain.ApplicationReviewItem, error) {
	args := m.Called(ctx)
	var items []domain.ApplicationReviewItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.ApplicationReviewItem)
	}
	return items, args.Error(1)
}

func (m *MockApplicationRepository) UpdateReview(ctx context.Context, applicationID int64, status domain.ApplicationStatus, adminID int64) error {
	args := m.Called(ctx, applicationID, status, adminID)
	return args.Error(0)
}

func (m *MockApplicationRepository) MarkPaymentCompleted(ctx context.Context, applicationID int64) error {
	args := m.Called(ctx, applicationID)
	return args.Error(0)
}

func (m *MockApplicationRepository) CountApplications(ctx context.Context) (domain.ApplicationStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ApplicationStats), args.Error(1)
}

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) SaveProfile(ctx context.Context, profile domain.CitizenProfile) (*domain.CitizenProfile, error) {
	args := m.Called(ctx, profile)
	var created *domain.CitizenProfile
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.CitizenProfile)
	}
	return created, args.Error(1)
}

func (m *MockProfileRepository) FindProfileByUserID(ctx context.Context, userID int64) (*domain.CitizenProfile, error) {
	args := m.Called(ctx, userID)
	var profile *domain.CitizenProfile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.CitizenProfile)
	}
	return profile, args.Error(1)
}

// --- Mock ServiceRepository ---
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) FindServiceByID(ctx context.Context, serviceID int64) (*domain.Service, error) {
	args := m.Called(ctx, serviceID)
	var svc *domain.Service
	if args.Get(0) != nil {
		svc = args.Get(0).(*domain.Service)
	}
	return svc, args.Error(1)
}

func (m *MockServiceRepository) FindServices(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	var svcs []domain.Service
	if args.Get(0) != nil {
		svcs = args.Get(0).([]domain.Service)
	}
	return svcs, args.Error(1)
}

// --- Test Suite ---
type ApplicationServiceTestSuite struct {
	suite.Suite
	mockAppRepo     *MockApplicationRepository
	mockProfileRepo *MockProfileRepository
	mockServiceRepo *MockServiceRepository
	service         portssvc.ApplicationSvcFacade
}

func (suite *ApplicationServiceTestSuite) SetupTest() {
	suite.mockAppRepo = new(MockApplicationRepository)
	suite.mockProfileRepo = new(MockProfileRepository)
	suite.mockServiceRepo = new(MockServiceRepository)
	suite.service = services.NewApplicationService(suite.mockAppRepo, suite.mockProfileRepo, suite.mockServiceRepo)
}

// --- SubmitApplication Tests ---

func (suite *ApplicationServiceTestSuite) TestSubmitApplication_Success() {
	ctx := context.Background()
	userID := int64(7)
	req := dto.SubmitApplicationRequest{
		ServiceID:           3,
		ServiceSpecificData: map[string]any{"childName": "Amina"},
	}
	profile := &domain.CitizenProfile{ProfileID: 21, UserID: userID, Name: "Rahim", NIDNumber: "1990123456789"}

	suite.mockProfileRepo.On("FindProfileByUserID", ctx, userID).Return(profile, nil).Once()
	suite.mockServiceRepo.On("FindServiceByID", ctx, int64(3)).Return(&domain.Service{ServiceID: 3, ServiceName: "Birth Certificate"}, nil).Once()
	suite.mockAppRepo.On("CreateApplication", ctx, mock.MatchedBy(func(app domain.Application) bool {
		return app.UserID == userID &&
			app.CitizenProfileID == profile.ProfileID &&
			app.ServiceID == req.ServiceID &&
			app.Status == domain.ApplicationPending &&
			app.PaymentStatus == domain.PaymentStatePending
	})).Return(&domain.Application{
		ApplicationID:       101,
		UserID:              userID,
		CitizenProfileID:    profile.ProfileID,
		ServiceID:           req.ServiceID,
		SubmissionDate:      time.Now(),
		Status:              domain.ApplicationPending,
		PaymentStatus:       domain.PaymentStatePending,
		ServiceSpecificData: req.ServiceSpecificData,
	}, nil).Once()

	app, err := suite.service.SubmitApplication(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(app)
	suite.Equal(int64(101), app.ApplicationID)
	suite.Equal(domain.ApplicationPending, app.Status)
	suite.Equal(domain.PaymentStatePending, app.PaymentStatus)
	suite.mockAppRepo.AssertExpectations(suite.T())
	suite.mockProfileRepo.AssertExpectations(suite.T())
	suite.mockServiceRepo.AssertExpectations(suite.T())
}

func (suite *ApplicationServiceTestSuite) TestSubmitApplication_NoProfile() {
	ctx := context.Background()
	userID := int64(7)

	suite.mockProfileRepo.On("FindProfileByUserID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	app, err := suite.service.SubmitApplication(ctx, userID, dto.SubmitApplicationRequest{ServiceID: 3})

	suite.Require().Error(err)
	suite.Nil(app)
	suite.ErrorIs(err, apperrors.ErrPreconditionFailed)
	suite.mockAppRepo.AssertNotCalled(suite.T(), "CreateApplication", mock.Anything, mock.Anything)
}

func (suite *ApplicationServiceTestSuite) TestSubmitApplication_ServiceNotFound() {
	ctx := context.Background()
	userID := int64(7)
	profile := &domain.CitizenProfile{ProfileID: 21, UserID: userID}

	suite.mockProfileRepo.On("FindProfileByUserID", ctx, userID).Return(profile, nil).Once()
	suite.mockServiceRepo.On("FindServiceByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	app, err := suite.service.SubmitApplication(ctx, userID, dto.SubmitApplicationRequest{ServiceID: 99})

	suite.Require().Error(err)
	suite.Nil(app)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAppRepo.AssertNotCalled(suite.T(), "CreateApplication", mock.Anything, mock.Anything)
}

// --- GetApplicationForCitizen Tests ---

func (suite *ApplicationServiceTestSuite) TestGetApplicationForCitizen_Success() {
	ctx := context.Background()
	app := &domain.Application{ApplicationID: 101, UserID: 7}

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(101)).Return(app, nil).Once()

	got, err := suite.service.GetApplicationForCitizen(ctx, 101, 7)

	suite.Require().NoError(err)
	suite.Equal(app, got)
}

func (suite *ApplicationServiceTestSuite) TestGetApplicationForCitizen_OtherUser() {
	ctx := context.Background()
	app := &domain.Application{ApplicationID: 101, UserID: 7}

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(101)).Return(app, nil).Once()

	got, err := suite.service.GetApplicationForCitizen(ctx, 101, 8)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ApplicationServiceTestSuite) TestGetApplicationForCitizen_NotFound() {
	ctx := context.Background()

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetApplicationForCitizen(ctx, 404, 7)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- ListApplicationsForCitizen Tests ---

func (suite *ApplicationServiceTestSuite) TestListApplicationsForCitizen_ResolvesServiceNames() {
	ctx := context.Background()
	userID := int64(7)
	apps := []domain.Application{
		{ApplicationID: 2, UserID: userID, ServiceID: 3, SubmissionDate: time.Now(), Status: domain.ApplicationPending, PaymentStatus: domain.PaymentStatePending},
		{ApplicationID: 1, UserID: userID, ServiceID: 1, SubmissionDate: time.Now(), Status: domain.ApplicationApproved, PaymentStatus: domain.PaymentStateCompleted},
	}
	catalog := []domain.Service{
		{ServiceID: 1, ServiceName: "Birth Certificate"},
		{ServiceID: 3, ServiceName: "Trade License"},
	}

	suite.mockAppRepo.On("FindApplicationsByUserID", ctx, userID).Return(apps, nil).Once()
	suite.mockServiceRepo.On("FindServices", ctx).Return(catalog, nil).Once()

	items, err := suite.service.ListApplicationsForCitizen(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal("Trade License", items[0].ServiceName)
	suite.Equal("Birth Certificate", items[1].ServiceName)
}

// --- MarkPaymentCompleted Tests ---

func (suite *ApplicationServiceTestSuite) TestMarkPaymentCompleted_Success() {
	ctx := context.Background()
	app := &domain.Application{ApplicationID: 101, PaymentStatus: domain.PaymentStatePending}

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(101)).Return(app, nil).Once()
	suite.mockAppRepo.On("MarkPaymentCompleted", ctx, int64(101)).Return(nil).Once()

	err := suite.service.MarkPaymentCompleted(ctx, 101)

	suite.Require().NoError(err)
	suite.mockAppRepo.AssertExpectations(suite.T())
}

func (suite *ApplicationServiceTestSuite) TestMarkPaymentCompleted_AlreadyCompleted() {
	ctx := context.Background()
	app := &domain.Application{ApplicationID: 101, PaymentStatus: domain.PaymentStateCompleted}

	// Repeating the call is a no-op, not an error.
	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(101)).Return(app, nil).Once()
	suite.mockAppRepo.On("MarkPaymentCompleted", ctx, int64(101)).Return(nil).Once()

	err := suite.service.MarkPaymentCompleted(ctx, 101)

	suite.Require().NoError(err)
}

func (suite *ApplicationServiceTestSuite) TestMarkPaymentCompleted_NotFound() {
	ctx := context.Background()

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.MarkPaymentCompleted(ctx, 404)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAppRepo.AssertNotCalled(suite.T(), "MarkPaymentCompleted", mock.Anything, mock.Anything)
}

// --- Review Tests ---

func (suite *ApplicationServiceTestSuite) TestApproveApplication_PendingPayment() {
	ctx := context.Background()
	app := &domain.Application{ApplicationID: 101, Status: domain.ApplicationPending, PaymentStatus: domain.PaymentStatePending}

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(101)).Return(app, nil).Once()

	got, err := suite.service.ApproveApplication(ctx, 101, 1)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrPreconditionFailed)
	suite.mockAppRepo.AssertNotCalled(suite.T(), "UpdateReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApplicationServiceTestSuite) TestApproveApplication_Success() {
	ctx := context.Background()
	adminID := int64(1)
	app := &domain.Application{ApplicationID: 101, Status: domain.ApplicationPending, PaymentStatus: domain.PaymentStateCompleted}

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(101)).Return(app, nil).Once()
	suite.mockAppRepo.On("UpdateReview", ctx, int64(101), domain.ApplicationApproved, adminID).Return(nil).Once()

	got, err := suite.service.ApproveApplication(ctx, 101, adminID)

	suite.Require().NoError(err)
	suite.Require().NotNil(got)
	suite.Equal(domain.ApplicationApproved, got.Status)
	suite.Require().NotNil(got.AdminID)
	suite.Equal(adminID, *got.AdminID)
	suite.mockAppRepo.AssertExpectations(suite.T())
}

func (suite *ApplicationServiceTestSuite) TestRejectApplication_PendingPaymentAllowed() {
	ctx := context.Background()
	adminID := int64(1)
	app := &domain.Application{ApplicationID: 101, Status: domain.ApplicationPending, PaymentStatus: domain.PaymentStatePending}

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(101)).Return(app, nil).Once()
	suite.mockAppRepo.On("UpdateReview", ctx, int64(101), domain.ApplicationRejected, adminID).Return(nil).Once()

	got, err := suite.service.RejectApplication(ctx, 101, adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.ApplicationRejected, got.Status)
}

func (suite *ApplicationServiceTestSuite) TestRejectApplication_NotFound() {
	ctx := context.Background()

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.RejectApplication(ctx, 404, 1)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Stats / Review Listing Tests ---

func (suite *ApplicationServiceTestSuite) TestGetApplicationStats() {
	ctx := context.Background()
	stats := domain.ApplicationStats{Total: 10, Pending: 4, Approved: 5, Rejected: 1}

	suite.mockAppRepo.On("CountApplications", ctx).Return(stats, nil).Once()

	got, err := suite.service.GetApplicationStats(ctx)

	suite.Require().NoError(err)
	suite.Equal(&stats, got)
}

func (suite *ApplicationServiceTestSuite) TestListAllApplications_EmptyIsNotNil() {
	ctx := context.Background()

	suite.mockAppRepo.On("FindApplicationsForReview", ctx).Return(nil, nil).Once()

	items, err := suite.service.ListAllApplications(ctx)

	suite.Require().NoError(err)
	suite.NotNil(items)
	suite.Empty(items)
}

func (suite *ApplicationServiceTestSuite) TestListAllApplications_RepoError() {
	ctx := context.Background()

	suite.mockAppRepo.On("FindApplicationsForReview", ctx).Return(nil, assert.AnError).Once()

	items, err := suite.service.ListAllApplications(ctx)

	suite.Require().Error(err)
	suite.Nil(items)
}

func TestApplicationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationServiceTestSuite))
}
