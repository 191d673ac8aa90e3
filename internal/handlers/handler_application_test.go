package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/govportal/citizen_services_backend/internal/apperrors"
	"github.com/govportal/citizen_services_backend/internal/core/domain"
	portssvc "github.com/govportal/citizen_services_backend/internal/core/ports/services"
	"github.com/govportal/citizen_services_backend/internal/dto"
	"github.com/govportal/citizen_services_backend/internal/handlers"
	"github.com/govportal/citizen_services_backend/internal/middleware"
	"github.com/govportal/citizen_services_backend/internal/utils"
)

// --- Mock ApplicationService ---
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) SubmitApplication(ctx context.Context, userID int64, req dto.SubmitApplicationRequest) (*domain.Application, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationService) GetApplicationForCitizen(ctx context.Context, applicationID, userID int64) (*domain.Application, error) {
	args := m.Called(ctx, applicationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationService) ListApplicationsForCitizen(ctx context.Context, userID int64) ([]dto.ApplicationListItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ApplicationListItem), args.Error(1)
}
func (m *MockApplicationService) ListAllApplications(ctx context.Context) ([]domain.ApplicationReviewItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationReviewItem), args.Error(1)
}
func (m *MockApplicationService) ApproveApplication(ctx context.Context, applicationID, adminID int64) (*domain.Application, error) {
	args := m.Called(ctx, applicationID, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationService) RejectApplication(ctx context.Context, applicationID, adminID int64) (*domain.Application, error) {
	args := m.Called(ctx, applicationID, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationService) GetApplicationStats(ctx context.Context) (*domain.ApplicationStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationStats), args.Error(1)
}
func (m *MockApplicationService) MarkPaymentCompleted(ctx context.Context, applicationID int64) error {
	args := m.Called(ctx, applicationID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ApplicationSvcFacade = (*MockApplicationService)(nil)

// --- Test Suite ---
type ApplicationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockApplicationService
	jwtSecret   string
}

// generateCitizenToken creates a signed citizen JWT for testing.
func (suite *ApplicationHandlerTestSuite) generateCitizenToken(userID int64) string {
	token, err := utils.GenerateJWT("citizen@example.com", userID, utils.RoleCitizen, suite.jwtSecret, time.Hour, "test-issuer")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *ApplicationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockService = new(MockApplicationService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterApplicationRoutes(v1, suite.mockService)
}

func (suite *ApplicationHandlerTestSuite) serve(method, url, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ApplicationHandlerTestSuite) TestSubmitApplication_Success() {
	userID := int64(7)
	req := dto.SubmitApplicationRequest{
		ServiceID:           3,
		ServiceSpecificData: map[string]any{"childName": "Ayesha"},
	}
	created := &domain.Application{
		ApplicationID:       101,
		UserID:              userID,
		ServiceID:           3,
		SubmissionDate:      time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Status:              domain.ApplicationPending,
		PaymentStatus:       domain.PaymentStatePending,
		ServiceSpecificData: req.ServiceSpecificData,
	}

	suite.mockService.On("SubmitApplication",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		mock.MatchedBy(func(r dto.SubmitApplicationRequest) bool {
			return r.ServiceID == req.ServiceID
		}),
	).Return(created, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/applications", suite.generateCitizenToken(userID), req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ApplicationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(101), resp.ApplicationID)
	suite.Equal("PENDING", resp.Status)
	suite.Equal("PENDING", resp.PaymentStatus)
	suite.Equal("2026-08-30", resp.SubmissionDate)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ApplicationHandlerTestSuite) TestSubmitApplication_NoProfile() {
	userID := int64(7)
	req := dto.SubmitApplicationRequest{ServiceID: 3}

	suite.mockService.On("SubmitApplication",
		mock.AnythingOfType("*context.valueCtx"), userID, mock.AnythingOfType("dto.SubmitApplicationRequest"),
	).Return(nil, apperrors.ErrPreconditionFailed).Once()

	w := suite.serve(http.MethodPost, "/api/v1/applications", suite.generateCitizenToken(userID), req)

	suite.Equal(http.StatusPreconditionFailed, w.Code)
}

func (suite *ApplicationHandlerTestSuite) TestSubmitApplication_MissingServiceID() {
	w := suite.serve(http.MethodPost, "/api/v1/applications", suite.generateCitizenToken(7), map[string]any{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "SubmitApplication", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApplicationHandlerTestSuite) TestSubmitApplication_NoToken() {
	w := suite.serve(http.MethodPost, "/api/v1/applications", "", dto.SubmitApplicationRequest{ServiceID: 3})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "SubmitApplication", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApplicationHandlerTestSuite) TestSubmitApplication_AdminTokenRejected() {
	adminToken, err := utils.GenerateJWT("admin", 1, utils.RoleAdmin, suite.jwtSecret, time.Hour, "test-issuer")
	suite.Require().NoError(err)

	w := suite.serve(http.MethodPost, "/api/v1/applications", adminToken, dto.SubmitApplicationRequest{ServiceID: 3})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "SubmitApplication", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApplicationHandlerTestSuite) TestListMyApplications_Success() {
	userID := int64(7)
	items := []dto.ApplicationListItem{
		{ApplicationID: 101, ServiceName: "Birth Certificate", SubmissionDate: "2026-08-30", Status: "PENDING", PaymentStatus: "PENDING"},
		{ApplicationID: 90, ServiceName: "Trade License", SubmissionDate: "2026-08-01", Status: "APPROVED", PaymentStatus: "COMPLETED"},
	}

	suite.mockService.On("ListApplicationsForCitizen",
		mock.AnythingOfType("*context.valueCtx"), userID,
	).Return(items, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/applications/my", suite.generateCitizenToken(userID), nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.ApplicationListItem
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal("Birth Certificate", resp[0].ServiceName)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ApplicationHandlerTestSuite) TestGetApplication_Forbidden() {
	userID := int64(7)

	suite.mockService.On("GetApplicationForCitizen",
		mock.AnythingOfType("*context.valueCtx"), int64(101), userID,
	).Return(nil, apperrors.ErrForbidden).Once()

	w := suite.serve(http.MethodGet, "/api/v1/applications/101", suite.generateCitizenToken(userID), nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *ApplicationHandlerTestSuite) TestGetApplication_NotFound() {
	userID := int64(7)

	suite.mockService.On("GetApplicationForCitizen",
		mock.AnythingOfType("*context.valueCtx"), int64(404), userID,
	).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, fmt.Sprintf("/api/v1/applications/%d", 404), suite.generateCitizenToken(userID), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ApplicationHandlerTestSuite) TestGetApplication_BadID() {
	w := suite.serve(http.MethodGet, "/api/v1/applications/not-a-number", suite.generateCitizenToken(7), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetApplicationForCitizen", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestApplicationHandler(t *testing.T) {
	suite.Run(t, new(ApplicationHandlerTestSuite))
}
