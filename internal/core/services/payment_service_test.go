package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/govportal/citizen_services_backend/internal/apperrors"
	"github.com/govportal/citizen_services_backend/internal/core/domain"
	portssvc "github.com/govportal/citizen_services_backend/internal/core/ports/services"
	"github.com/govportal/citizen_services_backend/internal/core/services"
	"github.com/govportal/citizen_services_backend/internal/dto"
)

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) CreatePaymentCompletingApplication(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	args := m.Called(ctx, payment)
	var created *domain.Payment
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.Payment)
	}
	return created, args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentByApplicationID(ctx context.Context, applicationID int64) (*domain.Payment, error) {
	args := m.Called(ctx, applicationID)
	var payment *domain.Payment
	if args.Get(0) != nil {
		payment = args.Get(0).(*domain.Payment)
	}
	return payment, args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	args := m.Called(ctx, transactionID)
	var payment *domain.Payment
	if args.Get(0) != nil {
		payment = args.Get(0).(*domain.Payment)
	}
	return payment, args.Error(1)
}

// --- Test Suite ---
type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockAppRepo     *MockApplicationRepository
	service         portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockAppRepo = new(MockApplicationRepository)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockAppRepo)
}

func paymentRequest() dto.ProcessPaymentRequest {
	return dto.ProcessPaymentRequest{
		ApplicationID: 101,
		Amount:        decimal.NewFromInt(100),
		PaymentMethod: "BKASH",
		TransactionID: "TXN-0001",
	}
}

// --- ProcessPayment Tests ---

func (suite *PaymentServiceTestSuite) TestProcessPayment_Success() {
	ctx := context.Background()
	userID := int64(7)
	req := paymentRequest()
	app := &domain.Application{ApplicationID: 101, UserID: userID, PaymentStatus: domain.PaymentStatePending}

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(101)).Return(app, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByApplicationID", ctx, int64(101)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPaymentRepo.On("FindPaymentByTransactionID", ctx, "TXN-0001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPaymentRepo.On("CreatePaymentCompletingApplication", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.ApplicationID == int64(101) &&
			p.Status == domain.PaymentCompleted &&
			p.Method == domain.MethodBkash &&
			p.TransactionID == "TXN-0001" &&
			p.Amount.Equal(decimal.NewFromInt(100))
	})).Return(&domain.Payment{
		PaymentID:     55,
		ApplicationID: 101,
		Amount:        req.Amount,
		Method:        domain.MethodBkash,
		Status:        domain.PaymentCompleted,
		TransactionID: req.TransactionID,
	}, nil).Once()

	payment, err := suite.service.ProcessPayment(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Equal(int64(55), payment.PaymentID)
	suite.Equal(domain.PaymentCompleted, payment.Status)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestProcessPayment_ApplicationNotFound() {
	ctx := context.Background()

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(101)).Return(nil, apperrors.ErrNotFound).Once()

	payment, err := suite.service.ProcessPayment(ctx, 7, paymentRequest())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestProcessPayment_OtherUsersApplication() {
	ctx := context.Background()
	app := &domain.Application{ApplicationID: 101, UserID: 99}

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(101)).Return(app, nil).Once()

	payment, err := suite.service.ProcessPayment(ctx, 7, paymentRequest())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "CreatePaymentCompletingApplication", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestProcessPayment_NonPositiveAmount() {
	ctx := context.Background()
	app := &domain.Application{ApplicationID: 101, UserID: 7}
	req := paymentRequest()
	req.Amount = decimal.Zero

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(101)).Return(app, nil).Once()

	payment, err := suite.service.ProcessPayment(ctx, 7, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestProcessPayment_DuplicatePaymentForApplication() {
	ctx := context.Background()
	app := &domain.Application{ApplicationID: 101, UserID: 7, PaymentStatus: domain.PaymentStateCompleted}
	existing := &domain.Payment{PaymentID: 55, ApplicationID: 101}

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(101)).Return(app, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByApplicationID", ctx, int64(101)).Return(existing, nil).Once()

	payment, err := suite.service.ProcessPayment(ctx, 7, paymentRequest())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "CreatePaymentCompletingApplication", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestProcessPayment_ReusedTransactionID() {
	ctx := context.Background()
	app := &domain.Application{ApplicationID: 101, UserID: 7}
	other := &domain.Payment{PaymentID: 42, ApplicationID: 200, TransactionID: "TXN-0001"}

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(101)).Return(app, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByApplicationID", ctx, int64(101)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPaymentRepo.On("FindPaymentByTransactionID", ctx, "TXN-0001").Return(other, nil).Once()

	payment, err := suite.service.ProcessPayment(ctx, 7, paymentRequest())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "CreatePaymentCompletingApplication", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestProcessPayment_ConcurrentConflictFromStorage() {
	ctx := context.Background()
	app := &domain.Application{ApplicationID: 101, UserID: 7}
	raceErr := apperrors.NewAppError(409, "payment already exists for this application", apperrors.ErrConflict)

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(101)).Return(app, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByApplicationID", ctx, int64(101)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPaymentRepo.On("FindPaymentByTransactionID", ctx, "TXN-0001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPaymentRepo.On("CreatePaymentCompletingApplication", ctx, mock.AnythingOfType("domain.Payment")).Return(nil, raceErr).Once()

	payment, err := suite.service.ProcessPayment(ctx, 7, paymentRequest())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *PaymentServiceTestSuite) TestProcessPayment_StorageFailure() {
	ctx := context.Background()
	app := &domain.Application{ApplicationID: 101, UserID: 7}

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(101)).Return(app, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByApplicationID", ctx, int64(101)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPaymentRepo.On("FindPaymentByTransactionID", ctx, "TXN-0001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPaymentRepo.On("CreatePaymentCompletingApplication", ctx, mock.AnythingOfType("domain.Payment")).Return(nil, assert.AnError).Once()

	payment, err := suite.service.ProcessPayment(ctx, 7, paymentRequest())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.NotErrorIs(err, apperrors.ErrConflict)
	suite.Contains(err.Error(), "payment processing failed")
}

// --- GetPaymentByApplicationID Tests ---

func (suite *PaymentServiceTestSuite) TestGetPaymentByApplicationID_Success() {
	ctx := context.Background()
	app := &domain.Application{ApplicationID: 101, UserID: 7}
	payment := &domain.Payment{PaymentID: 55, ApplicationID: 101}

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(101)).Return(app, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByApplicationID", ctx, int64(101)).Return(payment, nil).Once()

	got, err := suite.service.GetPaymentByApplicationID(ctx, 101, 7)

	suite.Require().NoError(err)
	suite.Equal(payment, got)
}

func (suite *PaymentServiceTestSuite) TestGetPaymentByApplicationID_OtherUser() {
	ctx := context.Background()
	app := &domain.Application{ApplicationID: 101, UserID: 99}

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(101)).Return(app, nil).Once()

	got, err := suite.service.GetPaymentByApplicationID(ctx, 101, 7)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *PaymentServiceTestSuite) TestGetPaymentByApplicationID_NoPaymentYet() {
	ctx := context.Background()
	app := &domain.Application{ApplicationID: 101, UserID: 7}

	suite.mockAppRepo.On("FindApplicationByID", ctx, int64(101)).Return(app, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByApplicationID", ctx, int64(101)).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetPaymentByApplicationID(ctx, 101, 7)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
