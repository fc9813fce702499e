package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/core/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerRepository (shared with the dashboard service tests) ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) FindEntriesByUser(ctx context.Context, userID string, entryType domain.EntryType) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, userID, entryType)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	return entries, args.Error(1)
}

func (m *MockLedgerRepository) FindEntriesSince(ctx context.Context, userID string, entryType domain.EntryType, since time.Time) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, userID, entryType, since)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	return entries, args.Error(1)
}

func (m *MockLedgerRepository) FindRecentEntries(ctx context.Context, userID string, entryType domain.EntryType, limit int) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, userID, entryType, limit)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	return entries, args.Error(1)
}

func (m *MockLedgerRepository) SumAmounts(ctx context.Context, userID string, entryType domain.EntryType, since *time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, entryType, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) DeleteEntry(ctx context.Context, userID string, entryID string) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	service        portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo)
}

// --- AddEntry Tests ---

func (suite *LedgerServiceTestSuite) TestAddEntry_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.AddEntryRequest{
		Icon:   "💰",
		Label:  "Salary",
		Amount: decimal.NewFromInt(5000),
		Date:   "2026-08-01",
	}

	suite.mockLedgerRepo.On("SaveEntry", ctx, mock.MatchedBy(func(entry domain.LedgerEntry) bool {
		return entry.UserID == userID &&
			entry.Type == domain.Income &&
			entry.Label == "Salary" &&
			entry.Amount.Equal(decimal.NewFromInt(5000)) &&
			entry.Date.Format("2006-01-02") == "2026-08-01"
	})).Return(nil).Once()

	entry, err := suite.service.AddEntry(ctx, userID, domain.Income, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(domain.Income, entry.Type)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAddEntry_RFC3339Date() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.AddEntryRequest{
		Label:  "Groceries",
		Amount: decimal.NewFromFloat(42.50),
		Date:   "2026-08-15T10:30:00Z",
	}

	suite.mockLedgerRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(nil).Once()

	entry, err := suite.service.AddEntry(ctx, userID, domain.Expense, req)

	suite.Require().NoError(err)
	suite.Equal(2026, entry.Date.Year())
	suite.Equal(time.August, entry.Date.Month())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAddEntry_MissingLabel() {
	ctx := context.Background()
	req := dto.AddEntryRequest{Amount: decimal.NewFromInt(10), Date: "2026-08-01"}

	entry, err := suite.service.AddEntry(ctx, uuid.NewString(), domain.Expense, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAddEntry_NegativeAmount() {
	ctx := context.Background()
	req := dto.AddEntryRequest{Label: "Refund gone wrong", Amount: decimal.NewFromInt(-5), Date: "2026-08-01"}

	entry, err := suite.service.AddEntry(ctx, uuid.NewString(), domain.Expense, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestAddEntry_InvalidDate() {
	ctx := context.Background()
	req := dto.AddEntryRequest{Label: "Salary", Amount: decimal.NewFromInt(100), Date: "15/08/2026"}

	entry, err := suite.service.AddEntry(ctx, uuid.NewString(), domain.Income, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestAddEntry_SaveError() {
	ctx := context.Background()
	req := dto.AddEntryRequest{Label: "Salary", Amount: decimal.NewFromInt(100), Date: "2026-08-01"}
	expectedErr := assert.AnError

	suite.mockLedgerRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).Return(expectedErr).Once()

	entry, err := suite.service.AddEntry(ctx, uuid.NewString(), domain.Income, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, expectedErr)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

// --- ListEntries Tests ---

func (suite *LedgerServiceTestSuite) TestListEntries_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := []domain.LedgerEntry{
		{EntryID: uuid.NewString(), Type: domain.Expense, Label: "Rent"},
		{EntryID: uuid.NewString(), Type: domain.Expense, Label: "Groceries"},
	}

	suite.mockLedgerRepo.On("FindEntriesByUser", ctx, userID, domain.Expense).Return(expected, nil).Once()

	entries, err := suite.service.ListEntries(ctx, userID, domain.Expense)

	suite.Require().NoError(err)
	suite.Len(entries, 2)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

// --- DeleteEntry Tests ---

func (suite *LedgerServiceTestSuite) TestDeleteEntry_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	entryID := uuid.NewString()

	suite.mockLedgerRepo.On("DeleteEntry", ctx, userID, entryID).Return(nil).Once()

	err := suite.service.DeleteEntry(ctx, userID, entryID)

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteEntry_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	entryID := uuid.NewString()

	suite.mockLedgerRepo.On("DeleteEntry", ctx, userID, entryID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEntry(ctx, userID, entryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
