package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/core/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- SignUpUser Tests ---

func (suite *UserServiceTestSuite) TestSignUpUser_Success() {
	ctx := context.Background()
	req := dto.SignUpRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == req.Email && user.Name == req.Name && user.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.SignUpUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(req.Email, user.Email)
	suite.Equal(domain.ProviderLocal, user.AuthProvider)
	suite.NotEqual(req.Password, user.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestSignUpUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.SignUpRequest{Name: "Test User", Email: "taken@example.com", Password: "password123"}
	existing := &domain.User{UserID: uuid.NewString(), Email: req.Email}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(existing, nil).Once()

	user, err := suite.service.SignUpUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestSignUpUser_DuplicateFromStore() {
	// Two signups racing past the advisory pre-check; the unique index wins.
	ctx := context.Background()
	req := dto.SignUpRequest{Name: "Test User", Email: "raced@example.com", Password: "password123"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.SignUpUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- AuthenticateUser Tests ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "password123"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Email: "test@example.com", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByEmail", ctx, stored.Email).Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, stored.Email, password)

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Email: "test@example.com", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByEmail", ctx, stored.Email).Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, stored.Email, "wrong-password")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_OAuthOnlyAccount() {
	// No password hash stored, so password auth can never succeed.
	ctx := context.Background()
	stored := &domain.User{UserID: uuid.NewString(), Email: "oauth@example.com", AuthProvider: domain.ProviderGoogle}

	suite.mockUserRepo.On("FindUserByEmail", ctx, stored.Email).Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, stored.Email, "anything")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_NotFound() {
	ctx := context.Background()
	email := "missing@example.com"

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, email, "password123")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- UpdateUser Tests ---

func (suite *UserServiceTestSuite) TestUpdateUser_PatchSemantics() {
	ctx := context.Background()
	userID := uuid.NewString()
	stored := &domain.User{UserID: userID, Name: "Old Name", Email: "old@example.com"}
	newName := "New Name"

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		// Only the name changes; omitted fields keep their stored values.
		return user.Name == newName && user.Email == "old@example.com"
	})).Return(nil).Once()

	user, err := suite.service.UpdateUser(ctx, userID, dto.UpdateProfileRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, user.Name)
	suite.Equal("old@example.com", user.Email)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_EmailTaken() {
	ctx := context.Background()
	userID := uuid.NewString()
	stored := &domain.User{UserID: userID, Email: "old@example.com"}
	newEmail := "taken@example.com"
	other := &domain.User{UserID: uuid.NewString(), Email: newEmail}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, newEmail).Return(other, nil).Once()

	user, err := suite.service.UpdateUser(ctx, userID, dto.UpdateProfileRequest{Email: &newEmail})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.UpdateUser(ctx, userID, dto.UpdateProfileRequest{})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- DeleteUser Tests ---

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("DeleteUser", ctx, userID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("DeleteUser", ctx, userID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteUser(ctx, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- CreateOAuthUser Tests ---

func (suite *UserServiceTestSuite) TestCreateOAuthUser_ExistingProviderIdentity() {
	ctx := context.Background()
	providerUserID := "google-sub-123"
	stored := &domain.User{UserID: uuid.NewString(), Email: "oauth@example.com", AuthProvider: domain.ProviderGoogle}

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, string(domain.ProviderGoogle), providerUserID).Return(stored, nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "Name", stored.Email, domain.ProviderGoogle, providerUserID)

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_LinksExistingEmail() {
	ctx := context.Background()
	providerUserID := "google-sub-456"
	email := "local@example.com"
	stored := &domain.User{UserID: uuid.NewString(), Email: email, AuthProvider: domain.ProviderLocal}

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, string(domain.ProviderGoogle), providerUserID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(stored, nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "Name", email, domain.ProviderGoogle, providerUserID)

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_CreatesNewUser() {
	ctx := context.Background()
	providerUserID := "google-sub-789"
	email := "fresh@example.com"

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, string(domain.ProviderGoogle), providerUserID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == email && user.AuthProvider == domain.ProviderGoogle && user.ProviderUserID == providerUserID && user.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "Fresh User", email, domain.ProviderGoogle, providerUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal("Fresh User", user.Name)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_LookupError() {
	ctx := context.Background()
	providerUserID := "google-sub-err"
	expectedErr := assert.AnError

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, string(domain.ProviderGoogle), providerUserID).Return(nil, expectedErr).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "Name", "err@example.com", domain.ProviderGoogle, providerUserID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, expectedErr)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
