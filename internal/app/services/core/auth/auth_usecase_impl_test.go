package auth

import (
	"context"
	"pidelocal-service/internal/app/config"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/dto/requests"
	"pidelocal-service/internal/pkg/exceptions"
	"pidelocal-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	return m.Called(ctx, userID, at).Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, userID, email string) (*models.Session, error) {
	args := m.Called(ctx, userID, email)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) Authorize(ctx context.Context, identity models.Identity, slug string) models.AccessDecision {
	return m.Called(ctx, identity, slug).Get(0).(models.AccessDecision)
}

const testSecret = "test-secret"

func newTestAuthUsecase(t *testing.T) (*authUsecase, *MockUserRepository, *MockSessionService, *MockAuthorizer) {
	t.Helper()
	users := new(MockUserRepository)
	sessions := new(MockSessionService)
	authorizer := new(MockAuthorizer)
	uc := &authUsecase{
		UserRepository: users,
		SessionService: sessions,
		Authorizer:     authorizer,
		InternalConfig: &config.InternalConfig{JWT: config.JWT{Secret: testSecret, ExpTimeInHour: 12}},
		Log:            zap.NewNop(),
	}
	return uc, users, sessions, authorizer
}

func testUser(t *testing.T) *models.User {
	t.Helper()
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)
	return &models.User{ID: "u-1", Email: "ana@pizza.es", Name: "Ana", Password: hash}
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()
	identity := models.Identity{UserID: "u-1", Email: "ana@pizza.es"}

	t.Run("Unknown Email", func(t *testing.T) {
		uc, users, _, _ := newTestAuthUsecase(t)
		users.On("FindByEmail", ctx, "ana@pizza.es").Return(nil, nil)

		_, err := uc.Login(ctx, "pizza", &requests.AdminLogin{Email: "ana@pizza.es", Password: "correct-horse"})
		require.Error(t, err)
		assert.Equal(t, 401, exceptions.StatusCode(err))
	})

	t.Run("Wrong Password", func(t *testing.T) {
		uc, users, _, _ := newTestAuthUsecase(t)
		users.On("FindByEmail", ctx, "ana@pizza.es").Return(testUser(t), nil)

		_, err := uc.Login(ctx, "pizza", &requests.AdminLogin{Email: "ana@pizza.es", Password: "wrong-horse"})
		require.Error(t, err)
		assert.Equal(t, 401, exceptions.StatusCode(err))
	})

	t.Run("Not Allowed For Tenant", func(t *testing.T) {
		uc, users, sessions, authorizer := newTestAuthUsecase(t)
		users.On("FindByEmail", ctx, "ana@pizza.es").Return(testUser(t), nil)
		authorizer.On("Authorize", ctx, identity, "pizza").Return(models.AccessDecision{})

		_, err := uc.Login(ctx, "pizza", &requests.AdminLogin{Email: "ana@pizza.es", Password: "correct-horse"})
		require.Error(t, err)
		assert.Equal(t, 403, exceptions.StatusCode(err))
		sessions.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		uc, users, sessions, authorizer := newTestAuthUsecase(t)
		users.On("FindByEmail", ctx, "ana@pizza.es").Return(testUser(t), nil)
		authorizer.On("Authorize", ctx, identity, "pizza").Return(models.AccessDecision{Allowed: true})
		sessions.On("CreateSession", ctx, "u-1", "ana@pizza.es").Return(&models.Session{
			SessionID: "s-1",
			UserID:    "u-1",
			Email:     "ana@pizza.es",
			ExpiresAt: time.Now().Add(12 * time.Hour),
		}, nil)
		users.On("TouchLastLogin", ctx, "u-1", mock.AnythingOfType("time.Time")).Return(nil)

		result, err := uc.Login(ctx, "pizza", &requests.AdminLogin{Email: "ana@pizza.es", Password: "correct-horse"})
		require.NoError(t, err)
		assert.True(t, result.Decision.Allowed)
		assert.Equal(t, "pizza", result.Tenant)

		sessionID, err := utils.ParseJWT(result.Token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "s-1", sessionID)
		users.AssertCalled(t, "TouchLastLogin", ctx, "u-1", mock.AnythingOfType("time.Time"))
	})

	t.Run("Last Login Failure Does Not Block", func(t *testing.T) {
		uc, users, sessions, authorizer := newTestAuthUsecase(t)
		users.On("FindByEmail", ctx, "ana@pizza.es").Return(testUser(t), nil)
		authorizer.On("Authorize", ctx, identity, "pizza").Return(models.AccessDecision{Allowed: true})
		sessions.On("CreateSession", ctx, "u-1", "ana@pizza.es").Return(&models.Session{
			SessionID: "s-2",
			UserID:    "u-1",
			Email:     "ana@pizza.es",
			ExpiresAt: time.Now().Add(12 * time.Hour),
		}, nil)
		users.On("TouchLastLogin", ctx, "u-1", mock.AnythingOfType("time.Time")).Return(exceptions.ErrMongoDBUpdateDocument(nil))

		result, err := uc.Login(ctx, "pizza", &requests.AdminLogin{Email: "ana@pizza.es", Password: "correct-horse"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})
}

func TestAuthUsecase_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Token", func(t *testing.T) {
		uc, _, _, _ := newTestAuthUsecase(t)
		_, err := uc.Authenticate(ctx, "")
		require.Error(t, err)
		assert.Equal(t, 401, exceptions.StatusCode(err))
	})

	t.Run("Foreign Signature", func(t *testing.T) {
		uc, _, _, _ := newTestAuthUsecase(t)
		token, err := utils.GenerateJWT("s-1", "other-secret", time.Hour)
		require.NoError(t, err)

		_, err = uc.Authenticate(ctx, token)
		require.Error(t, err)
		assert.Equal(t, 401, exceptions.StatusCode(err))
	})

	t.Run("Valid Token", func(t *testing.T) {
		uc, _, sessions, _ := newTestAuthUsecase(t)
		sessions.On("GetSession", ctx, "s-1").Return(&models.Session{SessionID: "s-1", UserID: "u-1"}, nil)
		token, err := utils.GenerateJWT("s-1", testSecret, time.Hour)
		require.NoError(t, err)

		session, err := uc.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "u-1", session.UserID)
	})
}

func TestAuthUsecase_Me(t *testing.T) {
	ctx := context.Background()
	uc, users, _, authorizer := newTestAuthUsecase(t)
	users.On("FindByID", ctx, "u-1").Return(&models.User{ID: "u-1", Email: "root@pidelocal.es", Name: "Root"}, nil)
	authorizer.On("Authorize", ctx, models.Identity{UserID: "u-1", Email: "root@pidelocal.es"}, "").
		Return(models.AccessDecision{Allowed: true, IsSuperAdmin: true})

	me, err := uc.Me(ctx, &models.Session{SessionID: "s-1", UserID: "u-1"}, "")
	require.NoError(t, err)
	assert.Equal(t, "Root", me.Name)
	assert.True(t, me.Decision.IsSuperAdmin)
}
