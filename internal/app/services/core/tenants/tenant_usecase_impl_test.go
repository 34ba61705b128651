package tenants

import (
	"context"
	"pidelocal-service/internal/app/config"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/dto/requests"
	"pidelocal-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) FindBySlug(ctx context.Context, slug string) (*models.Business, error) {
	args := m.Called(ctx, slug)
	business, _ := args.Get(0).(*models.Business)
	return business, args.Error(1)
}

func (m *MockBusinessRepository) List(ctx context.Context, page, pageSize int) ([]models.Business, int, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]models.Business), args.Int(1), args.Error(2)
}

func (m *MockBusinessRepository) Create(ctx context.Context, business *models.Business) error {
	return m.Called(ctx, business).Error(0)
}

func (m *MockBusinessRepository) UpdateOpeningHours(ctx context.Context, businessID string, openingHours map[string][]models.OpeningPeriod) error {
	return m.Called(ctx, businessID, openingHours).Error(0)
}

func (m *MockBusinessRepository) UpdateSlotSettings(ctx context.Context, businessID string, settings models.SlotSettings, timezone string) error {
	return m.Called(ctx, businessID, settings, timezone).Error(0)
}

func (m *MockBusinessRepository) UpdatePaymentSettings(ctx context.Context, businessID string, settings models.PaymentSettings) error {
	return m.Called(ctx, businessID, settings).Error(0)
}

type MockBusinessMemberRepository struct {
	mock.Mock
}

func (m *MockBusinessMemberRepository) FindBusinessBySlug(ctx context.Context, slug string) (*models.Business, error) {
	args := m.Called(ctx, slug)
	business, _ := args.Get(0).(*models.Business)
	return business, args.Error(1)
}

func (m *MockBusinessMemberRepository) FindMembership(ctx context.Context, businessID, userID string) (*models.BusinessMember, error) {
	args := m.Called(ctx, businessID, userID)
	member, _ := args.Get(0).(*models.BusinessMember)
	return member, args.Error(1)
}

func (m *MockBusinessMemberRepository) UpdateLastAccess(ctx context.Context, memberID string, accessedAt time.Time) error {
	return m.Called(ctx, memberID, accessedAt).Error(0)
}

func (m *MockBusinessMemberRepository) InsertAccessLog(ctx context.Context, entry *models.AdminAccessLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockBusinessMemberRepository) CreateMembership(ctx context.Context, member *models.BusinessMember) error {
	return m.Called(ctx, member).Error(0)
}

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

type tenantMocks struct {
	businesses *MockBusinessRepository
	members    *MockBusinessMemberRepository
	users      *MockUserRepository
}

func newTestTenantUsecase() (*tenantUsecase, tenantMocks) {
	mocks := tenantMocks{
		businesses: new(MockBusinessRepository),
		members:    new(MockBusinessMemberRepository),
		users:      new(MockUserRepository),
	}
	uc := &tenantUsecase{
		BusinessRepository:       mocks.businesses,
		BusinessMemberRepository: mocks.members,
		UserRepository:           mocks.users,
		InternalConfig: &config.InternalConfig{
			App: config.App{
				Timezone:       "Europe/Madrid",
				BaseUrl:        "http://localhost:8080",
				EndpointPrefix: "api",
				Version:        "v1",
			},
			Slots: config.Slots{DefaultSlotMinutes: 5, DefaultPrepMinutes: 20, DefaultCloseBufferMinutes: 10},
		},
		Log: zap.NewNop(),
	}
	return uc, mocks
}

func TestTenantUsecase_GetTenant(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Slug", func(t *testing.T) {
		uc, _ := newTestTenantUsecase()
		_, err := uc.GetTenant(ctx, "")
		require.Error(t, err)
		assert.Equal(t, 400, exceptions.StatusCode(err))
	})

	t.Run("Unknown Slug", func(t *testing.T) {
		uc, mocks := newTestTenantUsecase()
		mocks.businesses.On("FindBySlug", ctx, "ghost").Return(nil, nil)

		_, err := uc.GetTenant(ctx, "ghost")
		require.Error(t, err)
		assert.Equal(t, 404, exceptions.StatusCode(err))
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		uc, mocks := newTestTenantUsecase()
		mocks.businesses.On("FindBySlug", ctx, "pizza").Return(&models.Business{
			ID:              "biz-1",
			Slug:            "pizza",
			Name:            "Pizza Sol",
			OpeningHours:    map[string][]models.OpeningPeriod{"5": {{Open: "20:00", Close: "23:30"}}},
			PaymentSettings: models.PaymentSettings{Enabled: true},
		}, nil)

		tenant, err := uc.GetTenant(ctx, "pizza")
		require.NoError(t, err)
		assert.Equal(t, "Europe/Madrid", tenant.Timezone)
		assert.Equal(t, 5, tenant.SlotSettings.SlotMinutes)
		assert.Equal(t, 20, tenant.SlotSettings.PrepMinutes)
		assert.Equal(t, "eur", tenant.Currency)
		assert.False(t, tenant.CardPaymentsEnabled)
		assert.Equal(t, "23:30", tenant.OpeningHours.Days["5"][0].Close)
	})
}

func TestTenantUsecase_UpdateOpeningHours(t *testing.T) {
	ctx := context.Background()
	business := &models.Business{ID: "biz-1", Slug: "pizza"}

	t.Run("Overlap Rejected", func(t *testing.T) {
		uc, mocks := newTestTenantUsecase()
		mocks.businesses.On("FindBySlug", ctx, "pizza").Return(business, nil)

		_, err := uc.UpdateOpeningHours(ctx, "pizza", &requests.UpdateOpeningHours{
			Days: map[string][]requests.OpeningPeriod{
				"1": {{Open: "12:00", Close: "16:00"}, {Open: "15:30", Close: "18:00"}},
			},
		})
		require.Error(t, err)
		assert.Equal(t, 400, exceptions.StatusCode(err))
		mocks.businesses.AssertNotCalled(t, "UpdateOpeningHours", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Stored Sorted", func(t *testing.T) {
		uc, mocks := newTestTenantUsecase()
		mocks.businesses.On("FindBySlug", ctx, "pizza").Return(business, nil)
		mocks.businesses.On("UpdateOpeningHours", ctx, "biz-1", mock.MatchedBy(func(hours map[string][]models.OpeningPeriod) bool {
			day := hours["1"]
			return len(day) == 2 && day[0].Open == "12:00" && day[1].Open == "20:00"
		})).Return(nil)

		result, err := uc.UpdateOpeningHours(ctx, "pizza", &requests.UpdateOpeningHours{
			Days: map[string][]requests.OpeningPeriod{
				"1": {{Open: "20:00", Close: "24:00"}, {Open: "12:00", Close: "16:00"}},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "24:00", result.Days["1"][1].Close)
		mocks.businesses.AssertExpectations(t)
	})
}

func TestTenantUsecase_UpdateSlotSettings(t *testing.T) {
	ctx := context.Background()
	uc, mocks := newTestTenantUsecase()
	mocks.businesses.On("FindBySlug", ctx, "pizza").Return(&models.Business{ID: "biz-1", Slug: "pizza"}, nil)
	mocks.businesses.On("UpdateSlotSettings", ctx, "biz-1",
		models.SlotSettings{SlotMinutes: 15, PrepMinutes: 30, CloseBufferMinutes: 0}, "Atlantic/Canary").Return(nil)

	result, err := uc.UpdateSlotSettings(ctx, "pizza", &requests.UpdateSlotSettings{
		SlotMinutes: 15,
		PrepMinutes: 30,
		Timezone:    "Atlantic/Canary",
	})
	require.NoError(t, err)
	assert.Equal(t, 15, result.SlotMinutes)
	assert.Equal(t, "Atlantic/Canary", result.Timezone)
	mocks.businesses.AssertExpectations(t)
}

func TestTenantUsecase_CreateBusiness(t *testing.T) {
	ctx := context.Background()

	t.Run("Duplicate Slug", func(t *testing.T) {
		uc, mocks := newTestTenantUsecase()
		mocks.businesses.On("FindBySlug", ctx, "pizza").Return(&models.Business{ID: "biz-1"}, nil)

		_, err := uc.CreateBusiness(ctx, &requests.CreateBusiness{Slug: "pizza", Name: "Pizza"})
		require.Error(t, err)
		assert.Equal(t, 409, exceptions.StatusCode(err))
	})

	t.Run("Created With Default Timezone", func(t *testing.T) {
		uc, mocks := newTestTenantUsecase()
		mocks.businesses.On("FindBySlug", ctx, "pizza").Return(nil, nil)
		mocks.businesses.On("Create", ctx, mock.MatchedBy(func(b *models.Business) bool {
			return b.Slug == "pizza" && b.Timezone == "Europe/Madrid" && b.ID != "" && b.PaymentSettings.Currency == "eur"
		})).Return(nil)

		result, err := uc.CreateBusiness(ctx, &requests.CreateBusiness{Slug: "pizza", Name: "Pizza"})
		require.NoError(t, err)
		assert.Equal(t, "pizza", result.Slug)
		assert.NotEmpty(t, result.CreatedAt)
	})
}

func TestTenantUsecase_ListBusinesses(t *testing.T) {
	ctx := context.Background()
	uc, mocks := newTestTenantUsecase()
	mocks.businesses.On("List", ctx, 1, 2).Return([]models.Business{{ID: "a", Slug: "a"}, {ID: "b", Slug: "b"}}, 3, nil)

	result, pagination, err := uc.ListBusinesses(ctx, &requests.Pagination{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, 3, pagination.Total)
	assert.Equal(t, "http://localhost:8080/api/v1/admin/businesses?page=2&page_size=2", pagination.NextURL)
	assert.Empty(t, pagination.PrevURL)
}

func TestTenantUsecase_AddMember(t *testing.T) {
	ctx := context.Background()
	business := &models.Business{ID: "biz-1", Slug: "pizza"}

	t.Run("Unknown User Without Password", func(t *testing.T) {
		uc, mocks := newTestTenantUsecase()
		mocks.businesses.On("FindBySlug", ctx, "pizza").Return(business, nil)
		mocks.users.On("FindByEmail", ctx, "ana@pizza.es").Return(nil, nil)

		_, err := uc.AddMember(ctx, "pizza", &requests.AddMember{Email: "ana@pizza.es"})
		require.Error(t, err)
		assert.Equal(t, 404, exceptions.StatusCode(err))
	})

	t.Run("Already Member", func(t *testing.T) {
		uc, mocks := newTestTenantUsecase()
		mocks.businesses.On("FindBySlug", ctx, "pizza").Return(business, nil)
		mocks.users.On("FindByEmail", ctx, "ana@pizza.es").Return(&models.User{ID: "u-1", Email: "ana@pizza.es"}, nil)
		mocks.members.On("FindMembership", ctx, "biz-1", "u-1").Return(&models.BusinessMember{ID: "m-1"}, nil)

		_, err := uc.AddMember(ctx, "pizza", &requests.AddMember{Email: "ana@pizza.es"})
		require.Error(t, err)
		assert.Equal(t, 409, exceptions.StatusCode(err))
	})

	t.Run("Creates User And Membership", func(t *testing.T) {
		uc, mocks := newTestTenantUsecase()
		mocks.businesses.On("FindBySlug", ctx, "pizza").Return(business, nil)
		mocks.users.On("FindByEmail", ctx, "ana@pizza.es").Return(nil, nil)
		mocks.users.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "ana@pizza.es" && u.Password != "secret-pass"
		})).Return(nil)
		mocks.members.On("FindMembership", ctx, "biz-1", mock.Anything).Return(nil, nil)
		mocks.members.On("CreateMembership", ctx, mock.MatchedBy(func(m *models.BusinessMember) bool {
			return m.BusinessID == "biz-1" && m.Role == "staff"
		})).Return(nil)

		member, err := uc.AddMember(ctx, "pizza", &requests.AddMember{Email: "ana@pizza.es", Password: "secret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "staff", member.Role)
		assert.NotEmpty(t, member.UserID)
		mocks.users.AssertExpectations(t)
		mocks.members.AssertExpectations(t)
	})
}
