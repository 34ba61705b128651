package contracts

import (
	"context"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/pkg/dto/requests"
	"pidelocal-service/internal/pkg/dto/responses"
	"time"
)

type BusinessRepository interface {
	FindBySlug(ctx context.Context, slug string) (*models.Business, error)
	List(ctx context.Context, page, pageSize int) ([]models.Business, int, error)
	Create(ctx context.Context, business *models.Business) error
	UpdateOpeningHours(ctx context.Context, businessID string, openingHours map[string][]models.OpeningPeriod) error
	UpdateSlotSettings(ctx context.Context, businessID string, settings models.SlotSettings, timezone string) error
	UpdatePaymentSettings(ctx context.Context, businessID string, settings models.PaymentSettings) error
}

// MembershipStore is everything the access authorizer needs to decide
// whether a staff user may administer a business.
type MembershipStore interface {
	FindBusinessBySlug(ctx context.Context, slug string) (*models.Business, error)
	FindMembership(ctx context.Context, businessID, userID string) (*models.BusinessMember, error)
	UpdateLastAccess(ctx context.Context, memberID string, accessedAt time.Time) error
	InsertAccessLog(ctx context.Context, entry *models.AdminAccessLog) error
}

type BusinessMemberRepository interface {
	MembershipStore
	CreateMembership(ctx context.Context, member *models.BusinessMember) error
}

type TenantUsecase interface {
	GetTenant(ctx context.Context, slug string) (*responses.Tenant, error)
	GetBusiness(ctx context.Context, slug string) (*models.Business, error)
	GetOpeningHours(ctx context.Context, slug string) (*responses.OpeningHours, error)
	UpdateOpeningHours(ctx context.Context, slug string, request *requests.UpdateOpeningHours) (*responses.OpeningHours, error)
	GetSlotSettings(ctx context.Context, slug string) (*responses.SlotSettings, error)
	UpdateSlotSettings(ctx context.Context, slug string, request *requests.UpdateSlotSettings) (*responses.SlotSettings, error)
	GetPaymentSettings(ctx context.Context, slug string) (*responses.PaymentSettings, error)
	UpdatePaymentSettings(ctx context.Context, slug string, request *requests.UpdatePaymentSettings) (*responses.PaymentSettings, error)
	ListBusinesses(ctx context.Context, request *requests.Pagination) ([]responses.Business, *responses.Pagination, error)
	CreateBusiness(ctx context.Context, request *requests.CreateBusiness) (*responses.Business, error)
	AddMember(ctx context.Context, slug string, request *requests.AddMember) (*responses.Member, error)
}
