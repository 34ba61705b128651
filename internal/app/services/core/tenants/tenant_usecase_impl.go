package tenants

import (
	"context"
	"fmt"
	"pidelocal-service/internal/app/config"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/app/services/core/slots"
	"pidelocal-service/internal/pkg/constvars"
	"pidelocal-service/internal/pkg/dto/requests"
	"pidelocal-service/internal/pkg/dto/responses"
	"pidelocal-service/internal/pkg/exceptions"
	"pidelocal-service/internal/pkg/utils"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type tenantUsecase struct {
	BusinessRepository       contracts.BusinessRepository
	BusinessMemberRepository contracts.BusinessMemberRepository
	UserRepository           contracts.UserRepository
	InternalConfig           *config.InternalConfig
	Log                      *zap.Logger
}

var (
	tenantUsecaseInstance contracts.TenantUsecase
	onceTenantUsecase     sync.Once
)

func NewTenantUsecase(
	businessRepository contracts.BusinessRepository,
	businessMemberRepository contracts.BusinessMemberRepository,
	userRepository contracts.UserRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.TenantUsecase {
	onceTenantUsecase.Do(func() {
		tenantUsecaseInstance = &tenantUsecase{
			BusinessRepository:       businessRepository,
			BusinessMemberRepository: businessMemberRepository,
			UserRepository:           userRepository,
			InternalConfig:           internalConfig,
			Log:                      logger,
		}
	})
	return tenantUsecaseInstance
}

func (uc *tenantUsecase) GetBusiness(ctx context.Context, slug string) (*models.Business, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if slug == "" {
		return nil, exceptions.ErrTenantRequired(nil)
	}

	business, err := uc.BusinessRepository.FindBySlug(ctx, slug)
	if err != nil {
		uc.Log.Error("tenantUsecase.GetBusiness error calling BusinessRepository.FindBySlug",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTenantSlugKey, slug),
			zap.Error(err),
		)
		return nil, err
	}
	if business == nil {
		return nil, exceptions.ErrTenantNotFound(nil, slug)
	}
	return business, nil
}

func (uc *tenantUsecase) GetTenant(ctx context.Context, slug string) (*responses.Tenant, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("tenantUsecase.GetTenant called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantSlugKey, slug),
	)

	business, err := uc.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}

	response := &responses.Tenant{
		Slug:                business.Slug,
		Name:                business.Name,
		Timezone:            uc.timezoneOf(business),
		OpeningHours:        business.ConvertToOpeningHoursResponse(),
		SlotSettings:        uc.effectiveSlotSettings(business),
		CardPaymentsEnabled: business.PaymentSettings.Enabled && business.PaymentSettings.AccountID != "",
		Currency:            business.Currency(),
	}

	uc.Log.Info("tenantUsecase.GetTenant succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, business.ID),
	)
	return response, nil
}

func (uc *tenantUsecase) GetOpeningHours(ctx context.Context, slug string) (*responses.OpeningHours, error) {
	business, err := uc.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}
	response := business.ConvertToOpeningHoursResponse()
	return &response, nil
}

func (uc *tenantUsecase) UpdateOpeningHours(ctx context.Context, slug string, request *requests.UpdateOpeningHours) (*responses.OpeningHours, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("tenantUsecase.UpdateOpeningHours called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantSlugKey, slug),
	)

	business, err := uc.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}

	openingHours := make(map[string][]models.OpeningPeriod, len(request.Days))
	for day, periods := range request.Days {
		for _, p := range periods {
			openingHours[day] = append(openingHours[day], models.OpeningPeriod{Open: p.Open, Close: p.Close})
		}
	}

	schedule, err := slots.ParseWeeklySchedule(openingHours)
	if err != nil {
		uc.Log.Error("tenantUsecase.UpdateOpeningHours schedule rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidSchedule(err)
	}

	business.OpeningHours = schedule.OpeningHours()
	err = uc.BusinessRepository.UpdateOpeningHours(ctx, business.ID, business.OpeningHours)
	if err != nil {
		uc.Log.Error("tenantUsecase.UpdateOpeningHours error calling BusinessRepository.UpdateOpeningHours",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("tenantUsecase.UpdateOpeningHours succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, business.ID),
	)
	response := business.ConvertToOpeningHoursResponse()
	return &response, nil
}

func (uc *tenantUsecase) GetSlotSettings(ctx context.Context, slug string) (*responses.SlotSettings, error) {
	business, err := uc.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}
	response := uc.effectiveSlotSettings(business)
	return &response, nil
}

func (uc *tenantUsecase) UpdateSlotSettings(ctx context.Context, slug string, request *requests.UpdateSlotSettings) (*responses.SlotSettings, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("tenantUsecase.UpdateSlotSettings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantSlugKey, slug),
	)

	business, err := uc.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}

	location, err := utils.LoadLocation(request.Timezone)
	if err != nil {
		return nil, exceptions.ErrInvalidSlotSettings(err)
	}
	opts := slots.Options{
		SlotMinutes:        request.SlotMinutes,
		PrepMinutes:        request.PrepMinutes,
		CloseBufferMinutes: request.CloseBufferMinutes,
		Location:           location,
	}
	if err := opts.Validate(); err != nil {
		return nil, exceptions.ErrInvalidSlotSettings(err)
	}

	business.SlotSettings = models.SlotSettings{
		SlotMinutes:        request.SlotMinutes,
		PrepMinutes:        request.PrepMinutes,
		CloseBufferMinutes: request.CloseBufferMinutes,
	}
	business.Timezone = request.Timezone
	err = uc.BusinessRepository.UpdateSlotSettings(ctx, business.ID, business.SlotSettings, business.Timezone)
	if err != nil {
		uc.Log.Error("tenantUsecase.UpdateSlotSettings error calling BusinessRepository.UpdateSlotSettings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("tenantUsecase.UpdateSlotSettings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, business.ID),
	)
	response := uc.effectiveSlotSettings(business)
	return &response, nil
}

func (uc *tenantUsecase) GetPaymentSettings(ctx context.Context, slug string) (*responses.PaymentSettings, error) {
	business, err := uc.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}
	response := business.ConvertToPaymentSettingsResponse()
	response.Currency = business.Currency()
	return &response, nil
}

func (uc *tenantUsecase) UpdatePaymentSettings(ctx context.Context, slug string, request *requests.UpdatePaymentSettings) (*responses.PaymentSettings, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("tenantUsecase.UpdatePaymentSettings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantSlugKey, slug),
	)

	business, err := uc.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}

	business.PaymentSettings = models.PaymentSettings{
		Enabled:   request.Enabled,
		AccountID: request.AccountID,
		Currency:  request.Currency,
	}
	err = uc.BusinessRepository.UpdatePaymentSettings(ctx, business.ID, business.PaymentSettings)
	if err != nil {
		uc.Log.Error("tenantUsecase.UpdatePaymentSettings error calling BusinessRepository.UpdatePaymentSettings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("tenantUsecase.UpdatePaymentSettings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, business.ID),
	)
	response := business.ConvertToPaymentSettingsResponse()
	return &response, nil
}

func (uc *tenantUsecase) ListBusinesses(ctx context.Context, request *requests.Pagination) ([]responses.Business, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("tenantUsecase.ListBusinesses called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	businesses, total, err := uc.BusinessRepository.List(ctx, request.Page, request.PageSize)
	if err != nil {
		uc.Log.Error("tenantUsecase.ListBusinesses error calling BusinessRepository.List",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	response := make([]responses.Business, len(businesses))
	for i, eachBusiness := range businesses {
		response[i] = eachBusiness.ConvertToBusinessResponse()
	}
	pagination := utils.BuildPaginationResponse(total, request.Page, request.PageSize, uc.resourceURL(constvars.ResourceAdminBusinesses))

	uc.Log.Info("tenantUsecase.ListBusinesses succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBusinessCountKey, len(response)),
	)
	return response, pagination, nil
}

func (uc *tenantUsecase) CreateBusiness(ctx context.Context, request *requests.CreateBusiness) (*responses.Business, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("tenantUsecase.CreateBusiness called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantSlugKey, request.Slug),
	)

	existing, err := uc.BusinessRepository.FindBySlug(ctx, request.Slug)
	if err != nil {
		uc.Log.Error("tenantUsecase.CreateBusiness error calling BusinessRepository.FindBySlug",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrTenantAlreadyExists(nil, request.Slug)
	}

	timezone := request.Timezone
	if timezone == "" {
		timezone = uc.InternalConfig.App.Timezone
	}
	business := &models.Business{
		ID:           uuid.NewString(),
		Slug:         request.Slug,
		Name:         request.Name,
		Timezone:     timezone,
		OpeningHours: map[string][]models.OpeningPeriod{},
		PaymentSettings: models.PaymentSettings{
			Currency: constvars.DefaultCurrency,
		},
	}
	business.SetCreatedAtUpdatedAt()

	err = uc.BusinessRepository.Create(ctx, business)
	if err != nil {
		uc.Log.Error("tenantUsecase.CreateBusiness error calling BusinessRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("tenantUsecase.CreateBusiness succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, business.ID),
	)
	response := business.ConvertToBusinessResponse()
	return &response, nil
}

func (uc *tenantUsecase) AddMember(ctx context.Context, slug string, request *requests.AddMember) (*responses.Member, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("tenantUsecase.AddMember called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantSlugKey, slug),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	business, err := uc.GetBusiness(ctx, slug)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("tenantUsecase.AddMember error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		if request.Password == "" {
			return nil, exceptions.ErrUserNotFound(nil)
		}
		user, err = uc.createUser(ctx, request)
		if err != nil {
			uc.Log.Error("tenantUsecase.AddMember error creating user",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	existing, err := uc.BusinessMemberRepository.FindMembership(ctx, business.ID, user.ID)
	if err != nil {
		uc.Log.Error("tenantUsecase.AddMember error calling BusinessMemberRepository.FindMembership",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrUserAlreadyMember(nil)
	}

	role := request.Role
	if role == "" {
		role = constvars.MemberRoleStaff
	}
	member := &models.BusinessMember{
		ID:         uuid.NewString(),
		BusinessID: business.ID,
		UserID:     user.ID,
		Role:       role,
	}
	member.SetCreatedAtUpdatedAt()

	err = uc.BusinessMemberRepository.CreateMembership(ctx, member)
	if err != nil {
		uc.Log.Error("tenantUsecase.AddMember error calling BusinessMemberRepository.CreateMembership",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("tenantUsecase.AddMember succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessIDKey, business.ID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.Member{
		BusinessID: business.ID,
		UserID:     user.ID,
		Email:      user.Email,
		Role:       member.Role,
	}, nil
}

func (uc *tenantUsecase) createUser(ctx context.Context, request *requests.AddMember) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:       uuid.NewString(),
		Email:    request.Email,
		Name:     request.Name,
		Password: hashedPassword,
	}
	user.SetCreatedAtUpdatedAt()
	if err := uc.UserRepository.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *tenantUsecase) effectiveSlotSettings(business *models.Business) responses.SlotSettings {
	settings := business.SlotSettings
	if settings.SlotMinutes == 0 {
		settings = models.SlotSettings{
			SlotMinutes:        uc.InternalConfig.Slots.DefaultSlotMinutes,
			PrepMinutes:        uc.InternalConfig.Slots.DefaultPrepMinutes,
			CloseBufferMinutes: uc.InternalConfig.Slots.DefaultCloseBufferMinutes,
		}
	}
	return responses.SlotSettings{
		SlotMinutes:        settings.SlotMinutes,
		PrepMinutes:        settings.PrepMinutes,
		CloseBufferMinutes: settings.CloseBufferMinutes,
		Timezone:           uc.timezoneOf(business),
	}
}

func (uc *tenantUsecase) timezoneOf(business *models.Business) string {
	if business.Timezone != "" {
		return business.Timezone
	}
	return uc.InternalConfig.App.Timezone
}

func (uc *tenantUsecase) resourceURL(resource string) string {
	app := uc.InternalConfig.App
	return fmt.Sprintf("%s/%s/%s%s", app.BaseUrl, app.EndpointPrefix, app.Version, resource)
}
