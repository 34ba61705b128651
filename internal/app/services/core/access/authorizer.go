package access

import (
	"context"
	"pidelocal-service/internal/app/contracts"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/app/services/shared/clock"
	"pidelocal-service/internal/app/services/shared/metrics"
	"pidelocal-service/internal/pkg/constvars"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultLookupTimeout     = 1500 * time.Millisecond
	defaultSideEffectTimeout = 3 * time.Second
)

type Authorizer struct {
	Store             contracts.MembershipStore
	AllowList         AllowList
	LookupTimeout     time.Duration
	SideEffectTimeout time.Duration
	Clock             clock.Clock
	Log               *zap.Logger

	sideEffects sync.WaitGroup
}

func NewAuthorizer(
	store contracts.MembershipStore,
	allowList AllowList,
	lookupTimeout time.Duration,
	sideEffectTimeout time.Duration,
	clk clock.Clock,
	logger *zap.Logger,
) *Authorizer {
	if lookupTimeout <= 0 {
		lookupTimeout = defaultLookupTimeout
	}
	if sideEffectTimeout <= 0 {
		sideEffectTimeout = defaultSideEffectTimeout
	}
	return &Authorizer{
		Store:             store,
		AllowList:         allowList,
		LookupTimeout:     lookupTimeout,
		SideEffectTimeout: sideEffectTimeout,
		Clock:             clk,
		Log:               logger,
	}
}

// Authorize decides whether identity may administer the business behind
// slug. Store failures count as "not a member".
func (a *Authorizer) Authorize(ctx context.Context, identity models.Identity, slug string) models.AccessDecision {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	decision := models.AccessDecision{IsSuperAdmin: a.AllowList.Contains(identity.Email)}
	if slug == "" {
		decision.Allowed = decision.IsSuperAdmin
		a.record(requestID, identity, slug, decision)
		return decision
	}

	member := a.lookupMembership(ctx, requestID, identity, slug)
	decision.Allowed = member != nil || decision.IsSuperAdmin
	a.record(requestID, identity, slug, decision)

	if member != nil {
		a.dispatchSideEffects(requestID, identity, slug, member)
	}
	return decision
}

// Wait blocks until every dispatched side effect has finished.
func (a *Authorizer) Wait() {
	a.sideEffects.Wait()
}

func (a *Authorizer) lookupMembership(ctx context.Context, requestID string, identity models.Identity, slug string) *models.BusinessMember {
	lookupCtx, cancel := context.WithTimeout(ctx, a.LookupTimeout)
	defer cancel()

	business, err := a.Store.FindBusinessBySlug(lookupCtx, slug)
	if err != nil {
		a.Log.Warn("Authorizer.Authorize error calling MembershipStore.FindBusinessBySlug",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTenantSlugKey, slug),
			zap.Error(err),
		)
		return nil
	}
	if business == nil {
		return nil
	}

	member, err := a.Store.FindMembership(lookupCtx, business.ID, identity.UserID)
	if err != nil {
		a.Log.Warn("Authorizer.Authorize error calling MembershipStore.FindMembership",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBusinessIDKey, business.ID),
			zap.String(constvars.LoggingUserIDKey, identity.UserID),
			zap.Error(err),
		)
		return nil
	}
	if member != nil && member.BusinessID == "" {
		member.BusinessID = business.ID
	}
	return member
}

func (a *Authorizer) dispatchSideEffects(requestID string, identity models.Identity, slug string, member *models.BusinessMember) {
	accessedAt := a.Clock.Now().UTC()
	entry := &models.AdminAccessLog{
		ID:         uuid.NewString(),
		BusinessID: member.BusinessID,
		UserID:     identity.UserID,
		Email:      identity.Email,
		Slug:       slug,
		AccessedAt: accessedAt,
	}

	a.sideEffects.Add(1)
	go func() {
		defer a.sideEffects.Done()
		defer func() {
			if r := recover(); r != nil {
				a.Log.Warn("Authorizer side effects panicked",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Any(constvars.LoggingPanicKey, r),
				)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), a.SideEffectTimeout)
		defer cancel()

		if err := a.Store.UpdateLastAccess(ctx, member.ID, accessedAt); err != nil {
			a.Log.Warn("Authorizer side effects error calling MembershipStore.UpdateLastAccess",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		if err := a.Store.InsertAccessLog(ctx, entry); err != nil {
			a.Log.Warn("Authorizer side effects error calling MembershipStore.InsertAccessLog",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()
}

func (a *Authorizer) record(requestID string, identity models.Identity, slug string, decision models.AccessDecision) {
	metrics.IncAuthorizationDecision(decision.Allowed, decision.IsSuperAdmin)
	a.Log.Info("Authorizer.Authorize decided",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, identity.UserID),
		zap.String(constvars.LoggingTenantSlugKey, slug),
		zap.Bool(constvars.LoggingAllowedKey, decision.Allowed),
		zap.Bool(constvars.LoggingIsSuperAdminKey, decision.IsSuperAdmin),
	)
}
