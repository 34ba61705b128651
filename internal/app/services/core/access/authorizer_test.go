package access

import (
	"context"
	"errors"
	"pidelocal-service/internal/app/models"
	"pidelocal-service/internal/app/services/shared/clock"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryStore struct {
	mu          sync.Mutex
	businesses  map[string]*models.Business
	members     map[string]*models.BusinessMember
	lastAccess  map[string]time.Time
	logs        []*models.AdminAccessLog
	findErr     error
	sideEffects error
	panicOnLog  bool
	slow        time.Duration
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		businesses: map[string]*models.Business{},
		members:    map[string]*models.BusinessMember{},
		lastAccess: map[string]time.Time{},
	}
}

func (s *memoryStore) FindBusinessBySlug(ctx context.Context, slug string) (*models.Business, error) {
	if s.slow > 0 {
		select {
		case <-time.After(s.slow):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.findErr != nil {
		return nil, s.findErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.businesses[slug], nil
}

func (s *memoryStore) FindMembership(ctx context.Context, businessID, userID string) (*models.BusinessMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.members[businessID+"/"+userID], nil
}

func (s *memoryStore) UpdateLastAccess(ctx context.Context, memberID string, accessedAt time.Time) error {
	if s.sideEffects != nil {
		return s.sideEffects
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAccess[memberID] = accessedAt
	return nil
}

func (s *memoryStore) InsertAccessLog(ctx context.Context, entry *models.AdminAccessLog) error {
	if s.panicOnLog {
		panic("access log collection unavailable")
	}
	if s.sideEffects != nil {
		return s.sideEffects
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, entry)
	return nil
}

func (s *memoryStore) addMember(slug, businessID, memberID, userID string) {
	s.businesses[slug] = &models.Business{ID: businessID, Slug: slug}
	s.members[businessID+"/"+userID] = &models.BusinessMember{ID: memberID, BusinessID: businessID, UserID: userID}
}

var testNow = time.Date(2025, 3, 17, 10, 0, 0, 0, time.UTC)

func newTestAuthorizer(store *memoryStore, admins string) *Authorizer {
	return NewAuthorizer(store, ParseAllowList(admins), 50*time.Millisecond, time.Second, clock.NewFixed(testNow), zap.NewNop())
}

func TestAuthorizer_Authorize(t *testing.T) {
	ctx := context.Background()
	staff := models.Identity{UserID: "u-1", Email: "ana@pizza.es"}
	root := models.Identity{UserID: "u-root", Email: "Root@PideLocal.es"}

	t.Run("Super Admin Without Tenant", func(t *testing.T) {
		a := newTestAuthorizer(newMemoryStore(), "root@pidelocal.es")
		decision := a.Authorize(ctx, root, "")
		assert.True(t, decision.Allowed)
		assert.True(t, decision.IsSuperAdmin)
	})

	t.Run("Staff Without Tenant", func(t *testing.T) {
		a := newTestAuthorizer(newMemoryStore(), "root@pidelocal.es")
		decision := a.Authorize(ctx, staff, "")
		assert.False(t, decision.Allowed)
		assert.False(t, decision.IsSuperAdmin)
	})

	t.Run("Tenant Without Membership", func(t *testing.T) {
		store := newMemoryStore()
		store.businesses["pizza"] = &models.Business{ID: "biz-1", Slug: "pizza"}
		a := newTestAuthorizer(store, "root@pidelocal.es")

		decision := a.Authorize(ctx, staff, "pizza")
		assert.False(t, decision.Allowed)
		assert.False(t, decision.IsSuperAdmin)
	})

	t.Run("Unknown Tenant", func(t *testing.T) {
		a := newTestAuthorizer(newMemoryStore(), "")
		decision := a.Authorize(ctx, staff, "ghost")
		assert.False(t, decision.Allowed)
	})

	t.Run("Member Allowed With Side Effects", func(t *testing.T) {
		store := newMemoryStore()
		store.addMember("pizza", "biz-1", "m-1", "u-1")
		a := newTestAuthorizer(store, "")

		decision := a.Authorize(ctx, staff, "pizza")
		a.Wait()

		assert.True(t, decision.Allowed)
		assert.False(t, decision.IsSuperAdmin)
		assert.Equal(t, testNow, store.lastAccess["m-1"])
		require.Len(t, store.logs, 1)
		assert.Equal(t, "biz-1", store.logs[0].BusinessID)
		assert.Equal(t, "pizza", store.logs[0].Slug)
	})

	t.Run("Super Admin Of Foreign Tenant", func(t *testing.T) {
		store := newMemoryStore()
		store.businesses["pizza"] = &models.Business{ID: "biz-1", Slug: "pizza"}
		a := newTestAuthorizer(store, "root@pidelocal.es")

		decision := a.Authorize(ctx, root, "pizza")
		a.Wait()
		assert.True(t, decision.Allowed)
		assert.True(t, decision.IsSuperAdmin)
		assert.Empty(t, store.logs)
	})

	t.Run("Lookup Error Fails Closed", func(t *testing.T) {
		store := newMemoryStore()
		store.addMember("pizza", "biz-1", "m-1", "u-1")
		store.findErr = errors.New("connection refused")
		a := newTestAuthorizer(store, "")

		decision := a.Authorize(ctx, staff, "pizza")
		assert.False(t, decision.Allowed)
	})

	t.Run("Lookup Timeout Fails Closed", func(t *testing.T) {
		store := newMemoryStore()
		store.addMember("pizza", "biz-1", "m-1", "u-1")
		store.slow = time.Second
		a := newTestAuthorizer(store, "")

		start := time.Now()
		decision := a.Authorize(ctx, staff, "pizza")
		assert.False(t, decision.Allowed)
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("Side Effect Errors Do Not Change Decision", func(t *testing.T) {
		store := newMemoryStore()
		store.addMember("pizza", "biz-1", "m-1", "u-1")
		store.sideEffects = errors.New("write conflict")
		a := newTestAuthorizer(store, "")

		decision := a.Authorize(ctx, staff, "pizza")
		a.Wait()
		assert.True(t, decision.Allowed)
		assert.Empty(t, store.logs)
	})

	t.Run("Side Effect Panic Is Swallowed", func(t *testing.T) {
		store := newMemoryStore()
		store.addMember("pizza", "biz-1", "m-1", "u-1")
		store.panicOnLog = true
		a := newTestAuthorizer(store, "")

		decision := a.Authorize(ctx, staff, "pizza")
		assert.NotPanics(t, a.Wait)
		assert.True(t, decision.Allowed)
	})
}
