package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"stockroom/internal/cache"
	"stockroom/internal/model"
	"stockroom/internal/repository"
)

const (
	decisionAllowed = "allowed"
	decisionDenied  = "denied"

	// DefaultRequiredLevel is the level CheckAccess demands from non-owners.
	DefaultRequiredLevel = model.AccessRegionalManager
	// DefaultAccessTTL bounds how long a cached decision is trusted.
	DefaultAccessTTL = 24 * time.Hour
)

// AccessService answers "may this user act at this warehouse" with a cached
// boolean decision. The company owner is always allowed.
type AccessService interface {
	// CheckAccess requires DefaultRequiredLevel.
	CheckAccess(ctx context.Context, userID, companyID, warehouseID string) (bool, error)

	CheckAccessLevel(ctx context.Context, userID, companyID, warehouseID string, required model.AccessLevel) (bool, error)

	// InvalidateAccess drops cached decisions of one (user, warehouse) pair.
	// Call it whenever the grant of that pair changes.
	InvalidateAccess(ctx context.Context, userID, companyID, warehouseID string) error

	// InvalidateUser drops every cached decision of a user.
	InvalidateUser(ctx context.Context, userID string) error
}

type accessService struct {
	users   repository.UserRepository
	cache   cache.Cache
	ttl     time.Duration
	metrics *Metrics
	logger  *zap.Logger
}

// NewAccessService constructs an AccessService. A non-positive ttl selects DefaultAccessTTL.
func NewAccessService(users repository.UserRepository, c cache.Cache, ttl time.Duration, metrics *Metrics, logger *zap.Logger) AccessService {
	if ttl <= 0 {
		ttl = DefaultAccessTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &accessService{users: users, cache: c, ttl: ttl, metrics: metrics, logger: logger}
}

func (s *accessService) CheckAccess(ctx context.Context, userID, companyID, warehouseID string) (bool, error) {
	return s.CheckAccessLevel(ctx, userID, companyID, warehouseID, DefaultRequiredLevel)
}

func (s *accessService) CheckAccessLevel(ctx context.Context, userID, companyID, warehouseID string, required model.AccessLevel) (bool, error) {
	if userID == "" || companyID == "" {
		return false, badRequest("user and company are required")
	}
	if required.Rank() == 0 {
		return false, badRequest("unknown access level %q", required)
	}

	gen, err := s.generation(ctx, userID, true)
	if err != nil {
		s.cacheFailed("read access generation", err)
		s.metrics.accessLookupResult("bypass")
		return s.decide(ctx, userID, companyID, warehouseID, required)
	}

	key := decisionKey(userID, gen, companyID, warehouseID, required)
	switch v, err := s.cache.Get(ctx, key); {
	case err == nil && (v == decisionAllowed || v == decisionDenied):
		s.metrics.accessLookupResult("hit")
		return v == decisionAllowed, nil
	case err != nil && !errors.Is(err, cache.ErrMiss):
		s.cacheFailed("read access decision", err)
		s.metrics.accessLookupResult("bypass")
		return s.decide(ctx, userID, companyID, warehouseID, required)
	}

	s.metrics.accessLookupResult("miss")
	allowed, err := s.decide(ctx, userID, companyID, warehouseID, required)
	if err != nil {
		return false, err
	}
	value := decisionDenied
	if allowed {
		value = decisionAllowed
	}
	if err := s.cache.SetWithExpiry(ctx, key, value, s.ttl); err != nil {
		s.cacheFailed("store access decision", err)
	}
	return allowed, nil
}

func (s *accessService) InvalidateAccess(ctx context.Context, userID, companyID, warehouseID string) error {
	gen, err := s.generation(ctx, userID, false)
	if errors.Is(err, cache.ErrMiss) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read access generation: %w", err)
	}
	for _, level := range model.AccessLevels {
		if _, err := s.cache.Delete(ctx, decisionKey(userID, gen, companyID, warehouseID, level)); err != nil {
			return fmt.Errorf("invalidate access decision: %w", err)
		}
	}
	return nil
}

// InvalidateUser retires the user's generation; decisions filed under it
// become unreachable and expire with their TTL.
func (s *accessService) InvalidateUser(ctx context.Context, userID string) error {
	if _, err := s.cache.Delete(ctx, generationKey(userID)); err != nil {
		return fmt.Errorf("invalidate user decisions: %w", err)
	}
	return nil
}

func (s *accessService) decide(ctx context.Context, userID, companyID, warehouseID string, required model.AccessLevel) (bool, error) {
	facts, err := s.users.AccessFacts(ctx, userID, companyID, warehouseID)
	if err != nil {
		return false, translate(err, "company")
	}
	// A warehouse of another company is never reachable, owner or not.
	if warehouseID != "" && !facts.WarehouseInCompany {
		return false, nil
	}
	if facts.OwnerID == userID {
		return true, nil
	}
	return facts.Level.Satisfies(required), nil
}

// generation returns the user's current cache generation, creating one when
// create is set and none exists. Concurrent first lookups agree on whichever
// generation was stored first.
func (s *accessService) generation(ctx context.Context, userID string, create bool) (string, error) {
	key := generationKey(userID)
	gen, err := s.cache.Get(ctx, key)
	if err == nil || !create || !errors.Is(err, cache.ErrMiss) {
		return gen, err
	}
	gen = uuid.NewString()
	stored, err := s.cache.SetIfAbsent(ctx, key, gen, s.ttl)
	if err != nil {
		return "", err
	}
	if stored {
		return gen, nil
	}
	return s.cache.Get(ctx, key)
}

func (s *accessService) cacheFailed(op string, err error) {
	s.logger.Warn("access cache unavailable",
		zap.String("component", "access"),
		zap.String("op", op),
		zap.Error(err),
	)
}

func generationKey(userID string) string {
	return "access:gen:" + userID
}

func decisionKey(userID, gen, companyID, warehouseID string, level model.AccessLevel) string {
	return fmt.Sprintf("access:%s:%s:%s:%s:%s", userID, gen, companyID, warehouseID, level)
}
