package app

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"hostbot/internal/adapters/observability"
	"hostbot/internal/automation"
	"hostbot/internal/domain"
)

const (
	defaultActionsLimit = 50
	maxActionsLimit     = 200
)

type QueryService struct {
	repo     domain.ActionRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.ActionRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

type cachedQuote struct {
	Price int `json:"price"`
}

// Quote prices a stay, serving repeated inputs from the cache. Invalid
// input is rejected before the cache is consulted.
func (s *QueryService) Quote(ctx context.Context, base float64, f domain.PricingFactors) (int, error) {
	season, err := automation.ParseSeason(string(f.Season))
	if err != nil {
		observability.ObserveQuote("unknown", err)
		return 0, err
	}
	f.Season = season
	if err := automation.ValidatePricing(base, f); err != nil {
		observability.ObserveQuote(string(season), err)
		return 0, err
	}

	key := quoteKey(base, f)
	var cq cachedQuote
	if s.cache != nil {
		ok, err := s.cache.Get(ctx, key, &cq)
		switch {
		case err != nil:
			log.Warn().Err(err).Str("key", key).Msg("quote cache read failed; recomputing")
		case ok && cq.Price > 0:
			return cq.Price, nil
		case ok:
			log.Warn().Str("key", key).Int("price", cq.Price).Msg("cached quote not positive; recomputing")
		}
	}

	price, err := automation.CalculatePrice(base, f)
	observability.ObserveQuote(string(f.Season), err)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, cachedQuote{Price: price}, int(s.cacheTTL.Seconds()))
	}
	return price, nil
}

func quoteKey(base float64, f domain.PricingFactors) string {
	return fmt.Sprintf("quote:%s:%t:%s:%d:%d",
		strconv.FormatFloat(base, 'g', -1, 64), f.IsWeekend, f.Season, f.DaysUntilArrival, f.NightsStayed)
}

// RecentActions lists the newest recorded actions. Limits outside 1..200
// are rejected; zero means the default of 50.
func (s *QueryService) RecentActions(ctx context.Context, q domain.ActionsQuery) (domain.ActionsPage, error) {
	if q.Limit == 0 {
		q.Limit = defaultActionsLimit
	}
	if q.Limit < 0 || q.Limit > maxActionsLimit {
		return domain.ActionsPage{}, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrInvalidInput, maxActionsLimit)
	}
	if s.repo == nil {
		return domain.ActionsPage{}, nil
	}
	return s.repo.ListActions(ctx, q)
}
