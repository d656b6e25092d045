package automation

import (
	"fmt"
	"math"

	"hostbot/internal/domain"
)

const (
	weekendMultiplier    = 1.2
	highSeasonMultiplier = 1.5
	lowSeasonMultiplier  = 0.8
	lastMinuteMultiplier = 0.9
	longStayMultiplier   = 0.9

	lastMinuteDays = 3
	longStayNights = 7

	// maxBasePrice keeps every multiplied price far inside int range.
	maxBasePrice = 1e12
)

// CalculatePrice applies the pricing multipliers to base in a fixed order
// and rounds half away from zero to a whole price. The order matters: floating point
// products are not associative.
func CalculatePrice(base float64, f domain.PricingFactors) (int, error) {
	if err := ValidatePricing(base, f); err != nil {
		return 0, err
	}

	price := base
	if f.IsWeekend {
		price *= weekendMultiplier
	}
	switch f.Season {
	case domain.SeasonHigh:
		price *= highSeasonMultiplier
	case domain.SeasonLow:
		price *= lowSeasonMultiplier
	}
	if f.DaysUntilArrival < lastMinuteDays {
		price *= lastMinuteMultiplier
	}
	if f.NightsStayed >= longStayNights {
		price *= longStayMultiplier
	}
	rounded := math.Round(price)
	if rounded < 1 {
		return 0, fmt.Errorf("%w: base price %v rounds to a price below 1", domain.ErrInvalidInput, base)
	}
	return int(rounded), nil
}

// ValidatePricing reports why base and f cannot be priced, wrapping
// domain.ErrInvalidInput.
func ValidatePricing(base float64, f domain.PricingFactors) error {
	switch {
	case math.IsNaN(base) || math.IsInf(base, 0):
		return fmt.Errorf("%w: base price must be a finite number", domain.ErrInvalidInput)
	case base <= 0:
		return fmt.Errorf("%w: base price must be positive, got %v", domain.ErrInvalidInput, base)
	case base > maxBasePrice:
		return fmt.Errorf("%w: base price must not exceed %v, got %v", domain.ErrInvalidInput, maxBasePrice, base)
	case f.DaysUntilArrival < 0:
		return fmt.Errorf("%w: days until arrival must not be negative, got %d", domain.ErrInvalidInput, f.DaysUntilArrival)
	case f.NightsStayed < 1:
		return fmt.Errorf("%w: nights stayed must be at least 1, got %d", domain.ErrInvalidInput, f.NightsStayed)
	}
	if _, err := ParseSeason(string(f.Season)); err != nil {
		return err
	}
	return nil
}

// ParseSeason maps a season name to its tier. An empty name is normal.
func ParseSeason(s string) (domain.Season, error) {
	switch domain.Season(s) {
	case "", domain.SeasonNormal:
		return domain.SeasonNormal, nil
	case domain.SeasonHigh, domain.SeasonLow:
		return domain.Season(s), nil
	}
	return "", fmt.Errorf("%w: unknown season %q", domain.ErrInvalidInput, s)
}
