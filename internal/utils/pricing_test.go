package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDaysBetween(t *testing.T) {
	t.Run("Simple range", func(t *testing.T) {
		assert.Equal(t, int64(4), DaysBetween(date("2025-03-01"), date("2025-03-05")))
	})

	t.Run("Same day", func(t *testing.T) {
		assert.Equal(t, int64(0), DaysBetween(date("2025-03-01"), date("2025-03-01")))
	})

	t.Run("Single day", func(t *testing.T) {
		assert.Equal(t, int64(1), DaysBetween(date("2025-03-01"), date("2025-03-02")))
	})

	t.Run("Reversed range yields the same positive count", func(t *testing.T) {
		assert.Equal(t, int64(4), DaysBetween(date("2025-03-05"), date("2025-03-01")))
	})

	t.Run("Partial day rounds up", func(t *testing.T) {
		start := date("2025-03-01")
		end := start.Add(36 * time.Hour)
		assert.Equal(t, int64(2), DaysBetween(start, end))
	})
}

func TestCalculateRentalCost(t *testing.T) {
	weekly := int64(600)
	monthly := int64(2000)

	t.Run("Daily rate only", func(t *testing.T) {
		assert.Equal(t, int64(250), CalculateRentalCost(50, nil, nil, 5))
	})

	t.Run("Weekly tier with daily remainder", func(t *testing.T) {
		// 10 days = 1 week at 600 + 3 days at 100
		assert.Equal(t, int64(900), CalculateRentalCost(100, &weekly, nil, 10))
	})

	t.Run("Monthly tier with daily remainder", func(t *testing.T) {
		// 35 days = 1 month at 2000 + 5 days at 100
		assert.Equal(t, int64(2500), CalculateRentalCost(100, &weekly, &monthly, 35))
	})

	t.Run("Monthly tier takes priority over weekly", func(t *testing.T) {
		// 60 days = 2 months, the weekly rate never enters
		assert.Equal(t, int64(4000), CalculateRentalCost(100, &weekly, &monthly, 60))
	})

	t.Run("29 days never touches the monthly tier", func(t *testing.T) {
		// 4 weeks at 600 + 1 day at 100, even though a month would be cheaper
		assert.Equal(t, int64(2500), CalculateRentalCost(100, &weekly, &monthly, 29))
	})

	t.Run("Weekly tier below seven days falls back to daily", func(t *testing.T) {
		assert.Equal(t, int64(600), CalculateRentalCost(100, &weekly, nil, 6))
	})

	t.Run("Zero days", func(t *testing.T) {
		assert.Equal(t, int64(0), CalculateRentalCost(100, &weekly, &monthly, 0))
	})

	t.Run("Negative days", func(t *testing.T) {
		assert.Equal(t, int64(0), CalculateRentalCost(100, nil, nil, -3))
	})

	t.Run("Zero-value tier rates are ignored", func(t *testing.T) {
		zero := int64(0)
		assert.Equal(t, int64(1000), CalculateRentalCost(100, &zero, &zero, 10))
	})
}

// Monotonicity holds as long as the tier rates are genuine discounts rather
// than steep cliffs; a monthly rate far below 30 daily rates can undercut a
// 29-day rental, which is the accepted tier-boundary quirk covered above.
func TestCalculateRentalCost_MonotonicInDays(t *testing.T) {
	weekly := int64(650)
	monthly := int64(2900)

	prev := int64(0)
	for days := int64(1); days <= 120; days++ {
		cost := CalculateRentalCost(100, &weekly, &monthly, days)
		assert.GreaterOrEqual(t, cost, prev, "cost decreased at %d days", days)
		prev = cost
	}
}
