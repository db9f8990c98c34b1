package utils

import (
	"math"
	"time"
)

const hoursPerDay = 24

// DaysBetween returns the rental duration in days between two dates,
// computed as the ceiling of the absolute difference. Equal dates yield 0,
// and a reversed range yields the same positive count as the forward one;
// callers that care about ordering must check end >= start themselves.
func DaysBetween(start, end time.Time) int64 {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int64(math.Ceil(diff.Hours() / hoursPerDay))
}

// CalculateRentalCost computes the total rental cost in cents for a tiered
// rate schedule. The first matching tier wins:
//
//  1. monthly rate set and days >= 30: full months at the monthly rate,
//     remainder days at the daily rate
//  2. weekly rate set and days >= 7: full weeks at the weekly rate,
//     remainder days at the daily rate
//  3. otherwise every day at the daily rate
//
// Remainder days always fall back to the daily rate, so a 29-day rental
// never touches the monthly tier even when that would be cheaper.
func CalculateRentalCost(dailyRateCents int64, weeklyRateCents, monthlyRateCents *int64, days int64) int64 {
	if days <= 0 {
		return 0
	}

	if monthlyRateCents != nil && *monthlyRateCents > 0 && days >= 30 {
		months := days / 30
		remainder := days % 30
		return months*(*monthlyRateCents) + remainder*dailyRateCents
	}

	if weeklyRateCents != nil && *weeklyRateCents > 0 && days >= 7 {
		weeks := days / 7
		remainder := days % 7
		return weeks*(*weeklyRateCents) + remainder*dailyRateCents
	}

	return days * dailyRateCents
}
