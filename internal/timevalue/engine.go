// Package timevalue converts money into work time.
//
// Every function is pure and total: bad numeric input degrades to zero
// rather than erroring. Callers sanitize (parse-or-zero, clamp) before
// calling; see the cli package.
package timevalue

import (
	"math"
	"strconv"

	"github.com/Makepad-fr/worthit/internal/model"
)

const (
	weeksPerYear = 52
	hoursPerDay  = 8
	daysPerWeek  = 5
)

// Clamp bounds v to [min, max].
func Clamp(v, min, max float64) float64 {
	return math.Min(max, math.Max(min, v))
}

// RoundTo rounds v to the given number of decimals, half away from zero.
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// NetHourlyRate computes post-tax hourly earnings from an income profile.
//
// Hourly income uses hourlyRate as the gross; salary income spreads the
// annual gross over hoursPerWeek*52 (hoursPerWeek defaults to 40 when
// non-positive). Taxes, when enabled, scale the gross by (1 - taxRate).
func NetHourlyRate(incomeType model.IncomeType, hourlyRate, salary, hoursPerWeek float64, taxEnabled bool, taxRate float64) float64 {
	var gross float64
	switch incomeType {
	case model.IncomeHourly:
		gross = hourlyRate
	default:
		if hoursPerWeek <= 0 {
			hoursPerWeek = 40
		}
		hours := hoursPerWeek * weeksPerYear
		if hours > 0 {
			gross = salary / hours
		}
	}
	if taxEnabled {
		return gross * (1 - taxRate)
	}
	return gross
}

// NetHourlyRateFor applies NetHourlyRate to a profile.
func NetHourlyRateFor(u model.User) float64 {
	return NetHourlyRate(u.IncomeType, u.HourlyRate, u.Salary, u.HoursPerWeek, u.TaxEnabled, u.TaxRate)
}

// HoursRequired converts a price into work hours at the given net rate.
// A non-positive rate means the effort is undefined; it reports 0.
func HoursRequired(price, netHourly float64) float64 {
	if netHourly <= 0 {
		return 0
	}
	return price / netHourly
}

// DescribeEffort maps an hour count to a qualitative label. Buckets are
// inclusive on their upper bound.
func DescribeEffort(hours float64) string {
	switch {
	case hours <= 0.25:
		return "☕ A coffee break worth of work"
	case hours <= 2:
		return "🧰 A couple hours of effort"
	case hours <= 8:
		return "📅 A full work day"
	case hours <= 40:
		return "📆 A full work week"
	case hours <= 160:
		return "🗓️ About a month of grind"
	default:
		return "🏔️ A serious time investment"
	}
}

// HumanizeHours renders an hour count in the largest sensible work unit:
// hours below one 8-hour day, days below one 5-day week, weeks beyond.
// Values are rounded to 2 decimals and printed without trailing zeros.
func HumanizeHours(hours float64) string {
	if hours < hoursPerDay {
		return trimmed(hours) + " hours"
	}
	days := hours / hoursPerDay
	if days < daysPerWeek {
		return trimmed(days) + " days"
	}
	return trimmed(days/daysPerWeek) + " weeks"
}

func trimmed(v float64) string {
	return strconv.FormatFloat(RoundTo(v, 2), 'f', -1, 64)
}
