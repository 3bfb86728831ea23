package timevalue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Makepad-fr/worthit/internal/model"
)

func TestNetHourlyRate(t *testing.T) {
	t.Run("hourly with tax", func(t *testing.T) {
		got := NetHourlyRate(model.IncomeHourly, 35, 0, 0, true, 0.25)
		assert.Equal(t, 26.25, got)
	})

	t.Run("hourly without tax", func(t *testing.T) {
		got := NetHourlyRate(model.IncomeHourly, 35, 0, 0, false, 0.25)
		assert.Equal(t, 35.0, got)
	})

	t.Run("salary with tax", func(t *testing.T) {
		got := NetHourlyRate(model.IncomeSalary, 0, 90000, 40, true, 0.25)
		assert.Equal(t, 90000.0/(40*52)*(1-0.25), got)
		assert.InDelta(t, 32.45, got, 0.01)
	})

	t.Run("salary defaults missing hours per week to 40", func(t *testing.T) {
		explicit := NetHourlyRate(model.IncomeSalary, 0, 90000, 40, false, 0)
		defaulted := NetHourlyRate(model.IncomeSalary, 0, 90000, 0, false, 0)
		assert.Equal(t, explicit, defaulted)
	})

	t.Run("for profile", func(t *testing.T) {
		u := model.User{IncomeType: model.IncomeHourly, HourlyRate: 20, TaxEnabled: true, TaxRate: 0.5}
		assert.Equal(t, 10.0, NetHourlyRateFor(u))
	})
}

func TestHoursRequired(t *testing.T) {
	t.Run("zero rate degrades to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, HoursRequired(0, 0))
		assert.Equal(t, 0.0, HoursRequired(100, 0))
		assert.Equal(t, 0.0, HoursRequired(100, -5))
	})

	t.Run("positive rate divides exactly", func(t *testing.T) {
		assert.Equal(t, 10.0, HoursRequired(100, 10))
		assert.Equal(t, 100.0/26.25, HoursRequired(100, 26.25))
	})
}

func TestDescribeEffort(t *testing.T) {
	t.Run("boundaries are inclusive on the lower bucket", func(t *testing.T) {
		assert.NotEqual(t, DescribeEffort(0.25), DescribeEffort(0.26))
		assert.Equal(t, DescribeEffort(0.1), DescribeEffort(0.25))
		assert.Equal(t, DescribeEffort(1), DescribeEffort(2))
		assert.Equal(t, DescribeEffort(8), DescribeEffort(3))
		assert.NotEqual(t, DescribeEffort(8), DescribeEffort(8.01))
	})

	t.Run("ascending buckets", func(t *testing.T) {
		labels := []string{
			DescribeEffort(0.2),
			DescribeEffort(1.5),
			DescribeEffort(6),
			DescribeEffort(30),
			DescribeEffort(100),
			DescribeEffort(500),
		}
		seen := map[string]bool{}
		for _, l := range labels {
			assert.False(t, seen[l], "label %q repeated", l)
			seen[l] = true
		}
	})
}

func TestHumanizeHours(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  string
	}{
		{"small stays in hours", 1.5, "1.5 hours"},
		{"just under a day rounds within hours", 7.999, "8 hours"},
		{"a day switches to days", 8, "1 days"},
		{"fractional days", 12, "1.5 days"},
		{"a week switches to weeks", 40, "1 weeks"},
		{"big values stay in weeks", 400, "10 weeks"},
		{"rounding is half away from zero", 8.5, "1.06 days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanizeHours(tt.hours))
		})
	}
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 1.06, RoundTo(1.0625, 2))
	assert.Equal(t, 32.45, RoundTo(32.451923, 2))
	assert.Equal(t, 3.0, RoundTo(2.5, 0))
	assert.Equal(t, -3.0, RoundTo(-2.5, 0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.9, Clamp(1.2, 0, 0.9))
	assert.Equal(t, 0.0, Clamp(-0.3, 0, 0.9))
	assert.Equal(t, 0.25, Clamp(0.25, 0, 0.9))
}
