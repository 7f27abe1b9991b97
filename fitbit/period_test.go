package fitbit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeriod_Valid(t *testing.T) {
	valid := []Period{
		Period1Day, Period7Days, Period30Days,
		Period1Week, Period1Month, Period3Months,
		Period6Months, Period1Year, PeriodMax,
	}
	for _, p := range valid {
		assert.True(t, p.Valid(), "period %q", p)
	}

	invalid := []Period{"", "xyz", "2d", "1D", "MAX", "1 d"}
	for _, p := range invalid {
		assert.False(t, p.Valid(), "period %q", p)
	}
}
