package fitbit

// Period selects the relative window of a time-series query, counted
// back from the base date.
type Period string

const (
	// Period1Day covers the base date only.
	Period1Day Period = "1d"

	// Period7Days covers the seven days ending at the base date.
	Period7Days Period = "7d"

	// Period30Days covers the thirty days ending at the base date.
	Period30Days Period = "30d"

	// Period1Week covers one calendar week.
	Period1Week Period = "1w"

	// Period1Month covers one calendar month.
	Period1Month Period = "1m"

	// Period3Months covers three calendar months.
	Period3Months Period = "3m"

	// Period6Months covers six calendar months.
	Period6Months Period = "6m"

	// Period1Year covers one calendar year.
	Period1Year Period = "1y"

	// PeriodMax covers the user's full history.
	PeriodMax Period = "max"
)

// validPeriods is the fixed set of tokens the API accepts.
var validPeriods = map[Period]bool{
	Period1Day:    true,
	Period7Days:   true,
	Period30Days:  true,
	Period1Week:   true,
	Period1Month:  true,
	Period3Months: true,
	Period6Months: true,
	Period1Year:   true,
	PeriodMax:     true,
}

// Valid reports whether p is one of the accepted period tokens.
func (p Period) Valid() bool {
	return validPeriods[p]
}
