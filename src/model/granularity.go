package model

type Granularity string

const GranularityHour Granularity = "hour"
const GranularityMonth Granularity = "month"
const GranularityMonthYear Granularity = "monthYear"
const GranularityYear Granularity = "year"

// IsLabeled is false for every mode that falls back to static axis captions.
func (g Granularity) IsLabeled() bool {
	switch g {
	case GranularityHour, GranularityMonth, GranularityMonthYear, GranularityYear:
		return true
	}

	return false
}
