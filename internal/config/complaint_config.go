package config

const (
	// Priority formula
	SeverityWeightFactor  = 2
	DefaultSeverityWeight = 1

	// Label thresholds (inclusive upper bounds)
	LowScoreMax    = 3
	MediumScoreMax = 6

	// Complaint defaults
	DefaultSubmitter   = "Anonymous"
	DefaultStudentType = "Day"
	DefaultCategory    = "General"
	DefaultSeverity    = "Low"
	DefaultVisibility  = "public"

	// Notifications
	DescriptionExcerptLimit = 120
)

var SeverityWeights = map[string]int{
	"Low":    1,
	"Medium": 2,
	"High":   3,
}
