// Package priority converts a complaint's severity and community votes into
// a deterministic ranking score and its bucketed classification.
package priority

import "campuschars/backend/internal/config"

// Compute returns the priority score and label for the given severity and
// vote count. Severity dominates the formula (weight * 2 baseline of 2/4/6)
// while votes escalate within and across severity bands. Unknown severities
// fall back to the lowest weight and negative vote counts are clamped to
// zero, so the function is total and never errors.
func Compute(severity string, votes int) (int, string) {
	weight, ok := config.SeverityWeights[severity]
	if !ok {
		weight = config.DefaultSeverityWeight
	}
	if votes < 0 {
		votes = 0
	}
	score := weight*config.SeverityWeightFactor + votes
	return score, Label(score)
}

// Label buckets a priority score: <=3 Low, 4..6 Medium, >=7 High.
func Label(score int) string {
	switch {
	case score <= config.LowScoreMax:
		return "Low"
	case score <= config.MediumScoreMax:
		return "Medium"
	default:
		return "High"
	}
}
