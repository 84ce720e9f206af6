package health

import "math"

// Weighting of the custom health score. Security weighs heavier than
// popularity to soften scorecard aggregates that punish small projects.
const (
	popularityWeight = 0.25
	maintainedWeight = 0.20
	securityWeight   = 0.30
	dependentsWeight = 0.25
)

// Score computes the custom health score on a 0-10 scale.
//
// Popularity (stars+forks) and dependent count are compressed with
// log1p and normalized so that the largest projects saturate at 10,
// then blended with the OpenSSF "Maintained" and "Vulnerabilities"
// check scores. The result is rounded to one decimal.
func Score(stars, forks, dependents int, maintained, vulnerabilities float64) float64 {
	popularity := min(math.Log1p(float64(stars+forks))/2.5*10, 10)
	dependent := min(math.Log1p(float64(dependents))/10*10, 10)

	score := popularity*popularityWeight +
		maintained*maintainedWeight +
		vulnerabilities*securityWeight +
		dependent*dependentsWeight
	return round1(score)
}

// Combine averages the deps.dev scorecard aggregate with the custom
// score, rounded to one decimal.
func Combine(overall, custom float64) float64 {
	return round1((overall + custom) / 2)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
