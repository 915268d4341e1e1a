package services

import (
	"city-insights-service/internal/domain"
	"errors"
	"math"
	"sort"
)

// ErrNoRoutes is returned by Rank when the candidate set is empty.
// Callers are expected to surface it as a "no routes found" outcome.
var ErrNoRoutes = errors.New("no route candidates")

// Score returned when a candidate or policy is malformed. Producing some
// ranking beats failing the whole request.
const neutralScore = 50.0

// RankingPolicy holds the normalization caps and weights used to compute
// route efficiency scores. The defaults are empirical values tuned for an
// NYC-scale metro area; they are policy, not truth, and callers may override
// them (e.g. from a config file) for other regions.
type RankingPolicy struct {
	MaxTimeSeconds    int     `yaml:"max_time_seconds"`
	MaxDistanceMeters int     `yaml:"max_distance_meters"`
	MaxDelaySeconds   int     `yaml:"max_delay_seconds"`
	TimeWeight        float64 `yaml:"time_weight"`
	DistanceWeight    float64 `yaml:"distance_weight"`
	DelayWeight       float64 `yaml:"delay_weight"`
}

func DefaultRankingPolicy() RankingPolicy {
	return RankingPolicy{
		MaxTimeSeconds:    7200,  // 2 hours
		MaxDistanceMeters: 50000, // 50 km
		MaxDelaySeconds:   1800,  // 30 minutes
		TimeWeight:        0.4,
		DistanceWeight:    0.3,
		DelayWeight:       0.3,
	}
}

func (p RankingPolicy) Validate() error {
	if p.MaxTimeSeconds <= 0 || p.MaxDistanceMeters <= 0 || p.MaxDelaySeconds <= 0 {
		return errors.New("ranking policy: normalization caps must be positive")
	}
	if p.TimeWeight < 0 || p.DistanceWeight < 0 || p.DelayWeight < 0 {
		return errors.New("ranking policy: weights must be non-negative")
	}
	sum := p.TimeWeight + p.DistanceWeight + p.DelayWeight
	if math.Abs(sum-1) > 1e-9 {
		return errors.New("ranking policy: weights must sum to 1")
	}
	return nil
}

// Score computes the efficiency score of a single route candidate.
//
// Three sub-scores (travel time with traffic, distance, traffic delay) are
// normalized against the policy caps, clamped to [0, 100], and combined as a
// weighted average rounded to two decimals. A negative delay (traffic
// estimate faster than baseline) contributes as zero delay. Malformed input
// yields the neutral score rather than an error; the function is pure and
// never fails.
func (p RankingPolicy) Score(r domain.RouteCandidate) float64 {
	if r.DistanceMeters < 0 || r.DurationSeconds < 0 || r.TrafficDurationSeconds < 0 {
		return neutralScore
	}
	if p.MaxTimeSeconds <= 0 || p.MaxDistanceMeters <= 0 || p.MaxDelaySeconds <= 0 {
		return neutralScore
	}

	delay := r.TrafficDurationSeconds - r.DurationSeconds
	if delay < 0 {
		delay = 0
	}

	timeScore := clampScore(100 - float64(r.TrafficDurationSeconds)/float64(p.MaxTimeSeconds)*100)
	distanceScore := clampScore(100 - float64(r.DistanceMeters)/float64(p.MaxDistanceMeters)*100)
	delayScore := clampScore(100 - float64(delay)/float64(p.MaxDelaySeconds)*100)

	score := timeScore*p.TimeWeight + distanceScore*p.DistanceWeight + delayScore*p.DelayWeight
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return neutralScore
	}

	return round2(clampScore(score))
}

// Rank scores every candidate and returns the set ordered best-first.
//
// The result is a permutation of the input: no route is added or dropped.
// Ties keep the provider's original ordering, which typically reflects its
// own relevance ranking.
func Rank(policy RankingPolicy, routes []domain.RouteCandidate) ([]domain.RankedRoute, error) {
	if len(routes) == 0 {
		return nil, ErrNoRoutes
	}

	ranked := make([]domain.RankedRoute, 0, len(routes))
	for _, r := range routes {
		ranked = append(ranked, domain.RankedRoute{
			RouteCandidate:  r,
			EfficiencyScore: policy.Score(r),
			TrafficDelay:    delayFor(r),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EfficiencyScore > ranked[j].EfficiencyScore
	})

	return ranked, nil
}

// Summarize computes aggregate statistics across a ranked route set.
// The second return is false when there is nothing to summarize.
func Summarize(ranked []domain.RankedRoute) (domain.RouteSummary, bool) {
	if len(ranked) == 0 {
		return domain.RouteSummary{}, false
	}

	var timeSum, distSum, delaySum float64
	minTime := ranked[0].TrafficDurationSeconds
	maxTime := ranked[0].TrafficDurationSeconds

	for _, r := range ranked {
		timeSum += float64(r.TrafficDurationSeconds)
		distSum += float64(r.DistanceMeters)
		delaySum += float64(r.TrafficDelay.DelaySeconds)

		if r.TrafficDurationSeconds < minTime {
			minTime = r.TrafficDurationSeconds
		}
		if r.TrafficDurationSeconds > maxTime {
			maxTime = r.TrafficDurationSeconds
		}
	}

	n := float64(len(ranked))
	return domain.RouteSummary{
		TotalRoutes:         len(ranked),
		AverageTimeMinutes:  round1(timeSum / n / 60),
		AverageDistanceKM:   round1(distSum / n / 1000),
		AverageDelayMinutes: round1(delaySum / n / 60),
		TimeRange: domain.TimeRange{
			MinMinutes: round1(float64(minTime) / 60),
			MaxMinutes: round1(float64(maxTime) / 60),
		},
	}, true
}

// delayFor reports the raw traffic delay for a candidate. DelaySeconds keeps
// its sign; the percentage clamps negative delays to zero and defaults to
// zero when the nominal duration is zero.
func delayFor(r domain.RouteCandidate) domain.TrafficDelay {
	delaySeconds := r.TrafficDurationSeconds - r.DurationSeconds

	var pct float64
	if r.DurationSeconds > 0 && delaySeconds > 0 {
		pct = round1(float64(delaySeconds) / float64(r.DurationSeconds) * 100)
	}

	return domain.TrafficDelay{
		DelaySeconds:    delaySeconds,
		DelayMinutes:    round1(float64(delaySeconds) / 60),
		DelayPercentage: pct,
	}
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }

func round2(x float64) float64 { return math.Round(x*100) / 100 }
