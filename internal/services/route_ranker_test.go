package services

import (
	"city-insights-service/internal/domain"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreStaysInRange(t *testing.T) {
	policy := DefaultRankingPolicy()

	candidates := []domain.RouteCandidate{
		{},
		{DistanceMeters: 1, DurationSeconds: 1, TrafficDurationSeconds: 1},
		{DistanceMeters: 50000, DurationSeconds: 7200, TrafficDurationSeconds: 7200},
		{DistanceMeters: 500000, DurationSeconds: 72000, TrafficDurationSeconds: 90000},
		{DistanceMeters: 12345, DurationSeconds: 1800, TrafficDurationSeconds: 2400},
	}

	for _, c := range candidates {
		s := policy.Score(c)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 100.0)
	}
}

func TestScoreIdealRoute(t *testing.T) {
	policy := DefaultRankingPolicy()

	s := policy.Score(domain.RouteCandidate{})
	assert.Equal(t, 100.0, s)
}

func TestScoreKnownValue(t *testing.T) {
	policy := DefaultRankingPolicy()

	// One hour in traffic, no distance, no delay:
	// time sub-score 50, distance 100, delay 100 -> 0.4*50 + 0.3*100 + 0.3*100.
	s := policy.Score(domain.RouteCandidate{
		DurationSeconds:        3600,
		TrafficDurationSeconds: 3600,
	})
	assert.Equal(t, 80.0, s)
}

func TestScoreNegativeDelayTreatedAsZero(t *testing.T) {
	policy := DefaultRankingPolicy()

	// Traffic estimate faster than baseline. Delay contributes as zero:
	// time sub-score 87.5, distance 100, delay 100.
	s := policy.Score(domain.RouteCandidate{
		DurationSeconds:        1000,
		TrafficDurationSeconds: 900,
	})
	assert.Equal(t, 95.0, s)
}

func TestScoreMalformedInputIsNeutral(t *testing.T) {
	policy := DefaultRankingPolicy()

	assert.Equal(t, 50.0, policy.Score(domain.RouteCandidate{DistanceMeters: -1}))
	assert.Equal(t, 50.0, policy.Score(domain.RouteCandidate{DurationSeconds: -1}))
	assert.Equal(t, 50.0, policy.Score(domain.RouteCandidate{TrafficDurationSeconds: -1}))

	broken := policy
	broken.MaxTimeSeconds = 0
	assert.Equal(t, 50.0, broken.Score(domain.RouteCandidate{}))
}

func TestRankEmptyInput(t *testing.T) {
	_, err := Rank(DefaultRankingPolicy(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoRoutes))
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	slower := domain.RouteCandidate{
		Summary:                "via FDR Dr",
		DistanceMeters:         5000,
		DurationSeconds:        900,
		TrafficDurationSeconds: 1200,
	}
	faster := domain.RouteCandidate{
		Summary:                "via Brooklyn Bridge",
		DistanceMeters:         3000,
		DurationSeconds:        800,
		TrafficDurationSeconds: 800,
	}

	ranked, err := Rank(DefaultRankingPolicy(), []domain.RouteCandidate{slower, faster})
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "via Brooklyn Bridge", ranked[0].Summary)
	assert.Equal(t, 93.76, ranked[0].EfficiencyScore)
	assert.Equal(t, "via FDR Dr", ranked[1].Summary)
	assert.Equal(t, 85.33, ranked[1].EfficiencyScore)
}

func TestRankIsPermutation(t *testing.T) {
	routes := []domain.RouteCandidate{
		{Summary: "a", DistanceMeters: 1000, DurationSeconds: 300, TrafficDurationSeconds: 400},
		{Summary: "b", DistanceMeters: 9000, DurationSeconds: 1400, TrafficDurationSeconds: 2100},
		{Summary: "c", DistanceMeters: 4000, DurationSeconds: 700, TrafficDurationSeconds: 700},
	}

	ranked, err := Rank(DefaultRankingPolicy(), routes)
	require.NoError(t, err)
	require.Len(t, ranked, len(routes))

	seen := map[string]bool{}
	for _, r := range ranked {
		seen[r.Summary] = true
	}
	for _, r := range routes {
		assert.True(t, seen[r.Summary], "route %q missing from ranked set", r.Summary)
	}

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].EfficiencyScore, ranked[i].EfficiencyScore)
	}
}

func TestRankKeepsProviderOrderOnTies(t *testing.T) {
	same := domain.RouteCandidate{DistanceMeters: 2000, DurationSeconds: 500, TrafficDurationSeconds: 500}

	first := same
	first.Summary = "first"
	second := same
	second.Summary = "second"

	ranked, err := Rank(DefaultRankingPolicy(), []domain.RouteCandidate{first, second})
	require.NoError(t, err)

	assert.Equal(t, "first", ranked[0].Summary)
	assert.Equal(t, "second", ranked[1].Summary)
}

func TestRankReportsRawDelay(t *testing.T) {
	ranked, err := Rank(DefaultRankingPolicy(), []domain.RouteCandidate{
		{DurationSeconds: 1000, TrafficDurationSeconds: 900},
	})
	require.NoError(t, err)

	d := ranked[0].TrafficDelay
	assert.Equal(t, -100, d.DelaySeconds)
	assert.Equal(t, -1.7, d.DelayMinutes)
	assert.Equal(t, 0.0, d.DelayPercentage)
}

func TestRankDelayPercentageZeroNominal(t *testing.T) {
	ranked, err := Rank(DefaultRankingPolicy(), []domain.RouteCandidate{
		{DurationSeconds: 0, TrafficDurationSeconds: 300},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, ranked[0].TrafficDelay.DelayPercentage)
}

func TestSummarizeKnownValues(t *testing.T) {
	ranked, err := Rank(DefaultRankingPolicy(), []domain.RouteCandidate{
		{DistanceMeters: 2000, DurationSeconds: 600, TrafficDurationSeconds: 600},
		{DistanceMeters: 4000, DurationSeconds: 1000, TrafficDurationSeconds: 1200},
	})
	require.NoError(t, err)

	summary, ok := Summarize(ranked)
	require.True(t, ok)

	assert.Equal(t, 2, summary.TotalRoutes)
	assert.Equal(t, 15.0, summary.AverageTimeMinutes)
	assert.Equal(t, 3.0, summary.AverageDistanceKM)
	assert.Equal(t, 1.7, summary.AverageDelayMinutes)
	assert.Equal(t, 10.0, summary.TimeRange.MinMinutes)
	assert.Equal(t, 20.0, summary.TimeRange.MaxMinutes)
}

func TestSummarizeSingleRoute(t *testing.T) {
	ranked, err := Rank(DefaultRankingPolicy(), []domain.RouteCandidate{
		{DistanceMeters: 3000, DurationSeconds: 900, TrafficDurationSeconds: 900},
	})
	require.NoError(t, err)

	summary, ok := Summarize(ranked)
	require.True(t, ok)

	assert.Equal(t, 1, summary.TotalRoutes)
	assert.Equal(t, summary.TimeRange.MinMinutes, summary.TimeRange.MaxMinutes)
}

func TestSummarizeEmpty(t *testing.T) {
	_, ok := Summarize(nil)
	assert.False(t, ok)
}

func TestRankingPolicyValidate(t *testing.T) {
	require.NoError(t, DefaultRankingPolicy().Validate())

	p := DefaultRankingPolicy()
	p.MaxDelaySeconds = 0
	assert.Error(t, p.Validate())

	p = DefaultRankingPolicy()
	p.TimeWeight = -0.1
	assert.Error(t, p.Validate())

	p = DefaultRankingPolicy()
	p.TimeWeight = 0.5
	assert.Error(t, p.Validate(), "weights no longer sum to 1")
}
