package services

import (
	"city-insights-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeInsightsNeedsTwoRoutes(t *testing.T) {
	_, ok := ComputeInsights(nil)
	assert.False(t, ok)

	ranked, err := Rank(DefaultRankingPolicy(), []domain.RouteCandidate{
		{DistanceMeters: 1000, DurationSeconds: 600, TrafficDurationSeconds: 600},
	})
	require.NoError(t, err)

	_, ok = ComputeInsights(ranked)
	assert.False(t, ok)
}

func TestComputeInsightsHeavyTraffic(t *testing.T) {
	ranked, err := Rank(DefaultRankingPolicy(), []domain.RouteCandidate{
		{DistanceMeters: 1000, DurationSeconds: 600, TrafficDurationSeconds: 600},
		{DistanceMeters: 1000, DurationSeconds: 1000, TrafficDurationSeconds: 1500},
	})
	require.NoError(t, err)

	insights, ok := ComputeInsights(ranked)
	require.True(t, ok)

	// Worst route is 15 minutes slower than best; delay percentages are 0 and 50.
	assert.Equal(t, 15.0, insights.TimeSavingsMinutes)
	assert.Equal(t, 25.0, insights.AverageDelayPercentage)
	assert.Equal(t, TrafficHeavy, insights.TrafficCondition)
}

func TestComputeInsightsSmallSavingsSuppressed(t *testing.T) {
	ranked, err := Rank(DefaultRankingPolicy(), []domain.RouteCandidate{
		{DistanceMeters: 1000, DurationSeconds: 600, TrafficDurationSeconds: 600},
		{DistanceMeters: 1000, DurationSeconds: 840, TrafficDurationSeconds: 840},
	})
	require.NoError(t, err)

	insights, ok := ComputeInsights(ranked)
	require.True(t, ok)

	// A four minute gap is inside estimate noise.
	assert.Equal(t, 0.0, insights.TimeSavingsMinutes)
	assert.Equal(t, TrafficGood, insights.TrafficCondition)
}

func TestComputeInsightsModerateTraffic(t *testing.T) {
	// Delay percentages 10 and 20 average to 15, between the two thresholds.
	ranked, err := Rank(DefaultRankingPolicy(), []domain.RouteCandidate{
		{DistanceMeters: 1000, DurationSeconds: 1000, TrafficDurationSeconds: 1100},
		{DistanceMeters: 1000, DurationSeconds: 1000, TrafficDurationSeconds: 1200},
	})
	require.NoError(t, err)

	insights, ok := ComputeInsights(ranked)
	require.True(t, ok)

	assert.Equal(t, 15.0, insights.AverageDelayPercentage)
	assert.Equal(t, TrafficModerate, insights.TrafficCondition)
}
