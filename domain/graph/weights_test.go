package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linkBetween(a, b string) *Link {
	return &Link{Source: a, SourceRef: a, Target: b, TargetRef: b}
}

func TestSuperficialWeight_CountsIncidentLinks(t *testing.T) {
	node := testNode("a", NodeTypeEpisode)
	links := []*Link{
		linkBetween("a", "b"),
		linkBetween("c", "a"),
		linkBetween("b", "c"),
	}

	assert.Equal(t, 2.0, SuperficialWeight(node, links))
}

func TestSuperficialWeight_EmptyRefID(t *testing.T) {
	assert.Equal(t, 0.0, SuperficialWeight(testNode("", NodeTypeEpisode), []*Link{linkBetween("a", "b")}))
	assert.Equal(t, 0.0, SuperficialWeight(nil, nil))
}

func TestMaxSuperficialWeightPerType_IgnoresExplicitlyWeightedNodes(t *testing.T) {
	weighted := testNode("a", NodeTypeEpisode)
	weighted.Weight = 5

	unweighted := testNode("b", NodeTypeEpisode)
	other := testNode("c", NodeTypeShow)

	links := []*Link{
		linkBetween("a", "b"),
		linkBetween("a", "c"),
	}

	maxima := MaxSuperficialWeightPerType([]*NodeExtended{weighted, unweighted, other}, links)

	// "a" has degree 2 but carries an explicit weight, so the episode
	// maximum comes from "b" alone.
	assert.Equal(t, 1.0, maxima[NodeTypeEpisode])
	assert.Equal(t, 1.0, maxima[NodeTypeShow])
}

func TestMaxSuperficialWeightPerType_AbsentTypesOmitted(t *testing.T) {
	weighted := testNode("a", NodeTypeEpisode)
	weighted.Weight = 5

	maxima := MaxSuperficialWeightPerType([]*NodeExtended{weighted}, nil)

	_, ok := maxima[NodeTypeEpisode]
	assert.False(t, ok)
}

func TestNormalizeWeights_ExplicitWeightsDivideByTop(t *testing.T) {
	a := testNode("a", NodeTypeEpisode)
	a.Weight = 10
	b := testNode("b", NodeTypeEpisode)
	b.Weight = 4

	normalized := NormalizeWeights(10, nil, []*NodeExtended{a, b}, nil)

	require.Len(t, normalized, 2)
	assert.Equal(t, 1.0, normalized[0].Weight)
	assert.Equal(t, 0.4, normalized[1].Weight)
}

func TestNormalizeWeights_SuperficialFallback(t *testing.T) {
	a := testNode("a", NodeTypeEpisode)
	b := testNode("b", NodeTypeEpisode)

	links := []*Link{
		linkBetween("a", "b"),
		linkBetween("a", "x"),
	}

	perType := MaxSuperficialWeightPerType([]*NodeExtended{a, b}, links)
	normalized := NormalizeWeights(0, perType, []*NodeExtended{a, b}, links)

	require.Len(t, normalized, 2)
	assert.Equal(t, 1.0, normalized[0].Weight)
	assert.Equal(t, 0.5, normalized[1].Weight)
}

func TestNormalizeWeights_InputNotMutated(t *testing.T) {
	a := testNode("a", NodeTypeEpisode)
	a.Weight = 4

	normalized := NormalizeWeights(8, nil, []*NodeExtended{a}, nil)

	assert.Equal(t, 4.0, a.Weight)
	assert.Equal(t, 0.5, normalized[0].Weight)
}

func TestNormalizeWeights_ResultsAlwaysInUnitRange(t *testing.T) {
	a := testNode("a", NodeTypeEpisode)
	a.Weight = 50 // larger than the claimed top weight

	normalized := NormalizeWeights(10, nil, []*NodeExtended{a}, nil)
	assert.Equal(t, 1.0, normalized[0].Weight)
}

func TestNormalizeWeights_ZeroDivisorsYieldZero(t *testing.T) {
	a := testNode("a", NodeTypeEpisode)

	normalized := NormalizeWeights(0, map[string]float64{}, []*NodeExtended{a}, nil)
	assert.Equal(t, 0.0, normalized[0].Weight)
}
