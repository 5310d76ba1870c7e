package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindmesh-backend/domain/config"
)

func testNode(refID, nodeType string, children ...string) *NodeExtended {
	return &NodeExtended{
		Node: Node{RefID: refID, NodeType: nodeType, Children: children},
	}
}

func TestGenerateLinks_DanglingRefsSkippedSilently(t *testing.T) {
	nodes := []*NodeExtended{
		testNode("ep-1", NodeTypeEpisode, "show-1", "missing", "show-1"),
		testNode("show-1", NodeTypeShow),
	}

	links := GenerateLinks(nodes, nil)

	// The dangling "missing" ref produces nothing; duplicate child refs
	// both emit since links are never deduplicated.
	require.Len(t, links, 2)
	for _, link := range links {
		assert.Equal(t, "ep-1", link.SourceRef)
		assert.Equal(t, "show-1", link.TargetRef)
	}
}

func TestGenerateLinks_ColorPrecedence(t *testing.T) {
	cfg := config.DefaultGraphConfig()

	nodes := []*NodeExtended{
		testNode("topic-1", NodeTypeTopic, "g-1"),
		testNode("g-1", NodeTypeGuest, "ep-1"),
		testNode("ep-1", NodeTypeEpisode, "show-1"),
		testNode("show-1", NodeTypeShow),
	}

	links := GenerateLinks(nodes, cfg)

	require.Len(t, links, 3)
	assert.Equal(t, cfg.Palette.TopicSegment, links[0].Color)
	assert.Equal(t, cfg.Palette.GuestSegment, links[1].Color)
	assert.Equal(t, cfg.Palette.ChildrenSegment, links[2].Color)
}

func TestGenerateLinks_GuestRelationships(t *testing.T) {
	cfg := config.DefaultGraphConfig()

	episode := testNode("ep-1", NodeTypeEpisode)
	episode.Guests = []GuestRef{
		{RefID: "g-1", Name: "Ada", Structured: true},
		{Name: "bare entry"},          // skipped: not structured
		{RefID: "absent", Name: "X", Structured: true}, // skipped: dangling
	}

	nodes := []*NodeExtended{
		episode,
		testNode("g-1", NodeTypeGuest),
	}

	links := GenerateLinks(nodes, cfg)

	require.Len(t, links, 1)
	assert.Equal(t, "ep-1", links[0].SourceRef)
	assert.Equal(t, "g-1", links[0].TargetRef)
	assert.Equal(t, cfg.Palette.GuestSegment, links[0].Color)
	assert.True(t, links[0].OnlyVisibleOnSelect)
}

func TestGenerateLinks_AnchorsSnapshotPositions(t *testing.T) {
	parent := testNode("a", NodeTypeEpisode, "b")
	parent.X, parent.Y, parent.Z = 1, 2, 3
	child := testNode("b", NodeTypeShow)
	child.X, child.Y, child.Z = 4, 5, 6

	links := GenerateLinks([]*NodeExtended{parent, child}, nil)

	require.Len(t, links, 1)
	assert.Equal(t, Vector3{X: 1, Y: 2, Z: 3}, links[0].SourcePosition)
	assert.Equal(t, Vector3{X: 4, Y: 5, Z: 6}, links[0].TargetPosition)
}

func TestGenerateLinks_NodesWithoutRefIDEmitNothing(t *testing.T) {
	nodes := []*NodeExtended{
		testNode("", NodeTypeEpisode, "a"),
		testNode("a", NodeTypeShow),
	}

	links := GenerateLinks(nodes, nil)
	assert.Empty(t, links)
}

func TestSegmentColor(t *testing.T) {
	palette := config.DefaultGraphConfig().Palette

	assert.Equal(t, palette.TopicSegment, SegmentColor(NodeTypeTopic, NodeTypeGuest, palette))
	assert.Equal(t, palette.TopicSegment, SegmentColor(NodeTypeEpisode, NodeTypeTopic, palette))
	assert.Equal(t, palette.GuestSegment, SegmentColor(NodeTypeGuest, NodeTypeEpisode, palette))
	assert.Equal(t, palette.ChildrenSegment, SegmentColor(NodeTypeEpisode, NodeTypeShow, palette))
}
