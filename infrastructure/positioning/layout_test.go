package positioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mindmesh-backend/domain/config"
	"mindmesh-backend/domain/graph"
)

// swappableSource lets a test replace the active configuration between
// engine calls, the way the palette watcher does at runtime.
type swappableSource struct {
	cfg *config.GraphConfig
}

func (s *swappableSource) Current() *config.GraphConfig {
	return s.cfg
}

func layoutNodes() []*graph.NodeExtended {
	return []*graph.NodeExtended{
		{Node: graph.Node{RefID: "ep-1", NodeType: graph.NodeTypeEpisode, Children: []string{"show-1"}}},
		{Node: graph.Node{RefID: "ep-2", NodeType: graph.NodeTypeEpisode}},
		{Node: graph.Node{RefID: "show-1", NodeType: graph.NodeTypeShow}},
	}
}

func TestPosition_UnknownStyleRejected(t *testing.T) {
	engine := NewEngine(nil, zap.NewNop())

	_, err := engine.Position("spiral", layoutNodes())
	assert.Error(t, err)
}

func TestPosition_DoesNotMutateInput(t *testing.T) {
	engine := NewEngine(nil, zap.NewNop())
	nodes := layoutNodes()

	_, err := engine.Position(graph.StyleSphere, nodes)

	require.NoError(t, err)
	for _, node := range nodes {
		assert.Equal(t, graph.Vector3{}, node.Position())
	}
}

func TestPosition_DeterministicPerStyle(t *testing.T) {
	engine := NewEngine(nil, zap.NewNop())

	for _, style := range []string{graph.StyleSphere, graph.StyleSplit, graph.StyleForce} {
		t.Run(style, func(t *testing.T) {
			first, err := engine.Position(style, layoutNodes())
			require.NoError(t, err)
			second, err := engine.Position(style, layoutNodes())
			require.NoError(t, err)

			require.Len(t, second.Nodes, len(first.Nodes))
			for i := range first.Nodes {
				assert.Equal(t, first.Nodes[i].Position(), second.Nodes[i].Position())
			}
		})
	}
}

func TestPosition_LinksAnchoredToPositionedNodes(t *testing.T) {
	engine := NewEngine(nil, zap.NewNop())

	data, err := engine.Position(graph.StyleSplit, layoutNodes())

	require.NoError(t, err)
	require.Len(t, data.Links, 1)

	var source, target *graph.NodeExtended
	for _, node := range data.Nodes {
		switch node.RefID {
		case "ep-1":
			source = node
		case "show-1":
			target = node
		}
	}
	require.NotNil(t, source)
	require.NotNil(t, target)

	assert.Equal(t, source.Position(), data.Links[0].SourcePosition)
	assert.Equal(t, target.Position(), data.Links[0].TargetPosition)
}

func TestPosition_ReadsConfigSourcePerCall(t *testing.T) {
	source := &swappableSource{cfg: config.DefaultGraphConfig()}
	engine := NewEngine(source, zap.NewNop())

	before, err := engine.Position(graph.StyleSphere, layoutNodes())
	require.NoError(t, err)
	require.Len(t, before.Links, 1)

	reloaded := config.DefaultGraphConfig()
	reloaded.Palette.ChildrenSegment = "#123456"
	source.cfg = reloaded

	after, err := engine.Position(graph.StyleSphere, layoutNodes())
	require.NoError(t, err)
	require.Len(t, after.Links, 1)

	assert.NotEqual(t, "#123456", before.Links[0].Color)
	assert.Equal(t, "#123456", after.Links[0].Color)
}

func TestPosition_SplitSeparatesTypesIntoColumns(t *testing.T) {
	engine := NewEngine(nil, zap.NewNop())

	data, err := engine.Position(graph.StyleSplit, layoutNodes())
	require.NoError(t, err)

	columns := map[string]map[float64]bool{}
	for _, node := range data.Nodes {
		if columns[node.NodeType] == nil {
			columns[node.NodeType] = map[float64]bool{}
		}
		columns[node.NodeType][node.X] = true
	}

	// One column per type, and the two types use different columns.
	assert.Len(t, columns[graph.NodeTypeEpisode], 1)
	assert.Len(t, columns[graph.NodeTypeShow], 1)
	for x := range columns[graph.NodeTypeEpisode] {
		assert.False(t, columns[graph.NodeTypeShow][x])
	}
}
