// Package positioning assigns 3D coordinates to finished node lists and
// derives the link set. The pipeline consumes it strictly through the
// Positioner port: layouts may change without touching graph semantics.
package positioning

import (
	"math"

	"go.uber.org/zap"

	"mindmesh-backend/domain/config"
	"mindmesh-backend/domain/graph"
	pkgerrors "mindmesh-backend/pkg/errors"
)

// Engine implements ports.Positioner with deterministic per-style
// layouts: identical input always produces identical coordinates.
type Engine struct {
	cfg    config.Source
	logger *zap.Logger
}

// NewEngine creates a positioning engine. The config source is consulted
// on every call so palette reloads affect subsequent layouts.
func NewEngine(cfg config.Source, logger *zap.Logger) *Engine {
	if cfg == nil {
		cfg = config.StaticSource{Config: config.DefaultGraphConfig()}
	}
	return &Engine{cfg: cfg, logger: logger}
}

// Position lays out the nodes for the requested style and generates the
// link set from the positioned nodes, so link anchors snapshot final
// coordinates.
func (e *Engine) Position(style string, nodes []*graph.NodeExtended) (*graph.Data, error) {
	if !graph.ValidStyle(style) {
		return nil, pkgerrors.NewValidationError("unknown graph style: " + style)
	}

	positioned := make([]*graph.NodeExtended, 0, len(nodes))
	for _, node := range nodes {
		clone := *node
		positioned = append(positioned, &clone)
	}

	switch style {
	case graph.StyleSplit:
		e.layoutSplit(positioned)
	case graph.StyleForce:
		e.layoutForce(positioned)
	default:
		e.layoutSphere(positioned)
	}

	links := graph.GenerateLinks(positioned, e.cfg.Current())

	e.logger.Debug("Layout applied",
		zap.String("style", style),
		zap.Int("nodeCount", len(positioned)),
		zap.Int("linkCount", len(links)),
	)

	return &graph.Data{Nodes: positioned, Links: links}, nil
}

// layoutSphere distributes nodes over concentric spherical shells, one
// shell per node type, using a golden-spiral walk inside each shell.
func (e *Engine) layoutSphere(nodes []*graph.NodeExtended) {
	golden := math.Pi * (3 - math.Sqrt(5))

	shellByType := map[string]float64{}
	nextShell := 400.0
	countByType := map[string]int{}
	totalByType := map[string]int{}

	for _, node := range nodes {
		totalByType[node.NodeType]++
		if _, ok := shellByType[node.NodeType]; !ok {
			shellByType[node.NodeType] = nextShell
			nextShell += 300
		}
	}

	for _, node := range nodes {
		i := countByType[node.NodeType]
		n := totalByType[node.NodeType]
		countByType[node.NodeType]++

		radius := shellByType[node.NodeType]
		y := 1.0
		if n > 1 {
			y = 1 - (float64(i)/float64(n-1))*2
		}
		ringRadius := math.Sqrt(1 - y*y)
		theta := golden * float64(i)

		node.X = math.Cos(theta) * ringRadius * radius
		node.Y = y * radius
		node.Z = math.Sin(theta) * ringRadius * radius
	}
}

// layoutSplit arranges nodes in vertical columns, one column per type.
func (e *Engine) layoutSplit(nodes []*graph.NodeExtended) {
	columnByType := map[string]float64{}
	nextColumn := 0.0
	rowByType := map[string]int{}

	for _, node := range nodes {
		if _, ok := columnByType[node.NodeType]; !ok {
			columnByType[node.NodeType] = nextColumn
			nextColumn += 500
		}

		row := rowByType[node.NodeType]
		rowByType[node.NodeType]++

		node.X = columnByType[node.NodeType]
		node.Y = float64(row) * 120
		node.Z = 0
	}
}

// layoutForce seeds nodes on a cube lattice sized to the node count, a
// cheap stand-in for a relaxed force simulation that stays fully
// deterministic.
func (e *Engine) layoutForce(nodes []*graph.NodeExtended) {
	if len(nodes) == 0 {
		return
	}

	side := int(math.Ceil(math.Cbrt(float64(len(nodes)))))
	spacing := 250.0
	offset := float64(side-1) * spacing / 2

	for i, node := range nodes {
		x := i % side
		y := (i / side) % side
		z := i / (side * side)

		node.X = float64(x)*spacing - offset
		node.Y = float64(y)*spacing - offset
		node.Z = float64(z)*spacing - offset
	}
}
