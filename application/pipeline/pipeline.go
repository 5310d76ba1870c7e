// Package pipeline orchestrates graph construction: one gated fetch, one
// pass of deduplication and synthesis, positioning, and weight
// normalization. All intermediate state is owned by a single invocation.
package pipeline

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mindmesh-backend/application/ports"
	"mindmesh-backend/domain/config"
	"mindmesh-backend/domain/graph"
	"mindmesh-backend/pkg/observability"
)

// Pipeline sequences the graph construction stages and degrades to an
// empty graph on any unrecoverable failure: the caller always receives a
// well-formed result, never an error.
type Pipeline struct {
	api        ports.ContentAPI
	positioner ports.Positioner
	cfg        config.Source
	metrics    *observability.Collector
	logger     *zap.Logger
}

// New creates a pipeline. The config source is read once per run, so
// hot-reloaded palettes apply to the next request without a restart.
func New(
	api ports.ContentAPI,
	positioner ports.Positioner,
	cfg config.Source,
	metrics *observability.Collector,
	logger *zap.Logger,
) *Pipeline {
	if cfg == nil {
		cfg = config.StaticSource{Config: config.DefaultGraphConfig()}
	}
	return &Pipeline{
		api:        api,
		positioner: positioner,
		cfg:        cfg,
		metrics:    metrics,
		logger:     logger,
	}
}

// FetchGraphData runs the full pipeline for a search term and style.
// The style is explicit configuration: the pipeline never reads shared
// application state.
func (p *Pipeline) FetchGraphData(ctx context.Context, term, style string) *graph.Data {
	runID := uuid.New().String()
	start := time.Now()

	if p.metrics != nil {
		p.metrics.GraphBuilds.Inc()
	}

	data, err := p.buildGraph(ctx, term, style)
	if err != nil {
		if p.metrics != nil {
			p.metrics.GraphBuildFailures.Inc()
		}
		p.logger.Error("Graph build failed, returning empty graph",
			zap.String("runID", runID),
			zap.String("term", term),
			zap.String("style", style),
			zap.Error(err),
		)
		return graph.EmptyData()
	}

	if p.metrics != nil {
		p.metrics.GraphBuildDuration.Observe(time.Since(start).Seconds())
		p.metrics.GraphNodes.Observe(float64(len(data.Nodes)))
	}

	p.logger.Debug("Graph build finished",
		zap.String("runID", runID),
		zap.String("term", term),
		zap.Int("nodeCount", len(data.Nodes)),
		zap.Int("linkCount", len(data.Links)),
		zap.Duration("duration", time.Since(start)),
	)

	return data
}

// buildGraph threads one owned node list through each stage. The config
// snapshot is taken once so a concurrent palette reload cannot mix two
// configurations within a single run.
func (p *Pipeline) buildGraph(ctx context.Context, term, style string) (*graph.Data, error) {
	cfg := p.cfg.Current()

	payload, err := p.api.SearchNodes(ctx, term)
	if err != nil {
		return nil, err
	}

	// Primary nodes, running top weight and the guest map in one pass.
	build := graph.BuildNodeList(payload.Exact, payload.Related, payload.DataSeries, cfg)
	nodes := build.Nodes

	nodes = append(nodes, graph.SynthesizeGuestNodes(build.Guests, cfg)...)

	// Topic extraction runs over the raw records, not the deduplicated
	// list, so duplicate-carried topics still count once per child.
	raw := make([]graph.Node, 0, len(payload.Exact)+len(payload.Related)+len(payload.DataSeries))
	raw = append(raw, payload.Exact...)
	raw = append(raw, payload.Related...)
	raw = append(raw, payload.DataSeries...)

	topics := graph.ExtractTopicMap(raw, term)
	if cfg.IncludeTopics {
		nodes = append(nodes, graph.SynthesizeTopicNodes(topics, cfg)...)
	}

	positioned, err := p.positioner.Position(style, nodes)
	if err != nil {
		return nil, err
	}

	nodes = positioned.Nodes
	links := positioned.Links

	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Weight > nodes[j].Weight
	})

	perTypeMax := graph.MaxSuperficialWeightPerType(nodes, links)
	nodes = graph.NormalizeWeights(build.TopWeight, perTypeMax, nodes, links)

	return &graph.Data{Nodes: nodes, Links: links}, nil
}
