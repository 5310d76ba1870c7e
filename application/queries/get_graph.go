package queries

import (
	"mindmesh-backend/domain/graph"
	pkgerrors "mindmesh-backend/pkg/errors"
)

// GetGraphQuery requests a fully built graph for a search term. An empty
// term builds the graph from the latest published content.
type GetGraphQuery struct {
	Term  string `json:"term"`
	Style string `json:"style,omitempty"`
}

// Validate validates the query
func (q GetGraphQuery) Validate() error {
	if q.Style != "" && !graph.ValidStyle(q.Style) {
		return pkgerrors.NewValidationError("unknown graph style: " + q.Style)
	}
	return nil
}

// GetGraphResult wraps the finished graph.
type GetGraphResult struct {
	Nodes []*graph.NodeExtended `json:"nodes"`
	Links []*graph.Link         `json:"links"`
}
