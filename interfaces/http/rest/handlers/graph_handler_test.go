package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mindmesh-backend/application/queries"
	querybus "mindmesh-backend/application/queries/bus"
	"mindmesh-backend/domain/graph"
	pkgerrors "mindmesh-backend/pkg/errors"
)

func newGraphBus(t *testing.T, handler querybus.QueryHandlerFunc) *querybus.QueryBus {
	t.Helper()
	bus := querybus.NewQueryBus()
	require.NoError(t, bus.Register(queries.GetGraphQuery{}, handler))
	return bus
}

func TestGetGraph_ForwardsSearchAndStyle(t *testing.T) {
	var got queries.GetGraphQuery
	bus := newGraphBus(t, func(ctx context.Context, q querybus.Query) (interface{}, error) {
		got = q.(queries.GetGraphQuery)
		return &queries.GetGraphResult{
			Nodes: []*graph.NodeExtended{{Node: graph.Node{RefID: "ep-1"}}},
			Links: []*graph.Link{},
		}, nil
	})

	handler := NewGraphHandler(bus, pkgerrors.NewErrorHandler(zap.NewNop(), false), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph?search=bitcoin&style=split", nil)
	rec := httptest.NewRecorder()
	handler.GetGraph(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bitcoin", got.Term)
	assert.Equal(t, "split", got.Style)

	var body struct {
		Nodes []json.RawMessage `json:"nodes"`
		Links []json.RawMessage `json:"links"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Nodes, 1)
	assert.NotNil(t, body.Links)
}

func TestGetGraph_InvalidStyleIsBadRequest(t *testing.T) {
	bus := newGraphBus(t, func(ctx context.Context, q querybus.Query) (interface{}, error) {
		t.Fatal("handler must not run for invalid queries")
		return nil, nil
	})

	handler := NewGraphHandler(bus, pkgerrors.NewErrorHandler(zap.NewNop(), false), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/graph?style=spiral", nil)
	rec := httptest.NewRecorder()
	handler.GetGraph(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
