package graph

import (
	"bytes"
	"encoding/json"
)

// Node type names as delivered by the content API. The set is closed;
// anything else is scaled and colored with the defaults.
const (
	NodeTypeGuest      = "guest"
	NodeTypeEpisode    = "episode"
	NodeTypeDocument   = "document"
	NodeTypeShow       = "show"
	NodeTypeTopic      = "topic"
	NodeTypeDataSeries = "data_series"
	NodeTypeTweet      = "tweet"
)

// Vector3 is a 3D coordinate snapshot used for link anchor points.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// GuestRef is one entry of an episode's guest list. The upstream payload is
// heterogeneous: entries are either bare strings or structured records.
// Only structured records with a ref_id participate in guest aggregation
// and link generation.
type GuestRef struct {
	RefID          string `json:"ref_id,omitempty"`
	Name           string `json:"name,omitempty"`
	TwitterHandle  string `json:"twitter_handle,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`

	// Structured reports whether the entry was a JSON object rather
	// than a bare string.
	Structured bool `json:"-"`
}

// UnmarshalJSON accepts both the bare-string and the object form.
func (g *GuestRef) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return err
		}
		*g = GuestRef{Name: name}
		return nil
	}

	type alias GuestRef
	var a alias
	if err := json.Unmarshal(trimmed, &a); err != nil {
		return err
	}
	*g = GuestRef(a)
	g.Structured = true
	return nil
}

// MarshalJSON preserves the original form of the entry.
func (g GuestRef) MarshalJSON() ([]byte, error) {
	if !g.Structured {
		return json.Marshal(g.Name)
	}
	type alias GuestRef
	return json.Marshal(alias(g))
}

// Node is a raw record from one of the three source collections. Fields
// overlap only partially across collections; there is no shared primary key.
type Node struct {
	ID       string `json:"id,omitempty"`
	RefID    string `json:"ref_id,omitempty"`
	NodeType string `json:"node_type"`
	Type     string `json:"type,omitempty"`

	Name      string `json:"name,omitempty"`
	Label     string `json:"label,omitempty"`
	Text      string `json:"text,omitempty"`
	ShowTitle string `json:"show_title,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`

	// Raw importance weight; any non-negative number or absent.
	Weight float64 `json:"weight,omitempty"`

	// Collection-specific identifiers.
	TweetID  string `json:"tweet_id,omitempty"`
	UniqueID string `json:"unique_id,omitempty"`

	// Embedded relationships.
	Topics   []string   `json:"topics,omitempty"`
	Children []string   `json:"children,omitempty"`
	Guests   []GuestRef `json:"guests,omitempty"`
}

// NodeExtended is the canonical graph node: a raw node with a synthesized
// identity, a type-derived scale and placeholder coordinates until the
// positioning collaborator runs.
type NodeExtended struct {
	Node

	Scale  float64  `json:"scale"`
	Colors []string `json:"colors,omitempty"`

	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Position returns the node's current coordinates, defaulting to the origin.
func (n *NodeExtended) Position() Vector3 {
	if n == nil {
		return Vector3{}
	}
	return Vector3{X: n.X, Y: n.Y, Z: n.Z}
}

// Link is a directed relation between two nodes identified by ref_id.
type Link struct {
	Source              string  `json:"source"`
	Target              string  `json:"target"`
	SourceRef           string  `json:"sourceRef"`
	TargetRef           string  `json:"targetRef"`
	SourcePosition      Vector3 `json:"sourcePosition"`
	TargetPosition      Vector3 `json:"targetPosition"`
	Color               string  `json:"color"`
	OnlyVisibleOnSelect bool    `json:"onlyVisibleOnSelect"`
}

// Data is the finished render-ready graph.
type Data struct {
	Nodes []*NodeExtended `json:"nodes"`
	Links []*Link         `json:"links"`
}

// EmptyData returns a well-formed empty graph.
func EmptyData() *Data {
	return &Data{
		Nodes: []*NodeExtended{},
		Links: []*Link{},
	}
}

// SearchResponse is the upstream search payload: three heterogeneous,
// partially-denormalized collections.
type SearchResponse struct {
	Exact      []Node `json:"exact"`
	Related    []Node `json:"related"`
	DataSeries []Node `json:"data_series"`
}
