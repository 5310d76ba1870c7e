package graph

import "fmt"

// seriesTypes are the collection types that bypass deduplication: every
// record is appended with a synthesized identity.
var seriesTypes = map[string]bool{
	NodeTypeDataSeries: true,
	NodeTypeDocument:   true,
	NodeTypeTweet:      true,
}

// IsSeriesType reports whether the node type belongs to the
// append-unconditionally family (time-series points, documents, tweets).
func IsSeriesType(nodeType string) bool {
	return seriesTypes[nodeType]
}

// ResolveIdentity returns the single canonical key for a raw node. The
// index is the node's position in the concatenated source list and keeps
// synthesized series identities unique within one build.
//
// Series-family nodes carry no ref_id: identity is the tweet id when
// present, otherwise the unique id suffixed with the index. All other
// nodes fall back through ref_id, tweet_id and id in that order.
// An empty result means the record has no usable identity and must be
// skipped, never aborted on.
func ResolveIdentity(n Node, index int) string {
	if IsSeriesType(n.NodeType) {
		if n.TweetID != "" {
			return n.TweetID
		}
		if n.UniqueID == "" {
			return ""
		}
		return fmt.Sprintf("%s_%d", n.UniqueID, index)
	}

	switch {
	case n.RefID != "":
		return n.RefID
	case n.TweetID != "":
		return n.TweetID
	default:
		return n.ID
	}
}
