package graph

import (
	"strings"

	"mindmesh-backend/domain/config"
)

// placeholderImages maps series-family node types to their fixed artwork.
var placeholderImages = map[string]string{
	NodeTypeDataSeries: "node_data.webp",
	NodeTypeDocument:   "document.jpeg",
	NodeTypeTweet:      "twitter_placeholder.png",
}

// NodeScale returns the fixed display scale for a node type.
func NodeScale(nodeType string) float64 {
	switch nodeType {
	case NodeTypeGuest, NodeTypeEpisode, NodeTypeDocument:
		return 2
	case NodeTypeShow:
		return 3
	default:
		return 1.5
	}
}

// BuildResult is the outcome of one pass over the raw source collections.
type BuildResult struct {
	// Nodes is the deduplicated primary node list in insertion order.
	Nodes []*NodeExtended

	// TopWeight is the highest raw weight seen, used later as the
	// normalization divisor for explicit weights.
	TopWeight float64

	// Guests aggregates episode→guest relationships discovered while
	// iterating. Consumed by guest node synthesis, then discarded.
	Guests *GuestMap
}

// BuildNodeList merges the three raw source collections into one canonical
// node list. Collections are concatenated in order exact, related, series
// and walked once:
//
//   - series-family records (data_series, document, tweet) are appended
//     unconditionally under a synthesized identity;
//   - every other record is rejected if its ref_id was already seen, the
//     first occurrence winning;
//   - episode records feed the guest map as a side product.
//
// Output order is insertion order; sorting by weight is the orchestrator's
// job, not this function's.
func BuildNodeList(exact, related, series []Node, cfg *config.GraphConfig) *BuildResult {
	if cfg == nil {
		cfg = config.DefaultGraphConfig()
	}

	data := make([]Node, 0, len(exact)+len(related)+len(series))
	data = append(data, exact...)
	data = append(data, related...)
	data = append(data, series...)

	result := &BuildResult{
		Nodes:  make([]*NodeExtended, 0, len(data)),
		Guests: NewGuestMap(),
	}

	seen := make(map[string]bool, len(data))

	for i, node := range data {
		if node.Weight > result.TopWeight {
			result.TopWeight = node.Weight
		}

		key := ResolveIdentity(node, i)
		if key == "" {
			// no usable identity, skip the record
			continue
		}

		if IsSeriesType(node.NodeType) {
			extended := &NodeExtended{Node: node, Scale: NodeScale(node.NodeType)}
			extended.ID = key
			extended.RefID = key
			extended.ImageURL = placeholderImages[node.NodeType]
			if extended.Type == "" {
				extended.Type = node.NodeType
			}

			result.Nodes = append(result.Nodes, extended)
			seen[key] = true
			continue
		}

		// reject duplicate nodes
		if seen[node.RefID] {
			continue
		}

		extended := &NodeExtended{Node: node, Scale: NodeScale(node.NodeType)}
		extended.ID = key
		extended.ImageURL = rewriteImageURL(node.ImageURL, cfg)
		if extended.Type == "" {
			extended.Type = node.NodeType
		}

		result.Nodes = append(result.Nodes, extended)
		seen[node.RefID] = true

		if node.NodeType == NodeTypeEpisode && node.RefID != "" {
			result.Guests.Accumulate(node.RefID, node.Guests)
		}
	}

	return result
}

// rewriteImageURL maps a bucket-origin URL to its CDN equivalent and
// appends the small-size suffix. Only the .jpg extension is rewritten;
// other formats have no sized variants.
func rewriteImageURL(url string, cfg *config.GraphConfig) string {
	if url == "" {
		return ""
	}
	url = strings.Replace(url, cfg.BucketImageURL, cfg.CDNImageURL, 1)
	return strings.Replace(url, ".jpg", "_s.jpg", 1)
}
