package graph

import (
	"fmt"

	"mindmesh-backend/domain/config"
)

// relationshipScale derives a synthetic node's scale from its fan-out,
// capped so hub nodes do not dwarf the rest of the graph.
func relationshipScale(childCount int, cfg *config.GraphConfig) float64 {
	scale := float64(childCount) * 2
	if scale > cfg.MaxScale {
		return cfg.MaxScale
	}
	return scale
}

// SynthesizeGuestNodes emits one guest node per guest map entry, in
// discovery order. Guests do not exist in the raw source data; they are
// derived from the relationships embedded in episode nodes.
func SynthesizeGuestNodes(guests *GuestMap, cfg *config.GraphConfig) []*NodeExtended {
	if cfg == nil {
		cfg = config.DefaultGraphConfig()
	}

	nodes := make([]*NodeExtended, 0, guests.Len())
	index := 0

	guests.Each(func(refID string, entry *GuestMapEntry) {
		id := refID
		if id == "" {
			id = fmt.Sprintf("guestnode_%d", index)
		}

		nodes = append(nodes, &NodeExtended{
			Node: Node{
				ID:        id,
				RefID:     id,
				NodeType:  NodeTypeGuest,
				Type:      NodeTypeGuest,
				Name:      entry.Name,
				Label:     entry.Name,
				ShowTitle: entry.Name,
				Text:      entry.TwitterHandle,
				ImageURL:  entry.ImageURL,
				Children:  entry.Children,
			},
			Scale:  relationshipScale(len(entry.Children), cfg),
			Colors: []string{cfg.Palette.PlaceholderNode},
		})
		index++
	})

	return nodes
}

// ExtractTopicMap walks the raw source records and collects topic→child
// relationships. The search term itself is excluded: mapping it would
// produce a degenerate star graph with everything linked to the query.
// Records without a show title contribute nothing.
func ExtractTopicMap(data []Node, searchTerm string) *TopicMap {
	topics := NewTopicMap()

	for _, node := range data {
		if len(node.Topics) == 0 || node.ShowTitle == "" {
			continue
		}

		child := node.RefID
		if child == "" {
			child = node.ShowTitle
		}

		for _, topic := range node.Topics {
			if topic == searchTerm {
				continue
			}
			topics.Add(topic, child)
		}
	}

	return topics
}

// SynthesizeTopicNodes emits one topic node per topic map entry, in
// insertion order with stable index-derived identifiers.
func SynthesizeTopicNodes(topics *TopicMap, cfg *config.GraphConfig) []*NodeExtended {
	if cfg == nil {
		cfg = config.DefaultGraphConfig()
	}

	nodes := make([]*NodeExtended, 0, topics.Len())
	index := 0

	topics.Each(func(topic string, entry *TopicMapEntry) {
		id := fmt.Sprintf("topic_node_%d", index)

		nodes = append(nodes, &NodeExtended{
			Node: Node{
				ID:        id,
				RefID:     id,
				NodeType:  NodeTypeTopic,
				Type:      NodeTypeTopic,
				Name:      topic,
				Label:     topic,
				ShowTitle: topic,
				Text:      topic,
				Children:  entry.Children,
			},
			Scale:  relationshipScale(len(entry.Children), cfg),
			Colors: []string{cfg.Palette.PlaceholderNode},
			X:      entry.Position.X,
			Y:      entry.Position.Y,
			Z:      entry.Position.Z,
		})
		index++
	})

	return nodes
}
