package graph

import "mindmesh-backend/domain/config"

// SegmentColor selects a link color from the endpoint types. Topic
// endpoints win over guest endpoints; everything else is a plain
// child relationship.
func SegmentColor(aType, bType string, palette config.Palette) string {
	if aType == NodeTypeTopic || bType == NodeTypeTopic {
		return palette.TopicSegment
	}
	if aType == NodeTypeGuest || bType == NodeTypeGuest {
		return palette.GuestSegment
	}
	return palette.ChildrenSegment
}

// GenerateLinks walks the finished node set and emits one link per
// resolvable child or guest relationship. Unresolved targets are dropped
// silently: a dangling ref_id never produces a link and never raises.
// Links are not deduplicated; a child relationship and an independently
// discovered guest relationship between the same two nodes both emit.
func GenerateLinks(nodes []*NodeExtended, cfg *config.GraphConfig) []*Link {
	if cfg == nil {
		cfg = config.DefaultGraphConfig()
	}

	byRef := make(map[string]*NodeExtended, len(nodes))
	for _, node := range nodes {
		if _, exists := byRef[node.RefID]; !exists {
			byRef[node.RefID] = node
		}
	}

	links := []*Link{}

	for _, node := range nodes {
		if node.RefID == "" {
			continue
		}

		for _, childRef := range node.Children {
			child, ok := byRef[childRef]
			if !ok {
				continue
			}

			links = append(links, &Link{
				Source:              node.RefID,
				SourceRef:           node.RefID,
				SourcePosition:      node.Position(),
				Target:              childRef,
				TargetRef:           childRef,
				TargetPosition:      child.Position(),
				Color:               SegmentColor(node.NodeType, child.NodeType, cfg.Palette),
				OnlyVisibleOnSelect: cfg.ChildLinksOnlyVisibleOnSelect,
			})
		}

		for _, guest := range node.Guests {
			if !guest.Structured || guest.RefID == "" {
				continue
			}

			guestNode, ok := byRef[guest.RefID]
			if !ok {
				continue
			}

			links = append(links, &Link{
				Source:              node.RefID,
				SourceRef:           node.RefID,
				SourcePosition:      node.Position(),
				Target:              guest.RefID,
				TargetRef:           guest.RefID,
				TargetPosition:      guestNode.Position(),
				Color:               SegmentColor(node.NodeType, NodeTypeGuest, cfg.Palette),
				OnlyVisibleOnSelect: cfg.GuestLinksOnlyVisibleOnSelect,
			})
		}
	}

	return links
}
