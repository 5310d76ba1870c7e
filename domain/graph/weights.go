package graph

// SuperficialWeight derives a fallback importance score from a node's
// relationship fan-out: the number of generated links incident to its
// ref_id, on either end. Deterministic and monotonic in link count.
func SuperficialWeight(node *NodeExtended, links []*Link) float64 {
	if node == nil || node.RefID == "" {
		return 0
	}

	count := 0
	for _, link := range links {
		if link.SourceRef == node.RefID || link.TargetRef == node.RefID {
			count++
		}
	}
	return float64(count)
}

// MaxSuperficialWeightPerType scans all nodes once and returns, per node
// type, the maximum superficial score among nodes lacking an explicit
// weight. Types with no qualifying nodes are absent from the mapping so
// downstream normalization never divides by a phantom zero.
func MaxSuperficialWeightPerType(nodes []*NodeExtended, links []*Link) map[string]float64 {
	maxima := make(map[string]float64)

	for _, node := range nodes {
		if node.Weight != 0 {
			continue
		}

		score := SuperficialWeight(node, links)
		if current, ok := maxima[node.NodeType]; !ok || score > current {
			maxima[node.NodeType] = score
		}
	}

	return maxima
}

// NormalizeWeights returns a new node list with every weight mapped onto
// the comparable 0..1 scale: explicit weights divide by the global top
// weight, weightless nodes divide their superficial score by their type's
// maximum. Input nodes are not mutated.
func NormalizeWeights(topWeight float64, perTypeMax map[string]float64, nodes []*NodeExtended, links []*Link) []*NodeExtended {
	normalized := make([]*NodeExtended, 0, len(nodes))

	for _, node := range nodes {
		clone := *node

		weight := 0.0
		if topWeight > 0 {
			weight = node.Weight / topWeight
		}

		if node.Weight == 0 {
			if typeMax := perTypeMax[node.NodeType]; typeMax > 0 {
				weight = SuperficialWeight(node, links) / typeMax
			}
		}

		clone.Weight = clamp01(weight)
		normalized = append(normalized, &clone)
	}

	return normalized
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
