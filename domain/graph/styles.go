package graph

// Visualization styles understood by the positioning collaborator.
const (
	StyleSphere = "sphere"
	StyleForce  = "force"
	StyleSplit  = "split"
)

// DefaultStyle is used when a caller does not specify one.
const DefaultStyle = StyleSphere

// ValidStyle reports whether the style is one the positioner understands.
func ValidStyle(style string) bool {
	switch style {
	case StyleSphere, StyleForce, StyleSplit:
		return true
	}
	return false
}
