package config

// GraphConfig holds all configurable business rules for graph construction
type GraphConfig struct {
	// Scale constraints
	MaxScale float64 `yaml:"max_scale"`

	// Image rewriting
	BucketImageURL string `yaml:"bucket_image_url"`
	CDNImageURL    string `yaml:"cdn_image_url"`

	// Visualization palette
	Palette Palette `yaml:"palette"`

	// Feature flags
	IncludeTopics bool `yaml:"include_topics"`

	// Link visibility defaults per relationship kind
	ChildLinksOnlyVisibleOnSelect bool `yaml:"child_links_only_visible_on_select"`
	GuestLinksOnlyVisibleOnSelect bool `yaml:"guest_links_only_visible_on_select"`
}

// Palette holds the relationship highlight colors used when generating
// link segments and synthetic nodes.
type Palette struct {
	TopicSegment    string `yaml:"topic_segment"`
	GuestSegment    string `yaml:"guest_segment"`
	ChildrenSegment string `yaml:"children_segment"`
	PlaceholderNode string `yaml:"placeholder_node"`
}

// DefaultGraphConfig returns the default graph construction configuration
func DefaultGraphConfig() *GraphConfig {
	return &GraphConfig{
		MaxScale: 26,

		BucketImageURL: "https://stakwork-uploads.s3.amazonaws.com",
		CDNImageURL:    "https://d28fgvpx8cmisv.cloudfront.net",

		Palette: Palette{
			TopicSegment:    "#5078f2",
			GuestSegment:    "#e02c74",
			ChildrenSegment: "#4dff91",
			PlaceholderNode: "#000",
		},

		IncludeTopics: true,

		ChildLinksOnlyVisibleOnSelect: false,
		GuestLinksOnlyVisibleOnSelect: true,
	}
}

// Validate checks if the configuration is valid
func (c *GraphConfig) Validate() error {
	return nil
}

// Source yields the configuration in effect for a new pipeline run.
// Implementations may swap the underlying config at runtime; callers
// take one snapshot per run and never hold it across runs.
type Source interface {
	Current() *GraphConfig
}

// StaticSource serves a fixed configuration.
type StaticSource struct {
	Config *GraphConfig
}

// Current returns the wrapped configuration.
func (s StaticSource) Current() *GraphConfig {
	return s.Config
}
