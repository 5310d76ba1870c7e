package graph

// GuestMapEntry captures one guest's relationships as discovered while
// walking episode nodes.
type GuestMapEntry struct {
	Children      []string
	Name          string
	TwitterHandle string
	ImageURL      string
}

// GuestMap is a transient, insertion-ordered mapping from guest ref_id to
// the episodes that guest appears in. It lives for exactly one pipeline
// invocation. Insertion order matters: synthetic guest nodes are emitted
// in discovery order so identical input yields identical output.
type GuestMap struct {
	entries map[string]*GuestMapEntry
	order   []string
}

// NewGuestMap creates an empty guest map.
func NewGuestMap() *GuestMap {
	return &GuestMap{entries: make(map[string]*GuestMapEntry)}
}

// Accumulate records the episode's guest list. Bare-string entries and
// records lacking a name or ref_id are skipped entirely.
func (m *GuestMap) Accumulate(episodeRefID string, guests []GuestRef) {
	for _, guest := range guests {
		if !guest.Structured || guest.Name == "" || guest.RefID == "" {
			continue
		}

		entry, ok := m.entries[guest.RefID]
		if !ok {
			entry = &GuestMapEntry{}
			m.entries[guest.RefID] = entry
			m.order = append(m.order, guest.RefID)
		}

		entry.Children = append(entry.Children, episodeRefID)
		entry.Name = guest.Name
		entry.TwitterHandle = guest.TwitterHandle
		entry.ImageURL = guest.ProfilePicture
	}
}

// Len returns the number of distinct guests.
func (m *GuestMap) Len() int {
	return len(m.order)
}

// Each visits entries in insertion order.
func (m *GuestMap) Each(fn func(refID string, entry *GuestMapEntry)) {
	for _, refID := range m.order {
		fn(refID, m.entries[refID])
	}
}

// TopicMapEntry holds a topic's child ref_ids and a placeholder position.
type TopicMapEntry struct {
	Children []string
	Position Vector3
}

// TopicMap is a transient, insertion-ordered mapping from topic label to
// child ref_ids. Same lifecycle as GuestMap: built once per pipeline run,
// discarded after synthetic topic nodes are emitted.
type TopicMap struct {
	entries map[string]*TopicMapEntry
	order   []string
}

// NewTopicMap creates an empty topic map.
func NewTopicMap() *TopicMap {
	return &TopicMap{entries: make(map[string]*TopicMapEntry)}
}

// Add appends a child to a topic, creating the entry if new. Duplicate
// children under the same topic are rejected.
func (m *TopicMap) Add(topic, child string) {
	entry, ok := m.entries[topic]
	if !ok {
		m.entries[topic] = &TopicMapEntry{Children: []string{child}}
		m.order = append(m.order, topic)
		return
	}

	for _, existing := range entry.Children {
		if existing == child {
			return
		}
	}
	entry.Children = append(entry.Children, child)
}

// Len returns the number of distinct topics.
func (m *TopicMap) Len() int {
	return len(m.order)
}

// Each visits entries in insertion order.
func (m *TopicMap) Each(fn func(topic string, entry *TopicMapEntry)) {
	for _, topic := range m.order {
		fn(topic, m.entries[topic])
	}
}
