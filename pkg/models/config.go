package models

// Config holds display and behavior settings read from .taskdeckrc.
type Config struct {
	// Color toggles styled terminal output.
	Color bool `yaml:"color"`
	// IDPrefixLen is the number of identifier characters shown in listings.
	IDPrefixLen int `yaml:"id_prefix_len"`
	// DoneGlyph and PendingGlyph mark completion state in listings.
	DoneGlyph    string `yaml:"done_glyph"`
	PendingGlyph string `yaml:"pending_glyph"`
	// DefaultSort is the ordering used when the sort prompt is left blank.
	DefaultSort SortType `yaml:"default_sort"`
}
