package dto

// SkippedItem is a feed entry that was not imported, with the reason.
type SkippedItem struct {
	Link   string `json:"link" example:"https://example.com/posts/1"`
	Title  string `json:"title,omitempty" example:"Release notes"`
	Reason string `json:"reason" example:"duplicate"`
}

// ImportResult lists what a feed import created and what it skipped.
type ImportResult struct {
	Imported []BlogDTO     `json:"imported"`
	Skipped  []SkippedItem `json:"skipped"`
}
