package source

import "github.com/theirongolddev/kburn/internal/model"

// DiscoveredFile is a JSONL diary file found on disk.
type DiscoveredFile struct {
	Path string
	Name string // base name, used in progress and error output
}

// ParseResult holds the output of parsing a single JSONL file.
type ParseResult struct {
	Entries     []model.FoodEntry
	Lines       int
	ParseErrors int
	Err         error
}
