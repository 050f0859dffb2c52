// Package source reads and writes food diary entries as JSON Lines files,
// one model.FoodEntry object per line.
package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/kburn/internal/model"
)

// maxLineSize bounds a single JSONL line.
const maxLineSize = 1024 * 1024

// ParseFile reads a JSONL diary file. Blank lines are skipped and malformed
// lines are counted in ParseErrors rather than failing the whole file.
// Entries sharing an ID are deduplicated, keeping the last one.
func ParseFile(df DiscoveredFile) ParseResult {
	f, err := os.Open(df.Path)
	if err != nil {
		return ParseResult{Err: err}
	}
	defer func() { _ = f.Close() }()

	return parse(f)
}

func parse(r io.Reader) ParseResult {
	var res ParseResult
	byID := make(map[string]int)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		res.Lines++

		var e model.FoodEntry
		if err := json.Unmarshal(line, &e); err != nil {
			res.ParseErrors++
			continue
		}
		if e.Name == "" && e.Date == "" {
			// Valid JSON but not a diary entry
			res.ParseErrors++
			continue
		}
		if e.Source == "" {
			e.Source = model.SourceManual
		}

		if e.ID != "" {
			if idx, ok := byID[e.ID]; ok {
				res.Entries[idx] = e
				continue
			}
			byID[e.ID] = len(res.Entries)
		}
		res.Entries = append(res.Entries, e)
	}

	if err := scanner.Err(); err != nil {
		res.Err = fmt.Errorf("reading jsonl: %w", err)
	}
	return res
}

// WriteEntries writes entries to w as JSON Lines.
func WriteEntries(w io.Writer, entries []model.FoodEntry) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("encoding entry %s: %w", e.ID, err)
		}
	}
	return bw.Flush()
}
