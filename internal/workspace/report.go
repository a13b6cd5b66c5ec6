package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Report is the JSON document the CLI writes for one analyzed file.
type Report struct {
	Title       string `json:"title"`
	SourcePath  string `json:"source_path"`
	ContentHash string `json:"content_hash"`
	Analysis    any    `json:"analysis,omitempty"`
	Suggestions any    `json:"suggestions,omitempty"`
	Segments    any    `json:"segments,omitempty"`
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// WriteReport stores the report under reports/, named by title and a
// content-hash prefix so re-analysis of changed text never clobbers an
// older report.
func WriteReport(base string, report Report) (string, error) {
	name := sanitizeTitle(report.Title) + "-" + hashPrefix(report.ContentHash) + ".json"
	path := filepath.Join(base, "reports", name)

	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func sanitizeTitle(title string) string {
	title = strings.TrimSpace(title)
	title = unsafeNameChars.ReplaceAllString(title, "_")
	title = strings.Trim(title, "._-")
	if title == "" {
		return "untitled"
	}
	return title
}

func hashPrefix(contentHash string) string {
	cleaned := unsafeNameChars.ReplaceAllString(contentHash, "")
	if len(cleaned) > 12 {
		cleaned = cleaned[:12]
	}
	if cleaned == "" {
		return "nohash"
	}
	return cleaned
}
