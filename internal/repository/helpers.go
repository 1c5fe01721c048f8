package repository

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// encodeNotes serializes a note list for a *_json column. Nil encodes as [].
func encodeNotes(notes []string) (string, error) {
	if notes == nil {
		notes = []string{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return "", fmt.Errorf("encoding notes: %w", err)
	}
	return string(data), nil
}

// decodeNotes parses a *_json column back into a note list.
func decodeNotes(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var notes []string
	if err := json.Unmarshal([]byte(s), &notes); err != nil {
		return nil, fmt.Errorf("decoding notes: %w", err)
	}
	return notes, nil
}

// formatTime converts a timestamp for SQLite storage, defaulting to now.
func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(time.RFC3339)
}

// parseTime parses a stored RFC3339 timestamp; malformed values yield zero.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// likePattern builds a case-folded substring pattern for LIKE ... ESCAPE '\'.
func likePattern(filter string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(strings.TrimSpace(filter))) + "%"
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
