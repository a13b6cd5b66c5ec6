// Package store caches analysis output in SQLite, keyed by content hash.
// Identical text hashes identically, so a hit means the cached report is
// exact, not approximate.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"draftlens/internal/metrics"
	"draftlens/internal/suggest"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS analyses (
    content_hash TEXT PRIMARY KEY,
    word_count INTEGER,
    character_count INTEGER,
    sentence_count INTEGER,
    paragraph_count INTEGER,
    readability_score REAL,
    result_json TEXT
);

CREATE TABLE IF NOT EXISTS suggestions (
    id INTEGER PRIMARY KEY,
    content_hash TEXT,
    suggestion_type TEXT,
    priority TEXT,
    message TEXT,
    start_pos INTEGER,
    end_pos INTEGER
);
`

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// SaveResult upserts one analysis report under its content hash.
func SaveResult(dbPath string, res metrics.Result) error {
	conn, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if _, err := conn.Exec(
		`INSERT OR REPLACE INTO analyses(content_hash, word_count, character_count, sentence_count, paragraph_count, readability_score, result_json)
		 VALUES(?,?,?,?,?,?,?)`,
		res.ContentHash,
		res.WordCount,
		res.CharacterCount,
		res.SentenceCount,
		res.ParagraphCount,
		res.ReadabilityScore,
		string(raw),
	); err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

// LoadResult returns the cached report for a content hash, or nil when
// the hash has not been analyzed yet.
func LoadResult(dbPath, contentHash string) (*metrics.Result, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var raw string
	row := conn.QueryRow(`SELECT result_json FROM analyses WHERE content_hash = ?`, contentHash)
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan analysis: %w", err)
	}

	var res metrics.Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil, fmt.Errorf("unmarshal analysis: %w", err)
	}
	return &res, nil
}

// SaveSuggestions replaces the stored suggestion list for a content hash.
func SaveSuggestions(dbPath, contentHash string, items []suggest.Suggestion) error {
	conn, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM suggestions WHERE content_hash = ?`, contentHash); err != nil {
		return fmt.Errorf("clear suggestions: %w", err)
	}
	for _, s := range items {
		if _, err := tx.Exec(
			`INSERT INTO suggestions(content_hash, suggestion_type, priority, message, start_pos, end_pos) VALUES(?,?,?,?,?,?)`,
			contentHash,
			s.SuggestionType,
			s.Priority,
			s.Message,
			s.StartPos,
			s.EndPos,
		); err != nil {
			return fmt.Errorf("insert suggestion: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// LoadSuggestions returns the stored suggestions for a content hash in
// insertion order.
func LoadSuggestions(dbPath, contentHash string) ([]suggest.Suggestion, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.Query(
		`SELECT suggestion_type, priority, message, start_pos, end_pos FROM suggestions WHERE content_hash = ? ORDER BY id`,
		contentHash,
	)
	if err != nil {
		return nil, fmt.Errorf("query suggestions: %w", err)
	}
	defer rows.Close()

	var out []suggest.Suggestion
	for rows.Next() {
		var s suggest.Suggestion
		if err := rows.Scan(&s.SuggestionType, &s.Priority, &s.Message, &s.StartPos, &s.EndPos); err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate suggestions: %w", err)
	}
	return out, nil
}

// CountRows reports the row count of a store table.
func CountRows(dbPath, table string) (int, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	row := conn.QueryRow(`SELECT COUNT(*) FROM ` + table)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}
