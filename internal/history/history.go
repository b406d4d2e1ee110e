// File path: internal/history/history.go
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lexdraft/lexdraft/internal/common"
)

// Entry is a user history row.
type Entry struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	Action    string    `db:"action"`
	Details   string    `db:"details"`
	CreatedAt time.Time `db:"created_at"`
}

// Document is a persisted generated document.
type Document struct {
	ID         int64     `db:"id"`
	UserID     string    `db:"user_id"`
	DocType    string    `db:"doc_type"`
	Language   string    `db:"language"`
	Title      string    `db:"title"`
	Content    string    `db:"content"`
	SourceData string    `db:"source_data"`
	CreatedAt  time.Time `db:"created_at"`
}

// RecordAction appends a history entry. It never returns an error: history is
// best-effort and must not block document generation. A nil store or empty
// user id is a quiet no-op.
func (s *Store) RecordAction(ctx context.Context, userID, action, details string) {
	if s == nil || s.db == nil || strings.TrimSpace(userID) == "" {
		return
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_history (user_id, action, details) VALUES (?, ?, ?)`,
		userID, action, details)
	if err != nil {
		common.Logger().Warn("history: record action failed",
			"user", userID, "action", action, "error", err)
	}
}

// SaveDocument stores a generated document together with the data map it was
// rendered from and returns the new row id. A nil store or empty user id
// returns 0 without error.
func (s *Store) SaveDocument(ctx context.Context, userID, docType, language, title, content string, sourceData map[string]string) (int64, error) {
	if s == nil || s.db == nil || strings.TrimSpace(userID) == "" {
		return 0, nil
	}
	encoded, err := json.Marshal(sourceData)
	if err != nil {
		return 0, fmt.Errorf("encode source data: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO generated_documents (user_id, doc_type, language, title, content, source_data)
                 VALUES (?, ?, ?, ?, ?, ?)`,
		userID, docType, language, title, content, string(encoded))
	if err != nil {
		return 0, fmt.Errorf("insert generated document: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("generated document id: %w", err)
	}
	return id, nil
}

// History returns the most recent entries for a user, newest first.
func (s *Store) History(ctx context.Context, userID string, limit int) ([]Entry, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}
	entries := []Entry{}
	err := s.db.SelectContext(ctx, &entries,
		`SELECT * FROM user_history WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}
	return entries, nil
}

// DocumentByID fetches a saved document scoped to its owner.
func (s *Store) DocumentByID(ctx context.Context, id int64, userID string) (*Document, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var doc Document
	err := s.db.GetContext(ctx, &doc,
		`SELECT * FROM generated_documents WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Documents lists a user's saved documents, newest first.
func (s *Store) Documents(ctx context.Context, userID string) ([]Document, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	docs := []Document{}
	err := s.db.SelectContext(ctx, &docs,
		`SELECT * FROM generated_documents WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("select documents: %w", err)
	}
	return docs, nil
}
