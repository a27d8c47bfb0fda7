//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=../mocks/mock_search_index.go -package=mocks
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blugelabs/bluge"
)

const (
	fieldID           = "_id"
	fieldText         = "text"
	fieldConversation = "conversation"
	fieldSender       = "sender"

	DefaultLimit = 20
)

// Entry is one indexed message, identified by its document path.
type Entry struct {
	Path         string
	Conversation string
	SenderID     string
	Text         string
}

// Hit is a search result.
type Hit struct {
	Path  string
	Score float64
}

type IIndex interface {
	Index(entry Entry) error
	Remove(path string) error
	Search(ctx context.Context, conversation, text string, limit int) ([]Hit, error)
	Close() error
}

// Index is a full-text index of message texts.
type Index struct {
	writer *bluge.Writer
	log    *slog.Logger
}

// Open opens an on-disk index, or an in-memory one when dir is empty.
func Open(dir string, log *slog.Logger) (*Index, error) {
	cfg := bluge.InMemoryOnlyConfig()
	if dir != "" {
		cfg = bluge.DefaultConfig(dir)
	}
	writer, err := bluge.OpenWriter(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	return &Index{writer: writer, log: log}, nil
}

// Index adds or replaces the entry.
func (i *Index) Index(entry Entry) error {
	doc := bluge.NewDocument(entry.Path).
		AddField(bluge.NewTextField(fieldText, entry.Text)).
		AddField(bluge.NewKeywordField(fieldConversation, entry.Conversation)).
		AddField(bluge.NewKeywordField(fieldSender, entry.SenderID).StoreValue())
	return i.writer.Update(doc.ID(), doc)
}

func (i *Index) Remove(path string) error {
	return i.writer.Delete(bluge.Identifier(path))
}

// Search matches text within one conversation, best hits first.
func (i *Index) Search(ctx context.Context, conversation, text string, limit int) ([]Hit, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(text).SetField(fieldText)).
		AddMust(bluge.NewTermQuery(conversation).SetField(fieldConversation))
	matches, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var hits []Hit
	match, err := matches.Next()
	for err == nil && match != nil {
		hit := Hit{Score: match.Score}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == fieldID {
				hit.Path = string(value)
			}
			return true
		})
		if err != nil {
			break
		}
		hits = append(hits, hit)
		match, err = matches.Next()
	}
	if err != nil {
		return nil, err
	}
	return hits, nil
}

func (i *Index) Close() error {
	return i.writer.Close()
}
