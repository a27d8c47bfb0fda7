package workers

import (
	"chat-circle/domain"
	"chat-circle/search"
	"chat-circle/storage"
	"context"
	"log/slog"
)

// IndexerWorker feeds the search index from the store change feed.
// Only message documents carrying a text are indexed.
type IndexerWorker struct {
	changes <-chan storage.Change
	index   search.IIndex
	log     *slog.Logger
}

func NewIndexerWorker(changes <-chan storage.Change, index search.IIndex, log *slog.Logger) *IndexerWorker {
	return &IndexerWorker{changes: changes, index: index, log: log}
}

func (w *IndexerWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping indexer worker")
			return ctx.Err()
		case change, ok := <-w.changes:
			if !ok {
				w.log.Debug("Change feed is closed")
				return nil
			}
			if err := w.apply(change); err != nil {
				w.log.Warn("Failed to index change", "path", change.Path, "error", err)
			}
		}
	}
}

func (w *IndexerWorker) apply(change storage.Change) error {
	conv, _, ok := domain.ParseMessagePath(change.Path)
	if !ok {
		return nil
	}
	if change.Kind == storage.Deleted {
		return w.index.Remove(change.Path)
	}
	doc := storage.Document{Path: change.Path, Fields: change.Fields}
	text := doc.String("text")
	if text == "" {
		return w.index.Remove(change.Path)
	}
	return w.index.Index(search.Entry{
		Path:         change.Path,
		Conversation: conv.CounterID(),
		SenderID:     doc.String("sender"),
		Text:         text,
	})
}
