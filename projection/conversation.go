package projection

import (
	"chat-circle/domain"
	"chat-circle/errors"
	"chat-circle/repositories"
	"context"
	"log/slog"
)

// ReceiptFunc applies the pending receipts of viewer in conv.
type ReceiptFunc func(ctx context.Context, conv domain.Conversation, viewer string) (int, error)

// Conversation is the live message list of one conversation.
// Each snapshot that still holds messages pending for the viewer triggers
// the receipt callback before it is published; the resulting write produces
// the next snapshot. The view ends once the callback refuses the viewer.
type Conversation struct {
	*view
	conv    domain.Conversation
	viewer  string
	receipt ReceiptFunc
	states  chan []domain.Message
	log     *slog.Logger
}

func NewConversation(ctx context.Context, conv domain.Conversation, viewer string, messages repositories.IMessageRepository, limit int, receipt ReceiptFunc, log *slog.Logger) (*Conversation, error) {
	v, ctx := newView(ctx)
	sub, err := messages.Watch(ctx, conv, limit)
	if err != nil {
		v.abort()
		return nil, err
	}
	c := &Conversation{
		view:    v,
		conv:    conv,
		viewer:  viewer,
		receipt: receipt,
		states:  make(chan []domain.Message, 1),
		log:     log,
	}
	go c.run(ctx, sub.Snapshots(), sub.Close)
	return c, nil
}

func (c *Conversation) States() <-chan []domain.Message { return c.states }

func (c *Conversation) run(ctx context.Context, snapshots <-chan []domain.Message, stop func()) {
	defer close(c.done)
	defer stop()

	for {
		select {
		case messages, ok := <-snapshots:
			if !ok {
				return
			}
			if len(domain.PendingReceipts(c.conv.Kind, messages, c.viewer)) > 0 && c.receipt != nil {
				if _, err := c.receipt(ctx, c.conv, c.viewer); err != nil && ctx.Err() == nil {
					if revoked(err) {
						c.log.Info("Viewer lost access, closing conversation", "conversation", c.conv.String(), "viewer", c.viewer)
						return
					}
					c.log.Warn("Failed to apply read receipts", "conversation", c.conv.String(), "viewer", c.viewer, "error", err)
				}
			}
			offer(c.states, messages)
		case <-ctx.Done():
			return
		}
	}
}

// revoked reports a receipt refused because the viewer no longer takes part.
func revoked(err error) bool {
	return errors.Is(err, errors.ErrNotMember) || errors.Is(err, errors.ErrNotAllowed) || errors.Is(err, errors.ErrDocumentNotFound)
}
