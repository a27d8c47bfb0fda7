package projection

import (
	"chat-circle/domain"
	"chat-circle/repositories"
	"context"
	"log/slog"

	"github.com/samber/lo"
)

type GroupEntry struct {
	Group  domain.Group
	Member bool
	Unread int
}

// GroupList is the live list of every group, with unread counts for the
// groups the viewer belongs to.
type GroupList struct {
	*view
	viewer   string
	counters *liveCounters
	states   chan []GroupEntry
}

func NewGroupList(ctx context.Context, viewer string, groups repositories.IGroupRepository, unread repositories.IUnreadRepository, log *slog.Logger) (*GroupList, error) {
	v, ctx := newView(ctx)
	sub, err := groups.Watch(ctx)
	if err != nil {
		v.abort()
		return nil, err
	}
	l := &GroupList{
		view:     v,
		viewer:   viewer,
		counters: newLiveCounters(ctx, viewer, unread, log),
		states:   make(chan []GroupEntry, 1),
	}
	go l.run(ctx, sub.Snapshots(), sub.Close)
	return l, nil
}

func (l *GroupList) States() <-chan []GroupEntry { return l.states }

func (l *GroupList) run(ctx context.Context, snapshots <-chan []domain.Group, stop func()) {
	defer close(l.done)
	defer stop()
	defer l.counters.close()

	var (
		groups []domain.Group
		ready  bool
	)
	for {
		select {
		case gs, ok := <-snapshots:
			if !ok {
				return
			}
			groups, ready = gs, true
			joined := lo.Filter(groups, func(g domain.Group, _ int) bool { return g.IsMember(l.viewer) })
			l.counters.sync(lo.Map(joined, func(g domain.Group, _ int) domain.Conversation {
				return domain.GroupConversation(g.ID)
			}))
			offer(l.states, l.entries(groups))
		case u := <-l.counters.updates:
			if l.counters.apply(u) && ready {
				offer(l.states, l.entries(groups))
			}
		case <-ctx.Done():
			return
		}
	}
}

func (l *GroupList) entries(groups []domain.Group) []GroupEntry {
	return lo.Map(groups, func(g domain.Group, _ int) GroupEntry {
		entry := GroupEntry{Group: g, Member: g.IsMember(l.viewer)}
		if entry.Member {
			entry.Unread, _ = l.counters.count(domain.GroupConversation(g.ID))
		}
		return entry
	})
}
