package projection

import (
	"chat-circle/domain"
	"chat-circle/repositories"
	"context"
	"log/slog"
	"slices"

	"github.com/samber/lo"
)

// PeerEntry is one line of the user directory.
// Live tells whether the unread counter is followed, which only happens
// for peers inside the viewport. Unread keeps zero until the first count arrives.
type PeerEntry struct {
	User      domain.User
	ChannelID domain.ChannelID
	Unread    int
	Live      bool
}

type DirectoryState struct {
	Self  domain.User
	Peers []PeerEntry
}

// Directory is the live list of peers of a viewer.
type Directory struct {
	*view
	viewer   string
	counters *liveCounters
	viewport chan []string
	states   chan DirectoryState
	log      *slog.Logger
}

// NewDirectory starts the directory of viewer. Every visible peer is
// followed until SetViewport narrows the set.
func NewDirectory(ctx context.Context, viewer string, users repositories.IUserRepository, unread repositories.IUnreadRepository, log *slog.Logger) (*Directory, error) {
	v, ctx := newView(ctx)
	everyone, err := users.Watch(ctx)
	if err != nil {
		v.abort()
		return nil, err
	}
	self, err := users.WatchUser(ctx, viewer)
	if err != nil {
		everyone.Close()
		v.abort()
		return nil, err
	}
	d := &Directory{
		view:     v,
		viewer:   viewer,
		counters: newLiveCounters(ctx, viewer, unread, log),
		viewport: make(chan []string, 1),
		states:   make(chan DirectoryState, 1),
		log:      log,
	}
	go d.run(ctx, everyone.Snapshots(), self.Snapshots(), func() {
		everyone.Close()
		self.Close()
	})
	return d, nil
}

// SetViewport restricts the live counters to the given peers. Nil follows
// every visible peer.
func (d *Directory) SetViewport(peers []string) {
	if peers != nil {
		peers = slices.Clone(peers)
	}
	select {
	case <-d.done:
	default:
		offer(d.viewport, peers)
	}
}

// States yields the latest directory state; intermediate ones may be skipped.
func (d *Directory) States() <-chan DirectoryState { return d.states }

func (d *Directory) run(ctx context.Context, everyone <-chan []domain.User, selfSnapshots <-chan domain.User, stop func()) {
	defer close(d.done)
	defer stop()
	defer d.counters.close()

	var (
		all      []domain.User
		self     domain.User
		haveAll  bool
		haveSelf bool
		viewport []string
	)
	refresh := func() {
		if !haveAll || !haveSelf {
			return
		}
		visible := domain.VisiblePeers(all, self)
		d.counters.sync(d.followed(visible, viewport))
		offer(d.states, d.state(self, visible))
	}

	for {
		select {
		case users, ok := <-everyone:
			if !ok {
				return
			}
			all, haveAll = users, true
			refresh()
		case user, ok := <-selfSnapshots:
			if !ok {
				return
			}
			self, haveSelf = user, true
			refresh()
		case peers := <-d.viewport:
			viewport = peers
			refresh()
		case u := <-d.counters.updates:
			if d.counters.apply(u) && haveAll && haveSelf {
				offer(d.states, d.state(self, domain.VisiblePeers(all, self)))
			}
		case <-ctx.Done():
			return
		}
	}
}

func (d *Directory) followed(visible []domain.User, viewport []string) []domain.Conversation {
	if viewport != nil {
		visible = lo.Filter(visible, func(u domain.User, _ int) bool {
			return lo.Contains(viewport, u.ID)
		})
	}
	return lo.Map(visible, func(u domain.User, _ int) domain.Conversation {
		return domain.DirectConversation(d.viewer, u.ID)
	})
}

func (d *Directory) state(self domain.User, visible []domain.User) DirectoryState {
	live := lo.Keyify(d.counters.keys())
	peers := lo.Map(visible, func(u domain.User, _ int) PeerEntry {
		conv := domain.DirectConversation(d.viewer, u.ID)
		unread, _ := d.counters.count(conv)
		_, followed := live[conv.CounterID()]
		return PeerEntry{User: u, ChannelID: domain.ChannelID(conv.ID), Unread: unread, Live: followed}
	})
	return DirectoryState{Self: self, Peers: peers}
}
