// Package bidstore keeps the client-side view of one project's bids. It is
// fed by a full load through the gateway and then kept current by channel
// events and REST responses.
package bidstore

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"skillswap/internal/biddingerrors"
	"skillswap/internal/models"
	"skillswap/internal/negotiation"
	"skillswap/internal/realtime"
	"skillswap/utils"
)

// BidLister fetches the full bid list of a project
type BidLister interface {
	ListProjectBids(ctx context.Context, projectID string) ([]models.Bid, error)
}

// Subscriber is the part of realtime.Channel the store listens on
type Subscriber interface {
	Subscribe(kind realtime.Kind, h realtime.Handler) realtime.SubscriptionID
	Unsubscribe(kind realtime.Kind, id realtime.SubscriptionID)
}

// SortField names the bid field a view is ordered by
type SortField string

const (
	SortByCreatedAt    SortField = "createdAt"
	SortByUpdatedAt    SortField = "updatedAt"
	SortByAmount       SortField = "amount"
	SortByDeliveryTime SortField = "deliveryTime"
	SortByProposal     SortField = "proposal"
	SortByStatus       SortField = "status"
	SortByFreelancer   SortField = "freelancerId"
)

// SortOrder is ascending or descending
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// AllStatuses disables status filtering in FilterAndSort
const AllStatuses models.BidStatus = ""

var bidEvents = []realtime.Kind{
	realtime.KindNewBid,
	realtime.KindBidStatusUpdated,
	realtime.KindCounterOfferReceived,
	realtime.KindCounterOfferAccepted,
}

// Store holds the bids of one project in load order
type Store struct {
	lister BidLister

	mu        sync.RWMutex
	projectID string
	bids      []models.Bid
	index     map[string]int

	// seq counts local writes; touched holds the seq of each bid's last write
	seq     uint64
	touched map[string]uint64
}

// New creates an empty store
func New(lister BidLister) *Store {
	return &Store{
		lister:  lister,
		index:   make(map[string]int),
		touched: make(map[string]uint64),
	}
}

// Load fetches every bid of projectID and replaces the store's contents.
// Writes that land while the request is in flight survive: a stored bid with
// a newer revision than the fetched copy is kept, as is a bid the response
// does not include yet. On failure the previous contents are kept; use
// biddingerrors.UserMessage to turn the error into notification text.
func (s *Store) Load(ctx context.Context, projectID string) error {
	if projectID == "" {
		return fmt.Errorf("bidstore: %w - empty project ID", biddingerrors.ErrValidation)
	}

	s.mu.RLock()
	started := s.seq
	s.mu.RUnlock()

	bids, err := s.lister.ListProjectBids(ctx, projectID)
	if err != nil {
		utils.Warn("bidstore: load failed", map[string]any{
			"project_id": projectID,
			"error":      err.Error(),
		})
		return fmt.Errorf("bidstore: load bids for project %s: %w", projectID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Bid, 0, len(bids))
	index := make(map[string]int, len(bids))
	kept := 0
	for _, b := range bids {
		if _, dup := index[b.ID]; dup {
			continue
		}
		if current, ok := s.fresherThan(b, projectID); ok {
			b = current
			kept++
		}
		index[b.ID] = len(next)
		next = append(next, b.Clone())
	}

	// bids written during the fetch that the response missed
	for _, b := range s.bids {
		if _, listed := index[b.ID]; listed || b.ProjectID != projectID || s.touched[b.ID] <= started {
			continue
		}
		index[b.ID] = len(next)
		next = append(next, b.Clone())
		kept++
	}

	s.projectID = projectID
	s.bids = next
	s.index = index
	for id := range s.touched {
		if _, ok := index[id]; !ok {
			delete(s.touched, id)
		}
	}

	utils.Debug("bidstore: loaded", map[string]any{"project_id": projectID, "count": len(next), "kept_local": kept})
	return nil
}

// fresherThan returns the stored copy of fetched when it carries a newer
// revision. Callers hold s.mu.
func (s *Store) fresherThan(fetched models.Bid, projectID string) (models.Bid, bool) {
	i, ok := s.index[fetched.ID]
	if !ok {
		return models.Bid{}, false
	}
	current := s.bids[i]
	if current.ProjectID != projectID || current.Revision == 0 || fetched.Revision == 0 {
		return models.Bid{}, false
	}
	if current.Revision > fetched.Revision {
		return current, true
	}
	return models.Bid{}, false
}

// ProjectID returns the project last loaded, or "" before the first load
func (s *Store) ProjectID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projectID
}

// ApplyRemoteEvent merges a channel event and reports whether the store
// changed. Unknown bids are only inserted by new_bid; other kinds ignore
// them since the bid may not be loaded yet.
func (s *Store) ApplyRemoteEvent(ev realtime.Event) bool {
	switch e := ev.(type) {
	case realtime.NewBid:
		return s.merge(e.Bid, true)
	case realtime.BidStatusUpdated:
		return s.merge(e.Bid, false)
	case realtime.CounterOfferReceived:
		return s.merge(e.Bid, false)
	case realtime.CounterOfferAccepted:
		return s.merge(e.Bid, false)
	case realtime.MessageReceived, realtime.MessageRead:
		return false
	default:
		return false
	}
}

// Upsert reconciles a bid returned by a REST call
func (s *Store) Upsert(bid models.Bid) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.owns(bid) {
		return false
	}
	if i, ok := s.index[bid.ID]; ok {
		return s.replace(i, bid)
	}
	s.insert(bid)
	return true
}

func (s *Store) merge(bid models.Bid, isNew bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.owns(bid) {
		return false
	}

	i, known := s.index[bid.ID]
	switch {
	case !known && isNew:
		s.insert(bid)
		return true
	case !known:
		return false
	case isNew:
		// repeated new_bid: only the timestamp may move
		if bid.UpdatedAt.After(s.bids[i].UpdatedAt) {
			s.bids[i].UpdatedAt = bid.UpdatedAt
			s.touch(bid.ID)
			return true
		}
		return false
	default:
		return s.replace(i, bid)
	}
}

// owns reports whether bid belongs to the loaded project. Before the first
// load every project is accepted.
func (s *Store) owns(bid models.Bid) bool {
	return bid.ID != "" && (s.projectID == "" || bid.ProjectID == s.projectID)
}

func (s *Store) insert(bid models.Bid) {
	s.index[bid.ID] = len(s.bids)
	s.bids = append(s.bids, bid.Clone())
	s.touch(bid.ID)
}

func (s *Store) touch(id string) {
	s.seq++
	s.touched[id] = s.seq
}

// replace overwrites the bid at i unless the incoming revision is not newer.
// Revision 0 means the sender does not track revisions; the last write wins.
func (s *Store) replace(i int, bid models.Bid) bool {
	current := s.bids[i]
	if bid.Revision != 0 && bid.Revision <= current.Revision {
		utils.Debug("bidstore: discarding stale bid", map[string]any{
			"bid_id":   bid.ID,
			"revision": bid.Revision,
			"current":  current.Revision,
		})
		return false
	}
	s.bids[i] = bid.Clone()
	s.touch(bid.ID)
	return true
}

// Get returns the bid with id
func (s *Store) Get(id string) (models.Bid, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return models.Bid{}, false
	}
	return s.bids[i].Clone(), true
}

// Bids returns a copy of the canonical list in load order
func (s *Store) Bids() []models.Bid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Bid, len(s.bids))
	for i, b := range s.bids {
		out[i] = b.Clone()
	}
	return out
}

// Len returns the number of bids held
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bids)
}

// FilterAndSort returns a derived view. The canonical list is not touched.
// The sort is stable, so bids with equal keys stay in load order in both
// directions. Unknown fields leave the view in load order.
func (s *Store) FilterAndSort(status models.BidStatus, field SortField, order SortOrder) []models.Bid {
	s.mu.RLock()
	view := make([]models.Bid, 0, len(s.bids))
	for _, b := range s.bids {
		if status == AllStatuses || b.Status == status {
			view = append(view, b.Clone())
		}
	}
	s.mu.RUnlock()

	compare := comparator(field)
	if compare == nil {
		return view
	}
	if order == Descending {
		asc := compare
		compare = func(a, b models.Bid) int { return asc(b, a) }
	}
	slices.SortStableFunc(view, compare)
	return view
}

func comparator(field SortField) func(a, b models.Bid) int {
	switch field {
	case SortByCreatedAt:
		return func(a, b models.Bid) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case SortByUpdatedAt:
		return func(a, b models.Bid) int { return a.UpdatedAt.Compare(b.UpdatedAt) }
	case SortByAmount:
		return func(a, b models.Bid) int { return cmp.Compare(a.Amount, b.Amount) }
	case SortByDeliveryTime:
		return func(a, b models.Bid) int { return cmp.Compare(a.DeliveryTime, b.DeliveryTime) }
	case SortByProposal:
		return func(a, b models.Bid) int { return cmp.Compare(a.Proposal, b.Proposal) }
	case SortByStatus:
		return func(a, b models.Bid) int { return cmp.Compare(a.Status, b.Status) }
	case SortByFreelancer:
		return func(a, b models.Bid) int { return cmp.Compare(a.FreelancerID, b.FreelancerID) }
	default:
		return nil
	}
}

// Check reports whether action is legal for the stored bid without changing
// anything. The service remains the authority.
func (s *Store) Check(bidID string, action negotiation.Action) error {
	bid, ok := s.Get(bidID)
	if !ok {
		return fmt.Errorf("bidstore: %w: %s", biddingerrors.ErrBidNotFound, bidID)
	}
	_, err := negotiation.Target(bid.Status, action)
	return err
}

// Attach subscribes the store to the four bid events on sub. The returned
// func removes the subscriptions; call it when the view goes away.
func (s *Store) Attach(sub Subscriber) (detach func()) {
	ids := make(map[realtime.Kind]realtime.SubscriptionID, len(bidEvents))
	for _, kind := range bidEvents {
		ids[kind] = sub.Subscribe(kind, func(ev realtime.Event) {
			s.ApplyRemoteEvent(ev)
		})
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for kind, id := range ids {
				sub.Unsubscribe(kind, id)
			}
		})
	}
}
