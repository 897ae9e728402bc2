package integrationtests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"skillswap/internal/auth"
	bidding "skillswap/internal/biddingService"
	"skillswap/internal/bidstore"
	"skillswap/internal/gateway"
	"skillswap/internal/models"
	"skillswap/internal/realtime"
	"skillswap/internal/repository"
	"skillswap/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const waitFor = 2 * time.Second

var (
	clientActor     = models.Actor{UserID: "client1", Role: models.RoleClient}
	otherClient     = models.Actor{UserID: "client2", Role: models.RoleClient}
	freelancerActor = models.Actor{UserID: "freelancer1", Role: models.RoleFreelancer}
	rivalFreelancer = models.Actor{UserID: "freelancer2", Role: models.RoleFreelancer}
	validProposal   = strings.Repeat("I will deliver this on time. ", 3)
)

// harness runs the bid service over HTTP with every real-time participant
// sharing one transport
type harness struct {
	t      *testing.T
	server *httptest.Server
	tokens *auth.TokenIssuer
	dial   realtime.Dialer
	calls  atomic.Int64
}

// SetupHarness starts the service with open projects p1 and p2 owned by client1
func SetupHarness(t *testing.T, dial realtime.Dialer) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	now := time.Now().UTC()
	for _, id := range []string{"p1", "p2"} {
		require.NoError(t, repo.AddProject(models.Project{
			ID: id, ClientID: clientActor.UserID, Title: "Project " + id,
			Description: "integration", Budget: 1000, Status: models.ProjectOpen, CreatedAt: now,
		}))
	}

	tokens, err := auth.NewTokenIssuer("integration-secret", time.Hour)
	require.NoError(t, err)

	events := realtime.NewChannel(dial)
	t.Cleanup(func() { _ = events.Close() })

	service := bidding.NewBiddingService(repo, events)
	router := server.SetupRouter(service, tokens)

	h := &harness{t: t, tokens: tokens, dial: dial}
	h.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.calls.Add(1)
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(h.server.Close)
	return h
}

// Client returns a gateway client authenticated as actor
func (h *harness) Client(actor models.Actor) *gateway.Client {
	h.t.Helper()
	token, err := h.tokens.Issue(actor)
	require.NoError(h.t, err)

	client, err := gateway.NewClient(h.server.URL, gateway.StaticToken(token), gateway.WithTimeout(waitFor))
	require.NoError(h.t, err)
	return client
}

// countingLister counts full-list fetches made by a store
type countingLister struct {
	next  bidstore.BidLister
	loads atomic.Int64
}

func (l *countingLister) ListProjectBids(ctx context.Context, projectID string) ([]models.Bid, error) {
	l.loads.Add(1)
	return l.next.ListProjectBids(ctx, projectID)
}

// view is one independent screen: its own channel, store and lister
type view struct {
	store  *bidstore.Store
	lister *countingLister
}

// OpenView loads projectID as actor, joins the project room and attaches the store
func (h *harness) OpenView(actor models.Actor, projectID string) *view {
	h.t.Helper()
	ctx := context.Background()

	channel := realtime.NewChannel(h.dial)
	h.t.Cleanup(func() { _ = channel.Close() })

	lister := &countingLister{next: h.Client(actor)}
	store := bidstore.New(lister)
	h.t.Cleanup(store.Attach(channel))

	require.NoError(h.t, channel.JoinProjectRoom(ctx, projectID))
	require.NoError(h.t, store.Load(ctx, projectID))
	return &view{store: store, lister: lister}
}

// WaitForStatus blocks until the view holds bidID in status
func (v *view) WaitForStatus(t *testing.T, bidID string, status models.BidStatus) models.Bid {
	t.Helper()
	require.Eventually(t, func() bool {
		b, ok := v.store.Get(bidID)
		return ok && b.Status == status
	}, waitFor, 10*time.Millisecond, "bid %s never reached %s", bidID, status)
	got, _ := v.store.Get(bidID)
	return got
}
