package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"skillswap/internal/biddingerrors"
	"skillswap/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to create a new open Project
func newProject(projectID, clientID string) models.Project {
	return models.Project{
		ID:          projectID,
		ClientID:    clientID,
		Title:       fmt.Sprintf("%s title", projectID),
		Description: fmt.Sprintf("%s description", projectID),
		Budget:      1000,
		Status:      models.ProjectOpen,
		CreatedAt:   time.Now().UTC(),
	}
}

// Helper to create a new pending Bid
func newBid(bidID, projectID, freelancerID string, amount float64) models.Bid {
	now := time.Now().UTC()
	return models.Bid{
		ID:           bidID,
		ProjectID:    projectID,
		FreelancerID: freelancerID,
		Amount:       amount,
		DeliveryTime: 7,
		Proposal:     "proposal",
		Status:       models.BidPending,
		Revision:     1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestMemoryRepo_AddProject(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.AddProject(newProject("p1", "c1")))

	err := repo.AddProject(newProject("p1", "c2"))
	require.ErrorIs(t, err, biddingerrors.ErrDuplicateProject)

	got, err := repo.GetProject("p1")
	require.NoError(t, err)
	require.Equal(t, "c1", got.ClientID)

	_, err = repo.GetProject("pX")
	require.ErrorIs(t, err, biddingerrors.ErrProjectNotFound)
}

func TestMemoryRepo_CompareAndSetProjectStatus(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.AddProject(newProject("p1", "c1")))

	got, err := repo.CompareAndSetProjectStatus("p1", models.ProjectOpen, models.ProjectInProgress)
	require.NoError(t, err)
	require.Equal(t, models.ProjectInProgress, got.Status)

	_, err = repo.CompareAndSetProjectStatus("p1", models.ProjectOpen, models.ProjectInProgress)
	require.ErrorIs(t, err, biddingerrors.ErrProjectNotOpen)

	_, err = repo.CompareAndSetProjectStatus("pX", models.ProjectOpen, models.ProjectInProgress)
	require.ErrorIs(t, err, biddingerrors.ErrProjectNotFound)

	t.Run("only_one_concurrent_winner", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		require.NoError(t, repo.AddProject(newProject("p2", "c1")))

		var wg sync.WaitGroup
		var mu sync.Mutex
		winners := 0
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := repo.CompareAndSetProjectStatus("p2", models.ProjectOpen, models.ProjectInProgress); err == nil {
					mu.Lock()
					winners++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		require.Equal(t, 1, winners)
	})
}

func TestMemoryRepo_CreateBid(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.AddProject(newProject("p1", "c1")))
	require.NoError(t, repo.AddProject(newProject("p2", "c1")))
	require.NoError(t, repo.CreateBid(newBid("seed", "p1", "f-seed", 100)))

	tests := []struct {
		name    string
		bid     models.Bid
		wantErr error
	}{
		{name: "valid_bid", bid: newBid("b1", "p1", "f1", 100)},
		{name: "same_freelancer_other_project", bid: newBid("b2", "p2", "f-seed", 100)},
		{name: "project_not_found", bid: newBid("b3", "pX", "f1", 50), wantErr: biddingerrors.ErrProjectNotFound},
		{name: "empty_projectID", bid: newBid("b4", "", "f1", 50), wantErr: biddingerrors.ErrProjectNotFound},
		{name: "second_bid_same_project", bid: newBid("b5", "p1", "f-seed", 120), wantErr: biddingerrors.ErrDuplicateBid},
		{name: "duplicate_bid_id", bid: newBid("seed", "p2", "f9", 120), wantErr: biddingerrors.ErrDuplicateBid},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := repo.CreateBid(tc.bid)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			got, err := repo.GetBid(tc.bid.ID)
			require.NoError(t, err)
			require.Equal(t, tc.bid, got)
		})
	}

	t.Run("concurrent_bids", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		require.NoError(t, repo.AddProject(newProject("p1", "c1")))

		var wg sync.WaitGroup
		concurrentCount := 50
		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				b := newBid(fmt.Sprintf("bid-%d", i), "p1", fmt.Sprintf("f-%d", i), float64(100+i))
				require.NoError(t, repo.CreateBid(b))
			}()
		}
		wg.Wait()

		bids, err := repo.GetBidsByProject("p1")
		require.NoError(t, err)
		require.Len(t, bids, concurrentCount)
	})
}

func TestMemoryRepo_UpdateBid(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.AddProject(newProject("p1", "c1")))
	original := newBid("b1", "p1", "f1", 100)
	require.NoError(t, repo.CreateBid(original))

	updated := original.Clone()
	updated.Status = models.BidCountered
	updated.CounterOffer = &models.CounterOffer{Amount: 90, Message: "90?"}
	updated.Revision = 2
	updated.FreelancerID = "someone-else"
	require.NoError(t, repo.UpdateBid(updated, 1))

	got, err := repo.GetBid("b1")
	require.NoError(t, err)
	require.Equal(t, models.BidCountered, got.Status)
	require.Equal(t, int64(2), got.Revision)
	require.Equal(t, "f1", got.FreelancerID)

	// callers cannot reach stored state through returned pointers
	got.CounterOffer.Amount = 1
	again, err := repo.GetBid("b1")
	require.NoError(t, err)
	require.Equal(t, 90.0, again.CounterOffer.Amount)

	stale := original.Clone()
	stale.Status = models.BidAccepted
	stale.Revision = 2
	require.ErrorIs(t, repo.UpdateBid(stale, 1), biddingerrors.ErrRevisionConflict)

	missing := newBid("bX", "p1", "f1", 10)
	require.ErrorIs(t, repo.UpdateBid(missing, 1), biddingerrors.ErrBidNotFound)

	_, err = repo.GetBid("bX")
	require.ErrorIs(t, err, biddingerrors.ErrBidNotFound)
}

func TestMemoryRepo_GetBidsByProject(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.AddProject(newProject("p1", "c1")))
	require.NoError(t, repo.AddProject(newProject("p2", "c1")))
	require.NoError(t, repo.AddProject(newProject("p3", "c1")))

	bid1 := newBid("b1", "p1", "f1", 100)
	bid2 := newBid("b2", "p1", "f2", 150)
	require.NoError(t, repo.CreateBid(bid1))
	require.NoError(t, repo.CreateBid(bid2))

	var largeBids []models.Bid
	for i := 0; i < 1000; i++ {
		b := newBid(fmt.Sprintf("bid-large-%d", i), "p3", fmt.Sprintf("f-%d", i), float64(100+i))
		require.NoError(t, repo.CreateBid(b))
		largeBids = append(largeBids, b)
	}

	tests := []struct {
		name     string
		project  string
		wantBids []models.Bid
		wantErr  error
	}{
		{name: "project_with_bids", project: "p1", wantBids: []models.Bid{bid1, bid2}},
		{name: "project_without_bids", project: "p2", wantErr: biddingerrors.ErrNoBids},
		{name: "unknown_project", project: "pX", wantErr: biddingerrors.ErrProjectNotFound},
		{name: "large_number_of_bids", project: "p3", wantBids: largeBids},
		{name: "empty_projectID", project: "", wantErr: biddingerrors.ErrProjectNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bids, err := repo.GetBidsByProject(tc.project)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			// creation order is preserved
			require.Equal(t, tc.wantBids, bids)
		})
	}

	t.Run("concurrent_reads", func(t *testing.T) {
		t.Parallel()

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				bids, err := repo.GetBidsByProject("p1")
				require.NoError(t, err)
				require.ElementsMatch(t, bids, []models.Bid{bid1, bid2})
			}()
		}
		wg.Wait()
	})
}

func TestMemoryRepo_GetBidsByFreelancer(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	for _, id := range []string{"p1", "p2", "p3"} {
		require.NoError(t, repo.AddProject(newProject(id, "c1")))
	}
	bid1 := newBid("b1", "p1", "f1", 100)
	bid2 := newBid("b2", "p2", "f1", 150)
	bid3 := newBid("b3", "p3", "f2", 200)
	for _, b := range []models.Bid{bid1, bid2, bid3} {
		require.NoError(t, repo.CreateBid(b))
	}

	tests := []struct {
		name       string
		freelancer string
		wantBids   []models.Bid
		wantErr    error
	}{
		{name: "freelancer_with_multiple_bids", freelancer: "f1", wantBids: []models.Bid{bid1, bid2}},
		{name: "freelancer_with_single_bid", freelancer: "f2", wantBids: []models.Bid{bid3}},
		{name: "freelancer_without_bids", freelancer: "fX", wantErr: biddingerrors.ErrFreelancerNoBids},
		{name: "empty_freelancerID", freelancer: "", wantErr: biddingerrors.ErrFreelancerNoBids},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bids, err := repo.GetBidsByFreelancer(tc.freelancer)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.ElementsMatch(t, tc.wantBids, bids)
		})
	}
}
