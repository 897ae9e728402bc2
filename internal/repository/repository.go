package repository

import (
	"fmt"
	"sync"

	"skillswap/internal/biddingerrors"
	"skillswap/internal/models"
)

// MarketDB defines the project and bid storage used by the bidding service
type MarketDB interface {
	AddProject(project models.Project) error
	GetProject(projectID string) (models.Project, error)
	CompareAndSetProjectStatus(projectID string, from, to models.ProjectStatus) (models.Project, error)
	CreateBid(bid models.Bid) error
	GetBid(bidID string) (models.Bid, error)
	UpdateBid(bid models.Bid, expectedRevision int64) error
	GetBidsByProject(projectID string) ([]models.Bid, error)
	GetBidsByFreelancer(freelancerID string) ([]models.Bid, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB
type MemoryRepo struct {
	mu             sync.RWMutex
	projects       map[string]models.Project // key: projectID
	bids           map[string]models.Bid     // key: bidID
	projectBids    map[string][]string       // key: projectID -> bidIDs in creation order
	freelancerBids map[string][]string       // key: freelancerID -> bidIDs in creation order
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		projects:       make(map[string]models.Project),
		bids:           make(map[string]models.Bid),
		projectBids:    make(map[string][]string),
		freelancerBids: make(map[string][]string),
	}
}

// AddProject stores a new project
func (r *MemoryRepo) AddProject(project models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[project.ID]; ok {
		return fmt.Errorf("add project %s: %w", project.ID, biddingerrors.ErrDuplicateProject)
	}
	r.projects[project.ID] = project
	return nil
}

// GetProject returns a project by id
func (r *MemoryRepo) GetProject(projectID string) (models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, ok := r.projects[projectID]
	if !ok {
		return models.Project{}, fmt.Errorf("get project %s: %w", projectID, biddingerrors.ErrProjectNotFound)
	}
	return project, nil
}

// CompareAndSetProjectStatus moves a project from one status to another.
// It fails with ErrProjectNotOpen when the current status is not from.
func (r *MemoryRepo) CompareAndSetProjectStatus(projectID string, from, to models.ProjectStatus) (models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[projectID]
	if !ok {
		return models.Project{}, fmt.Errorf("set project %s status: %w", projectID, biddingerrors.ErrProjectNotFound)
	}
	if project.Status != from {
		return project, fmt.Errorf("set project %s status: is %s, expected %s: %w",
			projectID, project.Status, from, biddingerrors.ErrProjectNotOpen)
	}
	project.Status = to
	r.projects[projectID] = project
	return project, nil
}

// CreateBid records a freelancer's bid. A freelancer has at most one bid per project.
func (r *MemoryRepo) CreateBid(bid models.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[bid.ProjectID]; !ok {
		return fmt.Errorf("create bid on project %s: %w", bid.ProjectID, biddingerrors.ErrProjectNotFound)
	}
	if _, ok := r.bids[bid.ID]; ok {
		return fmt.Errorf("create bid %s: %w", bid.ID, biddingerrors.ErrDuplicateBid)
	}
	for _, id := range r.projectBids[bid.ProjectID] {
		if r.bids[id].FreelancerID == bid.FreelancerID {
			return fmt.Errorf("create bid on project %s: %w", bid.ProjectID, biddingerrors.ErrDuplicateBid)
		}
	}

	r.bids[bid.ID] = bid.Clone()
	r.projectBids[bid.ProjectID] = append(r.projectBids[bid.ProjectID], bid.ID)
	r.freelancerBids[bid.FreelancerID] = append(r.freelancerBids[bid.FreelancerID], bid.ID)
	return nil
}

// GetBid returns a bid by id
func (r *MemoryRepo) GetBid(bidID string) (models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return models.Bid{}, fmt.Errorf("get bid %s: %w", bidID, biddingerrors.ErrBidNotFound)
	}
	return bid.Clone(), nil
}

// UpdateBid replaces a stored bid if its revision is still expectedRevision
func (r *MemoryRepo) UpdateBid(bid models.Bid, expectedRevision int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.bids[bid.ID]
	if !ok {
		return fmt.Errorf("update bid %s: %w", bid.ID, biddingerrors.ErrBidNotFound)
	}
	if stored.Revision != expectedRevision {
		return fmt.Errorf("update bid %s at revision %d (stored %d): %w",
			bid.ID, expectedRevision, stored.Revision, biddingerrors.ErrRevisionConflict)
	}
	// identity fields are fixed at creation
	bid.ProjectID = stored.ProjectID
	bid.FreelancerID = stored.FreelancerID
	bid.CreatedAt = stored.CreatedAt

	r.bids[bid.ID] = bid.Clone()
	return nil
}

// GetBidsByProject returns all bids on a project in creation order
func (r *MemoryRepo) GetBidsByProject(projectID string) ([]models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.projects[projectID]; !ok {
		return nil, fmt.Errorf("get bids for project %s: %w", projectID, biddingerrors.ErrProjectNotFound)
	}
	ids := r.projectBids[projectID]
	if len(ids) == 0 {
		return nil, fmt.Errorf("get bids for project %s: %w", projectID, biddingerrors.ErrNoBids)
	}
	return r.collect(ids), nil
}

// GetBidsByFreelancer returns all bids placed by a freelancer
func (r *MemoryRepo) GetBidsByFreelancer(freelancerID string) ([]models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.freelancerBids[freelancerID]
	if len(ids) == 0 {
		return nil, fmt.Errorf("get bids for freelancer %s: %w", freelancerID, biddingerrors.ErrFreelancerNoBids)
	}
	return r.collect(ids), nil
}

// collect must be called with r.mu held
func (r *MemoryRepo) collect(ids []string) []models.Bid {
	bids := make([]models.Bid, 0, len(ids))
	for _, id := range ids {
		bids = append(bids, r.bids[id].Clone())
	}
	return bids
}
