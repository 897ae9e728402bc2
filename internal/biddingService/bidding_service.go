package bidding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"skillswap/internal/biddingerrors"
	"skillswap/internal/models"
	"skillswap/internal/negotiation"
	"skillswap/internal/realtime"
	"skillswap/internal/repository"
	"skillswap/internal/validation"
	"skillswap/utils"
)

// Broadcaster fans bid events out to everyone watching a project
type Broadcaster interface {
	PublishProjectEvent(ctx context.Context, projectID string, ev realtime.Event) error
}

// BiddingService defines the business logic for bid negotiation
type BiddingService struct {
	repo   repository.MarketDB
	events Broadcaster
	now    func() time.Time
}

// NewBiddingService creates a new BiddingService instance. events may be nil,
// in which case nothing is broadcast.
func NewBiddingService(repo repository.MarketDB, events Broadcaster) *BiddingService {
	return &BiddingService{
		repo:   repo,
		events: events,
		now:    time.Now,
	}
}

// CreateProject posts a new open project owned by actor
func (s *BiddingService) CreateProject(actor models.Actor, in models.ProjectInput) (models.Project, error) {
	if actor.Role != models.RoleClient && actor.Role != models.RoleAdmin {
		return models.Project{}, fmt.Errorf("service: %w - only clients post projects", biddingerrors.ErrNotPermitted)
	}
	if err := validation.Struct(in); err != nil {
		return models.Project{}, fmt.Errorf("service: %w", err)
	}

	project := models.Project{
		ID:          utils.NewProjectID(),
		ClientID:    actor.UserID,
		Title:       in.Title,
		Description: in.Description,
		Budget:      in.Budget,
		Status:      models.ProjectOpen,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.AddProject(project); err != nil {
		return models.Project{}, fmt.Errorf("service: failed to add project: %w", err)
	}
	return project, nil
}

// GetProject returns a single project
func (s *BiddingService) GetProject(projectID string) (models.Project, error) {
	if err := requireID("project", projectID); err != nil {
		return models.Project{}, err
	}
	project, err := s.repo.GetProject(projectID)
	if err != nil {
		return models.Project{}, fmt.Errorf("service: failed to get project %s: %w", projectID, err)
	}
	return project, nil
}

// PlaceBid validates and records a freelancer's bid on an open project
func (s *BiddingService) PlaceBid(ctx context.Context, actor models.Actor, projectID string, in models.BidInput) (models.Bid, error) {
	if err := requireID("project", projectID); err != nil {
		return models.Bid{}, err
	}
	if actor.Role != models.RoleFreelancer || actor.UserID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - only freelancers place bids", biddingerrors.ErrNotPermitted)
	}
	if err := validation.Struct(in); err != nil {
		return models.Bid{}, fmt.Errorf("service: %w", err)
	}

	project, err := s.repo.GetProject(projectID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get project %s: %w", projectID, err)
	}
	if project.Status != models.ProjectOpen {
		return models.Bid{}, fmt.Errorf("service: %w - project %s is %s", biddingerrors.ErrProjectNotOpen, projectID, project.Status)
	}
	if project.ClientID == actor.UserID {
		return models.Bid{}, fmt.Errorf("service: %w - cannot bid on own project", biddingerrors.ErrNotPermitted)
	}

	now := s.now().UTC()
	bid := models.Bid{
		ID:           utils.NewBidID(),
		ProjectID:    projectID,
		FreelancerID: actor.UserID,
		Amount:       in.Amount,
		DeliveryTime: in.DeliveryTime,
		Proposal:     in.Proposal,
		Status:       models.BidPending,
		Revision:     1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.CreateBid(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on project %s by %s: %w", projectID, actor.UserID, err)
	}

	s.broadcast(ctx, projectID, realtime.NewBid{Bid: bid})
	return bid, nil
}

// GetBidsForProject returns all bids on a project
func (s *BiddingService) GetBidsForProject(projectID string) ([]models.Bid, error) {
	if err := requireID("project", projectID); err != nil {
		return nil, err
	}
	bids, err := s.repo.GetBidsByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for project %s: %w", projectID, err)
	}
	return bids, nil
}

// GetBidsForFreelancer returns all bids a freelancer has placed
func (s *BiddingService) GetBidsForFreelancer(freelancerID string) ([]models.Bid, error) {
	if err := requireID("freelancer", freelancerID); err != nil {
		return nil, err
	}
	bids, err := s.repo.GetBidsByFreelancer(freelancerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for freelancer %s: %w", freelancerID, err)
	}
	return bids, nil
}

// UpdateBidStatus accepts or rejects a pending bid on the actor's project
func (s *BiddingService) UpdateBidStatus(ctx context.Context, actor models.Actor, bidID string, status models.BidStatus) (models.Bid, error) {
	action, err := negotiation.ActionForStatus(status)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: %w", err)
	}
	return s.transition(ctx, actor, bidID, action, nil)
}

// CounterOffer proposes new terms on a pending bid
func (s *BiddingService) CounterOffer(ctx context.Context, actor models.Actor, bidID string, in models.CounterOfferInput) (models.Bid, error) {
	if err := validation.Struct(in); err != nil {
		return models.Bid{}, fmt.Errorf("service: %w", err)
	}
	return s.transition(ctx, actor, bidID, negotiation.Counter, &models.CounterOffer{Amount: in.Amount, Message: in.Message})
}

// AcceptCounterOffer lets the bidding freelancer take the client's counter-offer
func (s *BiddingService) AcceptCounterOffer(ctx context.Context, actor models.Actor, bidID string) (models.Bid, error) {
	return s.transition(ctx, actor, bidID, negotiation.AcceptCounter, nil)
}

// transition applies action to the stored bid. An accepted outcome claims the
// project first so at most one bid per project is ever accepted.
func (s *BiddingService) transition(ctx context.Context, actor models.Actor, bidID string, action negotiation.Action, offer *models.CounterOffer) (models.Bid, error) {
	if err := requireID("bid", bidID); err != nil {
		return models.Bid{}, err
	}

	bid, err := s.repo.GetBid(bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}
	project, err := s.repo.GetProject(bid.ProjectID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get project %s: %w", bid.ProjectID, err)
	}

	next, err := negotiation.Apply(bid, project, actor, action, offer, s.now().UTC())
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: %w", err)
	}

	claimed := next.Status == models.BidAccepted
	if claimed {
		if _, err := s.repo.CompareAndSetProjectStatus(project.ID, models.ProjectOpen, models.ProjectInProgress); err != nil {
			return models.Bid{}, fmt.Errorf("service: %w: %w", biddingerrors.ErrInvalidTransition, err)
		}
	}

	if err := s.repo.UpdateBid(next, bid.Revision); err != nil {
		if claimed {
			s.releaseProject(project.ID)
		}
		return models.Bid{}, fmt.Errorf("service: failed to update bid %s: %w", bidID, err)
	}

	utils.Info("bid transitioned", map[string]any{
		"bid_id":     next.ID,
		"project_id": next.ProjectID,
		"action":     string(action),
		"from":       string(bid.Status),
		"to":         string(next.Status),
		"revision":   next.Revision,
		"actor":      actor.UserID,
	})
	s.broadcast(ctx, project.ID, eventFor(action, next))
	return next, nil
}

func (s *BiddingService) releaseProject(projectID string) {
	_, err := s.repo.CompareAndSetProjectStatus(projectID, models.ProjectInProgress, models.ProjectOpen)
	if err != nil {
		utils.Error("failed to reopen project after aborted accept", map[string]any{
			"project_id": projectID,
			"error":      err.Error(),
		})
	}
}

func eventFor(action negotiation.Action, bid models.Bid) realtime.Event {
	switch action {
	case negotiation.Counter:
		return realtime.CounterOfferReceived{Bid: bid}
	case negotiation.AcceptCounter:
		return realtime.CounterOfferAccepted{Bid: bid}
	default:
		return realtime.BidStatusUpdated{Bid: bid}
	}
}

// broadcast is best effort; the REST response already carries the new state
func (s *BiddingService) broadcast(ctx context.Context, projectID string, ev realtime.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishProjectEvent(ctx, projectID, ev); err != nil {
		fields := map[string]any{
			"project_id": projectID,
			"event":      string(ev.Kind()),
			"error":      err.Error(),
		}
		if errors.Is(err, context.Canceled) {
			utils.Debug("broadcast skipped", fields)
			return
		}
		utils.Warn("failed to broadcast bid event", fields)
	}
}

func requireID(what, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("service: %w - empty %s ID", biddingerrors.ErrValidation, what)
	}
	return nil
}
