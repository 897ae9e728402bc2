// Package negotiation holds the bid status state machine.
//
//	pending   --accept--------> accepted   (project client, project open)
//	pending   --reject--------> rejected   (project client)
//	pending   --counter-------> countered  (project client)
//	countered --accept_counter> accepted   (freelancer owning the bid)
//
// accepted and rejected are terminal.
package negotiation

import (
	"fmt"
	"strings"
	"time"

	"skillswap/internal/biddingerrors"
	"skillswap/internal/models"
)

// Action is a negotiation step requested by a user
type Action string

const (
	Accept        Action = "accept"
	Reject        Action = "reject"
	Counter       Action = "counter"
	AcceptCounter Action = "accept_counter"
)

const maxCounterMessage = 500

type rule struct {
	to          models.BidStatus
	by          models.Role
	projectOpen bool
}

var transitions = map[models.BidStatus]map[Action]rule{
	models.BidPending: {
		Accept:  {to: models.BidAccepted, by: models.RoleClient, projectOpen: true},
		Reject:  {to: models.BidRejected, by: models.RoleClient},
		Counter: {to: models.BidCountered, by: models.RoleClient},
	},
	models.BidCountered: {
		AcceptCounter: {to: models.BidAccepted, by: models.RoleFreelancer},
	},
}

// Target returns the status a bid in from moves to under action
func Target(from models.BidStatus, action Action) (models.BidStatus, error) {
	r, err := lookup(from, action)
	if err != nil {
		return "", err
	}
	return r.to, nil
}

func lookup(from models.BidStatus, action Action) (rule, error) {
	r, ok := transitions[from][action]
	if !ok {
		return rule{}, fmt.Errorf("%w: cannot %s a %s bid", biddingerrors.ErrInvalidTransition, action, from)
	}
	return r, nil
}

// ActionForStatus maps a requested target status from a status update
// request to the action that produces it.
func ActionForStatus(status models.BidStatus) (Action, error) {
	switch status {
	case models.BidAccepted:
		return Accept, nil
	case models.BidRejected:
		return Reject, nil
	default:
		return "", fmt.Errorf("%w: status must be accepted or rejected, got %q", biddingerrors.ErrValidation, status)
	}
}

// Apply runs action on bid for actor and returns the resulting bid. bid is
// left untouched. On success only Status, UpdatedAt, Revision and (for a
// counter) CounterOffer differ from the input.
func Apply(bid models.Bid, project models.Project, actor models.Actor, action Action, offer *models.CounterOffer, now time.Time) (models.Bid, error) {
	r, err := lookup(bid.Status, action)
	if err != nil {
		return models.Bid{}, err
	}

	if project.ID != bid.ProjectID {
		return models.Bid{}, fmt.Errorf("%w: bid %s does not belong to project %s", biddingerrors.ErrInvalidTransition, bid.ID, project.ID)
	}

	switch r.by {
	case models.RoleClient:
		if actor.UserID == "" || actor.UserID != project.ClientID {
			return models.Bid{}, fmt.Errorf("%w: only the project client can %s a bid", biddingerrors.ErrNotPermitted, action)
		}
	case models.RoleFreelancer:
		if actor.UserID == "" || actor.UserID != bid.FreelancerID {
			return models.Bid{}, fmt.Errorf("%w: only the bidding freelancer can %s", biddingerrors.ErrNotPermitted, action)
		}
	}

	if r.projectOpen && project.Status != models.ProjectOpen {
		return models.Bid{}, fmt.Errorf("%w: %w (status %s)", biddingerrors.ErrInvalidTransition, biddingerrors.ErrProjectNotOpen, project.Status)
	}

	if action == Counter {
		if err := checkOffer(offer); err != nil {
			return models.Bid{}, err
		}
	}

	next := bid.Clone()
	next.Status = r.to
	next.UpdatedAt = now
	next.Revision = bid.Revision + 1
	if action == Counter {
		copied := *offer
		next.CounterOffer = &copied
	}
	return next, nil
}

func checkOffer(offer *models.CounterOffer) error {
	switch {
	case offer == nil:
		return fmt.Errorf("%w: counter-offer is required", biddingerrors.ErrValidation)
	case offer.Amount <= 0:
		return fmt.Errorf("%w: counter-offer amount must be greater than 0", biddingerrors.ErrValidation)
	case strings.TrimSpace(offer.Message) == "":
		return fmt.Errorf("%w: counter-offer message is required", biddingerrors.ErrValidation)
	case len([]rune(offer.Message)) > maxCounterMessage:
		return fmt.Errorf("%w: counter-offer message must be at most %d characters", biddingerrors.ErrValidation, maxCounterMessage)
	}
	return nil
}
