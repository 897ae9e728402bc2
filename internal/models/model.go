package models

import "time"

// Role is the marketplace role a user acts under
type Role string

const (
	RoleClient     Role = "client"
	RoleFreelancer Role = "freelancer"
	RoleAdmin      Role = "admin"
)

// Actor identifies who performs an action
type Actor struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
}

// ProjectStatus gates which bid actions are legal
type ProjectStatus string

const (
	ProjectOpen       ProjectStatus = "open"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
)

// Project is a client's posted job that freelancers bid on
type Project struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"clientId"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Budget      float64       `json:"budget"`
	Status      ProjectStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// BidStatus is the negotiation state of a bid
type BidStatus string

const (
	BidPending   BidStatus = "pending"
	BidAccepted  BidStatus = "accepted"
	BidRejected  BidStatus = "rejected"
	BidCountered BidStatus = "countered"
)

// Valid reports whether s is one of the known bid statuses
func (s BidStatus) Valid() bool {
	switch s {
	case BidPending, BidAccepted, BidRejected, BidCountered:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from s
func (s BidStatus) Terminal() bool {
	return s == BidAccepted || s == BidRejected
}

// CounterOffer is a client's amendment to a pending bid
type CounterOffer struct {
	Amount  float64 `json:"amount"`
	Message string  `json:"message"`
}

// Bid is a freelancer's offer on a project.
//
// Revision increases by one on every server-side mutation so consumers can
// drop events older than what they already hold.
type Bid struct {
	ID           string        `json:"id"`
	ProjectID    string        `json:"projectId"`
	FreelancerID string        `json:"freelancerId"`
	Amount       float64       `json:"amount"`
	DeliveryTime int           `json:"deliveryTime"`
	Proposal     string        `json:"proposal"`
	Status       BidStatus     `json:"status"`
	CounterOffer *CounterOffer `json:"counterOffer,omitempty"`
	Revision     int64         `json:"revision"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// Clone returns a copy that shares no memory with b
func (b Bid) Clone() Bid {
	if b.CounterOffer != nil {
		offer := *b.CounterOffer
		b.CounterOffer = &offer
	}
	return b
}

// Message is a private chat message between two users
type Message struct {
	ID          string     `json:"id"`
	SenderID    string     `json:"senderId"`
	RecipientID string     `json:"recipientId"`
	ProjectID   string     `json:"projectId,omitempty"`
	Body        string     `json:"body"`
	SentAt      time.Time  `json:"sentAt"`
	ReadAt      *time.Time `json:"readAt,omitempty"`
}
