package realtime

import (
	"encoding/json"
	"fmt"
	"time"

	"skillswap/internal/biddingerrors"
	"skillswap/internal/models"
)

// Kind is the wire name of a channel event
type Kind string

// Outbound kinds
const (
	KindJoinProject    Kind = "join_project"
	KindLeaveProject   Kind = "leave_project"
	KindJoinChat       Kind = "join_chat"
	KindPrivateMessage Kind = "private_message"
	KindMarkRead       Kind = "mark_read"
)

// Inbound kinds
const (
	KindNewBid               Kind = "new_bid"
	KindBidStatusUpdated     Kind = "bid_status_updated"
	KindCounterOfferReceived Kind = "counter_offer_received"
	KindCounterOfferAccepted Kind = "counter_offer_accepted"
	KindReceiveMessage       Kind = "receive_message"
	KindMessageRead          Kind = "message_read"
)

// Event is an inbound notification. The set of implementations is closed;
// switch on the concrete type to handle them.
type Event interface {
	Kind() Kind
	isEvent()
}

// NewBid announces a bid placed on a project
type NewBid struct{ Bid models.Bid }

// BidStatusUpdated carries a bid the client accepted or rejected
type BidStatusUpdated struct{ Bid models.Bid }

// CounterOfferReceived carries a bid the client countered
type CounterOfferReceived struct{ Bid models.Bid }

// CounterOfferAccepted carries a bid whose freelancer took the counter-offer
type CounterOfferAccepted struct{ Bid models.Bid }

// MessageReceived delivers a private message to its recipient
type MessageReceived struct{ Message models.Message }

// MessageRead tells a sender that the recipient read their message
type MessageRead struct {
	MessageID string    `json:"messageId"`
	ReaderID  string    `json:"readerId"`
	ReadAt    time.Time `json:"readAt"`
}

func (NewBid) Kind() Kind               { return KindNewBid }
func (BidStatusUpdated) Kind() Kind     { return KindBidStatusUpdated }
func (CounterOfferReceived) Kind() Kind { return KindCounterOfferReceived }
func (CounterOfferAccepted) Kind() Kind { return KindCounterOfferAccepted }
func (MessageReceived) Kind() Kind      { return KindReceiveMessage }
func (MessageRead) Kind() Kind          { return KindMessageRead }

func (NewBid) isEvent()               {}
func (BidStatusUpdated) isEvent()     {}
func (CounterOfferReceived) isEvent() {}
func (CounterOfferAccepted) isEvent() {}
func (MessageReceived) isEvent()      {}
func (MessageRead) isEvent()          {}

// BidOf returns the bid carried by a bid event
func BidOf(ev Event) (models.Bid, bool) {
	switch e := ev.(type) {
	case NewBid:
		return e.Bid, true
	case BidStatusUpdated:
		return e.Bid, true
	case CounterOfferReceived:
		return e.Bid, true
	case CounterOfferAccepted:
		return e.Bid, true
	}
	return models.Bid{}, false
}

// Outbound is a request sent by a channel user. Like Event, the set is closed.
type Outbound interface {
	Kind() Kind
	isOutbound()
}

// JoinProject subscribes to a project's bid events
type JoinProject struct{ ProjectID string }

// LeaveProject stops a project's bid events
type LeaveProject struct{ ProjectID string }

// JoinChat subscribes to private messages addressed to UserID
type JoinChat struct{ UserID string }

// PrivateMessage sends a chat message to its recipient
type PrivateMessage struct{ Message models.Message }

// MarkRead tells the sender of a message that the reader has seen it
type MarkRead struct {
	MessageID string
	SenderID  string
	ReaderID  string
}

func (JoinProject) Kind() Kind    { return KindJoinProject }
func (LeaveProject) Kind() Kind   { return KindLeaveProject }
func (JoinChat) Kind() Kind       { return KindJoinChat }
func (PrivateMessage) Kind() Kind { return KindPrivateMessage }
func (MarkRead) Kind() Kind       { return KindMarkRead }

func (JoinProject) isOutbound()    {}
func (LeaveProject) isOutbound()   {}
func (JoinChat) isOutbound()       {}
func (PrivateMessage) isOutbound() {}
func (MarkRead) isOutbound()       {}

type envelope struct {
	Event Kind            `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Encode serializes ev as {"event": <kind>, "data": <payload>}
func Encode(ev Event) ([]byte, error) {
	var payload any
	switch e := ev.(type) {
	case NewBid:
		payload = e.Bid
	case BidStatusUpdated:
		payload = e.Bid
	case CounterOfferReceived:
		payload = e.Bid
	case CounterOfferAccepted:
		payload = e.Bid
	case MessageReceived:
		payload = e.Message
	case MessageRead:
		payload = e
	default:
		return nil, fmt.Errorf("%w: cannot encode %T", biddingerrors.ErrChannel, ev)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: encode %s: %v", biddingerrors.ErrChannel, ev.Kind(), err)
	}
	return json.Marshal(envelope{Event: ev.Kind(), Data: data})
}

// Decode parses a wire message into its typed event
func Decode(raw []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: malformed envelope: %v", biddingerrors.ErrChannel, err)
	}

	switch env.Event {
	case KindNewBid, KindBidStatusUpdated, KindCounterOfferReceived, KindCounterOfferAccepted:
		var bid models.Bid
		if err := json.Unmarshal(env.Data, &bid); err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", biddingerrors.ErrChannel, env.Event, err)
		}
		switch env.Event {
		case KindNewBid:
			return NewBid{Bid: bid}, nil
		case KindBidStatusUpdated:
			return BidStatusUpdated{Bid: bid}, nil
		case KindCounterOfferReceived:
			return CounterOfferReceived{Bid: bid}, nil
		default:
			return CounterOfferAccepted{Bid: bid}, nil
		}
	case KindReceiveMessage:
		var msg models.Message
		if err := json.Unmarshal(env.Data, &msg); err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", biddingerrors.ErrChannel, env.Event, err)
		}
		return MessageReceived{Message: msg}, nil
	case KindMessageRead:
		var read MessageRead
		if err := json.Unmarshal(env.Data, &read); err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", biddingerrors.ErrChannel, env.Event, err)
		}
		return read, nil
	default:
		return nil, fmt.Errorf("%w: unknown event %q", biddingerrors.ErrChannel, env.Event)
	}
}
