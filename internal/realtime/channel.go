// Package realtime is the best-effort notification channel between the bid
// service and the people watching a project. Delivery is at most once:
// nothing is replayed, acknowledged or ordered across event kinds.
package realtime

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"skillswap/internal/biddingerrors"
	"skillswap/utils"
)

// Handler receives an inbound event. Handlers run on the delivery goroutine,
// one at a time, so a slow handler delays the ones after it.
type Handler func(Event)

// SubscriptionID identifies a registered handler for Unsubscribe
type SubscriptionID uint64

type registration struct {
	id      SubscriptionID
	handler Handler
}

// Channel multiplexes one lazily dialled Transport between all subscribers.
// Rooms and chats it joined are restored whenever it has to dial again.
type Channel struct {
	dial Dialer

	mu     sync.Mutex
	conn   Transport
	done   chan struct{}
	closed bool
	topics map[string]struct{}

	// dispatching is true while handlers run on the delivery goroutine
	dispatching atomic.Bool

	handlersMu sync.RWMutex
	handlers   map[Kind][]registration
	nextID     atomic.Uint64
}

// NewChannel creates a channel that dials on first use
func NewChannel(dial Dialer) *Channel {
	return &Channel{
		dial:     dial,
		topics:   make(map[string]struct{}),
		handlers: make(map[Kind][]registration),
	}
}

// Transport names accepted by NewChannelFor
const (
	TransportRedis  = "redis"
	TransportMemory = "memory"
)

// ProcessLocal reports whether the named transport only reaches channels in
// the same process. Broadcasts over it never leave the process.
func ProcessLocal(transport string) bool {
	switch strings.ToLower(transport) {
	case TransportMemory, "":
		return true
	default:
		return false
	}
}

// NewChannelFor builds a channel for the named transport (TransportRedis or
// TransportMemory). Every memory channel gets its own hub.
func NewChannelFor(transport, redisURL string) (*Channel, error) {
	switch strings.ToLower(transport) {
	case TransportRedis:
		client, err := NewRedisClient(redisURL)
		if err != nil {
			return nil, err
		}
		return NewChannel(NewRedisDialer(client)), nil
	case TransportMemory, "":
		return NewChannel(NewMemoryHub().Dial), nil
	default:
		return nil, fmt.Errorf("unknown realtime transport %q", transport)
	}
}

var errClosed = fmt.Errorf("%w: channel is closed", biddingerrors.ErrChannel)

// connection returns the shared transport, dialling it if needed
func (c *Channel) connection(ctx context.Context) (Transport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, errClosed
	}
	if c.conn != nil {
		return c.conn, nil
	}

	conn, err := c.dial(ctx)
	if err != nil {
		utils.Error("realtime: dial failed", map[string]any{"error": err.Error()})
		if errors.Is(err, biddingerrors.ErrChannel) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: dial: %v", biddingerrors.ErrChannel, err)
	}

	if len(c.topics) > 0 {
		topics := make([]string, 0, len(c.topics))
		for topic := range c.topics {
			topics = append(topics, topic)
		}
		if err := conn.Subscribe(ctx, topics...); err != nil {
			_ = conn.Close()
			utils.Error("realtime: rejoin failed", map[string]any{"topics": topics, "error": err.Error()})
			if errors.Is(err, biddingerrors.ErrChannel) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: rejoin: %v", biddingerrors.ErrChannel, err)
		}
		utils.Debug("realtime: rejoined", map[string]any{"topics": topics})
	}

	done := make(chan struct{})
	c.conn = conn
	c.done = done
	go c.deliver(conn, done)
	utils.Debug("realtime: connected", nil)
	return conn, nil
}

func (c *Channel) deliver(conn Transport, done chan struct{}) {
	defer close(done)

	for msg := range conn.Messages() {
		ev, err := Decode(msg.Payload)
		if err != nil {
			utils.Warn("realtime: dropping undecodable message", map[string]any{
				"topic": msg.Topic,
				"error": err.Error(),
			})
			continue
		}
		c.dispatch(ev)
	}

	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
	}
	closed, rejoin := c.closed, len(c.topics) > 0
	c.mu.Unlock()
	if closed {
		utils.Debug("realtime: closed", nil)
		return
	}
	utils.Warn("realtime: disconnected", map[string]any{"error": biddingerrors.ErrChannel.Error(), "redial": rejoin})
	if !rejoin {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redialTimeout)
	defer cancel()
	if _, err := c.connection(ctx); err != nil && !errors.Is(err, errClosed) {
		// the next Emit or Join dials again
		utils.Warn("realtime: redial failed", map[string]any{"error": err.Error()})
	}
}

const redialTimeout = 5 * time.Second

func (c *Channel) dispatch(ev Event) {
	c.handlersMu.RLock()
	regs := append([]registration(nil), c.handlers[ev.Kind()]...)
	c.handlersMu.RUnlock()

	c.dispatching.Store(true)
	defer c.dispatching.Store(false)
	for _, r := range regs {
		r.handler(ev)
	}
}

// Subscribe registers h for events of kind. Handlers for the same kind run in
// registration order.
func (c *Channel) Subscribe(kind Kind, h Handler) SubscriptionID {
	id := SubscriptionID(c.nextID.Add(1))
	c.handlersMu.Lock()
	c.handlers[kind] = append(c.handlers[kind], registration{id: id, handler: h})
	c.handlersMu.Unlock()
	return id
}

// Unsubscribe removes the handler registered under id. Unknown ids are ignored.
func (c *Channel) Unsubscribe(kind Kind, id SubscriptionID) {
	c.handlersMu.Lock()
	defer c.handlersMu.Unlock()

	regs := c.handlers[kind]
	for i, r := range regs {
		if r.id == id {
			c.handlers[kind] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// JoinProjectRoom starts delivery of bid events for projectID
func (c *Channel) JoinProjectRoom(ctx context.Context, projectID string) error {
	return c.Emit(ctx, JoinProject{ProjectID: projectID})
}

// LeaveProjectRoom stops delivery of bid events for projectID
func (c *Channel) LeaveProjectRoom(ctx context.Context, projectID string) error {
	return c.Emit(ctx, LeaveProject{ProjectID: projectID})
}

// JoinChat starts delivery of private messages addressed to userID
func (c *Channel) JoinChat(ctx context.Context, userID string) error {
	return c.Emit(ctx, JoinChat{UserID: userID})
}

// Emit sends out. It is fire-and-forget: a nil error means the transport took
// the request, not that anybody received it. Failures are logged and returned.
func (c *Channel) Emit(ctx context.Context, out Outbound) error {
	err := c.emit(ctx, out)
	if err != nil {
		utils.Warn("realtime: emit failed", map[string]any{
			"event": string(out.Kind()),
			"error": err.Error(),
		})
	}
	return err
}

func (c *Channel) emit(ctx context.Context, out Outbound) error {
	conn, err := c.connection(ctx)
	if err != nil {
		return err
	}

	switch o := out.(type) {
	case JoinProject:
		if o.ProjectID == "" {
			return fmt.Errorf("%w: join_project needs a project id", biddingerrors.ErrChannel)
		}
		return c.join(ctx, conn, projectTopic(o.ProjectID))
	case LeaveProject:
		if o.ProjectID == "" {
			return fmt.Errorf("%w: leave_project needs a project id", biddingerrors.ErrChannel)
		}
		c.mu.Lock()
		delete(c.topics, projectTopic(o.ProjectID))
		c.mu.Unlock()
		return conn.Unsubscribe(ctx, projectTopic(o.ProjectID))
	case JoinChat:
		if o.UserID == "" {
			return fmt.Errorf("%w: join_chat needs a user id", biddingerrors.ErrChannel)
		}
		return c.join(ctx, conn, userTopic(o.UserID))
	case PrivateMessage:
		msg := o.Message
		if msg.SenderID == "" || msg.RecipientID == "" || strings.TrimSpace(msg.Body) == "" {
			return fmt.Errorf("%w: private_message needs sender, recipient and body", biddingerrors.ErrChannel)
		}
		if msg.ID == "" {
			msg.ID = utils.NewMessageID()
		}
		if msg.SentAt.IsZero() {
			msg.SentAt = time.Now().UTC()
		}
		return c.publish(ctx, conn, userTopic(msg.RecipientID), MessageReceived{Message: msg})
	case MarkRead:
		if o.MessageID == "" || o.SenderID == "" {
			return fmt.Errorf("%w: mark_read needs message and sender ids", biddingerrors.ErrChannel)
		}
		read := MessageRead{MessageID: o.MessageID, ReaderID: o.ReaderID, ReadAt: time.Now().UTC()}
		return c.publish(ctx, conn, userTopic(o.SenderID), read)
	default:
		return fmt.Errorf("%w: unsupported outbound %T", biddingerrors.ErrChannel, out)
	}
}

func (c *Channel) join(ctx context.Context, conn Transport, topic string) error {
	if err := conn.Subscribe(ctx, topic); err != nil {
		return err
	}
	c.mu.Lock()
	c.topics[topic] = struct{}{}
	c.mu.Unlock()
	return nil
}

// PublishProjectEvent broadcasts ev to everyone in the project's room
func (c *Channel) PublishProjectEvent(ctx context.Context, projectID string, ev Event) error {
	conn, err := c.connection(ctx)
	if err != nil {
		return err
	}
	return c.publish(ctx, conn, projectTopic(projectID), ev)
}

func (c *Channel) publish(ctx context.Context, conn Transport, topic string, ev Event) error {
	payload, err := Encode(ev)
	if err != nil {
		return err
	}
	if err := conn.Publish(ctx, topic, payload); err != nil {
		if errors.Is(err, biddingerrors.ErrChannel) {
			return err
		}
		return fmt.Errorf("%w: publish %s: %v", biddingerrors.ErrChannel, ev.Kind(), err)
	}
	return nil
}

// Close drops the connection and waits for in-flight handlers to return.
// Later calls on the channel fail with ErrChannel. Close is safe to call from
// a handler; it then returns without waiting for the handler itself.
func (c *Channel) Close() error {
	c.mu.Lock()
	conn, done := c.conn, c.done
	c.conn = nil
	c.closed = true
	c.mu.Unlock()

	if conn == nil {
		return nil
	}
	err := conn.Close()
	if !c.dispatching.Load() {
		<-done
	}
	return err
}
