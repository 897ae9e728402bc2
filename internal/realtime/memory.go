package realtime

import (
	"context"
	"fmt"
	"sync"

	"skillswap/internal/biddingerrors"
	"skillswap/utils"
)

const memoryBuffer = 256

// MemoryHub is an in-process broker. Every Dial returns a new connection;
// Publish fans out to connections subscribed to the topic.
type MemoryHub struct {
	mu    sync.RWMutex
	conns map[*memoryConn]struct{}
}

// NewMemoryHub creates an empty hub
func NewMemoryHub() *MemoryHub {
	return &MemoryHub{conns: make(map[*memoryConn]struct{})}
}

// Dial opens a connection to the hub. It matches the Dialer signature.
func (h *MemoryHub) Dial(ctx context.Context) (Transport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	conn := &memoryConn{
		hub:    h,
		topics: make(map[string]struct{}),
		out:    make(chan Message, memoryBuffer),
	}
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()
	return conn, nil
}

func (h *MemoryHub) publish(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.conns {
		conn.deliver(msg)
	}
}

func (h *MemoryHub) remove(conn *memoryConn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
}

type memoryConn struct {
	hub    *MemoryHub
	mu     sync.Mutex
	topics map[string]struct{}
	out    chan Message
	closed bool
}

func (c *memoryConn) deliver(msg Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if _, ok := c.topics[msg.Topic]; !ok {
		return
	}
	select {
	case c.out <- msg:
	default:
		utils.Warn("realtime: memory connection full, dropping message", map[string]any{"topic": msg.Topic})
	}
}

func (c *memoryConn) Publish(ctx context.Context, topic string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return fmt.Errorf("%w: publish on closed connection", biddingerrors.ErrChannel)
	}
	c.hub.publish(Message{Topic: topic, Payload: append([]byte(nil), payload...)})
	return nil
}

func (c *memoryConn) Subscribe(ctx context.Context, topics ...string) error {
	return c.setTopics(ctx, true, topics)
}

func (c *memoryConn) Unsubscribe(ctx context.Context, topics ...string) error {
	return c.setTopics(ctx, false, topics)
}

func (c *memoryConn) setTopics(ctx context.Context, on bool, topics []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return fmt.Errorf("%w: connection closed", biddingerrors.ErrChannel)
	}
	for _, t := range topics {
		if on {
			c.topics[t] = struct{}{}
		} else {
			delete(c.topics, t)
		}
	}
	return nil
}

func (c *memoryConn) Messages() <-chan Message {
	return c.out
}

func (c *memoryConn) Close() error {
	c.hub.remove(c)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	close(c.out)
	return nil
}
