package realtime

import "context"

// Message is a raw payload delivered on a topic
type Message struct {
	Topic   string
	Payload []byte
}

// Transport is one pub/sub connection. Messages is closed when the
// connection goes away for good.
type Transport interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	Subscribe(ctx context.Context, topics ...string) error
	Unsubscribe(ctx context.Context, topics ...string) error
	Messages() <-chan Message
	Close() error
}

// Dialer opens a Transport
type Dialer func(ctx context.Context) (Transport, error)

const topicPrefix = "skillswap:"

func projectTopic(projectID string) string {
	return topicPrefix + "project:" + projectID
}

func userTopic(userID string) string {
	return topicPrefix + "user:" + userID
}
