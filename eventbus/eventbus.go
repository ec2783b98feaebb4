package eventbus

import (
	"context"
	"encoding/json"
)

// Topic은 블로그 이벤트가 발행되는 토픽 이름입니다.
type Topic struct {
	base string
}

func NewTopic(base string) Topic {
	return Topic{base: base}
}

func (t Topic) Base() string {
	return t.base
}

// Event는 Kafka 메시지의 페이로드로 사용되는 구조체입니다.
type Event struct {
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

// Publisher는 이벤트 발행의 추상화입니다.
type Publisher interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// NoopBus는 Kafka가 비활성화된 환경에서 사용하는 Publisher입니다. 모든 이벤트를 버립니다.
type NoopBus struct{}

func (NoopBus) Publish(context.Context, string, Event) error { return nil }

func (NoopBus) Close() {}
