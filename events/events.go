package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	BlogCreated     EventType = "blog.created"
	BlogUpdated     EventType = "blog.updated"
	BlogActivated   EventType = "blog.activated"
	BlogDeactivated EventType = "blog.deactivated"
	BlogDeleted     EventType = "blog.deleted"
)

const (
	SourceAPI = "blog-admin-api"
	Version   = "1"
)

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

// GetType 이벤트 타입을 반환
func (e BaseEvent) GetType() EventType {
	return e.Type
}

// BlogEvent 블로그 레코드가 변경되었을 때 발행되는 이벤트
type BlogEvent struct {
	BaseEvent
	BlogID int64  `json:"blog_id"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

// NewBlogEvent는 새 ID와 현재 시각으로 BlogEvent를 만든다.
func NewBlogEvent(t EventType, blogID int64, title string, active bool) BlogEvent {
	return BlogEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.NewString(),
			Type:      t,
			Timestamp: time.Now().UTC(),
			Source:    SourceAPI,
			Version:   Version,
		},
		BlogID: blogID,
		Title:  title,
		Active: active,
	}
}

// ToggleType 토글 후 상태에 맞는 이벤트 타입
func ToggleType(active bool) EventType {
	if active {
		return BlogActivated
	}
	return BlogDeactivated
}
