package eventbus

// 전역 토픽 선언: 기능별 기본 토픽 이름을 관리합니다.
// kafka.topic 설정으로 교체할 수 있습니다.

const DefaultBlogEventsTopic = "blog-admin.blog.events"

var (
	TopicBlogEvents = NewTopic(DefaultBlogEventsTopic)
)
