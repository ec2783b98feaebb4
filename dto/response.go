package dto

// ErrorResponseDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
// error 는 기계가 읽는 코드, message 는 화면에 그대로 보여줄 문구다.
type ErrorResponseDTO struct {
	Error   string            `json:"error" example:"validation_failed"`
	Message string            `json:"message,omitempty" example:"Title is required"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// MessageResponseDTO는 단순 메시지 응답 형식을 통일하기 위한 DTO이다.
type MessageResponseDTO struct {
	Message string `json:"message" example:"Blog deleted successfully."`
}
