package dto

// ImportFeedRequestDTO is the body of POST /admin/blogs/import.
type ImportFeedRequestDTO struct {
	FeedURL string `json:"feedUrl" binding:"required,url" example:"https://example.com/feed.xml"`
	Limit   int    `json:"limit" example:"10"`
	Active  bool   `json:"active" example:"false"`
}

// UploadResponseDTO is returned after a cover image is stored.
type UploadResponseDTO struct {
	FileURL  string `json:"fileUrl" example:"http://localhost:8080/uploads/blogs/2f1c.png"`
	Key      string `json:"key" example:"blogs/2f1c.png"`
	MimeType string `json:"mimeType" example:"image/png"`
	Size     int64  `json:"size" example:"20480"`
}

// HealthResponseDTO reports API and dependency status.
type HealthResponseDTO struct {
	Status string `json:"status" example:"ok"`
	Mongo  string `json:"mongo,omitempty" example:"up"`
	Error  string `json:"error,omitempty"`
}
