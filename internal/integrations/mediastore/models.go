package mediastore

// UploadResult the stored object descriptor returned by the media store
type UploadResult struct {
	URL      string `json:"url"`
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

// ErrorResponse error payload from the media store
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
