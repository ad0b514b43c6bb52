package domain

// Document is an uploaded file with best-effort extracted text for search.
type Document struct {
	ID               int64   `json:"id"`
	UserID           int64   `json:"user_id"`
	Title            string  `json:"title"`
	OriginalFilename *string `json:"original_filename"`
	SourcePath       *string `json:"source_path"`
	ContentText      *string `json:"content_text"`
	UploadedAt       string  `json:"uploaded_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type NewDocumentInput struct {
	UserID           int64
	Title            string
	OriginalFilename string
	SourcePath       string
	ContentText      string
}
