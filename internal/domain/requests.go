package domain

type SubmitReportRequest struct {
	AuthorID      string   `json:"author_id" validate:"required"`
	AuthorRole    Role     `json:"author_role" validate:"omitempty,oneof=citizen government"`
	Text          string   `json:"text" validate:"required"`
	Category      Category `json:"category" validate:"required,oneof=attack general instruction"`
	Origin        *Point   `json:"origin" validate:"omitempty"`
	LocationLabel string   `json:"location_label" validate:"omitempty,max=200"`
}

type SubmitResponseRequest struct {
	ThreadID string `json:"-" validate:"required"`
	AuthorID string `json:"author_id" validate:"required"`
	Text     string `json:"text" validate:"required"`
}

type SubmitReplyRequest struct {
	ThreadID string `json:"-" validate:"required"`
	AuthorID string `json:"author_id" validate:"required"`
	Text     string `json:"text" validate:"required"`
}

type ReadRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
}

type ReadAllRequest struct {
	RecipientID string   `json:"recipient_id" validate:"required"`
	Lat         *float64 `json:"lat" validate:"omitempty,lat"`
	Lng         *float64 `json:"lng" validate:"omitempty,lng"`
}

type ListReportsResponse struct {
	Reports []Report `json:"reports"`
	Total   int      `json:"total"`
}
