package dto

type CreateArtworkRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

// UpdateArtworkRequest carries partial updates; nil fields are untouched.
// IsFeatured is applied only when the caller is an admin.
type UpdateArtworkRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"image_url"`
	IsFeatured  *bool    `json:"is_featured"`
}

// ArtworkFilter mirrors the public catalog query parameters.
type ArtworkFilter struct {
	Category  string
	ArtistID  string
	Featured  bool
	Available *bool
}
