package request_models

type SearchRequest struct {
	City string `json:"city" binding:"required"`
}

type CategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

// FilterRequest is a partial criteria update: absent fields keep their
// current value, negative bounds clear the constraint.
type FilterRequest struct {
	MinRating   *float64 `json:"min_rating"`
	PriceTier   *string  `json:"price_tier"`
	MaxDistance *float64 `json:"max_distance"`
}
