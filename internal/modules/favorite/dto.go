package favorite

// CheckFavoriteResponse answers whether the target is in the user's favorites.
type CheckFavoriteResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

type MessageResponse struct {
	Message string `json:"msg"`
}
