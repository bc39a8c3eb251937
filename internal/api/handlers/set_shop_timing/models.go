package set_shop_timing

// SetShopTimingRequest часы работы дня
type SetShopTimingRequest struct {
	Open  string `json:"open"`  // HH:MM
	Close string `json:"close"` // HH:MM
}
