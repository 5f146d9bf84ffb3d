package dto

// ScanResponse resolves a scanned barcode to the entity carrying it.
// Exactly one of Recipe / Order is set, indicated by Type.
type ScanResponse struct {
	Type   string          `json:"type"` // "recipe" | "production_order"
	Recipe *RecipeResponse `json:"recipe,omitempty"`
	Order  *OrderResponse  `json:"production_order,omitempty"`
}
