package dto

// PurchaseRequest submits one purchase request for (title, quantity).
// Quantity defaults to 1 when omitted.
type PurchaseRequest struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity,omitempty"`
}
