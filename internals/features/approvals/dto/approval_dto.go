package dto

// RejectItemRequest carries the mandatory reviewer reason.
type RejectItemRequest struct {
	Reason string `json:"reason" validate:"required"`
}
