package controllers

// URIID binds the numeric resource ID from the request path.
type URIID struct {
	ID uint64 `uri:"id" binding:"required"` // ID of the resource
}

// NameRequest is the body for creating a lookup resource.
type NameRequest struct {
	Name *string `json:"name" binding:"required"`
}
