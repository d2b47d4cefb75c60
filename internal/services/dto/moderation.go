package dto

// ModerateRequest is the body of PATCH /admin/content/approve. For news
// the status "approved" is an accepted alias of "published".
type ModerateRequest struct {
	Type   string `json:"type" validate:"required,oneof=job news"`
	ID     string `json:"id" validate:"required,uuid4"`
	Status string `json:"status" validate:"required,oneof=approved published rejected"`
	Reason string `json:"reason" validate:"omitempty,max=2000"`
}

// PendingContent groups content awaiting moderation for the admin queue.
type PendingContent struct {
	Jobs interface{} `json:"jobs"`
	News interface{} `json:"news"`
}
