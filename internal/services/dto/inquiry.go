package dto

type CreateInquiryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,indian-phone"`
	Subject string `json:"subject" validate:"required,min=3,max=150"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
	Type    string `json:"type" validate:"omitempty,inquiry-type"`
}

type UpdateInquiryRequest struct {
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=new in-progress resolved closed"`
	Priority   *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	AdminNotes *string `json:"adminNotes,omitempty" validate:"omitempty,max=5000"`
}

type ListInquiriesQuery struct {
	Type     string `form:"type" validate:"omitempty,inquiry-type"`
	Status   string `form:"status" validate:"omitempty,oneof=new in-progress resolved closed"`
	Priority string `form:"priority" validate:"omitempty,oneof=low medium high"`
}
