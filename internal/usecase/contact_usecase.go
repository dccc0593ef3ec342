package usecase

import "context"

// ContactInquiry is a message submitted through the contact form.
type ContactInquiry struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Company   string `json:"company"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phoneNumber"`
	Message   string `json:"message" validate:"required"`
}

// ContactUsecase forwards contact form submissions to the shop owner.
type ContactUsecase interface {
	// SubmitInquiry emails the inquiry to the owner and returns the
	// correlation id assigned to it.
	SubmitInquiry(ctx context.Context, inquiry *ContactInquiry) (string, error)
}
