package request

import (
	"strings"

	"github.com/manojshendge/gym-class-booking/internal/usecase/commands"
)

type ContactRequest struct {
	Name  string `json:"name" binding:"required,max=120"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"max=32"`
	Goal  string `json:"goal" binding:"max=2000"`
}

func (r ContactRequest) ToSubmission() commands.ContactSubmission {
	return commands.ContactSubmission{
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
		Phone: strings.TrimSpace(r.Phone),
		Goal:  strings.TrimSpace(r.Goal),
	}
}

type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
}
