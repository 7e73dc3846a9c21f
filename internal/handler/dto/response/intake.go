package response

import "github.com/google/uuid"

type IntakeAcceptedResponse struct {
	ID uuid.UUID `json:"id"`
}
