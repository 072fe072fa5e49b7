package response_models

import "destinex/internal/models"

type SessionResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewSessionResponse(s models.Session) SessionResponse {
	return SessionResponse{Name: s.Name, Email: s.Email}
}
