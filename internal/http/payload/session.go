package payload

import (
	"github.com/jellydator/validation"
)

type SessionRequest struct {
	Role string `json:"role"`
}

func (s *SessionRequest) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Role, validation.Required, validation.In("investor", "entrepreneur", "verifier")),
	)
}
