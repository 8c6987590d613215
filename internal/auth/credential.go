package auth

import "time"

// Credential is the single operator credential record. It is injected from
// configuration at composition time and stays immutable for the process
// lifetime.
type Credential struct {
	ID        string
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
}

// Operator is the credential record with the secret stripped. Only this form
// is ever persisted or handed out.
type Operator struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Sanitized returns the persistable view of the credential.
func (c Credential) Sanitized() Operator {
	return Operator{
		ID:        c.ID,
		Username:  c.Username,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}
