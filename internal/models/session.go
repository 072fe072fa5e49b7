package models

// Session identifies the locally signed-in user. It is the only session data
// other components may read; they treat it as gating state, not identity.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Credential is one persisted account record. Email is the unique key,
// compared case-insensitively.
type Credential struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	CreatedAt    int64  `json:"created_at"`
}
