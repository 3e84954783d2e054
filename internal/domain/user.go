package domain

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Credential is the stored user record. PasswordHash never leaves the
// repository layer; every operation that hands a user back to a caller
// returns the embedded User view only.
type Credential struct {
	User         `json:"user"`
	PasswordHash string `json:"password_hash"`
}
