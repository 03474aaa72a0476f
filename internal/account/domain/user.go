package domain

// User is the account record. Email is the primary key; it is set at signup
// and never updated afterwards.
type User struct {
	Email        string
	PasswordHash string
	Nickname     string
	ProfileImage string
}
