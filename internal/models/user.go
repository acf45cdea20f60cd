package models

// User is an account that owns a list of books.
// Books is always serialized as a flat list; a Book never embeds its owner
// back, which keeps the JSON graph acyclic.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // don’t expose hash
	Books        []Book `json:"books"`
}
