package models

// ReadStatus is the reading progress of a book.
type ReadStatus string

const (
	StatusToRead     ReadStatus = "ToRead"
	StatusInProgress ReadStatus = "InProgress"
	StatusCompleted  ReadStatus = "Completed"
)

// Valid reports whether s is one of the recognized statuses.
func (s ReadStatus) Valid() bool {
	switch s {
	case StatusToRead, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Book is a single entry in a user's reading list.
// UserID is a back-reference to the owner; the owning User is never embedded.
type Book struct {
	ID     int        `json:"id"`
	UserID int        `json:"user_id"`
	Title  string     `json:"title"`
	Author string     `json:"author"`
	Year   int        `json:"year"`
	Genre  []string   `json:"genre"`
	Status ReadStatus `json:"status"` // ToRead | InProgress | Completed
}
