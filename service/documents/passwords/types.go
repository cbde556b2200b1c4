package docpasswords

import "time"

// Entry is one stored document credential.
type Entry struct {
	Password string    `json:"password"`
	Notes    string    `json:"notes,omitempty"`
	Updated  time.Time `json:"updated"`
}

// Summary is what list operations expose: never the password itself.
type Summary struct {
	Document string    `json:"document"`
	HasNotes bool      `json:"has_notes"`
	Updated  time.Time `json:"updated"`
}

type VaultService interface {
	Set(document, password, notes string) error
	Get(document string) (*Entry, error)
	List() ([]Summary, error)
	Delete(document string) error
}
