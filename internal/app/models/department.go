package models

// Department defines a department document. Its ID equals the ID of the
// department's user account.
type Department struct {
	ID           string `json:"-"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Email        string `json:"email"`
}
