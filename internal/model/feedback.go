package model

import "time"

// Feedback references its course by name, not by id: submissions are free
// text and survive course deletion.
type Feedback struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Course    string    `json:"course"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
}
