package entity

import "time"

// Company representa una organización/tenant del sistema. Cada empresa es dueña
// de cero o más bodegas; el nombre es único en toda la plataforma.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
