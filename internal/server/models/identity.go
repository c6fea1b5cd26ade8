package models

import (
	"time"

	"github.com/dmitrijs2005/healthsync/internal/api"
)

// Identity is a registered account. PasswordHash never leaves the server.
type Identity struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Height       float64
	Weight       float64
	Age          int
	CreatedAt    time.Time
}

// Profile is the client-visible view of i.
func (i *Identity) Profile() api.Profile {
	return api.Profile{
		ID:        i.ID,
		Email:     i.Email,
		Name:      i.Name,
		Height:    i.Height,
		Weight:    i.Weight,
		Age:       i.Age,
		CreatedAt: i.CreatedAt,
	}
}
