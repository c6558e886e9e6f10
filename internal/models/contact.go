package models

import "time"

// Contact is an address-book entry fed from order sender details.
type Contact struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Whatsapp      string     `json:"whatsapp"`
	Address       string     `json:"address"`
	Tags          []string   `json:"tags"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	LastContacted *time.Time `json:"last_contacted,omitempty"`
}
