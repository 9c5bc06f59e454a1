package domain

import "time"

// Partner is an external organisation a venture could team up with.
type Partner struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Industry           string    `json:"industry"`
	Region             string    `json:"region"`
	Capabilities       []string  `json:"capabilities"`
	CollaborationAreas []string  `json:"collaborationAreas"`
	Contact            string    `json:"contact"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// CreatePartner is the creation input.
type CreatePartner struct {
	Name               string   `json:"name"`
	Industry           string   `json:"industry"`
	Region             string   `json:"region"`
	Capabilities       []string `json:"capabilities"`
	CollaborationAreas []string `json:"collaborationAreas"`
	Contact            string   `json:"contact"`
}

// UpdatePartner is a partial update; nil fields are left unchanged.
type UpdatePartner struct {
	Name               *string  `json:"name,omitempty"`
	Industry           *string  `json:"industry,omitempty"`
	Region             *string  `json:"region,omitempty"`
	Capabilities       []string `json:"capabilities,omitempty"`
	CollaborationAreas []string `json:"collaborationAreas,omitempty"`
	Contact            *string  `json:"contact,omitempty"`
}
