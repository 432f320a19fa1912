// Package domain holds DTOs for contributor http and service contracts
package domain

// CreateContributorInput is the body for registering a contributor
type CreateContributorInput struct {
	DisplayName *string `json:"display_name" validate:"omitempty,max=200" example:"Archive Fan 42"`
	ExternalID  *string `json:"external_id"  validate:"omitempty,max=200" example:"forum:fan42"`
}

// Contributor is the wire shape of a registered contributor
type Contributor struct {
	ID          string  `json:"id"`
	DisplayName *string `json:"display_name"`
	ExternalID  *string `json:"external_id"`
	CreatedAt   string  `json:"created_at"`
}
