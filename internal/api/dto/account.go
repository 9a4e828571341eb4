package dto

import "github.com/moverhub/backend/internal/domain/profile"

// CreateAccountRequest represents a signup request
type CreateAccountRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	FullName     string `json:"full_name,omitempty" validate:"omitempty,max=120"`
	BusinessName string `json:"business_name,omitempty" validate:"omitempty,max=120"`
	Plan         string `json:"plan,omitempty" validate:"omitempty,oneof=Starter Pro Enterprise"`
}

// CreateAccountResponse carries the new profile and the checkout redirect
type CreateAccountResponse struct {
	Profile     profile.MoverView `json:"profile"`
	CheckoutURL string            `json:"checkout_url"`
}
