// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
)

// AuthUsecase defines the passwordless signup and token issuance operations.
type AuthUsecase interface {
	// Signup registers the (username, email) pair if it is new, or re-uses
	// the existing account when both fields match, then dispatches a fresh
	// confirmation code out-of-band.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// IssueToken verifies a confirmation code and mints a bearer token.
	IssueToken(ctx context.Context, input *IssueTokenInput) (*IssueTokenOutput, error)
}

// --- Input DTOs ---

// SignupInput defines the data required to sign up.
type SignupInput struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email,max=254"`
}

// IssueTokenInput defines the data required to exchange a code for a token.
type IssueTokenInput struct {
	Username         string `json:"username" validate:"required"`
	ConfirmationCode string `json:"confirmation_code" validate:"required"`
}

// --- Output DTOs ---

// SignupOutput echoes the registered identity.
type SignupOutput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// IssueTokenOutput carries the minted bearer token.
type IssueTokenOutput struct {
	Token string `json:"token"`
}
