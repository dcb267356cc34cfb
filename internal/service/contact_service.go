package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// SubmitContactInput carries a validated contact-form submission.
// CallerToken is the optional token the submitter sent along; the literal
// string "null" is treated the same as absent (the frontend serializes a
// missing token that way).
type SubmitContactInput struct {
	Name        string
	Email       string
	Subject     string
	Message     string
	CallerToken string
}

// SubmitContactResult is the outcome of a submission.
// Persisted is false only when the store write failed and the degraded-success
// policy was enabled; the message was then acknowledged but not stored.
type SubmitContactResult struct {
	Message   *model.ContactMessage
	Persisted bool
}

// ContactService defines the business logic for contact messages.
type ContactService interface {
	// Submit normalizes and stores a new contact message, generating its
	// submission token and resolving the stored token value.
	Submit(ctx context.Context, in SubmitContactInput) (*SubmitContactResult, error)

	// List returns all contact messages, newest first.
	List(ctx context.Context) ([]*model.ContactMessage, error)

	// ListByToken returns messages whose stored token equals the given value.
	ListByToken(ctx context.Context, token string) ([]*model.ContactMessage, error)

	// MarkRead flags a message as read. Idempotent for already-read messages;
	// returns repository.ErrNotFound for unknown ids.
	MarkRead(ctx context.Context, id string) error

	// Delete removes a message; returns repository.ErrNotFound for unknown ids.
	Delete(ctx context.Context, id string) error

	// Stats returns aggregate counts over stored messages.
	Stats(ctx context.Context) (*model.ContactStats, error)
}
