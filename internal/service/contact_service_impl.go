package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// tokenValidity is how long a caller-supplied token is considered current.
const tokenValidity = 7 * 24 * time.Hour

const defaultSubject = "No Subject"

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository

	// allowDegraded acknowledges submissions even when the store write fails.
	// Off by default: it trades durability for a smooth user-facing flow and
	// silently drops data when enabled.
	allowDegraded bool
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository, allowDegraded bool) ContactService {
	return &contactServiceImpl{repo: repo, allowDegraded: allowDegraded}
}

// resolvedToken is the stored-token value decided for a submission: either the
// caller's token (with an expiry) or the generated submission token (without).
// The null-to-fallback coercion happens here, once, before the persistence
// boundary, so the token column is never NULL.
type resolvedToken struct {
	value    string
	expiry   *time.Time
	supplied bool
}

func resolveToken(callerToken, submissionToken string, now time.Time) resolvedToken {
	if callerToken != "" && callerToken != "null" {
		expiry := now.Add(tokenValidity)
		return resolvedToken{value: callerToken, expiry: &expiry, supplied: true}
	}
	return resolvedToken{value: submissionToken}
}

// newSubmissionToken generates a reference token of the form
// REF-<unixMillis>-<random 0..9999>. Uniqueness relies on timestamp+random
// entropy plus the store's unique constraint.
func newSubmissionToken(now time.Time) string {
	return fmt.Sprintf("REF-%d-%d", now.UnixMilli(), rand.IntN(10000))
}

// Submit normalizes the input, generates the submission token, resolves the
// stored token value and persists the message.
func (s *contactServiceImpl) Submit(ctx context.Context, in SubmitContactInput) (*SubmitContactResult, error) {
	now := time.Now().UTC()

	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		subject = defaultSubject
	}

	submissionToken := newSubmissionToken(now)
	resolved := resolveToken(strings.TrimSpace(in.CallerToken), submissionToken, now)

	msg := &model.ContactMessage{
		Name:            strings.TrimSpace(in.Name),
		Email:           strings.ToLower(strings.TrimSpace(in.Email)),
		Subject:         subject,
		Message:         strings.TrimSpace(in.Message),
		Read:            false,
		SubmissionToken: submissionToken,
		Token:           resolved.value,
		TokenExpiry:     resolved.expiry,
	}

	if err := s.repo.Save(ctx, msg); err != nil {
		if s.allowDegraded {
			slog.Warn("contact persistence skipped, acknowledging anyway",
				"submission_token", submissionToken, "error", err)
			msg.CreatedAt = now
			return &SubmitContactResult{Message: msg, Persisted: false}, nil
		}
		return nil, fmt.Errorf("save contact: %w", err)
	}

	slog.Info("contact saved", "id", msg.ID, "submission_token", submissionToken,
		"has_caller_token", resolved.supplied)
	return &SubmitContactResult{Message: msg, Persisted: true}, nil
}

// List returns all contact messages, newest first.
func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx)
}

// ListByToken returns messages matching the given stored token exactly.
func (s *contactServiceImpl) ListByToken(ctx context.Context, token string) ([]*model.ContactMessage, error) {
	return s.repo.ListByToken(ctx, token)
}

// MarkRead flags a message as read.
func (s *contactServiceImpl) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

// Delete removes a message.
func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Stats returns aggregate counts over stored messages.
func (s *contactServiceImpl) Stats(ctx context.Context) (*model.ContactStats, error) {
	return s.repo.Stats(ctx)
}
