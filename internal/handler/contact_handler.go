package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/auth"
)

// emailRe checks the local@domain.tld shape; anything stricter belongs to a
// confirmation-mail flow, not here.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactHandler handles contact form submission and message management.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

type submitData struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	HasToken bool   `json:"hasToken"`
	Token    string `json:"token"`
}

type submitResponse struct {
	Success         bool       `json:"success"`
	Message         string     `json:"message"`
	SubmissionToken string     `json:"submissionToken"`
	Data            submitData `json:"data"`
}

// Submit handles POST /api/contact.
// name, email and message are required; subject and token are optional.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)

	if name == "" || email == "" || message == "" {
		writeError(w, http.StatusBadRequest, "Name, email, and message are required")
		return
	}
	if !emailRe.MatchString(email) {
		writeError(w, http.StatusBadRequest, "Please enter a valid email address")
		return
	}

	result, err := h.contactService.Submit(r.Context(), service.SubmitContactInput{
		Name:        name,
		Email:       email,
		Subject:     req.Subject,
		Message:     message,
		CallerToken: req.Token,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to send message. Please try again.")
		return
	}

	// The caller token is never echoed in full, only a truncated preview.
	hasToken := req.Token != "" && req.Token != "null"
	tokenPreview := "No token provided"
	if hasToken {
		tokenPreview = auth.Preview(req.Token)
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		Success:         true,
		Message:         "Message sent successfully!",
		SubmissionToken: result.Message.SubmissionToken,
		Data: submitData{
			ID:       result.Message.ID,
			Name:     result.Message.Name,
			Email:    result.Message.Email,
			HasToken: hasToken,
			Token:    tokenPreview,
		},
	})
}

// listResponse is the JSON response for the authenticated full listing.
type listResponse struct {
	Success           bool                    `json:"success"`
	AuthenticatedWith string                  `json:"authenticatedWith"`
	TokenUsed         string                  `json:"tokenUsed"`
	Count             int                     `json:"count"`
	Contacts          []*model.ContactMessage `json:"contacts"`
}

// List handles GET /api/contacts (behind auth.RequireAuth).
// Returns every message, newest first, with no pagination.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token required")
		return
	}
	rawToken, _ := auth.RawTokenFromContext(r.Context())

	contacts, err := h.contactService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching contacts")
		return
	}

	// Return [] not null for empty lists
	if contacts == nil {
		contacts = []*model.ContactMessage{}
	}

	writeJSON(w, http.StatusOK, listResponse{
		Success:           true,
		AuthenticatedWith: claims.Username,
		TokenUsed:         auth.Preview(rawToken),
		Count:             len(contacts),
		Contacts:          contacts,
	})
}

// ListByToken handles GET /api/contacts/token/{token}.
// Deliberately public: the token is how a submitter without credentials
// retrieves their own past submissions.
func (h *ContactHandler) ListByToken(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")

	contacts, err := h.contactService.ListByToken(r.Context(), token)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching contacts")
		return
	}

	if contacts == nil {
		contacts = []*model.ContactMessage{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"token":    auth.Preview(token),
		"count":    len(contacts),
		"contacts": contacts,
	})
}

// MarkRead handles PUT /api/contacts/{id}/read (behind auth.RequireAuth).
// Idempotent: marking an already-read message succeeds again.
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.contactService.MarkRead(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Contact not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error updating contact")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Marked as read",
	})
}

// Delete handles DELETE /api/contacts/{id} (behind auth.RequireAuth).
// A second delete of the same id yields 404; callers treating 404 as
// "already gone" get idempotent semantics.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.contactService.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Contact not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error deleting contact")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Contact deleted",
	})
}

// Stats handles GET /api/stats (behind auth.RequireAuth).
func (h *ContactHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.contactService.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching stats")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats":   stats,
	})
}
