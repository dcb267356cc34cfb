package model

import "time"

// ContactMessage represents a message submitted via the contact form.
//
// SubmissionToken is the server-generated reference (REF-...) returned to the
// submitter. Token is never stored as NULL: it holds the caller-supplied token
// verbatim when one was given, otherwise it falls back to the submission token
// so every row can be queried uniformly by token. TokenExpiry is set only when
// a caller token was supplied.
type ContactMessage struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Subject         string     `json:"subject"`
	Message         string     `json:"message"`
	Read            bool       `json:"read"`
	SubmissionToken string     `json:"submissionToken"`
	Token           string     `json:"token"`
	TokenExpiry     *time.Time `json:"tokenExpiry,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// ContactStats holds aggregate counts over stored contact messages.
// ContactsWithoutToken should stay zero under the token fallback policy;
// a non-zero value indicates legacy rows created before that policy.
type ContactStats struct {
	TotalContacts        int `json:"totalContacts"`
	ContactsWithToken    int `json:"contactsWithToken"`
	ContactsWithoutToken int `json:"contactsWithoutToken"`
}
