package model

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rahulpawar166/folio/pkg/domain/types"
)

// ContactMessage is the contact form input. It is never delivered by the server; it is turned into
// a mailto URI for the visitor's mail client.
type ContactMessage struct {
	FirstName string             `json:"first_name"`
	LastName  string             `json:"last_name"`
	Email     types.EmailAddress `json:"email"`
	Subject   string             `json:"subject"`
	Message   string             `json:"message"`
}

// ContactValidationMessage is shown when any field of the contact form is blank.
const ContactValidationMessage = "Please fill out all fields."

// Validate requires every field to be non-blank. The email format is not checked.
func (x *ContactMessage) Validate() error {
	fields := []string{x.FirstName, x.LastName, string(x.Email), x.Subject, x.Message}
	for _, field := range fields {
		if strings.TrimSpace(field) == "" {
			return goerr.Wrap(types.ErrValidationFailed, ContactValidationMessage)
		}
	}
	return nil
}

func (x *ContactMessage) Body() string {
	return fmt.Sprintf("From: %s %s\nEmail: %s\n\n%s", x.FirstName, x.LastName, x.Email, x.Message)
}

// MailtoURI builds the mailto link addressed to recipient. Subject and body are percent-encoded with
// %20 for spaces so that mail clients do not show '+'.
func (x *ContactMessage) MailtoURI(recipient types.EmailAddress) string {
	query := "subject=" + escapeComponent(x.Subject) +
		"&body=" + escapeComponent(x.Body())
	return "mailto:" + string(recipient) + "?" + query
}

func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
