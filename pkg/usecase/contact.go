package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rahulpawar166/folio/pkg/domain/model"
	"github.com/rahulpawar166/folio/pkg/domain/types"
	"github.com/rahulpawar166/folio/pkg/utils/logging"
)

// ComposeContact validates the contact form and returns a mailto URI addressed to the profile's
// contact email. No mail is sent.
func (x *UseCase) ComposeContact(ctx context.Context, msg *model.ContactMessage) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}
	if x.profile.ContactEmail == "" {
		return "", goerr.Wrap(types.ErrInvalidOption, "contact email is not configured")
	}

	logging.From(ctx).Info("Composed contact mail",
		slog.Any("from", msg.Email),
		slog.Int("message_length", len(msg.Message)),
	)

	return msg.MailtoURI(x.profile.ContactEmail), nil
}
