package cli

import (
	"context"
	"fmt"

	"github.com/rahulpawar166/folio/pkg/cli/config"
	"github.com/rahulpawar166/folio/pkg/domain/model"
	"github.com/rahulpawar166/folio/pkg/domain/types"
	"github.com/rahulpawar166/folio/pkg/infra"
	"github.com/rahulpawar166/folio/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func (x *CLI) contactCommand() *cli.Command {
	var (
		msg     model.ContactMessage
		email   string
		profile config.Profile
	)
	formFlags := []cli.Flag{
		&cli.StringFlag{Name: "first", Usage: "First name", Destination: &msg.FirstName},
		&cli.StringFlag{Name: "last", Usage: "Last name", Destination: &msg.LastName},
		&cli.StringFlag{Name: "email", Usage: "Reply address", Destination: &email},
		&cli.StringFlag{Name: "subject", Usage: "Subject", Destination: &msg.Subject},
		&cli.StringFlag{Name: "message", Usage: "Message", Destination: &msg.Message},
	}

	return &cli.Command{
		Name:  "contact",
		Usage: "Print a mailto link for the contact form",
		Flags: append(formFlags, profile.Flags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			p, err := profile.Load()
			if err != nil {
				return err
			}
			msg.Email = types.EmailAddress(email)

			uc := usecase.New(infra.New(), usecase.WithProfile(p))
			uri, err := uc.ComposeContact(ctx, &msg)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(x.out, uri)
			return err
		},
	}
}
