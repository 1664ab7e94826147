package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rahulpawar166/folio/pkg/domain/model"
	"github.com/rahulpawar166/folio/pkg/domain/types"
	"github.com/rahulpawar166/folio/pkg/infra"
	"github.com/rahulpawar166/folio/pkg/usecase"
)

func TestComposeContact(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(infra.New(), usecase.WithProfile(&model.Profile{
		ContactEmail: "rahulpawar166@gmail.com",
	}))

	t.Run("valid form", func(t *testing.T) {
		uri, err := uc.ComposeContact(ctx, &model.ContactMessage{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Subject:   "Hi",
			Message:   "Hello",
		})
		gt.NoError(t, err)
		gt.True(t, strings.HasPrefix(uri, "mailto:rahulpawar166@gmail.com?subject=Hi&body="))
	})

	t.Run("blank field", func(t *testing.T) {
		_, err := uc.ComposeContact(ctx, &model.ContactMessage{FirstName: "Jane"})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.S(t, err.Error()).Contains("Please fill out all fields.")
	})

	t.Run("no contact email configured", func(t *testing.T) {
		uc := usecase.New(infra.New())
		_, err := uc.ComposeContact(ctx, &model.ContactMessage{
			FirstName: "a", LastName: "b", Email: "c", Subject: "d", Message: "e",
		})
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
