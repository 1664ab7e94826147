package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/rahulpawar166/folio/pkg/domain/model"
)

type UseCase interface {
	LoadPortfolio(ctx context.Context) *model.Portfolio

	LoadPreference(ctx context.Context) (model.DisplayPreference, error)
	SetPreference(ctx context.Context, isDark bool) (model.DisplayPreference, error)
	TogglePreference(ctx context.Context) (model.DisplayPreference, error)

	ComposeContact(ctx context.Context, msg *model.ContactMessage) (string, error)
}
