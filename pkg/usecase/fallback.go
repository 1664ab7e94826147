package usecase

import (
	"time"

	"github.com/rahulpawar166/folio/pkg/domain/model"
)

const (
	demoRepoURL    = "https://github.com/rahulpawar166"
	demoArticleURL = "https://medium.com/@rahulpawar166"
)

// DemoRepositories is shown when the repository listing fails or is empty. A new slice is returned
// on every call.
func DemoRepositories() []*model.Repository {
	return []*model.Repository{
		{
			Name:        "Screenshot-Resizer",
			Description: "macOS tool to batch‑resize App Store screenshots with ZIP export.",
			Language:    "Swift",
			PushedAt:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			URL:         demoRepoURL,
		},
		{
			Name:        "Companion-Kit",
			Description: "Xcode extensions for AI‑powered refactors, bug‑spotting, and docs.",
			Language:    "Swift",
			PushedAt:    time.Date(2025, 5, 18, 0, 0, 0, 0, time.UTC),
			URL:         demoRepoURL,
		},
		{
			Name:        "Memory-Capsule",
			Description: "Send time‑locked digital messages with tasteful animations.",
			Language:    "SwiftUI",
			PushedAt:    time.Date(2025, 4, 22, 0, 0, 0, 0, time.UTC),
			URL:         demoRepoURL,
		},
	}
}

// DemoArticles is shown when the feed fails or is empty.
func DemoArticles() []*model.Article {
	return []*model.Article{
		{
			Title:       "SwiftUI Animations: Designing Delight",
			Link:        demoArticleURL,
			PublishedAt: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			Categories:  []string{"SwiftUI", "Animation"},
		},
		{
			Title:       "From CocoaPods to SPM: Faster Builds",
			Link:        demoArticleURL,
			PublishedAt: time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC),
			Categories:  []string{"SPM", "Tooling"},
		},
		{
			Title:       "Testing iOS at Scale: KIF + XCTest",
			Link:        demoArticleURL,
			PublishedAt: time.Date(2024, 10, 21, 0, 0, 0, 0, time.UTC),
			Categories:  []string{"Testing"},
		},
	}
}
