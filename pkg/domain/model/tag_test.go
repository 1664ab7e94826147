package model_test

import (
	"regexp"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rahulpawar166/folio/pkg/domain/model"
)

func TestTaggerInfer(t *testing.T) {
	type testCase struct {
		repo model.Repository
		want []string
	}

	runTest := func(tc testCase) func(t *testing.T) {
		return func(t *testing.T) {
			got := model.DefaultTagger().Infer(&tc.repo)
			gt.V(t, got).Equal(tc.want)
		}
	}

	t.Run("language only", runTest(testCase{
		repo: model.Repository{Name: "tool", Language: "Go"},
		want: []string{"Go"},
	}))

	t.Run("no language and no hint", runTest(testCase{
		repo: model.Repository{Name: "notes"},
		want: []string{},
	}))

	t.Run("kotlin language implies android", runTest(testCase{
		repo: model.Repository{Name: "tracker", Language: "Kotlin"},
		want: []string{"Kotlin", "Android"},
	}))

	t.Run("swiftui description implies macOS", runTest(testCase{
		repo: model.Repository{Name: "Widgets", Language: "Swift", Description: "A SwiftUI playground"},
		want: []string{"Swift", "SwiftUI", "macOS"},
	}))

	t.Run("iphone app", runTest(testCase{
		repo: model.Repository{Name: "Companion-Kit", Language: "Swift", Description: "Companion app for iPhone using Combine"},
		want: []string{"Swift", "Combine", "iOS"},
	}))

	t.Run("react name and web", runTest(testCase{
		repo: model.Repository{Name: "react-dashboard", Language: "JavaScript", Description: "dashboard"},
		want: []string{"JavaScript", "React", "Web"},
	}))

	t.Run("duplicates keep first occurrence", runTest(testCase{
		repo: model.Repository{Name: "android-kotlin", Language: "Kotlin", Description: "kotlin android sample"},
		want: []string{"Kotlin", "Android"},
	}))

	t.Run("capped at five", runTest(testCase{
		repo: model.Repository{
			Name:        "everything",
			Language:    "Swift",
			Description: "SwiftUI with Combine and async/await on iOS backed by Firebase and a node service",
		},
		want: []string{"Swift", "SwiftUI", "Combine", "Swift Concurrency", "Node"},
	}))

	t.Run("RestSync is macOS and never iOS", runTest(testCase{
		repo: model.Repository{Name: "RestSync", Language: "Swift", Description: "REST client for iOS and iPad"},
		want: []string{"Swift", "macOS"},
	}))

	t.Run("RestSync keeps macOS when the cap is reached", runTest(testCase{
		repo: model.Repository{Name: "RestSync", Language: "Swift", Description: "combine async kotlin react node firebase"},
		want: []string{"Swift", "Combine", "Swift Concurrency", "Kotlin", "macOS"},
	}))

	t.Run("RestSync without description", runTest(testCase{
		repo: model.Repository{Name: "RestSync"},
		want: []string{"macOS"},
	}))
}

func TestTaggerCustomRules(t *testing.T) {
	tagger := model.NewTagger(
		[]model.TagRule{
			{Tag: "CLI", Pattern: regexp.MustCompile(`\bcli\b`), Scope: model.InDescription},
			{Tag: "Tooling", Pattern: regexp.MustCompile(`tool`), Scope: model.InName},
		},
		[]model.TagOverride{
			{Name: "mytool", Remove: []string{"Go"}},
		},
	)

	gt.V(t, tagger.Infer(&model.Repository{Name: "MyTool", Language: "Go", Description: "a CLI"})).
		Equal([]string{"CLI", "Tooling"})
	gt.V(t, tagger.Infer(&model.Repository{Name: "other", Language: "Go", Description: "a tool"})).
		Equal([]string{"Go"})
}

func TestTaggerOverrideAfterCap(t *testing.T) {
	tagger := model.NewTagger(
		[]model.TagRule{
			{Tag: "A", Pattern: regexp.MustCompile(`a`), Scope: model.InDescription},
			{Tag: "B", Pattern: regexp.MustCompile(`b`), Scope: model.InDescription},
			{Tag: "C", Pattern: regexp.MustCompile(`c`), Scope: model.InDescription},
			{Tag: "D", Pattern: regexp.MustCompile(`d`), Scope: model.InDescription},
			{Tag: "E", Pattern: regexp.MustCompile(`e`), Scope: model.InDescription},
			{Tag: "F", Pattern: regexp.MustCompile(`f`), Scope: model.InDescription},
		},
		[]model.TagOverride{
			{Name: "full", Add: []string{"X", "Y"}},
			{Name: "swap", Add: []string{"X"}, Remove: []string{"A"}},
			{Name: "present", Add: []string{"C"}},
		},
	)

	gt.V(t, tagger.Infer(&model.Repository{Name: "full", Description: "a b c d e f"})).
		Equal([]string{"A", "B", "C", "X", "Y"})
	gt.V(t, tagger.Infer(&model.Repository{Name: "swap", Description: "a b c d e f"})).
		Equal([]string{"B", "C", "D", "E", "X"})
	gt.V(t, tagger.Infer(&model.Repository{Name: "present", Description: "a b c d e f"})).
		Equal([]string{"A", "B", "C", "D", "E"})
}
