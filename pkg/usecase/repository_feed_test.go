package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/rahulpawar166/folio/pkg/domain/mock"
	"github.com/rahulpawar166/folio/pkg/domain/model"
	"github.com/rahulpawar166/folio/pkg/domain/types"
	"github.com/rahulpawar166/folio/pkg/infra"
	"github.com/rahulpawar166/folio/pkg/usecase"
)

func TestFetchRepositories(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	}

	mockGH := &mock.GitHubMock{
		ListRepositoriesFunc: func(ctx context.Context, account types.GitHubAccount) ([]*model.Repository, error) {
			return []*model.Repository{
				{Name: "web-app", Language: "TypeScript", PushedAt: day(30)},
				{Name: "fork", Language: "Swift", PushedAt: day(29), IsFork: true},
				{Name: "old-swift", Language: "Swift", PushedAt: day(1)},
				{Name: "android", Language: "Kotlin", PushedAt: day(15)},
			}, nil
		},
	}

	uc := usecase.New(infra.New(infra.WithGitHub(mockGH)),
		usecase.WithGitHubAccount("rahulpawar166"),
	)

	repos, err := uc.FetchRepositories(context.Background())
	gt.NoError(t, err)

	var got []types.RepoName
	for _, repo := range repos {
		got = append(got, repo.Name)
	}
	gt.V(t, got).Equal([]types.RepoName{"android", "old-swift", "web-app"})

	calls := mockGH.ListRepositoriesCalls()
	gt.V(t, len(calls)).Equal(1)
	gt.V(t, calls[0].Account).Equal("rahulpawar166")
}

func TestFetchRepositoriesCustomPriority(t *testing.T) {
	mockGH := &mock.GitHubMock{
		ListRepositoriesFunc: func(ctx context.Context, account types.GitHubAccount) ([]*model.Repository, error) {
			return []*model.Repository{
				{Name: "swift", Language: "Swift", PushedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
				{Name: "go", Language: "Go", PushedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
	uc := usecase.New(infra.New(infra.WithGitHub(mockGH)),
		usecase.WithGitHubAccount("someone"),
		usecase.WithPriorityLanguages("Go"),
	)

	repos, err := uc.FetchRepositories(context.Background())
	gt.NoError(t, err)
	gt.V(t, repos[0].Name).Equal("go")
}

func TestBuildProjects(t *testing.T) {
	uc := usecase.New(infra.New(),
		usecase.WithFeatured("RestSync", "iSEN"),
		usecase.WithBlocklist("Eulerity"),
	)

	t.Run("featured first and blocklist removed", func(t *testing.T) {
		projects := uc.BuildProjects([]*model.Repository{
			{Name: "Eulerity", Language: "Swift"},
			{Name: "other", Language: "Swift"},
			{Name: "iSEN", Language: "Swift"},
			{Name: "RestSync", Language: "Swift", Description: "for iOS"},
		})
		gt.V(t, len(projects)).Equal(3)
		gt.V(t, projects[0].Name).Equal("RestSync")
		gt.V(t, projects[0].Tags).Equal([]string{"Swift", "macOS"})
		gt.V(t, projects[1].Name).Equal("iSEN")
		gt.V(t, projects[2].Name).Equal("other")
	})

	t.Run("empty list is replaced by demo repositories", func(t *testing.T) {
		projects := uc.BuildProjects(nil)
		gt.V(t, len(projects)).Equal(3)
		gt.V(t, projects[0].Name).Equal("Screenshot-Resizer")
		gt.V(t, projects[0].Updated).Equal("Jun 01, 2025")
	})

	t.Run("at most nine projects", func(t *testing.T) {
		var repos []*model.Repository
		for i := range 20 {
			repos = append(repos, &model.Repository{Name: types.RepoName(string(rune('a' + i)))})
		}
		gt.V(t, len(uc.BuildProjects(repos))).Equal(model.MaxProjects)
	})
}

func TestRepositoryNotice(t *testing.T) {
	err := goerr.Wrap(&types.FetchError{Reason: types.ReasonListing, Status: http.StatusForbidden}, "failed")
	gt.V(t, usecase.RepositoryNoticeForTest(err)).
		Equal("GitHub fetch issue: listing error: 403. Showing a subset if available.")

	gt.V(t, usecase.RepositoryNoticeForTest(goerr.New("dial tcp: connection refused"))).
		Equal("GitHub fetch issue: Unable to fetch repositories. Showing a subset if available.")
}

func TestDemoRepositories(t *testing.T) {
	a := usecase.DemoRepositories()
	a[0].Name = "changed"
	b := usecase.DemoRepositories()
	gt.V(t, b[0].Name).Equal("Screenshot-Resizer")
}
