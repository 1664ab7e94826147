package types

type (
	GitHubAccount string
	GitHubRepoID  int64
	RepoName      string
	Language      string
)

func (x GitHubAccount) String() string { return string(x) }
