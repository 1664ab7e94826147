package usecase

// Export unexported functions for testing
var (
	RepositoryNoticeForTest = repositoryNotice
	ArticleNoticeForTest    = articleNotice
)
