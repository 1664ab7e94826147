package model

import (
	"time"

	"github.com/rahulpawar166/folio/pkg/utils/markup"
)

const (
	// MaxArticles is the number of articles shown in the writing carousel.
	MaxArticles = 12
	// ExcerptWords is the word budget of an article excerpt.
	ExcerptWords = 42
	// MaxArticleCategories is the number of categories shown per article card.
	MaxArticleCategories = 4
)

// Article is an item of the syndicated writing feed. ExplicitThumbnail is empty when the feed
// provides neither a thumbnail nor an enclosure.
type Article struct {
	Title             string    `json:"title"`
	Link              string    `json:"link"`
	PublishedAt       time.Time `json:"published_at"`
	Categories        []string  `json:"categories"`
	Author            string    `json:"author,omitempty"`
	BodyMarkup        string    `json:"-"`
	ExplicitThumbnail string    `json:"thumbnail,omitempty"`
}

// CoverImageURL returns the first image of the body, or the explicit thumbnail. An empty string
// means the placeholder should be rendered.
func (x *Article) CoverImageURL() string {
	if src := markup.FirstImageSource(x.BodyMarkup); src != "" {
		return src
	}
	return x.ExplicitThumbnail
}

// Excerpt returns the plain text of the body cut to ExcerptWords words.
func (x *Article) Excerpt() string {
	return markup.TruncateWords(markup.PlainText(x.BodyMarkup), ExcerptWords)
}

// ArticleCard is an article prepared for display.
type ArticleCard struct {
	*Article
	Cover     string   `json:"cover,omitempty"`
	Excerpt   string   `json:"excerpt,omitempty"`
	Published string   `json:"published,omitempty"`
	Labels    []string `json:"labels,omitempty"`
}

func NewArticleCard(article *Article) *ArticleCard {
	labels := article.Categories
	if len(labels) > MaxArticleCategories {
		labels = labels[:MaxArticleCategories]
	}

	return &ArticleCard{
		Article:   article,
		Cover:     article.CoverImageURL(),
		Excerpt:   article.Excerpt(),
		Published: DisplayDate(article.PublishedAt),
		Labels:    labels,
	}
}

// AssembleArticles keeps the feed order and truncates to limit.
func AssembleArticles(articles []*Article, limit int) []*Article {
	if limit > 0 && len(articles) > limit {
		return articles[:limit]
	}
	return articles
}
