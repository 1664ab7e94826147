package model_test

import (
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/rahulpawar166/folio/pkg/domain/model"
)

func TestArticleCoverImageURL(t *testing.T) {
	t.Run("first image of body wins over thumbnail", func(t *testing.T) {
		a := &model.Article{
			BodyMarkup:        `<p>intro</p><figure><img src="https://cdn/a.png"></figure><img src="https://cdn/b.png">`,
			ExplicitThumbnail: "https://cdn/thumb.png",
		}
		gt.V(t, a.CoverImageURL()).Equal("https://cdn/a.png")
	})

	t.Run("thumbnail when body has no image", func(t *testing.T) {
		a := &model.Article{BodyMarkup: "<p>text only</p>", ExplicitThumbnail: "https://cdn/thumb.png"}
		gt.V(t, a.CoverImageURL()).Equal("https://cdn/thumb.png")
	})

	t.Run("empty when neither is available", func(t *testing.T) {
		a := &model.Article{BodyMarkup: "<p>text only</p>"}
		gt.V(t, a.CoverImageURL()).Equal("")
	})
}

func TestArticleExcerpt(t *testing.T) {
	t.Run("long body is truncated", func(t *testing.T) {
		words := make([]string, 50)
		for i := range words {
			words[i] = "word"
		}
		a := &model.Article{BodyMarkup: "<p>" + strings.Join(words, " ") + "</p>"}

		excerpt := a.Excerpt()
		gt.True(t, strings.HasSuffix(excerpt, "…"))
		gt.V(t, len(strings.Fields(strings.TrimSuffix(excerpt, "…")))).Equal(model.ExcerptWords)
	})

	t.Run("short body is kept", func(t *testing.T) {
		a := &model.Article{BodyMarkup: "<h3>Title</h3>\n<p>one   two\tthree</p>"}
		gt.V(t, a.Excerpt()).Equal("Title one two three")
	})

	t.Run("empty body", func(t *testing.T) {
		a := &model.Article{}
		gt.V(t, a.Excerpt()).Equal("")
	})
}

func TestNewArticleCard(t *testing.T) {
	a := &model.Article{
		Title:       "Testing iOS at Scale",
		PublishedAt: time.Date(2024, 10, 21, 0, 0, 0, 0, time.UTC),
		Categories:  []string{"a", "b", "c", "d", "e"},
		BodyMarkup:  `<img src="cover.png"><p>hello</p>`,
	}
	card := model.NewArticleCard(a)
	gt.V(t, card.Cover).Equal("cover.png")
	gt.V(t, card.Excerpt).Equal("hello")
	gt.V(t, card.Published).Equal("Oct 21, 2024")
	gt.V(t, card.Labels).Equal([]string{"a", "b", "c", "d"})
	gt.V(t, len(a.Categories)).Equal(5)
}

func TestAssembleArticles(t *testing.T) {
	var articles []*model.Article
	for range 20 {
		articles = append(articles, &model.Article{})
	}
	gt.V(t, len(model.AssembleArticles(articles, model.MaxArticles))).Equal(model.MaxArticles)
	gt.V(t, len(model.AssembleArticles(articles[:3], model.MaxArticles))).Equal(3)
	gt.V(t, len(model.AssembleArticles(nil, model.MaxArticles))).Equal(0)
}
