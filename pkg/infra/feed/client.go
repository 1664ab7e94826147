package feed

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rahulpawar166/folio/pkg/domain/interfaces"
	"github.com/rahulpawar166/folio/pkg/domain/model"
	"github.com/rahulpawar166/folio/pkg/domain/types"
	"github.com/rahulpawar166/folio/pkg/utils/logging"
	"github.com/rahulpawar166/folio/pkg/utils/safe"
)

// DefaultBridgeURL is the public rss2json endpoint.
const DefaultBridgeURL types.FeedBridgeURL = "https://api.rss2json.com/v1/api.json"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches an RSS feed converted to JSON by an rss2json compatible bridge.
type Client struct {
	bridgeURL  types.FeedBridgeURL
	httpClient HTTPClient
}

var _ interfaces.FeedBridge = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(bridgeURL types.FeedBridgeURL, options ...Option) (*Client, error) {
	if bridgeURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "feed bridge URL is empty")
	}
	if _, err := url.Parse(bridgeURL.String()); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid feed bridge URL", goerr.V("url", bridgeURL))
	}

	client := &Client{
		bridgeURL:  bridgeURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}
	return client, nil
}

func (x *Client) requestURL(feedURL types.FeedURL) (string, error) {
	u, err := url.Parse(x.bridgeURL.String())
	if err != nil {
		return "", goerr.Wrap(err, "failed to parse feed bridge URL", goerr.V("url", x.bridgeURL))
	}
	q := u.Query()
	q.Set("rss_url", feedURL.String())
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FetchFeed sends one request to the bridge and maps its items in feed order. A non-2xx response
// is reported as *types.FetchError.
func (x *Client) FetchFeed(ctx context.Context, feedURL types.FeedURL) ([]*model.Article, error) {
	reqURL, err := x.requestURL(feedURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create feed request", goerr.V("url", reqURL))
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Accept", "application/json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch feed", goerr.V("feed", feedURL))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, goerr.Wrap(&types.FetchError{Reason: types.ReasonFeed, Status: resp.StatusCode},
			"feed bridge returned error status",
			goerr.V("feed", feedURL),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	var doc bridgeResponse
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidFeedData, "failed to decode feed response",
			goerr.V("feed", feedURL),
			goerr.V("error", err.Error()),
		)
	}
	if doc.Status != "" && doc.Status != "ok" {
		return nil, goerr.Wrap(types.ErrInvalidFeedData, "feed bridge reported failure",
			goerr.V("feed", feedURL),
			goerr.V("status", doc.Status),
			goerr.V("message", doc.Message),
		)
	}

	articles := make([]*model.Article, 0, len(doc.Items))
	for _, item := range doc.Items {
		article := item.toModel()
		logging.From(ctx).Log(ctx, logging.LevelTrace, "feed item",
			slog.String("title", article.Title),
			slog.String("link", article.Link),
		)
		articles = append(articles, article)
	}

	logging.From(ctx).Debug("Fetched feed",
		slog.Any("feed", feedURL),
		slog.Int("count", len(articles)),
	)

	return articles, nil
}

type bridgeResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Items   []bridgeItem `json:"items"`
}

type bridgeItem struct {
	Title       string          `json:"title"`
	Link        string          `json:"link"`
	PubDate     string          `json:"pubDate"`
	Author      string          `json:"author"`
	Thumbnail   string          `json:"thumbnail"`
	Description string          `json:"description"`
	Content     string          `json:"content"`
	Categories  []string        `json:"categories"`
	Enclosure   json.RawMessage `json:"enclosure"`
}

// enclosureLink returns enclosure.link. The bridge sends an empty array instead of an object when
// the item has no enclosure.
func (x *bridgeItem) enclosureLink() string {
	var enclosure struct {
		Link string `json:"link"`
	}
	if len(x.Enclosure) == 0 || x.Enclosure[0] != '{' {
		return ""
	}
	if err := json.Unmarshal(x.Enclosure, &enclosure); err != nil {
		return ""
	}
	return enclosure.Link
}

func (x *bridgeItem) toModel() *model.Article {
	body := x.Content
	if body == "" {
		body = x.Description
	}

	thumbnail := x.Thumbnail
	if thumbnail == "" {
		thumbnail = x.enclosureLink()
	}

	return &model.Article{
		Title:             x.Title,
		Link:              x.Link,
		PublishedAt:       ParsePubDate(x.PubDate),
		Categories:        x.Categories,
		Author:            x.Author,
		BodyMarkup:        body,
		ExplicitThumbnail: thumbnail,
	}
}

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822,
	time.RFC822Z,
	time.RFC850,
	time.ANSIC,
	time.UnixDate,
	time.RubyDate,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2006-01-02",
}

// ParsePubDate parses the publication date of a feed item. The bridge reports UTC without a zone.
// An unparsable value yields the zero time.
func ParsePubDate(pubDate string) time.Time {
	pubDate = strings.TrimSpace(pubDate)
	if pubDate == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, pubDate); err == nil {
			return t
		}
	}
	return time.Time{}
}
