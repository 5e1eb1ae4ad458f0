package news

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

const (
	defaultSinaBaseURL = "https://vip.stock.finance.sina.com.cn/corp/view/vCB_AllNewsStock.php"
	defaultSinaOrigin  = "https://vip.stock.finance.sina.com.cn"

	// DefaultLimit and MaxLimit bound the per-request article count.
	DefaultLimit = 5
	MaxLimit     = 20
)

var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// SinaClient scrapes the Sina Finance "all news for stock" listing page.
type SinaClient struct {
	baseURL    string
	origin     string
	httpClient *http.Client
	// encoding decodes the response body. Sina serves GBK and mislabels
	// or omits the charset, so the declared one is ignored entirely.
	encoding encoding.Encoding
}

func NewSinaClient() *SinaClient {
	return &SinaClient{
		baseURL:    defaultSinaBaseURL,
		origin:     defaultSinaOrigin,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		encoding:   simplifiedchinese.GBK,
	}
}

// NewSinaClientWithBaseURL points the client at an alternate listing
// endpoint. Links on the page stay resolved against origin.
func NewSinaClientWithBaseURL(baseURL, origin string) *SinaClient {
	c := NewSinaClient()
	c.baseURL = baseURL
	c.origin = origin
	return c
}

func (c *SinaClient) Name() string {
	return "Sina"
}

// FetchNews returns up to limit news entries for symbol, in page order.
// Limits outside [1, MaxLimit] fall back to DefaultLimit. The call is
// single-shot: no retries, no state kept between calls.
func (c *SinaClient) FetchNews(ctx context.Context, symbol Symbol, limit int) (*Result, error) {
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	url := fmt.Sprintf("%s?symbol=%s&Page=1", c.baseURL, symbol)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	// Sina rejects or reshapes responses for non-browser clients.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9,en;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetch, resp.StatusCode)
	}

	// The decoder substitutes U+FFFD for invalid byte sequences instead
	// of failing; a partially garbled title beats no result at all.
	body := transform.NewReader(resp.Body, c.encoding.NewDecoder())

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	articles := c.extract(doc, limit)
	if len(articles) == 0 {
		return nil, fmt.Errorf("%w: symbol %s has no news on page 1", ErrNoNews, symbol)
	}

	return &Result{Symbol: symbol, Count: len(articles), Articles: articles}, nil
}

// extract walks the anchors under the news date list in document order,
// keeping at most limit of them. Anchors whose href is neither
// root-relative nor absolute http(s) are skipped without using a slot.
func (c *SinaClient) extract(doc *goquery.Document, limit int) []Article {
	articles := make([]Article, 0, limit)

	doc.Find("div.datelist a").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href := link.AttrOr("href", "")
		switch {
		case strings.HasPrefix(href, "/"):
			href = c.origin + href
		case strings.HasPrefix(href, "http"):
			// already absolute
		default:
			// javascript:, fragment or empty href: not a news link
			return true
		}

		article := Article{
			Title: strings.TrimSpace(link.Text()),
			URL:   href,
		}
		if date := datePattern.FindString(link.Parent().Text()); date != "" {
			article.Date = &date
		}

		articles = append(articles, article)
		return len(articles) < limit
	})

	return articles
}
