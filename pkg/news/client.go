package news

import "context"

// Article is one news entry extracted from a listing page.
// Date is nil when the page shows no date next to the link.
type Article struct {
	Title string
	URL   string
	Date  *string
}

// Result bundles the articles found for one symbol lookup.
// Count always equals len(Articles); articles keep page order.
type Result struct {
	Symbol   Symbol
	Count    int
	Articles []Article
}

type NewsClient interface {
	FetchNews(ctx context.Context, symbol Symbol, limit int) (*Result, error)
	Name() string
}
