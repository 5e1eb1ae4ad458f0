package handler

import "sinanews/pkg/news"

type ArticleResponse struct {
	Title string  `json:"title"`
	URL   string  `json:"url"`
	Date  *string `json:"date"`
}

type NewsResponse struct {
	Symbol    string            `json:"symbol"`
	NewsCount int               `json:"news_count"`
	Articles  []ArticleResponse `json:"articles"`
}

func toNewsResponse(res *news.Result) NewsResponse {
	articles := make([]ArticleResponse, 0, len(res.Articles))
	for _, a := range res.Articles {
		articles = append(articles, ArticleResponse{
			Title: a.Title,
			URL:   a.URL,
			Date:  a.Date,
		})
	}

	return NewsResponse{
		Symbol:    res.Symbol.String(),
		NewsCount: res.Count,
		Articles:  articles,
	}
}
