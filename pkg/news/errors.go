package news

import "errors"

// Failure kinds for a news lookup. Each FetchNews call ends in exactly
// one of these or a successful Result; callers discriminate with
// errors.Is and map them to transport status codes.
var (
	ErrInvalidSymbol = errors.New("invalid stock symbol")
	ErrFetch         = errors.New("news fetch failed")
	ErrParse         = errors.New("news parse failed")
	ErrNoNews        = errors.New("no news found")
)
