// Package resilience groups the fault tolerance helpers used around outbound calls:
// the language model providers, wire feeds and source page extraction.
//
//	cb := circuitbreaker.New(circuitbreaker.FeedConfig())
//	items, err := circuitbreaker.Run(cb, func() ([]Item, error) {
//	    return parse(ctx, url)
//	})
//
//	err := retry.WithBackoff(ctx, retry.TextGenConfig(), func() error {
//	    return call()
//	})
package resilience
