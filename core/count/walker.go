// Package count implements cursor-paginated resource counting.
package count

import (
	"context"

	"tfc-cost/tfc"
)

// Pager issues listing requests. Get takes an API-relative path for the
// first page; GetLink takes the server-supplied next link verbatim.
type Pager interface {
	Get(ctx context.Context, path string) (*tfc.Document, error)
	GetLink(ctx context.Context, link string) (*tfc.Document, error)
}

// Walk follows the next-page link chain starting at path and returns the
// total number of items across all pages. The chain is server-bounded,
// so there is no page cap. Any failure discards the partial count.
func Walk(ctx context.Context, p Pager, path string) (int, error) {
	total := 0
	doc, err := p.Get(ctx, path)
	for {
		if err != nil {
			return 0, err
		}
		total += len(doc.Data)

		next := doc.Links.Next
		if next == nil || *next == "" {
			return total, nil
		}
		doc, err = p.GetLink(ctx, *next)
	}
}

// WalkAll follows the same link chain but accumulates the resource
// objects themselves, preserving server order across pages.
func WalkAll(ctx context.Context, p Pager, path string) ([]tfc.Resource, error) {
	var resources []tfc.Resource
	doc, err := p.Get(ctx, path)
	for {
		if err != nil {
			return nil, err
		}
		resources = append(resources, doc.Data...)

		next := doc.Links.Next
		if next == nil || *next == "" {
			return resources, nil
		}
		doc, err = p.GetLink(ctx, *next)
	}
}
