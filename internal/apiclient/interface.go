package apiclient

import "context"

type Requester interface {
	Request(ctx context.Context, method, path string, body any, opts ...RequestOption) (*Response, error)
}

type Refresher interface {
	RefreshNow(ctx context.Context) error
}
