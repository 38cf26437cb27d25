package hr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/BerryBytes/hrctl/internal/apiclient"
	"github.com/BerryBytes/hrctl/models"
)

const maxPages = 100

// ErrPageLimit is returned when a listing still has a next page after
// maxPages pages were read.
var ErrPageLimit = fmt.Errorf("listing exceeds %d pages", maxPages)

// ListOptions filters a list endpoint. All follows the "next" links of a
// paginated answer until the last page.
type ListOptions struct {
	Query url.Values
	All   bool
}

// Service groups the typed HR resource calls on top of one API client.
type Service struct {
	Client apiclient.Requester
}

func NewService(client apiclient.Requester) *Service {
	return &Service{Client: client}
}

func (s *Service) get(ctx context.Context, path string, query url.Values, out any) error {
	var opts []apiclient.RequestOption
	if len(query) > 0 {
		opts = append(opts, apiclient.WithQuery(query))
	}
	resp, err := s.Client.Request(ctx, http.MethodGet, path, nil, opts...)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

func (s *Service) send(ctx context.Context, method, path string, body, out any) error {
	resp, err := s.Client.Request(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return resp.Decode(out)
}

// list reads a collection that the backend returns either as a bare array or
// as a {"count","next","previous","results"} page.
func list[T any](ctx context.Context, s *Service, path string, opts ListOptions) ([]T, error) {
	var items []T
	query := opts.Query

	for page := 0; page < maxPages; page++ {
		var reqOpts []apiclient.RequestOption
		if len(query) > 0 {
			reqOpts = append(reqOpts, apiclient.WithQuery(query))
		}

		resp, err := s.Client.Request(ctx, http.MethodGet, path, nil, reqOpts...)
		if err != nil {
			return nil, err
		}

		batch, next, err := decodeList[T](resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		items = append(items, batch...)

		if !opts.All || next == "" {
			return items, nil
		}
		path, query = next, nil
	}
	return nil, ErrPageLimit
}

func decodeList[T any](body []byte) ([]T, string, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, "", nil
	}

	if body[0] == '[' {
		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, "", err
		}
		return items, "", nil
	}

	var page models.Page[T]
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, "", err
	}
	next := ""
	if page.Next != nil {
		next = *page.Next
	}
	return page.Results, next, nil
}
