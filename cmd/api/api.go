package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/BerryBytes/hrctl/internal/apiclient"
	"github.com/BerryBytes/hrctl/internal/app"

	"github.com/spf13/cobra"
)

var methods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

func NewAPICmd(a *app.App) *cobra.Command {
	var (
		data    string
		query   []string
		headers []string
	)

	apiCmd := &cobra.Command{
		Use:   "api METHOD PATH",
		Short: "Send an authenticated request to the HR API",
		Long: `Send a raw request through the authenticated client. PATH is relative to
the configured base URL, for example "hrctl api GET /employees/".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			method := strings.ToUpper(args[0])
			if !methods[method] {
				return fmt.Errorf("unsupported method %q", args[0])
			}

			var opts []apiclient.RequestOption

			if len(query) > 0 {
				values, err := parsePairs(query, "=")
				if err != nil {
					return fmt.Errorf("invalid --query: %w", err)
				}
				opts = append(opts, apiclient.WithQuery(values))
			}

			if len(headers) > 0 {
				values, err := parsePairs(headers, ":")
				if err != nil {
					return fmt.Errorf("invalid --header: %w", err)
				}
				for k, vs := range values {
					for _, v := range vs {
						opts = append(opts, apiclient.WithHeader(k, strings.TrimSpace(v)))
					}
				}
			}

			var body any
			if data != "" {
				if !json.Valid([]byte(data)) {
					return errors.New("--data must be valid JSON")
				}
				body = json.RawMessage(data)
			}

			resp, err := a.Client.Request(cmd.Context(), method, args[1], body, opts...)
			if err != nil {
				var httpErr *apiclient.HTTPError
				if errors.As(err, &httpErr) && len(httpErr.Payload) > 0 {
					writeBody(cmd, httpErr.Payload)
				}
				return err
			}

			writeBody(cmd, resp.Body)
			return nil
		},
	}

	apiCmd.Flags().StringVarP(&data, "data", "d", "", "JSON request body")
	apiCmd.Flags().StringArrayVarP(&query, "query", "q", nil, "Query parameter as key=value (repeatable)")
	apiCmd.Flags().StringArrayVarP(&headers, "header", "H", nil, "Extra header as Name: value (repeatable)")

	return apiCmd
}

func parsePairs(pairs []string, sep string) (url.Values, error) {
	values := url.Values{}
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, sep)
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key%svalue, got %q", sep, p)
		}
		values.Add(k, v)
	}
	return values, nil
}

// writeBody pretty prints JSON bodies and copies anything else as is.
func writeBody(cmd *cobra.Command, body []byte) {
	if len(bytes.TrimSpace(body)) == 0 {
		return
	}

	out := cmd.OutOrStdout()
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		_, _ = out.Write(body)
		fmt.Fprintln(out)
		return
	}
	buf.WriteByte('\n')
	_, _ = buf.WriteTo(out)
}
