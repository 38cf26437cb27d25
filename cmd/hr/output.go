package hr

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"

	hrsvc "github.com/BerryBytes/hrctl/internal/hr"
	"github.com/BerryBytes/hrctl/models"

	"github.com/spf13/cobra"
)

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cols ...any) {
	parts := make([]string, len(cols))
	for i, c := range cols {
		s := fmt.Sprint(c)
		if s == "" {
			s = "-"
		}
		parts[i] = s
	}
	fmt.Fprintln(tw, strings.Join(parts, "\t"))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// listFlags are the filters shared by every list command.
type listFlags struct {
	search  string
	filters []string
	all     bool
	output  string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "Free text search")
	cmd.Flags().StringArrayVarP(&f.filters, "filter", "f", nil, "Filter as key=value (repeatable)")
	cmd.Flags().BoolVarP(&f.all, "all", "a", false, "Fetch every page")
	cmd.Flags().StringVarP(&f.output, "output", "o", "table", "Output format (table, json)")
}

func (f *listFlags) options(extra url.Values) (hrsvc.ListOptions, error) {
	query := url.Values{}
	if f.search != "" {
		query.Set("search", f.search)
	}
	for _, p := range f.filters {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return hrsvc.ListOptions{}, fmt.Errorf("invalid filter %q: expected key=value", p)
		}
		query.Add(k, v)
	}
	for k, vs := range extra {
		for _, v := range vs {
			if v != "" {
				query.Add(k, v)
			}
		}
	}
	if len(query) == 0 {
		query = nil
	}
	return hrsvc.ListOptions{Query: query, All: f.all}, nil
}

func (f *listFlags) json() (bool, error) {
	switch f.output {
	case "table", "":
		return false, nil
	case "json":
		return true, nil
	default:
		return false, fmt.Errorf("unknown output format %q (want table or json)", f.output)
	}
}

func employeeName(ref *models.EmployeeRef, id int64) string {
	if ref != nil && ref.FullName != "" {
		return ref.FullName
	}
	return strconv.FormatInt(id, 10)
}
