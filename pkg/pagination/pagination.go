package pagination

import (
	"net/url"
	"strconv"
	"strings"

	"sekor-bkc/pkg/apperror"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Options are the per-resource defaults and limits.
type Options struct {
	DefaultPerPage int
	MaxPerPage     int
	DefaultSort    string
	AllowedSorts   []string
}

type Params struct {
	Page    int
	PerPage int
	Sort    string
	Order   string
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Params) Desc() bool {
	return p.Order == OrderDesc
}

type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func NewMeta(p Params, total int64) Meta {
	totalPages := 0
	if p.PerPage > 0 {
		totalPages = int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	}
	return Meta{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Parse reads page, per_page (or limit), sort and order. Malformed values are
// rejected; a per_page above the maximum is capped.
func Parse(q url.Values, opts Options) (Params, error) {
	if opts.DefaultPerPage <= 0 {
		opts.DefaultPerPage = 20
	}
	if opts.MaxPerPage <= 0 {
		opts.MaxPerPage = 100
	}
	if opts.DefaultSort == "" {
		opts.DefaultSort = "createdAt"
	}

	params := Params{
		Page:    1,
		PerPage: opts.DefaultPerPage,
		Sort:    opts.DefaultSort,
		Order:   OrderDesc,
	}
	var issues []apperror.FieldIssue

	if raw, ok := lookup(q, "page"); ok {
		n, err := positiveInt(raw)
		if err != nil {
			issues = append(issues, apperror.FieldIssue{Field: "page", Issue: "must be a positive integer"})
		} else {
			params.Page = n
		}
	}

	perPageField := "per_page"
	raw, ok := lookup(q, perPageField)
	if !ok {
		perPageField = "limit"
		raw, ok = lookup(q, perPageField)
	}
	if ok {
		n, err := positiveInt(raw)
		if err != nil {
			issues = append(issues, apperror.FieldIssue{Field: perPageField, Issue: "must be a positive integer"})
		} else {
			params.PerPage = min(n, opts.MaxPerPage)
		}
	}

	if raw, ok := lookup(q, "sort"); ok {
		if len(opts.AllowedSorts) > 0 && !contains(opts.AllowedSorts, raw) {
			issues = append(issues, apperror.FieldIssue{
				Field: "sort",
				Issue: "must be one of: " + strings.Join(opts.AllowedSorts, ", "),
			})
		} else {
			params.Sort = raw
		}
	}

	if raw, ok := lookup(q, "order"); ok {
		switch strings.ToLower(raw) {
		case OrderAsc:
			params.Order = OrderAsc
		case OrderDesc:
			params.Order = OrderDesc
		default:
			issues = append(issues, apperror.FieldIssue{Field: "order", Issue: "must be asc or desc"})
		}
	}

	if len(issues) > 0 {
		return Params{}, apperror.Validation("Invalid pagination parameters", issues...)
	}
	return params, nil
}

// LinkHeader builds an RFC 5988 Link header value. Only the page parameter of
// the current URL is rewritten.
func LinkHeader(rawURL string, meta Meta) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	last := max(meta.TotalPages, 1)
	var links []string
	if meta.Page < last {
		links = append(links, link(u, meta.Page+1, "next"))
	}
	if meta.Page > 1 {
		links = append(links, link(u, min(meta.Page-1, last), "prev"))
	}
	links = append(links, link(u, 1, "first"), link(u, last, "last"))

	return strings.Join(links, ", ")
}

func link(u *url.URL, page int, rel string) string {
	cp := *u
	cp.RawQuery = withPage(u.RawQuery, page)
	return "<" + cp.String() + `>; rel="` + rel + `"`
}

// withPage rewrites the page pair of rawQuery in place, leaving every other
// pair byte-for-byte. page is appended when absent.
func withPage(rawQuery string, page int) string {
	pair := "page=" + strconv.Itoa(page)
	if rawQuery == "" {
		return pair
	}

	parts := strings.Split(rawQuery, "&")
	out := make([]string, 0, len(parts)+1)
	replaced := false
	for _, part := range parts {
		key, _, _ := strings.Cut(part, "=")
		if unescaped, err := url.QueryUnescape(key); err == nil && unescaped == "page" {
			if !replaced {
				out = append(out, pair)
				replaced = true
			}
			continue
		}
		out = append(out, part)
	}
	if !replaced {
		out = append(out, pair)
	}
	return strings.Join(out, "&")
}

func lookup(q url.Values, key string) (string, bool) {
	if _, ok := q[key]; !ok {
		return "", false
	}
	return strings.TrimSpace(q.Get(key)), true
}

func positiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
