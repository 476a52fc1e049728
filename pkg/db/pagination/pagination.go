package pagination

import (
	"net/url"
	"strconv"
)

const prevLabel = "&laquo; Previous"
const nextLabel = "Next &raquo;"

// Request describes offset pagination input.
type Request struct {
	Page    int `form:"page,default=1"`
	PerPage int
}

// Normalize clamps the request to valid values.
func (r Request) Normalize(defaultPerPage int) Request {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PerPage < 1 {
		r.PerPage = defaultPerPage
	}
	return r
}

// Offset returns the row offset for the page.
func (r Request) Offset() int {
	return (r.Page - 1) * r.PerPage
}

// LastPage returns the highest page number for the given total. Never below 1.
func LastPage(total int64, perPage int) int {
	if perPage < 1 || total <= 0 {
		return 1
	}
	last := int((total + int64(perPage) - 1) / int64(perPage))
	if last < 1 {
		last = 1
	}
	return last
}

// Link is a single page-link descriptor in the shape the page renderer expects.
type Link struct {
	URL    *string `json:"url"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// BuildLinks renders previous/page/next link descriptors for an offset-paginated
// result. The provided query values are echoed into every link so the caller's
// filter and sort state survives page navigation.
func BuildLinks(basePath string, query url.Values, current, last int) []Link {
	links := make([]Link, 0, last+2)

	prev := Link{Label: prevLabel}
	if current > 1 {
		prev.URL = pageURL(basePath, query, current-1)
	}
	links = append(links, prev)

	for page := 1; page <= last; page++ {
		links = append(links, Link{
			URL:    pageURL(basePath, query, page),
			Label:  strconv.Itoa(page),
			Active: page == current,
		})
	}

	next := Link{Label: nextLabel}
	if current < last {
		next.URL = pageURL(basePath, query, current+1)
	}
	links = append(links, next)

	return links
}

func pageURL(basePath string, query url.Values, page int) *string {
	values := url.Values{}
	for key, vals := range query {
		for _, val := range vals {
			values.Add(key, val)
		}
	}
	values.Set("page", strconv.Itoa(page))

	u := basePath + "?" + values.Encode()
	return &u
}
