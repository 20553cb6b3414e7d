// Package pager validates page numbers and builds the navigation for paginated listings.
package pager

import (
	"errors"
	"net/url"
	"strconv"
)

// WindowSize is the maximum number of page links shown at once.
const WindowSize = 5

var ErrOutOfRange = errors.New("page out of range")

// Validate rejects page < 1 always, and page > pageCount when pageCount is known (> 0).
func Validate(page, pageCount int) error {
	if page < 1 || (pageCount > 0 && page > pageCount) {
		return ErrOutOfRange
	}
	return nil
}

// Window returns up to WindowSize page numbers around page.
func Window(page, pageCount int) []int {
	if pageCount <= 0 {
		return nil
	}

	var start int
	switch {
	case pageCount <= WindowSize, page <= 3:
		start = 1
	case page >= pageCount-2:
		start = pageCount - WindowSize + 1
	default:
		start = page - 2
	}

	size := min(WindowSize, pageCount)
	pages := make([]int, size)
	for i := range pages {
		pages[i] = start + i
	}

	return pages
}

type Link struct {
	Number  int
	URL     string
	Current bool
	Enabled bool
}

// Pager is the template-ready navigation for one listing page.
type Pager struct {
	Page      int
	PageCount int
	Total     int
	Pages     []Link
	Prev      Link
	Next      Link
	Visible   bool
}

// New builds navigation links under basePath, preserving its existing query.
func New(page, pageCount, total int, basePath string) Pager {
	p := Pager{
		Page:      page,
		PageCount: pageCount,
		Total:     total,
		Visible:   pageCount > 1,
	}

	for _, n := range Window(page, pageCount) {
		p.Pages = append(p.Pages, Link{
			Number:  n,
			URL:     pageURL(basePath, n),
			Current: n == page,
			Enabled: n != page,
		})
	}

	p.Prev = Link{Number: page - 1, Enabled: page > 1}
	if p.Prev.Enabled {
		p.Prev.URL = pageURL(basePath, page-1)
	}

	p.Next = Link{Number: page + 1, Enabled: page < pageCount}
	if p.Next.Enabled {
		p.Next.URL = pageURL(basePath, page+1)
	}

	return p
}

func pageURL(basePath string, page int) string {
	u, err := url.Parse(basePath)
	if err != nil {
		return basePath + "?page=" + strconv.Itoa(page)
	}

	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	return u.String()
}
