package catalog

const (
	// Rows and Columns give the launcher grid shape.
	Rows    = 3
	Columns = 6

	// VisibleThreshold is how many cards fit on one page. Paging controls
	// only appear once the filtered result count exceeds it.
	VisibleThreshold = Rows * Columns
)

// Pager splits a result count into fixed-size pages.
type Pager struct {
	total int
	page  int
}

// NewPager returns a pager positioned on the first page.
func NewPager(total int) Pager {
	return Pager{total: total}
}

// SetTotal updates the result count, clamping the current page.
func (p Pager) SetTotal(total int) Pager {
	p.total = total
	if last := p.Pages() - 1; p.page > last {
		p.page = last
	}
	return p
}

// Paged reports whether paging controls should be shown.
func (p Pager) Paged() bool {
	return p.total > VisibleThreshold
}

// Pages returns the number of pages, at least one.
func (p Pager) Pages() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + VisibleThreshold - 1) / VisibleThreshold
}

// Page returns the zero-based current page.
func (p Pager) Page() int { return p.page }

// Bounds returns the half-open index range of the current page.
func (p Pager) Bounds() (start, end int) {
	start = p.page * VisibleThreshold
	end = min(start+VisibleThreshold, p.total)
	return start, end
}

// Next moves to the following page, stopping at the last.
func (p Pager) Next() Pager {
	if p.page < p.Pages()-1 {
		p.page++
	}
	return p
}

// Prev moves to the preceding page, stopping at the first.
func (p Pager) Prev() Pager {
	if p.page > 0 {
		p.page--
	}
	return p
}

// PageOf returns the page containing item index i.
func PageOf(i int) int {
	return i / VisibleThreshold
}
