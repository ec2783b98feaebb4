package main

// Pager tracks the current page of a paginated listing.
type Pager struct {
	Page       int
	TotalPages int
}

func (p Pager) last() int {
	if p.TotalPages < 1 {
		return 1
	}
	return p.TotalPages
}

// Clamp returns n limited to [1, max(1, TotalPages)].
func (p Pager) Clamp(n int) int {
	if n < 1 {
		return 1
	}
	if last := p.last(); n > last {
		return last
	}
	return n
}

// Go moves to page n when it exists and reports whether it moved.
func (p *Pager) Go(n int) bool {
	if n < 1 || n > p.TotalPages {
		return false
	}
	p.Page = n
	return true
}

func (p *Pager) Prev() bool { return p.Go(p.Page - 1) }

func (p *Pager) Next() bool { return p.Go(p.Page + 1) }

func (p Pager) HasPrev() bool { return p.Page > 1 }

func (p Pager) HasNext() bool { return p.Page < p.TotalPages }
