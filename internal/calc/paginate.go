package calc

// Page describes a slice of a list.
//
// Start and End are the slice bounds into the full list. For pages past
// the end, both are the list length and the page is empty.
type Page struct {
	Page       int `json:"page" example:"2"`
	PageSize   int `json:"pageSize" example:"10"`
	TotalPages int `json:"totalPages" example:"5"`
	Start      int `json:"-"`
	End        int `json:"-"`
}

// Paginate computes the bounds of a page. Pages are 1-indexed, pages
// below 1 are treated as page 1.
func Paginate(total, page, size int) Page {
	if page < 1 {
		page = 1
	}

	if size < 1 {
		size = 1
	}

	p := Page{
		Page:       page,
		PageSize:   size,
		TotalPages: (total + size - 1) / size,
	}

	p.Start = total
	if page-1 < p.TotalPages {
		p.Start = (page - 1) * size
	}
	p.End = min(p.Start+size, total)

	return p
}
