package pagination

import "testing"

func TestNewDefaultsOnMalformedInput(t *testing.T) {
	p := New("abc", "")
	limit, offset := p.QueryMetadata()
	if limit != DefaultLimit {
		t.Errorf("limit = %d, want %d", limit, DefaultLimit)
	}
	if offset != 0 {
		t.Errorf("offset = %d, want 0", offset)
	}
}

func TestQueryMetadata(t *testing.T) {
	p := New("3", "5")
	limit, offset := p.QueryMetadata()
	if limit != 5 {
		t.Errorf("limit = %d, want 5", limit)
	}
	if offset != 10 {
		t.Errorf("offset = %d, want 10", offset)
	}
}

func TestPageMetadataMiddlePage(t *testing.T) {
	p := New("2", "1")
	meta := p.PageMetadata(4, "/url", "")

	if meta.Prev == nil || *meta.Prev != "/url?page=1&limit=1" {
		t.Errorf("prev = %v, want /url?page=1&limit=1", meta.Prev)
	}
	if meta.Next == nil || *meta.Next != "/url?page=3&limit=1" {
		t.Errorf("next = %v, want /url?page=3&limit=1", meta.Next)
	}
	if meta.CurrentPage != 2 {
		t.Errorf("currentPage = %d, want 2", meta.CurrentPage)
	}
	if meta.TotalPages != 4 {
		t.Errorf("totalPages = %d, want 4", meta.TotalPages)
	}
	if meta.TotalItems != 4 {
		t.Errorf("totalItems = %d, want 4", meta.TotalItems)
	}
}

func TestPageMetadataRangeEnds(t *testing.T) {
	first := New("1", "10").PageMetadata(25, "/url", "")
	if first.Prev != nil {
		t.Errorf("prev on first page = %v, want nil", first.Prev)
	}
	if first.Next == nil {
		t.Error("next on first page is nil, want a link")
	}

	last := New("3", "10").PageMetadata(25, "/url", "")
	if last.Next != nil {
		t.Errorf("next on last page = %v, want nil", last.Next)
	}
	if last.Prev == nil {
		t.Error("prev on last page is nil, want a link")
	}
	if last.TotalPages != 3 {
		t.Errorf("totalPages = %d, want 3", last.TotalPages)
	}
}

// extraQuery is inserted verbatim; the caller supplies its own trailing
// separator.
func TestPageMetadataExtraQueryVerbatim(t *testing.T) {
	meta := New("1", "10").PageMetadata(30, "/api/v1/articles", "date=2019-06-18")
	want := "/api/v1/articles?date=2019-06-18page=2&limit=10"
	if meta.Next == nil || *meta.Next != want {
		t.Errorf("next = %v, want %s", meta.Next, want)
	}

	meta = New("2", "10").PageMetadata(30, "/api/v1/articles", "date=2019-06-18&")
	want = "/api/v1/articles?date=2019-06-18&page=1&limit=10"
	if meta.Prev == nil || *meta.Prev != want {
		t.Errorf("prev = %v, want %s", meta.Prev, want)
	}
}

func TestPageMetadataSinglePage(t *testing.T) {
	meta := New("1", "10").PageMetadata(7, "/url", "")
	if meta.Prev != nil || meta.Next != nil {
		t.Errorf("prev/next = %v/%v, want nil/nil", meta.Prev, meta.Next)
	}
	if meta.TotalPages != 1 {
		t.Errorf("totalPages = %d, want 1", meta.TotalPages)
	}
}
