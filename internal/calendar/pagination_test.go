package calendar

import "testing"

func TestNormalizePage_Defaults(t *testing.T) {
	page, size, limit, offset := NormalizePage(0, 0)
	if page != 1 || size != 10 || limit != 10 || offset != 0 {
		t.Fatalf("NormalizePage(0, 0) = (%d, %d, %d, %d), want (1, 10, 10, 0)", page, size, limit, offset)
	}
}

func TestNormalizePage_Offset(t *testing.T) {
	_, _, limit, offset := NormalizePage(3, 20)
	if limit != 20 || offset != 40 {
		t.Fatalf("NormalizePage(3, 20) limit/offset = (%d, %d), want (20, 40)", limit, offset)
	}
}

func TestPageOf(t *testing.T) {
	items := []int{6, 7, 8, 9, 10}

	p := PageOf(items, 12, 2, 5)
	if p.Page != 2 || p.PageSize != 5 || p.Total != 12 {
		t.Fatalf("unexpected page meta: %+v", p)
	}
	if !p.HasPrev {
		t.Errorf("page 2 must have HasPrev")
	}
	if !p.HasNext {
		t.Errorf("5+5 of 12 must have HasNext")
	}

	last := PageOf([]int{11, 12}, 12, 3, 5)
	if last.HasNext {
		t.Errorf("last page must not have HasNext")
	}
	if !last.HasPrev {
		t.Errorf("last page must have HasPrev")
	}
}
