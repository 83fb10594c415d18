package handlers

import (
	"testing"
)

func TestParseListQueryDefaults(t *testing.T) {
	q := parseListQuery("", "", "", defaultPostsPageLimit)

	if q.Page != 1 {
		t.Fatalf("expected page=1, got %d", q.Page)
	}
	if q.Limit != defaultPostsPageLimit {
		t.Fatalf("expected limit=%d, got %d", defaultPostsPageLimit, q.Limit)
	}
	if q.Offset != 0 {
		t.Fatalf("expected offset=0, got %d", q.Offset)
	}
	if q.Pattern != "" {
		t.Fatalf("expected empty pattern, got %q", q.Pattern)
	}
}

func TestParseListQueryFloorsAndGarbage(t *testing.T) {
	cases := []struct {
		name     string
		page     string
		limit    string
		wantPage int
	}{
		{"zero page", "0", "10", 1},
		{"negative page", "-3", "10", 1},
		{"garbage page", "abc", "10", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := parseListQuery(tc.page, tc.limit, "", defaultClassesPageLimit)
			if q.Page != tc.wantPage {
				t.Fatalf("expected page=%d, got %d", tc.wantPage, q.Page)
			}
		})
	}

	if q := parseListQuery("1", "0", "", defaultClassesPageLimit); q.Limit != defaultClassesPageLimit {
		t.Fatalf("zero limit should fall back to default, got %d", q.Limit)
	}
	if q := parseListQuery("1", "100000", "", defaultClassesPageLimit); q.Limit != maxPageLimit {
		t.Fatalf("limit should be capped at %d, got %d", maxPageLimit, q.Limit)
	}
}

func TestParseListQuerySkipMath(t *testing.T) {
	q := parseListQuery("2", "3", "", defaultPostsPageLimit)
	if q.Offset != 3 {
		t.Fatalf("page=2 limit=3 expects offset=3, got %d", q.Offset)
	}
}

func TestParseListQuerySearchPattern(t *testing.T) {
	q := parseListQuery("1", "5", "  REST Api ", defaultPostsPageLimit)
	if q.Search != "REST Api" {
		t.Fatalf("expected trimmed search, got %q", q.Search)
	}
	if q.Pattern != "%rest api%" {
		t.Fatalf("expected lowercased pattern, got %q", q.Pattern)
	}
}

func TestListEnvelopeMiddlePage(t *testing.T) {
	q := parseListQuery("2", "3", "", defaultPostsPageLimit)
	env := listEnvelope(q, 10, []int{4, 5, 6})

	if env["totalPages"] != 4 {
		t.Fatalf("expected totalPages=4, got %v", env["totalPages"])
	}
	if env["hasPrev"] != true {
		t.Fatalf("expected hasPrev=true")
	}
	if env["hasNext"] != true {
		t.Fatalf("expected hasNext=true")
	}
}

func TestListEnvelopeSinglePage(t *testing.T) {
	q := parseListQuery("1", "50", "", defaultPostsPageLimit)
	env := listEnvelope(q, 10, nil)

	if env["totalPages"] != 1 {
		t.Fatalf("expected totalPages=1, got %v", env["totalPages"])
	}
	if env["hasPrev"] != false || env["hasNext"] != false {
		t.Fatalf("expected hasPrev=false hasNext=false")
	}
}

func TestListEnvelopeEmptyResultSet(t *testing.T) {
	q := parseListQuery("1", "10", "", defaultClassesPageLimit)
	env := listEnvelope(q, 0, nil)

	// totalPages floors at 1 even with no rows.
	if env["totalPages"] != 1 {
		t.Fatalf("expected totalPages=1, got %v", env["totalPages"])
	}
	if env["hasNext"] != false {
		t.Fatalf("expected hasNext=false")
	}
}
