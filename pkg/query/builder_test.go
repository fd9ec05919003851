package query_test

import (
	"strings"
	"testing"

	"github.com/jazs69/ai-waste-sorter/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.
		NewProjectionMap("public", "scans", "s").
		Project("id", "ID").
		Project("filename", "Filename").
		Project("status", "Status").
		Project("created_at", "CreatedAt")
}

func TestBuildNoConditions(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).Build()

	want := "SELECT s.id, s.filename, s.status, s.created_at FROM public.scans s"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuildWhereEquals(t *testing.T) {
	status := "classified"
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("Status", &status).
		Build()

	want := "SELECT s.id, s.filename, s.status, s.created_at FROM public.scans s WHERE s.status = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != &status {
		t.Errorf("args = %v, want [&status]", args)
	}
}

func TestBuildWhereEqualsNilSkipped(t *testing.T) {
	var status *string
	sql, _ := query.NewBuilder(testProjection()).
		WhereEquals("Status", status).
		Build()

	want := "SELECT s.id, s.filename, s.status, s.created_at FROM public.scans s"
	if sql != want {
		t.Errorf("nil condition should be skipped, got %q", sql)
	}
}

func TestBuildWhereContains(t *testing.T) {
	name := "bottle"
	sql, args := query.NewBuilder(testProjection()).
		WhereContains("Filename", &name).
		Build()

	want := "SELECT s.id, s.filename, s.status, s.created_at FROM public.scans s WHERE s.filename ILIKE $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "%bottle%" {
		t.Errorf("args = %v, want [%%bottle%%]", args)
	}
}

func TestBuildWhereSearch(t *testing.T) {
	search := "glass"
	sql, args := query.NewBuilder(testProjection()).
		WhereSearch(&search, "Filename", "Status").
		Build()

	want := "SELECT s.id, s.filename, s.status, s.created_at FROM public.scans s " +
		"WHERE (s.filename ILIKE $1 OR s.status ILIKE $2)"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 2 || args[0] != "%glass%" || args[1] != "%glass%" {
		t.Errorf("args = %v, want two search patterns", args)
	}
}

func TestBuildParameterNumbering(t *testing.T) {
	status := "classified"
	name := "jar"
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("Status", &status).
		WhereContains("Filename", &name).
		Build()

	want := "SELECT s.id, s.filename, s.status, s.created_at FROM public.scans s " +
		"WHERE s.status = $1 AND s.filename ILIKE $2"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 2 {
		t.Errorf("args = %d, want 2", len(args))
	}
}

func TestBuildCount(t *testing.T) {
	status := "failed"
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("Status", &status).
		BuildCount()

	want := "SELECT COUNT(*) FROM public.scans s WHERE s.status = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("args = %d, want 1", len(args))
	}
}

func TestBuildPage(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection(), query.SortField{Field: "CreatedAt", Descending: true}).
		BuildPage(3, 10)

	want := "SELECT s.id, s.filename, s.status, s.created_at FROM public.scans s " +
		"ORDER BY s.created_at DESC LIMIT 10 OFFSET 20"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestBuildPageExplicitSortOverridesDefault(t *testing.T) {
	builder := query.NewBuilder(testProjection(), query.SortField{Field: "CreatedAt", Descending: true})
	builder.OrderByFields([]query.SortField{{Field: "Filename"}})

	sql, _ := builder.BuildPage(1, 10)

	want := "SELECT s.id, s.filename, s.status, s.created_at FROM public.scans s " +
		"ORDER BY s.filename ASC LIMIT 10 OFFSET 0"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestBuildPageUnmappedSortFieldDropped(t *testing.T) {
	builder := query.NewBuilder(testProjection(), query.SortField{Field: "CreatedAt", Descending: true})
	builder.OrderByFields([]query.SortField{
		{Field: "(SELECT CASE WHEN true THEN 1 ELSE 2 END)"},
		{Field: "Filename"},
	})

	sql, _ := builder.BuildPage(1, 20)

	want := "SELECT s.id, s.filename, s.status, s.created_at FROM public.scans s " +
		"ORDER BY s.filename ASC LIMIT 20 OFFSET 0"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if strings.Contains(sql, "SELECT CASE") {
		t.Errorf("unmapped sort field reached the statement: %q", sql)
	}
}

func TestBuildPageAllSortFieldsUnmappedFallsBackToDefault(t *testing.T) {
	builder := query.NewBuilder(testProjection(), query.SortField{Field: "CreatedAt", Descending: true})
	builder.OrderByFields([]query.SortField{{Field: "drop table scans"}})

	sql, _ := builder.BuildPage(1, 20)

	want := "SELECT s.id, s.filename, s.status, s.created_at FROM public.scans s " +
		"ORDER BY s.created_at DESC LIMIT 20 OFFSET 0"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildSingle("ID", "abc")

	want := "SELECT s.id, s.filename, s.status, s.created_at FROM public.scans s WHERE s.id = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "abc" {
		t.Errorf("args = %v, want [abc]", args)
	}
}

func TestParseSortFields(t *testing.T) {
	fields := query.ParseSortFields("filename, -created_at, ")

	if len(fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(fields))
	}
	if fields[0] != (query.SortField{Field: "filename"}) {
		t.Errorf("field 0 = %+v", fields[0])
	}
	if fields[1] != (query.SortField{Field: "created_at", Descending: true}) {
		t.Errorf("field 1 = %+v", fields[1])
	}

	if got := query.ParseSortFields(""); got != nil {
		t.Errorf("empty string should produce nil, got %v", got)
	}
}

func TestProjectionJoin(t *testing.T) {
	p := query.
		NewProjectionMap("public", "scans", "s").
		Project("id", "ID").
		Join("public", "labels", "l", "INNER JOIN", "l.scan_id = s.id").
		Project("name", "LabelName")

	if got := p.Column("LabelName"); got != "l.name" {
		t.Errorf("Column(LabelName) = %q, want l.name", got)
	}
	wantFrom := "public.scans s INNER JOIN public.labels l ON l.scan_id = s.id"
	if got := p.From(); got != wantFrom {
		t.Errorf("From() = %q, want %q", got, wantFrom)
	}
}
