package queries

import "testing"

type project struct {
	title    string
	category string
}

func (p project) GetCategory() string {
	return p.category
}

func TestFilterProjects(t *testing.T) {
	items := []project{
		{"E-Commerce Platform", "E-Commerce"},
		{"Task Management App", "Web App"},
		{"Analytics Dashboard", "Dashboard"},
		{"Portfolio Website", "Web App"},
	}

	if got := FilterProjects(items, "All"); len(got) != 4 {
		t.Fatalf("expected all projects, got %d", len(got))
	}

	if got := FilterProjects(items, ""); len(got) != 4 {
		t.Fatalf("expected all projects for an empty category, got %d", len(got))
	}

	got := FilterProjects(items, "Web App")
	if len(got) != 2 || got[0].title != "Task Management App" || got[1].title != "Portfolio Website" {
		t.Fatalf("unexpected projects %+v", got)
	}

	if got := FilterProjects(items, "Mobile"); got == nil || len(got) != 0 {
		t.Fatalf("expected an empty, non-nil slice, got %#v", got)
	}
}
