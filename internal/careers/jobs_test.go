package careers

import (
	"errors"
	"testing"
)

func TestCatalogListCoversBothUnits(t *testing.T) {
	c := NewCatalog()
	jobs := c.List()
	if len(jobs) == 0 {
		t.Fatalf("catalog should not be empty")
	}
	units := map[string]bool{}
	for _, j := range jobs {
		units[j.BusinessUnit] = true
		if j.ID == "" || j.Title == "" || len(j.Requirements) == 0 {
			t.Fatalf("incomplete job entry: %+v", j)
		}
	}
	if !units["Space Services"] || !units["Smart Solutions"] {
		t.Fatalf("catalog missing a business unit: %v", units)
	}
}

func TestCatalogGet(t *testing.T) {
	c := NewCatalog()
	job, err := c.Get("geospatial-analyst")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if job.Title != "Geospatial Analyst" {
		t.Fatalf("Title = %q", job.Title)
	}

	if _, err := c.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCatalogListReturnsCopy(t *testing.T) {
	c := NewCatalog()
	jobs := c.List()
	jobs[0].Title = "mutated"
	again := c.List()
	if again[0].Title == "mutated" {
		t.Fatalf("List() must not expose internal slice")
	}
}
