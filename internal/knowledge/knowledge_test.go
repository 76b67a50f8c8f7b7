package knowledge

import "testing"

func TestDefaultIsComplete(t *testing.T) {
	kb := Default()

	if kb.Overview == "" {
		t.Fatal("Overview is empty")
	}
	if kb.SpaceServices.Name != "Space Services" || len(kb.SpaceServices.KeyAreas) == 0 {
		t.Fatalf("SpaceServices incomplete: %+v", kb.SpaceServices)
	}
	if kb.SmartSolutions.Name != "Smart Solutions" || len(kb.SmartSolutions.KeyAreas) == 0 {
		t.Fatalf("SmartSolutions incomplete: %+v", kb.SmartSolutions)
	}
	if kb.Locations.Headquarters == "" {
		t.Fatal("Headquarters is empty")
	}
	if len(kb.Checklist) != 5 {
		t.Fatalf("Checklist has %d items, want 5", len(kb.Checklist))
	}
	for _, item := range kb.Checklist {
		if item.ID == "" || item.Title == "" || item.Location == "" {
			t.Fatalf("checklist item incomplete: %+v", item)
		}
	}
}

func TestDefaultReturnsFreshCopies(t *testing.T) {
	a := Default()
	b := Default()
	a.Checklist[0].Title = "mutated"
	if b.Checklist[0].Title == "mutated" {
		t.Fatal("Default() instances share checklist backing array")
	}
}
