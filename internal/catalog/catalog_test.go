package catalog

import "testing"

func TestRecommendationsCycleDomains(t *testing.T) {
	recs := Recommendations(DefaultTopics)
	if len(recs) != len(DefaultTopics) {
		t.Fatalf("got %d recommendations", len(recs))
	}
	want := []string{"Computer Studies", "Marketing", "Healthcare", "Finance", "Design"}
	for i, r := range recs {
		if r.Domain.Name != want[i] {
			t.Errorf("card %d: domain %q, want %q", i, r.Domain.Name, want[i])
		}
	}

	six := Recommendations(append(DefaultTopics, "Extra"))
	if six[5].Domain.Name != "Computer Studies" {
		t.Errorf("sixth card should wrap to the first domain, got %q", six[5].Domain.Name)
	}
}

func TestLookup(t *testing.T) {
	d, ok := Lookup("finance")
	if !ok || d.Name != "Finance" || d.Icon != "💰" {
		t.Fatalf("lookup finance = %+v, %v", d, ok)
	}
	if _, ok := Lookup("Astrology"); ok {
		t.Fatal("unexpected domain")
	}
}

func TestDomainsIsACopy(t *testing.T) {
	ds := Domains()
	ds[0].Name = "changed"
	if DomainNames()[0] != "Computer Studies" {
		t.Fatal("Domains should not expose internal state")
	}
}

func TestIntroTopic(t *testing.T) {
	if got := IntroTopic("Design"); got != "Introduction to Design" {
		t.Fatalf("intro topic = %q", got)
	}
}

func TestCourseActive(t *testing.T) {
	if !SeedCourse.Active() {
		t.Fatal("seed course should be active")
	}
	if (Course{Title: "x"}).Active() {
		t.Fatal("course without id should be inactive")
	}
}
