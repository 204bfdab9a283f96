package static

import (
	"strings"
	"testing"

	"github.com/0x0FACED/winged-fortune/pkg/config"
)

func TestPage(t *testing.T) {
	p := config.Default()
	p.Random, p.Seed, p.Relax = true, 77, 2

	page := Page(p)
	if strings.Contains(page, "%!") {
		t.Fatalf("Bad format verbs in page")
	}
	for _, want := range []string{
		`name="stations" value="12"`,
		`value="true" checked`,
		`name="seed" value="77"`,
		"/svg?", "/png?", "/geojson?",
		"seed=77",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("Expected page to contain %q", want)
		}
	}
}

func TestQueryRoundTrip(t *testing.T) {
	p := config.Params{Width: 300, Height: 200, Stations: 9, Random: true, Seed: 5, Relax: 1, Strength: 1.5}
	q := query(p)
	if q.Get("random") != "true" || q.Get("strength") != "1.5" || q.Get("width") != "300" {
		t.Errorf("Unexpected query %v", q)
	}
}
