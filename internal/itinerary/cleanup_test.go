package itinerary

import "testing"

const shrineLink = `<a href="https://www.google.com/maps/place/?q=place_id:pid1" target="_blank" class="place-link">Meiji Shrine</a>`
const templeLink = `<a href="https://www.google.com/maps/place/?q=place_id:pid2" target="_blank" class="place-link">Senso Temple</a>`

func TestCollapseDuplicates_RepeatedLinks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"pair", shrineLink + " " + shrineLink, shrineLink},
		{"triple", shrineLink + " " + shrineLink + "\n" + shrineLink, shrineLink},
		{"different names kept", shrineLink + " " + templeLink, shrineLink + " " + templeLink},
		{"separated by text kept", shrineLink + " then " + shrineLink, shrineLink + " then " + shrineLink},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollapseDuplicates(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCollapseDuplicates_RatingBadges(t *testing.T) {
	in := `Great spot (<span class="rating">4.5★</span>) (4.2★)`
	want := `Great spot (<span class="rating">4.5★</span>)`
	if got := CollapseDuplicates(in); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCollapseDuplicates_BarePhrases(t *testing.T) {
	in := "Walk to Meiji Shrine Meiji Shrine early"
	want := "Walk to Meiji Shrine early"
	if got := CollapseDuplicates(in); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCollapseDuplicates_Idempotent(t *testing.T) {
	in := shrineLink + " " + shrineLink + " (4.5★) (4.5★)"
	once := CollapseDuplicates(in)
	if twice := CollapseDuplicates(once); twice != once {
		t.Fatalf("second pass changed output:\nonce:  %s\ntwice: %s", once, twice)
	}
}
