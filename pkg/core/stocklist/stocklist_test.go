package stocklist

import "testing"

func TestSearchBySymbol(t *testing.T) {
	matches := Search("aapl", 10)
	if len(matches) != 1 || matches[0].Symbol != "AAPL" {
		t.Errorf("Search(aapl) = %v", matches)
	}
}

func TestSearchByNameSubstring(t *testing.T) {
	matches := Search("tata", 10)
	if len(matches) < 2 {
		t.Fatalf("Search(tata) = %v, want TCS and Tata Motors at least", matches)
	}
	for _, m := range matches {
		if m.Symbol != "TCS" && m.Symbol != "TATAMOTORS" {
			t.Errorf("unexpected match %v", m)
		}
	}
}

func TestSearchRespectsLimit(t *testing.T) {
	if matches := Search("a", 3); len(matches) != 3 {
		t.Errorf("Search(a, 3) returned %d matches", len(matches))
	}
}

func TestSearchBlankQuery(t *testing.T) {
	if matches := Search("   ", 10); matches != nil {
		t.Errorf("blank query returned %v", matches)
	}
}

func TestSearchNoMatch(t *testing.T) {
	if matches := Search("zzzznotlisted", 10); matches != nil {
		t.Errorf("impossible query returned %v", matches)
	}
}
