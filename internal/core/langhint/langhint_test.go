package langhint

import "testing"

func TestAnalyze(t *testing.T) {
	cases := []struct {
		in      string
		script  string
		letters int
	}{
		{"", "", 0},
		{"123 !?", "", 0},
		{"bonjour à tous", "Latin", 12},
		{"Привет, мир", "Cyrillic", 9},
		{"こんにちは", "Hiragana", 5},
		{"שלום", "Hebrew", 4},
		{"abc αβγδ", "Greek", 7},
	}
	for _, c := range cases {
		p := Analyze(c.in)
		if p.Script != c.script || p.Letters != c.letters {
			t.Fatalf("Analyze(%q) = %+v, want script=%q letters=%d", c.in, p, c.script, c.letters)
		}
	}
}

func TestAnalyze_TieFavoursSpecificScript(t *testing.T) {
	// two Latin, two Greek letters: Greek is listed first
	if got := Analyze("ab αβ").Script; got != "Greek" {
		t.Fatalf("tie script = %q, want Greek", got)
	}
}

func TestLetterCountAndLongEnough(t *testing.T) {
	s := "hola, 2024 a todos!"
	if got := LetterCount(s); got != 10 {
		t.Fatalf("LetterCount = %d, want 10", got)
	}
	if !LongEnough(s, 0) || !LongEnough(s, 10) {
		t.Fatalf("LongEnough should pass at or below the letter count")
	}
	if LongEnough(s, 11) {
		t.Fatalf("LongEnough(11) should fail")
	}
	if !LongEnough("", -1) {
		t.Fatalf("non-positive minimum always passes")
	}
}
