package engine

import (
	"testing"

	"langsniff/internal/core/langcode"
	perr "langsniff/internal/platform/errors"
)

func restricted(t *testing.T, codes ...string) *Engine {
	t.Helper()
	reg := langcode.Default()
	cs, err := reg.Resolve(codes)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	e, err := New(reg, cs, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestDetect_French(t *testing.T) {
	e := restricted(t, "fr", "en", "de", "es")
	top, ok := e.Detect("bonjour à tous")
	if !ok || top.Code != "fr" {
		t.Fatalf("Detect = %+v, %v; want fr", top, ok)
	}
	if top.Confidence <= 0 || top.Confidence > 1 {
		t.Fatalf("confidence out of range: %v", top.Confidence)
	}
}

func TestDetect_LinesWithCandidates(t *testing.T) {
	e := restricted(t, "fr", "de", "es", "nl", "en")
	cases := map[string]string{
		"bonjour à tous": "fr",
		"hola a todos":   "es",
		"hallo allemaal": "nl",
	}
	for text, want := range cases {
		top, ok := e.Detect(text)
		if !ok || top.Code.String() != want {
			t.Fatalf("Detect(%q) = %+v, %v; want %s", text, top, ok, want)
		}
	}
}

func TestDetect_NoLetters(t *testing.T) {
	e := restricted(t, "fr", "en")
	if top, ok := e.Detect("1234 !!"); ok {
		t.Fatalf("digits should be undetermined, got %+v", top)
	}
}

func TestRank_OrderedAndBounded(t *testing.T) {
	e := restricted(t, "fr", "en", "es")
	rs := e.Rank("merci beaucoup pour votre aide")
	if len(rs) != 3 {
		t.Fatalf("ranking = %+v", rs)
	}
	if rs[0].Code != "fr" {
		t.Fatalf("top = %+v", rs[0])
	}
	for i, r := range rs {
		if r.Confidence < 0 || r.Confidence > 1 {
			t.Fatalf("confidence out of range: %+v", r)
		}
		if i > 0 && rs[i-1].Confidence < r.Confidence {
			t.Fatalf("ranking not descending: %+v", rs)
		}
	}
}

func TestRestrictionDoesNotLowerConfidence(t *testing.T) {
	text := "el perro come en la cocina"
	wide := restricted(t, "es", "pt", "it", "fr", "ca", "en")
	narrow := restricted(t, "es", "en")
	w, okW := wide.Detect(text)
	n, okN := narrow.Detect(text)
	if !okW || !okN || w.Code != "es" || n.Code != "es" {
		t.Fatalf("wide=%+v,%v narrow=%+v,%v", w, okW, n, okN)
	}
	if n.Confidence < w.Confidence {
		t.Fatalf("narrow confidence %v < wide %v", n.Confidence, w.Confidence)
	}
}

func TestSpans_Mixed(t *testing.T) {
	e := restricted(t, "en", "fr", "de")
	text := "Parlez-vous français? Ich spreche Französisch nur ein bisschen. A little bit is better than nothing."
	spans := e.Spans(text)
	if len(spans) == 0 {
		t.Fatalf("no spans")
	}
	prev := 0
	for _, sp := range spans {
		if sp.Start < prev || sp.End > len(text) || sp.Start >= sp.End || sp.Code == "" {
			t.Fatalf("bad span %+v", sp)
		}
		prev = sp.End
	}
}

func TestSingleCandidate_NeedsNoModel(t *testing.T) {
	e := restricted(t, "de")
	top, ok := e.Detect("guten Morgen")
	if !ok || top.Code != "de" || top.Confidence != 1 {
		t.Fatalf("Detect = %+v, %v", top, ok)
	}
	if _, ok := e.Detect(" 42 "); ok {
		t.Fatal("no letters should be undetermined")
	}
	if rs := e.Rank("guten Morgen"); len(rs) != 1 || rs[0].Code != "de" {
		t.Fatalf("Rank = %+v", rs)
	}
	text := "  guten Morgen\n"
	sp := e.Spans(text)
	if len(sp) != 1 || text[sp[0].Start:sp[0].End] != "guten Morgen" {
		t.Fatalf("Spans = %+v", sp)
	}
}

func TestNew_BuilderOptions(t *testing.T) {
	reg := langcode.Default()
	cs, err := reg.Resolve([]string{"fr", "en", "de"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	e, err := New(reg, cs, Options{LowAccuracy: true, MinRelativeDistance: 0.1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if top, ok := e.Detect("Das ist ein ziemlich langer deutscher Satz über das Wetter."); !ok || top.Code != "de" {
		t.Fatalf("Detect = %+v, %v", top, ok)
	}
}

func TestNew_RejectedDistanceIsDetectionError(t *testing.T) {
	reg := langcode.Default()
	cs, err := reg.Resolve([]string{"fr", "en"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	e, err := New(reg, cs, Options{MinRelativeDistance: 1.5})
	if e != nil || !perr.IsCode(err, perr.ErrorCodeDetection) {
		t.Fatalf("New = %v, %v; want detection error", e, err)
	}
}
