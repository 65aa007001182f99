package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "langsniff/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel_AllBranches(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"trace", "trace"},
		{"debug", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"warning", "warn"},
		{"error", "error"},
		{"fatal", "fatal"},
		{"panic", "panic"},
		{"off", "disabled"},
		{"", "warn"},
		{"   nonsense   ", "warn"},
	}
	for _, c := range cases {
		lvl := parseLevel(c.in)
		if strings.ToLower(lvl.String()) != c.want {
			t.Fatalf("parseLevel(%q) = %q, want %q", c.in, lvl, c.want)
		}
	}
}

func TestInit_Get_Named_C_WithRun(t *testing.T) {
	var buf bytes.Buffer

	// Init with sampling enabled to exercise that branch
	Init(Options{
		Level:       "info",
		Format:      "console",
		Component:   "root",
		Writer:      &buf,
		WithCaller:  true,
		SampleEvery: 2,
		StaticFields: map[string]string{
			"build": "test",
		},
	})

	// Re-sample each logger to N=1 so lines always emit
	rv := Get().Sample(&zerolog.BasicSampler{N: 1})
	rp := &rv
	rp.Info().Str("k", "v").Msg("root-msg")

	nv := Named("classify").Sample(&zerolog.BasicSampler{N: 1})
	np := &nv
	np.Info().Msg("named-msg")

	ctx := WithRun(context.Background(), "run-123")
	cv := C(ctx).Sample(&zerolog.BasicSampler{N: 1})
	cp := &cv
	cp.Info().Msg("ctx-msg")

	out := buf.String()

	kit.MustContain(t, out, "root-msg")
	kit.MustContain(t, out, "named-msg")
	kit.MustContain(t, out, "ctx-msg")
	kit.MustContain(t, out, "component=")
	kit.MustContain(t, out, "classify")
	kit.MustContain(t, out, "run_id=")
	kit.MustContain(t, out, "run-123")
	kit.MustContain(t, out, "build=")
}

func TestFromEnv_Independently(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_COMPONENT", "cli")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("LOG_SAMPLE_EVERY", "5")

	opt := FromEnv()
	if opt.Level != "debug" {
		t.Fatalf("FromEnv Level = %q, want debug", opt.Level)
	}
	if opt.Format != "json" || opt.Component != "cli" {
		t.Fatalf("FromEnv fields mismatch: %+v", opt)
	}
	if !opt.WithCaller || opt.SampleEvery != 5 {
		t.Fatalf("FromEnv caller/sample mismatch: %+v", opt)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "console" {
		t.Fatalf("FromEnv defaults = %+v", opt)
	}
}

func TestRunID_Empty(t *testing.T) {
	ctx := WithRun(context.Background(), "")
	if RunID(ctx) != "" {
		t.Fatalf("empty run id should not be stored")
	}
	if C(ctx) != Get() {
		t.Fatalf("C without run id should return the root logger")
	}
}

func TestNew_Into_IsolatedFromRoot(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "debug", Format: "json", Writer: &buf, StaticFields: map[string]string{"tool": "langsniff"}})

	ctx := Into(WithRun(context.Background(), "run-42"), &l)
	C(ctx).Debug().Msg("hello")

	out := buf.String()
	for _, want := range []string{`"tool":"langsniff"`, `"run_id":"run-42"`, `"message":"hello"`} {
		kit.MustContain(t, out, want)
	}
	if C(context.Background()) == &l {
		t.Fatal("ctx without a logger should not return the standalone logger")
	}
	if Into(context.Background(), nil).Value(keyLogger) != nil {
		t.Fatal("nil logger should not be stored")
	}
}

func TestComponent_CarriesRunAndName(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "debug", Format: "json", Writer: &buf})
	ctx := Into(WithRun(context.Background(), "run-7"), &l)

	Component(ctx, "classify").Debug().Msg("unit")
	kit.MustContain(t, buf.String(), `"component":"classify"`)
	kit.MustContain(t, buf.String(), `"run_id":"run-7"`)

	if Component(context.Background(), "") != Get() {
		t.Fatal("empty component without ctx logger should be the root logger")
	}
}
