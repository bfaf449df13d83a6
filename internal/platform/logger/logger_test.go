package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "munchmates/internal/platform/testkit"
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
		{"", "info"},
		{"   nonsense   ", "info"},
	}
	for _, c := range cases {
		lvl := parseLevel(c.in)
		if strings.ToLower(lvl.String()) != c.want {
			t.Fatalf("parseLevel(%q) = %q, want %q", c.in, lvl, c.want)
		}
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LOG_CALLER", "")
	opt := FromEnv()
	if opt.Level != "info" || opt.Format != "console" || opt.WithCaller {
		t.Fatalf("FromEnv defaults wrong: %+v", opt)
	}

	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_CALLER", "yes")
	opt = FromEnv()
	if opt.Level != "debug" || opt.Format != "json" || !opt.WithCaller {
		t.Fatalf("FromEnv env read wrong: %+v", opt)
	}
}

func TestInit_Get_Named_C_WithRun(t *testing.T) {
	var buf bytes.Buffer

	Init(Options{
		Level:      "info",
		Format:     "console",
		Service:    "aliasgen-test",
		Component:  "root",
		Writer:     &buf,
		WithCaller: true,
		StaticFields: map[string]string{
			"build": "test",
		},
	})

	Get().Info().Str("k", "v").Msg("root-msg")
	Named("pipeline").Info().Msg("named-msg")

	ctx := WithRun(context.Background(), "run-123")
	C(ctx).Info().Msg("ctx-msg")

	// background child (exercise only)
	C(context.Background()).Info().Msg("ctx-empty")

	out := buf.String()

	// robust assertions: tolerate "key=value" vs "key= value" spacing
	kit.MustContain(t, out, "root-msg")
	kit.MustContain(t, out, "named-msg")
	kit.MustContain(t, out, "ctx-msg")
	kit.MustContain(t, out, "component=")
	kit.MustContain(t, out, "pipeline")
	kit.MustContain(t, out, "run_id=")
	kit.MustContain(t, out, "run-123")
	kit.MustContain(t, out, "build=")
	kit.MustContain(t, out, "test")
	kit.MustContain(t, out, "service=")
	kit.MustContain(t, out, "aliasgen-test")
}

func TestWithRunEmptyID(t *testing.T) {
	ctx := context.Background()
	if WithRun(ctx, "") != ctx {
		t.Fatalf("WithRun with empty id should return ctx unchanged")
	}
}
