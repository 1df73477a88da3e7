package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestInitWriter_Levels(t *testing.T) {
	defer InitWriter(&bytes.Buffer{}, DefaultConfig())

	var buf bytes.Buffer
	InitWriter(&buf, Config{Level: zerolog.InfoLevel})
	L().Debug().Msg("hidden")
	L().Info().Msg("shown")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("debug message written at info level: %s", output)
	}
	if !strings.Contains(output, `"message":"shown"`) {
		t.Errorf("expected JSON info message, got: %s", output)
	}
}

func TestInitWriter_Human(t *testing.T) {
	defer InitWriter(&bytes.Buffer{}, DefaultConfig())

	var buf bytes.Buffer
	InitWriter(&buf, Config{Level: zerolog.DebugLevel, Human: true, NoColor: true})
	L().Debug().Msg("console line")

	output := buf.String()
	if !strings.Contains(output, "console line") || strings.Contains(output, `"message"`) {
		t.Errorf("expected console output, got: %s", output)
	}
	if !IsPrettyMode() {
		t.Error("expected pretty mode with human output")
	}
}

func TestWithPhase(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	defer InitWriter(&bytes.Buffer{}, DefaultConfig())

	log := WithPhase("walk")
	log.Info().Msg("test message")

	if !bytes.Contains(buf.Bytes(), []byte(`"phase":"walk"`)) {
		t.Errorf("expected phase field in output, got: %s", buf.String())
	}
}

func TestConfigFrom(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "defaults",
			env:  nil,
			want: Config{Level: zerolog.WarnLevel},
		},
		{
			name: "debug human",
			env:  map[string]string{EnvLogLevel: "DEBUG", EnvLogHuman: "1"},
			want: Config{Level: zerolog.DebugLevel, Human: true},
		},
		{
			name: "off with mem debug",
			env:  map[string]string{EnvLogLevel: "off", EnvMemDebug: "true", EnvLogNoColor: "t"},
			want: Config{Level: zerolog.Disabled, MemDebug: true, NoColor: true},
		},
		{
			name: "garbage ignored",
			env:  map[string]string{EnvLogLevel: "loud", EnvLogHuman: "maybe"},
			want: Config{Level: zerolog.WarnLevel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := configFrom(func(k string) string { return tt.env[k] })
			if got != tt.want {
				t.Errorf("configFrom() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "info")
	t.Setenv(EnvLogHuman, "")

	cfg := ConfigFromEnv()
	if cfg.Level != zerolog.InfoLevel {
		t.Errorf("Level = %v, want info", cfg.Level)
	}
	if cfg.Human {
		t.Error("Human = true, want false")
	}
}

func TestCompletionEvent_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	SetPrettyMode(false)

	PhaseComplete(log, "size", 1500*time.Microsecond).
		Str("mode", "par").
		Int("workers", 8).
		Count("entries", 1500).
		Bytes("total_bytes", 2048).
		Log("sizes computed")

	output := buf.String()
	for _, want := range []string{
		`"event":"phase_completed"`,
		`"phase":"size"`,
		`"duration_ms":1.5`,
		`"mode":"par"`,
		`"workers":8`,
		`"entries":1500`,
		`"total_bytes":2048`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
	if strings.Contains(output, "_h") {
		t.Errorf("unexpected human fields without pretty mode: %s", output)
	}
}

func TestCompletionEvent_PrettyFields(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	SetPrettyMode(true)
	defer SetPrettyMode(false)

	PhaseComplete(log, "size", time.Second).
		Bytes("total_bytes", 1073741824).
		Count("entries", 1500000).
		Throughput(1048576).
		Log("sizes computed")

	output := buf.String()
	for _, want := range []string{
		`"total_bytes_h":"1.00 GiB"`,
		`"entries_h":"1.50M"`,
		`"throughput_h":"1.00 MiB/s"`,
		`"duration_h":"1.00s"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestCompletionEvent_LogDebugRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.InfoLevel)

	PhaseComplete(log, "walk", time.Millisecond).LogDebug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug event written at info level: %s", buf.String())
	}
}
