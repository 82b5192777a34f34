package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be a no-op when no level is configured")
	}
}

func TestInitializeLevels(t *testing.T) {
	tests := []struct {
		level     string
		debugOn   bool
		infoOn    bool
		errorOnly bool
	}{
		{"debug", true, true, false},
		{"info", false, true, false},
		{"error", false, false, true},
		{"bogus", false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if err := Initialize(tt.level); err != nil {
				t.Fatalf("Initialize(%q) error = %v", tt.level, err)
			}
			core := GetLogger().Core()
			if got := core.Enabled(zapcore.DebugLevel); got != tt.debugOn {
				t.Errorf("debug enabled = %v, want %v", got, tt.debugOn)
			}
			if got := core.Enabled(zapcore.InfoLevel); got != tt.infoOn {
				t.Errorf("info enabled = %v, want %v", got, tt.infoOn)
			}
			if tt.errorOnly && core.Enabled(zapcore.WarnLevel) {
				t.Error("warn enabled at error level")
			}
		})
	}
	t.Cleanup(func() { logger = nil })
}

func TestInitializeFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")
	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	core := GetLogger().Core()
	if core.Enabled(zapcore.InfoLevel) || !core.Enabled(zapcore.WarnLevel) {
		t.Error("FYI_LOG_LEVEL=warn not applied")
	}
	logger = nil
}

func TestNamedNeverNil(t *testing.T) {
	logger = nil
	if Named("progress") == nil {
		t.Fatal("Named() returned nil")
	}
}

func TestHelpersUseGlobalLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger = zap.New(core)
	t.Cleanup(func() { logger = nil })

	Info("Configuration file written", zap.String("path", "/tmp/fyi.yaml"))
	Warn("Unknown log level, using info", zap.String("level", "loud"))
	LogRenderMode("stdout", "plain", "not a terminal")

	entries := logs.AllUntimed()
	if len(entries) != 3 {
		t.Fatalf("logged %d entries, want 3", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[0].ContextMap()["path"] != "/tmp/fyi.yaml" {
		t.Errorf("info entry = %+v", entries[0])
	}
	if entries[1].Level != zapcore.WarnLevel || entries[1].ContextMap()["level"] != "loud" {
		t.Errorf("warn entry = %+v", entries[1])
	}
	if entries[2].Level != zapcore.DebugLevel || entries[2].ContextMap()["reason"] != "not a terminal" {
		t.Errorf("debug entry = %+v", entries[2])
	}
}
