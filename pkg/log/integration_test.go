package log

import (
	"context"
	"fmt"
	"testing"
)

func TestLoggerInterface(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("split rejected by min_child_weight", "feature", 3, "hess_sum", 0.4)
	testLogger.Info("boosting round complete", IterationKey, 1)
	testLogger.Warn("round fell back to an unsplit leaf", IterationKey, 2)

	testErr := fmt.Errorf("rmse became NaN")
	testLogger.Error("fit aborted", testErr, ErrorCodeKey, ErrorNumericalInstability)

	if buffer.String() == "" {
		t.Fatal("expected log output, got empty string")
	}

	for _, msg := range []string{
		"split rejected by min_child_weight",
		"boosting round complete",
		"round fell back to an unsplit leaf",
		"fit aborted",
	} {
		if !testLogger.ContainsMessage(msg) {
			t.Errorf("message %q not found in output", msg)
		}
	}
}

func TestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	contextLogger := testLogger.With(
		ComponentKey, "ensemble",
		IterationKey, 5,
	)
	contextLogger.Info("boosting round complete", LossKey, 0.42)

	if !testLogger.ContainsField(ComponentKey, "ensemble") {
		t.Error("component context not found")
	}
	if !testLogger.ContainsField(IterationKey, 5.0) {
		t.Error("round context not found")
	}
	if !testLogger.ContainsField(LossKey, 0.42) {
		t.Error("rmse field not found")
	}
}

func TestLoggerEnabled(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	if !testLogger.Enabled(ctx, LevelInfo) {
		t.Error("logger should be enabled for Info level")
	}
	if !testLogger.Enabled(ctx, LevelError) {
		t.Error("logger should be enabled for Error level")
	}
	if testLogger.Enabled(ctx, LevelDebug) {
		t.Error("logger should not be enabled for Debug level")
	}

	testLogger.Debug("this should not appear")
	testLogger.Info("this should appear")

	if testLogger.ContainsMessage("this should not appear") {
		t.Error("debug message should not appear when level is Info")
	}
	if !testLogger.ContainsMessage("this should appear") {
		t.Error("info message should appear when level is Info")
	}
}

func TestTrainingAttributeKeys(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)

	testLogger.Info("boosting round complete",
		IterationKey, 10,
		SamplesKey, 1000,
		FeaturesKey, 20,
		LearningRateKey, 0.3,
		RegularizationKey, 1.0,
		LossKey, 0.05,
	)

	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("failed to parse log entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}

	entry := entries[0]
	expected := map[string]interface{}{
		IterationKey:      10.0,
		SamplesKey:        1000.0,
		FeaturesKey:       20.0,
		LearningRateKey:   0.3,
		RegularizationKey: 1.0,
		LossKey:           0.05,
	}
	for key, want := range expected {
		got, exists := entry[key]
		if !exists {
			t.Errorf("expected field %s not found", key)
			continue
		}
		if got != want {
			t.Errorf("field %s: expected %v, got %v", key, want, got)
		}
	}
}

func TestLoggerProviderIntegration(t *testing.T) {
	provider, buffer := NewTestLoggerProvider(LevelDebug)

	logger := provider.GetLogger()
	logger.Info("provider test message")

	namedLogger := provider.GetLoggerWithName("ensemble")
	namedLogger.Info("named logger message")

	if buffer.String() == "" {
		t.Fatal("expected log output from provider")
	}

	out := buffer.String()
	for _, want := range []string{"provider test message", "named logger message", "ensemble"} {
		if !containsSubstr(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestErrorLoggingIntegration(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelError)

	testErr := fmt.Errorf("boosting round failed")
	testLogger.Error("boosting round failed",
		"error", testErr,
		ErrorCodeKey, ErrorModelError,
		IterationKey, 3,
	)

	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("failed to parse log entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 error entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry["level"] != "ERROR" {
		t.Error("expected ERROR level")
	}
	if !testLogger.ContainsField(ErrorCodeKey, ErrorModelError) {
		t.Error("error code not found")
	}
}

func TestConcurrentLogging(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)

	numGoroutines := 3
	messagesPerGoroutine := 3
	done := make(chan bool, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer func() { done <- true }()
			for j := 0; j < messagesPerGoroutine; j++ {
				testLogger.Info(fmt.Sprintf("round %d worker %d", id, j),
					"worker_id", id,
					IterationKey, j,
				)
			}
		}(i)
	}
	for i := 0; i < numGoroutines; i++ {
		<-done
	}

	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("failed to parse log entries: %v", err)
	}
	expectedEntries := numGoroutines * messagesPerGoroutine
	if len(entries) < expectedEntries-2 {
		t.Errorf("expected around %d log entries, got %d", expectedEntries, len(entries))
	}
}

func containsSubstr(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		func() bool {
			for i := 0; i <= len(s)-len(substr); i++ {
				if s[i:i+len(substr)] == substr {
					return true
				}
			}
			return false
		}())
}

func BenchmarkLogging(b *testing.B) {
	testLogger, _ := NewTestLogger(LevelInfo)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		testLogger.Info("boosting round complete", IterationKey, i, SamplesKey, 1000)
	}
}

func BenchmarkLoggingWithContext(b *testing.B) {
	testLogger, _ := NewTestLogger(LevelInfo)
	contextLogger := testLogger.With(ComponentKey, "ensemble")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		contextLogger.Info("boosting round complete", IterationKey, i, SamplesKey, 1000)
	}
}
