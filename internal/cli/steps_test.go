package cli

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"flightdeck/internal/config"
	"flightdeck/internal/stubplatform"
)

func withStubBackend(t *testing.T, elapsed time.Duration) string {
	t.Helper()
	scenario := stubplatform.DefaultScenario("task-demo")
	scenario.StartedAt = time.Now().Add(-elapsed)
	ts := httptest.NewServer(stubplatform.NewServer(scenario).Handler())
	t.Cleanup(ts.Close)

	prev := loadConfig
	loadConfig = func(string) (config.Config, error) {
		return testConfig(ts.URL), nil
	}
	t.Cleanup(func() { loadConfig = prev })
	return ts.URL
}

func TestStepsCommandPrintsFoldedLog(t *testing.T) {
	withStubBackend(t, 9*time.Second)

	var out, errOut bytes.Buffer
	code := Run([]string{"steps", "--task", "task-demo"}, &out, &errOut)

	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr: %q)", ExitOK, code, errOut.String())
	}
	text := out.String()
	for _, want := range []string{"Clone repo", "Install dependencies", "completed"} {
		if !strings.Contains(text, want) {
			t.Fatalf("steps output missing %q:\n%s", want, text)
		}
	}
}

func TestStepsCommandUnknownTask(t *testing.T) {
	withStubBackend(t, 5*time.Second)

	var out, errOut bytes.Buffer
	code := Run([]string{"steps", "--task", "other"}, &out, &errOut)

	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "Failed to fetch task") {
		t.Fatalf("expected fetch failure, got %q", errOut.String())
	}
}

func TestStagesCommandPrintsLadder(t *testing.T) {
	withStubBackend(t, 20*time.Second)

	var out, errOut bytes.Buffer
	code := Run([]string{"stages", "--task", "task-demo"}, &out, &errOut)

	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr: %q)", ExitOK, code, errOut.String())
	}
	text := out.String()
	for _, want := range []string{"Workflow progress", "Deployment", "Implementation", "active"} {
		if !strings.Contains(text, want) {
			t.Fatalf("stages output missing %q:\n%s", want, text)
		}
	}
}

func TestRetryCommand(t *testing.T) {
	withStubBackend(t, 5*time.Second)

	var out, errOut bytes.Buffer
	code := Run([]string{"retry", "--task", "task-demo", "--stage", "testing"}, &out, &errOut)

	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr: %q)", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), "Retry requested for stage Testing") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRetryCommandRejectsUnknownStage(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"retry", "--task", "task-demo", "--stage", "review"}, &out, &errOut)

	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut.String(), "Unknown stage") {
		t.Fatalf("expected stage error, got %q", errOut.String())
	}
}
