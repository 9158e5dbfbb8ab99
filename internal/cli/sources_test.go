package cli

import (
	"net/http/httptest"
	"testing"
	"time"

	"flightdeck/internal/config"
	"flightdeck/internal/hook"
	"flightdeck/internal/platform"
	"flightdeck/internal/stage"
	"flightdeck/internal/stubplatform"
	"flightdeck/internal/testutil"
	"flightdeck/internal/ui/live"
)

func testConfig(baseURL string) config.Config {
	cfg := config.Config{
		Version: 1,
		Backend: config.BackendConfig{BaseURL: baseURL},
	}
	config.Normalize(&cfg)
	return cfg
}

func TestFeedIntervalsFollowTaskState(t *testing.T) {
	f := newFeed(testConfig("https://example.com"), platform.New("https://example.com"), "task-1")

	if got := f.stageInterval(); got != 0 {
		t.Fatalf("stage feed should pause without an issue id, got %v", got)
	}
	if got := f.hookInterval(); got != f.cadence.Settled {
		t.Fatalf("expected settled cadence by default, got %v", got)
	}

	f.mu.Lock()
	f.task.DeploymentStatus = "deploying"
	f.task.IssueID = "issue-1"
	f.mu.Unlock()

	if got := f.hookInterval(); got != f.cadence.Deploying {
		t.Fatalf("expected deploying cadence, got %v", got)
	}
	if got := f.stageInterval(); got != f.cadence.Stage {
		t.Fatalf("expected stage cadence with an issue, got %v", got)
	}

	f.mu.Lock()
	f.currentStage = stage.Implementation
	f.task.SessionID = "sess-1"
	f.mu.Unlock()

	if got := f.hookInterval(); got != f.cadence.Session {
		t.Fatalf("expected session cadence during implementation, got %v", got)
	}
}

func TestFeedSwitchesHookSourceByStage(t *testing.T) {
	scenario := stubplatform.DefaultScenario("task-demo")
	scenario.StartedAt = time.Now().Add(-30 * time.Second)
	ts := httptest.NewServer(stubplatform.NewServer(scenario).Handler())
	defer ts.Close()

	f := newFeed(testConfig(ts.URL), platform.New(ts.URL), "task-demo")
	ctx := testutil.Context(t, 0)

	if _, err := f.fetchTask(ctx); err != nil {
		t.Fatalf("fetch task: %v", err)
	}
	if _, err := f.fetchStages(ctx); err != nil {
		t.Fatalf("fetch stages: %v", err)
	}
	if f.currentStage != stage.Implementation {
		t.Fatalf("expected implementation stage after 30s, got %q", f.currentStage)
	}

	snapshot, err := f.fetchHooks(ctx)
	if err != nil {
		t.Fatalf("fetch hooks: %v", err)
	}
	snap, ok := snapshot.(hook.Snapshot)
	if !ok {
		t.Fatalf("unexpected snapshot type %T", snapshot)
	}
	if len(snap.Hooks) == 0 {
		t.Fatalf("expected session hooks")
	}
	for _, evt := range snap.Hooks {
		if evt.Phase != "" {
			t.Fatalf("expected session feed during implementation, got deploy hook %+v", evt)
		}
	}
}

func TestFeedSourcesCoverAllKeys(t *testing.T) {
	f := newFeed(testConfig("https://example.com"), platform.New("https://example.com"), "task-1")

	sources := f.sources()

	keys := map[string]bool{}
	for _, src := range sources {
		keys[src.Key] = true
		if src.Fetch == nil || src.Interval == nil {
			t.Fatalf("source %q missing fetch or interval", src.Key)
		}
	}
	for _, want := range []string{live.SourceTask, live.SourceHooks, live.SourceStages} {
		if !keys[want] {
			t.Fatalf("missing source %q", want)
		}
	}
}
