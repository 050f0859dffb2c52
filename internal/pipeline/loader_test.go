package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

func writeFile(t *testing.T, path string, lines ...string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.jsonl"),
		`{"id":"1","name":"Dinner","calories":700,"date":"2026-03-02","time":"19:00"}`,
		`{"id":"2","name":"Breakfast","calories":300,"date":"2026-03-02","time":"08:00"}`,
	)
	writeFile(t, filepath.Join(dir, "b.jsonl"),
		`{"id":"1","name":"Dinner","calories":650,"date":"2026-03-02","time":"19:00"}`,
		`{"name":"Snack","calories":95,"date":"2026-03-01"}`,
		`garbage`,
	)

	var calls atomic.Int64
	result, err := Load(dir, func(current, total int) {
		calls.Add(1)
		if total != 2 {
			t.Errorf("total = %d, want 2", total)
		}
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if result.TotalFiles != 2 || result.ParsedFiles != 2 {
		t.Errorf("files total=%d parsed=%d, want 2/2", result.TotalFiles, result.ParsedFiles)
	}
	if result.ParseErrors != 1 || result.Duplicates != 1 {
		t.Errorf("parseErrors=%d duplicates=%d, want 1/1", result.ParseErrors, result.Duplicates)
	}
	if calls.Load() != 2 {
		t.Errorf("progress calls = %d, want 2", calls.Load())
	}

	var names []string
	for _, e := range result.Entries {
		names = append(names, fmt.Sprintf("%s:%d", e.Name, e.Calories))
	}
	want := "Snack:95 Breakfast:300 Dinner:650"
	if got := strings.Join(names, " "); got != want {
		t.Errorf("entries = %s, want %s", got, want)
	}
}

func TestLoadEmptyDir(t *testing.T) {
	result, err := Load(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if result.TotalFiles != 0 || len(result.Entries) != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
}

func TestLoadMissingPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Fatal("expected error for missing path")
	}
}

func BenchmarkLoad(b *testing.B) {
	dir := b.TempDir()
	for f := 0; f < 8; f++ {
		var lines []string
		for i := 0; i < 500; i++ {
			lines = append(lines, fmt.Sprintf(
				`{"id":"%d-%d","name":"Meal %d","calories":%d,"protein":20,"carbs":50,"fat":15,"date":"2026-03-%02d","time":"12:00"}`,
				f, i, i, 300+i, i%28+1))
		}
		path := filepath.Join(dir, fmt.Sprintf("%d.jsonl", f))
		if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Load(dir, nil); err != nil {
			b.Fatal(err)
		}
	}
}
