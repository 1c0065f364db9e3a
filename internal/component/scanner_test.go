package component

import (
	"github.com/google/go-cmp/cmp"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := ioutil.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScanner_Scan(t *testing.T) {
	ref, cand := t.TempDir(), t.TempDir()
	touch(t, ref, "c.png", "a.png", "b.png", "notes.txt")
	touch(t, cand, "b.png", "a.png", "extra.png", "notes.txt")
	if err := os.Mkdir(filepath.Join(ref, "sub.png"), 0755); err != nil {
		t.Fatal(err)
	}

	match, err := NewGlobMatcher("*.png")
	if err != nil {
		t.Fatal(err)
	}

	plan, err := NewScanner(&Config{Ref: ref, Cand: cand, Match: match}).Scan()
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, job := range plan.Jobs {
		names = append(names, job.Name)
	}
	if diff := cmp.Diff([]string{"a.png", "b.png", "c.png"}, names); diff != "" {
		t.Errorf("jobs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"extra.png"}, plan.Extra); diff != "" {
		t.Errorf("extra mismatch (-want +got):\n%s", diff)
	}

	for _, job := range plan.Jobs[:2] {
		if job.finished() {
			t.Errorf("%s should wait for comparison", job.Name)
		}
		if got, want := job.Ref.Path(), filepath.Join(ref, job.Name); got != want {
			t.Errorf("ref path %s, want %s", got, want)
		}
		if got, want := job.Cand.Path(), filepath.Join(cand, job.Name); got != want {
			t.Errorf("cand path %s, want %s", got, want)
		}
	}

	missing := plan.Jobs[2]
	if !missing.finished() || missing.Result.Status != Missing {
		t.Errorf("c.png should be missing, got %v", missing.Result.Status)
	}
}

func TestScanner_ScanCaseSensitive(t *testing.T) {
	ref, cand := t.TempDir(), t.TempDir()
	touch(t, ref, "a.png")
	touch(t, cand, "A.png")

	plan, err := NewScanner(&Config{Ref: ref, Cand: cand}).Scan()
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Jobs) != 1 || plan.Jobs[0].Result.Status != Missing {
		t.Errorf("a.png should be missing")
	}
}

func TestScanner_ScanMissingDirectory(t *testing.T) {
	dir := t.TempDir()

	if _, err := NewScanner(&Config{Ref: filepath.Join(dir, "nope"), Cand: dir}).Scan(); err == nil {
		t.Error("expected error for missing reference directory")
	}
	if _, err := NewScanner(&Config{Ref: dir, Cand: filepath.Join(dir, "nope")}).Scan(); err == nil {
		t.Error("expected error for missing candidate directory")
	}
}
