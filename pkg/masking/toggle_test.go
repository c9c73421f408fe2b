package masking

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// writeTestFile creates a file (and any missing parent directories) beneath
// the specified root.
func writeTestFile(t *testing.T, root, name string, contents []byte) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatal("unable to create parent directories:", err)
	}
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatal("unable to write test file:", err)
	}
}

// exists checks for the existence of a slash-separated path beneath a root.
func exists(root, name string) bool {
	_, err := os.Lstat(filepath.Join(root, filepath.FromSlash(name)))
	return err == nil
}

func TestHideAllAndRestoreAll(t *testing.T) {
	// Create a directory tree matching an export build's targets.
	root := t.TempDir()
	imageSource := []byte("export const runtime = 'edge'\n")
	writeTestFile(t, root, "app/[slug]/opengraph-image.tsx", imageSource)
	writeTestFile(t, root, "app/[slug]/opengraph-image.png", []byte{0x89, 'P', 'N', 'G'})

	// Hide both targets.
	targets := []string{
		"app/[slug]/opengraph-image.tsx",
		"app/[slug]/opengraph-image.png",
	}
	toggler := NewToggler(root, targets, nil)
	for _, result := range toggler.HideAll() {
		if result.Outcome != OutcomeMoved {
			t.Errorf("unexpected hide outcome for %s: %s", result.Target, result.Outcome)
		}
	}

	// Ensure that the visible paths are gone and the hidden paths exist.
	for _, target := range targets {
		if exists(root, target) {
			t.Error("visible path still present after hide:", target)
		}
		if !exists(root, HiddenPath(target)) {
			t.Error("hidden path missing after hide:", HiddenPath(target))
		}
	}

	// Restore both targets.
	for _, result := range toggler.RestoreAll() {
		if result.Outcome != OutcomeMoved {
			t.Errorf("unexpected restore outcome for %s: %s", result.Target, result.Outcome)
		}
	}

	// Ensure that the hidden paths are gone and the contents survived the
	// round trip.
	for _, target := range targets {
		if exists(root, HiddenPath(target)) {
			t.Error("hidden path still present after restore:", HiddenPath(target))
		}
	}
	contents, err := os.ReadFile(filepath.Join(root, "app", "[slug]", "opengraph-image.tsx"))
	if err != nil {
		t.Fatal("unable to read restored file:", err)
	} else if !bytes.Equal(contents, imageSource) {
		t.Error("restored file contents did not match original")
	}
}

func TestHideAllDirectoryTarget(t *testing.T) {
	// Create a route directory target, as used by server builds.
	root := t.TempDir()
	writeTestFile(t, root, "app/[slug]/opengraph-image.png/route.ts", []byte("export async function GET() {}\n"))

	// Hide the directory itself and ensure its contents moved with it.
	toggler := NewToggler(root, []string{"app/[slug]/opengraph-image.png"}, nil)
	results := toggler.HideAll()
	if len(results) != 1 || results[0].Outcome != OutcomeMoved {
		t.Fatal("directory target was not moved")
	}
	if !exists(root, "app/[slug]/_opengraph-image.png/route.ts") {
		t.Error("directory contents missing after hide")
	}
	if exists(root, "app/[slug]/opengraph-image.png") {
		t.Error("visible directory still present after hide")
	}
}

func TestHideAllMissingTarget(t *testing.T) {
	// Hide a target that doesn't exist and ensure it's reported as skipped
	// with no filesystem mutation.
	root := t.TempDir()
	target := "app/[slug]/opengraph-image.png/route.ts"
	toggler := NewToggler(root, []string{target}, nil)
	results := toggler.HideAll()
	if len(results) != 1 || results[0].Outcome != OutcomeSkipped {
		t.Fatal("missing target was not reported as skipped")
	}
	if exists(root, HiddenPath(target)) {
		t.Error("hidden path created for missing target")
	}
}

func TestHideAllParentSegmentIsFile(t *testing.T) {
	// Occupy a parent segment of the target with a regular file, as happens
	// when the export targets are checked out: probing the server target then
	// fails with ENOTDIR rather than ENOENT, but it must still be treated as
	// absent.
	root := t.TempDir()
	writeTestFile(t, root, "app/[slug]/opengraph-image.png", []byte{0x89, 'P', 'N', 'G'})

	target := "app/[slug]/opengraph-image.png/route.ts"
	toggler := NewToggler(root, []string{target}, nil)
	results := toggler.HideAll()
	if len(results) != 1 || results[0].Outcome != OutcomeSkipped {
		t.Fatal("target beneath a file was not reported as skipped:", results)
	}

	// Ensure that the occupying file was left untouched and its state reads as
	// visible under the export view.
	if !exists(root, "app/[slug]/opengraph-image.png") {
		t.Error("occupying file mutated by skip")
	}
	states := NewToggler(root, []string{"app/[slug]/opengraph-image.png"}, nil).Status()
	if len(states) != 1 || states[0].State != StateVisible {
		t.Error("occupying file misclassified:", states)
	}

	// The restore direction probes the hidden counterpart beneath the same
	// file and must skip as well.
	results = toggler.RestoreAll()
	if len(results) != 1 || results[0].Outcome != OutcomeSkipped {
		t.Fatal("hidden target beneath a file was not reported as skipped:", results)
	}
}

func TestRestoreAllMissingTarget(t *testing.T) {
	// Restore a target whose hidden counterpart doesn't exist.
	root := t.TempDir()
	toggler := NewToggler(root, []string{"app/[slug]/opengraph-image.tsx"}, nil)
	results := toggler.RestoreAll()
	if len(results) != 1 || results[0].Outcome != OutcomeSkipped {
		t.Fatal("missing hidden target was not reported as skipped")
	}
}

func TestHideAllFailureDoesNotAbort(t *testing.T) {
	// Create one target that can't be hidden (its hidden path is occupied by a
	// non-empty directory, so the rename must fail) followed by one that can.
	root := t.TempDir()
	writeTestFile(t, root, "app/blocked.ts", []byte("blocked"))
	writeTestFile(t, root, "app/_blocked.ts/occupant", []byte("occupant"))
	writeTestFile(t, root, "app/movable.ts", []byte("movable"))

	toggler := NewToggler(root, []string{"app/blocked.ts", "app/movable.ts"}, nil)
	results := toggler.HideAll()
	if len(results) != 2 {
		t.Fatal("unexpected result count:", len(results))
	}
	if results[0].Outcome != OutcomeFailed {
		t.Error("blocked target was not reported as failed:", results[0].Outcome)
	} else if results[0].Error == nil {
		t.Error("failed result missing underlying error")
	}
	if results[1].Outcome != OutcomeMoved {
		t.Error("subsequent target was not processed after a failure")
	}
	if !exists(root, "app/_movable.ts") {
		t.Error("subsequent target was not hidden")
	}
}

func TestStatus(t *testing.T) {
	// Create one visible target, one hidden target, and reference one absent
	// target.
	root := t.TempDir()
	writeTestFile(t, root, "app/visible.ts", []byte("visible"))
	writeTestFile(t, root, "app/_hidden.ts", []byte("hidden"))

	toggler := NewToggler(root, []string{"app/visible.ts", "app/hidden.ts", "app/absent.ts"}, nil)
	states := toggler.Status()
	if len(states) != 3 {
		t.Fatal("unexpected state count:", len(states))
	}
	if states[0].State != StateVisible {
		t.Error("visible target misclassified:", states[0].State)
	}
	if states[1].State != StateHidden {
		t.Error("hidden target misclassified:", states[1].State)
	}
	if states[2].State != StateAbsent {
		t.Error("absent target misclassified:", states[2].State)
	}
}
