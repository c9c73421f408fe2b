package masking

import (
	"os"
	"path/filepath"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"routemask/pkg/filesystem"
	"routemask/pkg/logging"
)

// Outcome describes the result of processing a single target.
type Outcome uint8

const (
	// OutcomeMoved indicates that the target was moved to its counterpart
	// path.
	OutcomeMoved Outcome = iota
	// OutcomeSkipped indicates that the target's source path was absent, so
	// there was nothing to do.
	OutcomeSkipped
	// OutcomeFailed indicates that processing the target failed. The target is
	// left in an unknown state.
	OutcomeFailed
)

// String provides a human-readable representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result pairs a target with its processing outcome. Error is non-nil only for
// OutcomeFailed.
type Result struct {
	// Target is the logical (visible) target path.
	Target string
	// Outcome is the processing outcome for the target.
	Outcome Outcome
	// Error is the underlying cause of a failure.
	Error error
}

// State describes where a target currently resides on disk.
type State uint8

const (
	// StateVisible indicates that the target exists at its visible path.
	StateVisible State = iota
	// StateHidden indicates that the target exists only at its hidden path.
	StateHidden
	// StateAbsent indicates that the target exists at neither path.
	StateAbsent
)

// String provides a human-readable representation of a target state.
func (s State) String() string {
	switch s {
	case StateVisible:
		return "visible"
	case StateHidden:
		return "hidden"
	case StateAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// TargetState pairs a target with its current on-disk state.
type TargetState struct {
	// Target is the logical (visible) target path.
	Target string
	// State is the target's current state.
	State State
}

// Toggler hides and restores a fixed ordered list of target paths beneath a
// root directory. Targets are processed strictly sequentially, and a failure
// on one target never prevents processing of the remaining targets.
type Toggler struct {
	// root is the directory against which target paths are resolved.
	root string
	// targets are the slash-separated relative target paths, in processing
	// order.
	targets []string
	// logger is the logger used for per-target reporting. It may be nil.
	logger *logging.Logger
}

// NewToggler creates a toggler for the specified root directory and target
// list.
func NewToggler(root string, targets []string, logger *logging.Logger) *Toggler {
	return &Toggler{
		root:    root,
		targets: targets,
		logger:  logger,
	}
}

// HideAll renames every visible target to its hidden counterpart, returning a
// result per target in processing order.
func (t *Toggler) HideAll() []Result {
	results := make([]Result, 0, len(t.targets))
	for _, target := range t.targets {
		results = append(results, t.process(target, target, HiddenPath(target)))
	}
	return results
}

// RestoreAll renames every hidden target back to its visible path, returning a
// result per target in processing order.
func (t *Toggler) RestoreAll() []Result {
	results := make([]Result, 0, len(t.targets))
	for _, target := range t.targets {
		results = append(results, t.process(target, HiddenPath(target), target))
	}
	return results
}

// Status reports where each target currently resides on disk. A target present
// at its visible path is reported visible even if a stale hidden counterpart
// also exists.
func (t *Toggler) Status() []TargetState {
	states := make([]TargetState, 0, len(t.targets))
	for _, target := range t.targets {
		state := StateAbsent
		if _, err := os.Lstat(t.resolve(target)); err == nil {
			state = StateVisible
		} else if _, err := os.Lstat(t.resolve(HiddenPath(target))); err == nil {
			state = StateHidden
		}
		states = append(states, TargetState{Target: target, State: state})
	}
	return states
}

// resolve converts a slash-separated relative path to an absolute path beneath
// the toggler's root.
func (t *Toggler) resolve(target string) string {
	return filepath.Join(t.root, filepath.FromSlash(target))
}

// isAbsence checks whether or not an error returned by os.Lstat indicates
// that the probed path does not exist. In addition to plain non-existence,
// this covers probes whose parent segment is occupied by a regular file, which
// surface as ENOTDIR rather than ENOENT.
func isAbsence(err error) bool {
	return os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR)
}

// process moves a single target from source to destination, classifying the
// result. Absence of the source is a skip, not a failure.
func (t *Toggler) process(target, source, destination string) Result {
	sourcePath := t.resolve(source)
	destinationPath := t.resolve(destination)

	// Check whether or not there's anything to do for this target.
	if _, err := os.Lstat(sourcePath); err != nil && isAbsence(err) {
		t.logger.Printf("Skipped %s: %s does not exist", target, source)
		return Result{Target: target, Outcome: OutcomeSkipped}
	} else if err != nil {
		t.logger.Warn(errors.Wrapf(err, "unable to probe %s", source))
		return Result{Target: target, Outcome: OutcomeFailed, Error: err}
	}

	// Perform the move.
	copied, err := filesystem.Move(sourcePath, destinationPath, t.logger)
	if err != nil {
		t.logger.Warn(errors.Wrapf(err, "unable to move %s", source))
		return Result{Target: target, Outcome: OutcomeFailed, Error: err}
	}

	// Report success, noting the copied volume if the move required a
	// cross-device fallback.
	if copied > 0 {
		t.logger.Printf("Moved %s to %s (copied %s across devices)",
			source, destination, humanize.Bytes(uint64(copied)),
		)
	} else {
		t.logger.Printf("Moved %s to %s", source, destination)
	}
	return Result{Target: target, Outcome: OutcomeMoved}
}
