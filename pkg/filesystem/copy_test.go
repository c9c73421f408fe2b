package filesystem

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCopyFile(t *testing.T) {
	// Create a temporary directory and defer its cleanup.
	directory, err := os.MkdirTemp("", "routemask_copy")
	if err != nil {
		t.Fatal("unable to create temporary directory:", err)
	}
	defer os.RemoveAll(directory)

	// Create the source file.
	source := filepath.Join(directory, "source")
	contents := []byte("file contents")
	if err := os.WriteFile(source, contents, 0640); err != nil {
		t.Fatal("unable to create source file:", err)
	}

	// Perform the copy.
	target := filepath.Join(directory, "target")
	copied, err := CopyFile(source, target, nil)
	if err != nil {
		t.Fatal("copy failed:", err)
	} else if copied != int64(len(contents)) {
		t.Error("copied byte count incorrect:", copied)
	}

	// Verify contents and (on POSIX) permission preservation. The source must
	// remain in place.
	if data, err := os.ReadFile(target); err != nil {
		t.Fatal("unable to read copy target:", err)
	} else if !bytes.Equal(data, contents) {
		t.Error("copy target contents did not match source")
	}
	if runtime.GOOS != "windows" {
		if info, err := os.Lstat(target); err != nil {
			t.Fatal("unable to probe copy target:", err)
		} else if info.Mode().Perm() != 0640 {
			t.Error("copy target permissions not preserved:", info.Mode().Perm())
		}
	}
	if _, err := os.Lstat(source); err != nil {
		t.Error("copy source no longer present")
	}
}

func TestCopyFileNonRegularSource(t *testing.T) {
	// Create a temporary directory and defer its cleanup.
	directory, err := os.MkdirTemp("", "routemask_copy")
	if err != nil {
		t.Fatal("unable to create temporary directory:", err)
	}
	defer os.RemoveAll(directory)

	// Ensure that copying a directory with CopyFile fails.
	if _, err := CopyFile(directory, filepath.Join(directory, "target"), nil); err == nil {
		t.Error("copy of non-regular source did not fail")
	}
}

func TestCopyTree(t *testing.T) {
	// Create a temporary directory and defer its cleanup.
	directory, err := os.MkdirTemp("", "routemask_copy")
	if err != nil {
		t.Fatal("unable to create temporary directory:", err)
	}
	defer os.RemoveAll(directory)

	// Create a source tree with a nested directory, a file, and (on POSIX) a
	// symbolic link.
	source := filepath.Join(directory, "source")
	if err := os.MkdirAll(filepath.Join(source, "nested"), 0700); err != nil {
		t.Fatal("unable to create source tree:", err)
	}
	contents := []byte("nested file contents")
	if err := os.WriteFile(filepath.Join(source, "nested", "file"), contents, 0600); err != nil {
		t.Fatal("unable to populate source tree:", err)
	}
	if runtime.GOOS != "windows" {
		if err := os.Symlink("nested/file", filepath.Join(source, "link")); err != nil {
			t.Fatal("unable to create symbolic link:", err)
		}
	}

	// Perform the copy.
	target := filepath.Join(directory, "target")
	copied, err := CopyTree(source, target, nil)
	if err != nil {
		t.Fatal("tree copy failed:", err)
	} else if copied != int64(len(contents)) {
		t.Error("copied byte count incorrect:", copied)
	}

	// Verify the replicated structure.
	if data, err := os.ReadFile(filepath.Join(target, "nested", "file")); err != nil {
		t.Fatal("unable to read copied tree contents:", err)
	} else if !bytes.Equal(data, contents) {
		t.Error("copied tree contents did not match source")
	}
	if runtime.GOOS != "windows" {
		if linkTarget, err := os.Readlink(filepath.Join(target, "link")); err != nil {
			t.Fatal("unable to read copied symbolic link:", err)
		} else if linkTarget != "nested/file" {
			t.Error("copied symbolic link target incorrect:", linkTarget)
		}
	}
}
