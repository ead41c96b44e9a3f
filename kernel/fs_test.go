package main

import "testing"

func TestFsInitRootIsRootNamedSlash(t *testing.T) {
	fsInit()
	if dirPool[rootDirIdx].Name() != "/" {
		t.Fatalf(`expected root directory name "/", got %q`, dirPool[rootDirIdx].Name())
	}
	if dirPool[rootDirIdx].parent != -1 {
		t.Fatalf("expected root's parent to be -1")
	}
}

func TestIsNameInvalidRejectsEmptySlashAndBlank(t *testing.T) {
	cases := []struct {
		name  string
		valid bool
	}{
		{"", false},
		{"   ", false},
		{"a/b", false},
		{"notes", true},
		{" x", true},
	}
	for _, c := range cases {
		if got := !isNameInvalid(c.name); got != c.valid {
			t.Errorf("isNameInvalid(%q): valid=%v, want %v", c.name, got, c.valid)
		}
	}
}

func TestMkdirThenFindSubdir(t *testing.T) {
	fsInit()
	idx, err := mkdir(rootDirIdx, "docs")
	if err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if findSubdir(rootDirIdx, "docs") != idx {
		t.Fatalf("findSubdir did not locate the created directory")
	}
}

func TestMkdirRejectsDuplicateName(t *testing.T) {
	fsInit()
	mkdir(rootDirIdx, "docs")
	if _, err := mkdir(rootDirIdx, "docs"); err == nil {
		t.Fatalf("expected duplicate mkdir to fail")
	}
}

func TestMkdirRecursiveCreatesMissingComponents(t *testing.T) {
	fsInit()
	leaf, err := mkdirRecursive(rootDirIdx, "a/b/c")
	if err != nil {
		t.Fatalf("mkdirRecursive: %v", err)
	}
	if dirPool[leaf].Name() != "c" {
		t.Fatalf("expected leaf directory named c, got %q", dirPool[leaf].Name())
	}
	aIdx := findSubdir(rootDirIdx, "a")
	bIdx := findSubdir(aIdx, "b")
	if findSubdir(bIdx, "c") != leaf {
		t.Fatalf("expected a/b/c to resolve to the same leaf via findSubdir chain")
	}
}

func TestMkdirRecursiveReusesExistingComponents(t *testing.T) {
	fsInit()
	first, _ := mkdirRecursive(rootDirIdx, "a/b")
	before := countUsedDirs()
	second, err := mkdirRecursive(rootDirIdx, "a/b")
	if err != nil {
		t.Fatalf("mkdirRecursive: %v", err)
	}
	if second != first {
		t.Fatalf("expected re-creating an existing path to return the same slot")
	}
	if countUsedDirs() != before {
		t.Fatalf("expected no new directories to be allocated")
	}
}

func TestFindSubdirRecursiveWalksFullPath(t *testing.T) {
	fsInit()
	leaf, _ := mkdirRecursive(rootDirIdx, "x/y/z")
	if got := findSubdirRecursive(rootDirIdx, "x/y/z"); got != leaf {
		t.Fatalf("findSubdirRecursive = %d, want %d", got, leaf)
	}
	if got := findSubdirRecursive(rootDirIdx, "x/y/nope"); got != -1 {
		t.Fatalf("expected a missing path component to fail, got %d", got)
	}
}

func TestRmdirRejectsNonEmptyDirectory(t *testing.T) {
	fsInit()
	mkdirRecursive(rootDirIdx, "a/b")
	if err := rmdir(rootDirIdx, "a"); err == nil {
		t.Fatalf("expected rmdir to reject a non-empty directory")
	}
}

func TestRmdirRemovesEmptyDirectory(t *testing.T) {
	fsInit()
	mkdir(rootDirIdx, "empty")
	if err := rmdir(rootDirIdx, "empty"); err != nil {
		t.Fatalf("rmdir: %v", err)
	}
	if findSubdir(rootDirIdx, "empty") != -1 {
		t.Fatalf("expected the directory to be gone")
	}
}

func TestTouchThenFindFile(t *testing.T) {
	fsInit()
	idx, err := touch(rootDirIdx, "note.txt")
	if err != nil {
		t.Fatalf("touch: %v", err)
	}
	if findFile(rootDirIdx, "note.txt") != idx {
		t.Fatalf("findFile did not locate the created file")
	}
}

func TestTouchRecursiveSplitsParentAndBase(t *testing.T) {
	fsInit()
	mkdirRecursive(rootDirIdx, "docs")
	parent, base, err := touchRecursive(rootDirIdx, "docs/readme.txt")
	if err != nil {
		t.Fatalf("touchRecursive: %v", err)
	}
	if base != "readme.txt" {
		t.Fatalf("base = %q, want readme.txt", base)
	}
	if dirPool[parent].Name() != "docs" {
		t.Fatalf("expected parent to resolve to docs, got %q", dirPool[parent].Name())
	}
}

func TestTouchRecursiveNoSlashReturnsSameDir(t *testing.T) {
	fsInit()
	parent, base, err := touchRecursive(rootDirIdx, "plain.txt")
	if err != nil {
		t.Fatalf("touchRecursive: %v", err)
	}
	if parent != rootDirIdx || base != "plain.txt" {
		t.Fatalf("expected (rootDirIdx, plain.txt), got (%d, %q)", parent, base)
	}
}

func TestRmRemovesFile(t *testing.T) {
	fsInit()
	touch(rootDirIdx, "a.txt")
	if err := rm(rootDirIdx, "a.txt"); err != nil {
		t.Fatalf("rm: %v", err)
	}
	if findFile(rootDirIdx, "a.txt") != -1 {
		t.Fatalf("expected file to be gone after rm")
	}
}

func TestRmUnknownFileFails(t *testing.T) {
	fsInit()
	if err := rm(rootDirIdx, "ghost.txt"); err == nil {
		t.Fatalf("expected rm of a missing file to fail")
	}
}

func TestMvMovesFileBetweenDirectories(t *testing.T) {
	fsInit()
	destIdx, _ := mkdir(rootDirIdx, "dest")
	touch(rootDirIdx, "a.txt")

	if err := mv(rootDirIdx, "a.txt", destIdx); err != nil {
		t.Fatalf("mv: %v", err)
	}
	if findFile(rootDirIdx, "a.txt") != -1 {
		t.Fatalf("expected the file to be gone from the source directory")
	}
	if findFile(destIdx, "a.txt") < 0 {
		t.Fatalf("expected the file to appear in the destination directory")
	}
}

func TestLsListingReportsSubdirsAndFiles(t *testing.T) {
	fsInit()
	mkdir(rootDirIdx, "docs")
	touch(rootDirIdx, "a.txt")
	subdirs, files := lsListing(rootDirIdx)
	if len(subdirs) != 1 || subdirs[0] != "docs" {
		t.Fatalf("subdirs = %v, want [docs]", subdirs)
	}
	if len(files) != 1 || files[0] != "a.txt" {
		t.Fatalf("files = %v, want [a.txt]", files)
	}
}

func TestMkdirTableFullLeavesParentUnmutated(t *testing.T) {
	fsInit()
	for i := 0; i < MaxDirs-1; i++ {
		if _, err := mkdir(rootDirIdx, string(rune('a'+i))); err != nil {
			t.Fatalf("mkdir %d: %v", i, err)
		}
	}
	before := countUsedDirs()
	beforeSubdirs := dirPool[rootDirIdx].subdirN
	if _, err := mkdir(rootDirIdx, "overflow"); err == nil {
		t.Fatalf("expected the pool to be exhausted")
	}
	if countUsedDirs() != before {
		t.Fatalf("expected a failed mkdir not to allocate a slot")
	}
	if dirPool[rootDirIdx].subdirN != beforeSubdirs {
		t.Fatalf("expected a failed mkdir to leave the parent's subdirectory list unchanged")
	}
}

func TestTotalFileBytesTracksWrittenSize(t *testing.T) {
	fsInit()
	idx, _ := touch(rootDirIdx, "a.txt")
	filePool[idx].size = 10
	idx2, _ := touch(rootDirIdx, "b.txt")
	filePool[idx2].size = 5
	if got := totalFileBytes(); got != 15 {
		t.Fatalf("totalFileBytes = %d, want 15", got)
	}
}
