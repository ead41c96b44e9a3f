package main

import (
	"strings"

	"riscv64-minikernel/kernel/errs"
)

// In-memory FAT-like filesystem: two fixed-size object pools (directories,
// files) linked by slot index rather than pointer, since this core has no
// paging and prefers the same "table plus index" idiom the scheduler and
// semaphore layer use. Grounded line-for-line on original_source/fat.cpp's
// algorithms (recursive mkdir/touch path-splitting, is_name_invalid,
// pool-scan allocation), translated from a pointer/OOP shape to Go's
// value-table-plus-index shape.

type FileEntry struct {
	used bool
	name [MaxNameLen]byte
	data [MaxFileSize]byte
	size int
}

func (f *FileEntry) Name() string { return bufString(f.name[:]) }

type DirEntry struct {
	used       bool
	name       [MaxNameLen]byte
	parent     int // pool index, -1 for root
	subdirs    [MaxDirs]int
	subdirN    int
	files      [MaxFiles]int
	fileN      int
}

func (d *DirEntry) Name() string { return bufString(d.name[:]) }

func bufString(b []byte) string {
	n := 0
	for n < len(b) && b[n] != 0 {
		n++
	}
	return string(b[:n])
}

func bufSet(b []byte, s string) {
	for i := range b {
		b[i] = 0
	}
	n := len(s)
	if n > len(b)-1 {
		n = len(b) - 1
	}
	copy(b[:n], s[:n])
}

const rootDirIdx = 0

var (
	dirPool  [MaxDirs]DirEntry
	filePool [MaxFiles]FileEntry
)

func fsInit() {
	for i := range dirPool {
		dirPool[i] = DirEntry{parent: -1}
	}
	for i := range filePool {
		filePool[i] = FileEntry{}
	}
	dirPool[rootDirIdx].used = true
	bufSet(dirPool[rootDirIdx].name[:], "/")
	dirPool[rootDirIdx].parent = -1
}

func isNameInvalid(name string) bool {
	if len(name) == 0 {
		return true
	}
	allSpaces := true
	for i := 0; i < len(name); i++ {
		if name[i] == '/' {
			return true
		}
		if name[i] != ' ' {
			allSpaces = false
		}
	}
	return allSpaces
}

func findSubdir(dirIdx int, name string) int {
	d := &dirPool[dirIdx]
	for i := 0; i < d.subdirN; i++ {
		if dirPool[d.subdirs[i]].Name() == name {
			return d.subdirs[i]
		}
	}
	return -1
}

func findFile(dirIdx int, name string) int {
	d := &dirPool[dirIdx]
	for i := 0; i < d.fileN; i++ {
		if filePool[d.files[i]].Name() == name {
			return d.files[i]
		}
	}
	return -1
}

// findSubdirRecursive walks a '/'-separated path from dirIdx.
func findSubdirRecursive(dirIdx int, path string) int {
	if path == "" {
		return dirIdx
	}
	head, rest, hasRest := strings.Cut(path, "/")
	next := findSubdir(dirIdx, head)
	if next < 0 {
		return -1
	}
	if hasRest {
		return findSubdirRecursive(next, rest)
	}
	return next
}

func findFreeDirSlot() int {
	for i := range dirPool {
		if !dirPool[i].used {
			return i
		}
	}
	return -1
}

func findFreeFileSlot() int {
	for i := range filePool {
		if !filePool[i].used {
			return i
		}
	}
	return -1
}

// mkdir creates a single child directory named name under dirIdx.
func mkdir(dirIdx int, name string) (int, error) {
	if isNameInvalid(name) {
		return -1, errs.ErrInvalidName
	}
	d := &dirPool[dirIdx]
	if d.subdirN >= MaxDirs {
		return -1, errs.ErrTableFull
	}
	if findSubdir(dirIdx, name) >= 0 {
		return -1, errs.ErrInvalidName
	}
	idx := findFreeDirSlot()
	if idx < 0 {
		return -1, errs.ErrTableFull
	}
	nd := &dirPool[idx]
	*nd = DirEntry{used: true, parent: dirIdx}
	bufSet(nd.name[:], name)
	d.subdirs[d.subdirN] = idx
	d.subdirN++
	return idx, nil
}

// mkdirRecursive creates every missing path component under dirIdx and
// returns the final directory's slot index.
func mkdirRecursive(dirIdx int, path string) (int, error) {
	if path == "" {
		return -1, errs.ErrInvalidName
	}
	curr := dirIdx
	for _, seg := range strings.Split(path, "/") {
		if seg == "" || len(seg) >= MaxNameLen {
			return -1, errs.ErrInvalidName
		}
		next := findSubdir(curr, seg)
		if next < 0 {
			var err error
			next, err = mkdir(curr, seg)
			if err != nil {
				return -1, err
			}
		}
		curr = next
	}
	return curr, nil
}

// rmdir removes the empty child directory named name from dirIdx.
func rmdir(dirIdx int, name string) error {
	d := &dirPool[dirIdx]
	for i := 0; i < d.subdirN; i++ {
		subIdx := d.subdirs[i]
		sub := &dirPool[subIdx]
		if sub.Name() != name {
			continue
		}
		if sub.subdirN > 0 || sub.fileN > 0 {
			return errs.ErrNotEmpty
		}
		sub.used = false
		copy(d.subdirs[i:d.subdirN-1], d.subdirs[i+1:d.subdirN])
		d.subdirN--
		return nil
	}
	return errs.ErrNotFound
}

// touch creates an empty file named name inside dirIdx.
func touch(dirIdx int, name string) (int, error) {
	if isNameInvalid(name) {
		return -1, errs.ErrInvalidName
	}
	d := &dirPool[dirIdx]
	if d.fileN >= MaxFiles {
		return -1, errs.ErrTableFull
	}
	if findFile(dirIdx, name) >= 0 {
		return -1, errs.ErrInvalidName
	}
	idx := findFreeFileSlot()
	if idx < 0 {
		return -1, errs.ErrTableFull
	}
	f := &filePool[idx]
	*f = FileEntry{used: true}
	bufSet(f.name[:], name)
	d.files[d.fileN] = idx
	d.fileN++
	return idx, nil
}

// touchRecursive splits path into a parent directory and a base filename,
// returning the parent's slot index and the base name, mirroring
// original_source/fat.cpp's touch_recursive. The parent directory is
// looked up, not created: a missing parent yields ErrNotFound.
func touchRecursive(dirIdx int, path string) (int, string, error) {
	lastSlash := strings.LastIndexByte(path, '/')
	if lastSlash < 0 {
		return dirIdx, path, nil
	}
	base := path[lastSlash+1:]
	if isNameInvalid(base) {
		return -1, "", errs.ErrInvalidName
	}
	parentPath := path[:lastSlash]
	parent := findSubdirRecursive(dirIdx, parentPath)
	if parent < 0 {
		return -1, "", errs.ErrNotFound
	}
	return parent, base, nil
}

func rm(dirIdx int, name string) error {
	d := &dirPool[dirIdx]
	for i := 0; i < d.fileN; i++ {
		if filePool[d.files[i]].Name() == name {
			filePool[d.files[i]].used = false
			copy(d.files[i:d.fileN-1], d.files[i+1:d.fileN])
			d.fileN--
			return nil
		}
	}
	return errs.ErrNotFound
}

func mv(srcDirIdx int, name string, destDirIdx int) error {
	fileIdx := findFile(srcDirIdx, name)
	if fileIdx < 0 {
		return errs.ErrNotFound
	}
	if dirPool[destDirIdx].fileN >= MaxFiles {
		return errs.ErrTableFull
	}
	if err := rm(srcDirIdx, name); err != nil {
		return err
	}
	d := &dirPool[destDirIdx]
	d.files[d.fileN] = fileIdx
	d.fileN++
	return nil
}

func lsListing(dirIdx int) (subdirs, files []string) {
	d := &dirPool[dirIdx]
	for i := 0; i < d.subdirN; i++ {
		subdirs = append(subdirs, dirPool[d.subdirs[i]].Name())
	}
	for i := 0; i < d.fileN; i++ {
		files = append(files, filePool[d.files[i]].Name())
	}
	return
}

func countUsedDirs() int {
	n := 0
	for i := range dirPool {
		if dirPool[i].used {
			n++
		}
	}
	return n
}

func countUsedFiles() int {
	n := 0
	for i := range filePool {
		if filePool[i].used {
			n++
		}
	}
	return n
}

func totalFileBytes() int {
	total := 0
	for i := range filePool {
		if filePool[i].used {
			total += filePool[i].size
		}
	}
	return total
}
