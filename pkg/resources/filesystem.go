package resources

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileSystem is the only collaborator that touches stored resource files.
// Paths are the root-joined paths built by the Loader.
type FileSystem interface {
	// Exists reports whether a regular file exists at path.
	Exists(path string) bool

	// ReadFile returns the contents of the file at path.
	ReadFile(path string) ([]byte, error)
}

// DirReader is implemented by file systems that can list directory
// entries. It backs ResourceTypesFor and AvailableLocales.
type DirReader interface {
	// ReadDir returns the sorted entry names of the directory at path.
	// Directory names carry a trailing "/".
	ReadDir(path string) ([]string, error)
}

// OSFileSystem reads resources from the local disk.
type OSFileSystem struct{}

// Exists reports whether path names a regular file.
func (OSFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadFile reads the whole file at path.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ReadDir lists the entries of the directory at path.
func (OSFileSystem) ReadDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	return entryNames(entries), nil
}

// FSFileSystem serves resources from an fs.FS, such as an embed.FS or a
// testing/fstest.MapFS. Use "." as the Loader root to address the FS root.
type FSFileSystem struct {
	fsys fs.FS
}

// NewFSFileSystem wraps fsys.
func NewFSFileSystem(fsys fs.FS) *FSFileSystem {
	return &FSFileSystem{fsys: fsys}
}

// Exists reports whether name is a regular file in the FS.
func (f *FSFileSystem) Exists(name string) bool {
	info, err := fs.Stat(f.fsys, fsName(name))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadFile reads name from the FS.
func (f *FSFileSystem) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(f.fsys, fsName(name))
}

// ReadDir lists the entries of the directory name in the FS.
func (f *FSFileSystem) ReadDir(name string) ([]string, error) {
	entries, err := fs.ReadDir(f.fsys, fsName(name))
	if err != nil {
		return nil, err
	}
	return entryNames(entries), nil
}

// fsName converts an OS-style path into the unrooted, slash-separated form
// io/fs requires.
func fsName(name string) string {
	name = filepath.ToSlash(filepath.Clean(name))
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return "."
	}
	return name
}

func entryNames(entries []fs.DirEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
