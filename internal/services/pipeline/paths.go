package pipeline

import (
	"path"
	"strings"
)

// CleanedName derives the cleaned artifact filename from the original:
// a _cleaned suffix is inserted before the final extension. Filenames
// without an extension get a bare _cleaned suffix.
func CleanedName(filename string) string {
	ext := path.Ext(filename)
	if ext == "" {
		return filename + "_cleaned"
	}
	return strings.TrimSuffix(filename, ext) + "_cleaned" + ext
}

// CleanedPath derives the storage path for the cleaned artifact from the
// raw path: same directory, cleaned filename. Storage paths always use
// forward slashes. The derivation is deterministic so re-running a file
// overwrites the same object.
func CleanedPath(rawPath string) string {
	dir := path.Dir(rawPath)
	name := CleanedName(path.Base(rawPath))
	switch dir {
	case ".":
		return name
	case "/":
		return "/" + name
	}
	return dir + "/" + name
}
