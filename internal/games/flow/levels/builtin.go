package levels

import (
	"embed"
	"io/fs"
)

//go:embed builtin
var builtinFS embed.FS

// Builtin returns a loader over the level pack compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err)
	}
	return NewFSLoader(sub, "builtin")
}

// Open returns a loader for dir, or the built-in pack when dir is empty.
func Open(dir string) *Loader {
	if dir == "" {
		return Builtin()
	}
	return NewLoader(dir)
}
