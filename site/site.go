// Package site is the website itself: its route table, page templates and
// public assets.
package site

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

// Name is shown in the layout header and page titles.
const Name = "Pagesite"

//go:embed views public
var embedded embed.FS

// Assets returns the filesystem holding views/ and public/. An empty dir
// selects the copy embedded in the binary; otherwise files are read from dir,
// so edited templates only need a restart instead of a rebuild.
func Assets(dir string) (fs.FS, error) {
	if dir == "" {
		return embedded, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("site: assets dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("site: assets dir %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// Public is the sub tree of assets served as static files.
func Public(assets fs.FS) (fs.FS, error) {
	return fs.Sub(assets, "public")
}
