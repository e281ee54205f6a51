package storage

import (
	"io"
	"os"
	"path/filepath"
)

// LocalProvider reads exports from a directory on disk.
type LocalProvider struct {
	RootPath string
}

func (p *LocalProvider) Open(name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(p.RootPath, name))
}
