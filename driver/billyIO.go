package driver

import (
	"github.com/go-git/go-billy/v5"
)

// BillyIO adapts a file from a billy filesystem to the Handle interface,
// so a Stream can run over osfs, memfs or any other billy backend.
type BillyIO struct {
	fsys billy.Filesystem
	file billy.File
}

// NewBillyIO opens fileName on fsys with a C-style mode string.
func NewBillyIO(fsys billy.Filesystem, fileName string, mode string) (*BillyIO, error) {
	flag, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}
	file, err := fsys.OpenFile(fileName, flag, DataFilePerm)
	if err != nil {
		return nil, err
	}
	return &BillyIO{fsys: fsys, file: file}, nil
}

func (b *BillyIO) Name() string {
	return b.file.Name()
}

func (b *BillyIO) Read(bytes []byte) (int, error) {
	return b.file.Read(bytes)
}

func (b *BillyIO) ReadAt(bytes []byte, offset int64) (int, error) {
	return b.file.ReadAt(bytes, offset)
}

func (b *BillyIO) Write(bytes []byte) (int, error) {
	return b.file.Write(bytes)
}

func (b *BillyIO) Seek(offset int64, whence int) (int64, error) {
	return b.file.Seek(offset, whence)
}

// Sync is a no-op; billy files expose no fsync.
func (b *BillyIO) Sync() error {
	return nil
}

func (b *BillyIO) Close() error {
	return b.file.Close()
}

func (b *BillyIO) Size() (int64, error) {
	info, err := b.fsys.Stat(b.file.Name())
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Lock delegates to the billy file lock.
func (b *BillyIO) Lock() error {
	return b.file.Lock()
}

// Unlock releases the billy file lock.
func (b *BillyIO) Unlock() error {
	return b.file.Unlock()
}
