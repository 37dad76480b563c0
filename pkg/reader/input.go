package reader

import (
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
)

type nopCloser struct {
	io.Reader
}

func (nopCloser) Close() error { return nil }

type bz2File struct {
	*bzip2.Reader
	f *os.File
}

func (b bz2File) Close() error {
	bzErr := b.Reader.Close()
	if err := b.f.Close(); err != nil {
		return err
	}
	return bzErr
}

// OpenInput opens a document file. "" and "-" read stdin, a .bz2 suffix is decompressed on the fly.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdin}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".bz2") {
		return f, nil
	}

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		f.Close()
		return nil, err
	}
	return bz2File{Reader: bz, f: f}, nil
}

// CreateOutput. "" and "-" write to stdout.
func CreateOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
