package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	lzip "github.com/sorairolake/lzip-go"
	"github.com/ulikunitz/xz"
	"github.com/woozymasta/relsort"
)

// Stdin is the path that reads from standard input.
const Stdin = "-"

// Load reads the dataset at path, detecting format and compression from the name.
func Load(path string) ([]relsort.Release, error) {
	f, _ := Detect(path)
	return LoadFormat(path, f)
}

// LoadFormat reads the dataset at path as format f; compression is still
// detected from the name.
func LoadFormat(path string, f Format) (rs []relsort.Release, err error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rc.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("%w: close %s: %w", ErrLoad, path, closeErr)
		}
	}()

	rs, err = Decode(rc, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rs, nil
}

// Open returns a reader over the decompressed content of path.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open: %w", ErrLoad, err)
	}

	_, c := Detect(path)

	rc, err := Decompress(file, c)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}

	return &stackCloser{ReadCloser: rc, under: file}, nil
}

// Decompress wraps r according to c. The returned closer does not close r.
func Decompress(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return zr, nil

	case CompressZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return zr.IOReadCloser(), nil

	case CompressXz:
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return io.NopCloser(xzr), nil

	case CompressLzip:
		lr, err := lzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create lzip reader: %w", err)
		}
		return io.NopCloser(lr), nil

	default:
		return io.NopCloser(r), nil
	}
}

// stackCloser closes the decompressor, then the file under it.
type stackCloser struct {
	io.ReadCloser
	under io.Closer
}

func (s *stackCloser) Close() error {
	err := s.ReadCloser.Close()
	if uerr := s.under.Close(); err == nil {
		err = uerr
	}

	return err
}
