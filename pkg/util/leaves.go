package util

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// maxLeafLineSize bounds a single line of a leaves file
const maxLeafLineSize = 1 << 20

// ReadLeafValues reads one leaf value per line from r. A trailing carriage
// return is stripped from each line. A blank line is an empty leaf and keeps
// its position; only the newline ending the final line is not a leaf.
func ReadLeafValues(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLeafLineSize)

	values := make([]string, 0)
	for scanner.Scan() {
		values = append(values, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read leaves")
	}
	return values, nil
}

// ReadLeafValuesFile opens path and reads its leaf values.
func ReadLeafValuesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open leaves file %s", path)
	}
	defer func() { _ = f.Close() }()

	return ReadLeafValues(f)
}
