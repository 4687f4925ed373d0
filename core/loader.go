package core

import (
	"errors"
	"fmt"
	"os"
)

// Input loading errors.
var (
	ErrInputTooLarge = errors.New("core: input file exceeds size limit")
	ErrInputEmpty    = errors.New("core: input file is empty")
)

// LoadInput reads the file at path into memory and returns it as one
// contiguous byte buffer.
//
// The size is checked against maxSize before reading so an oversized file
// fails fast instead of being slurped. Failures are returned to the caller;
// nothing here terminates the process, which keeps the decode core
// unit-testable.
func LoadInput(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInputEmpty, path)
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrInputTooLarge, path, info.Size(), maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
