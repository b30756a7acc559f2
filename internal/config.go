package pathutils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gemini-testing/path-utils/internal/fspath"
	"gopkg.in/yaml.v3"
)

// DefaultConfigName is the name of the configuration file looked up inside directories.
const DefaultConfigName = ".pathutils.yaml"

var (
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

var filepathAbs = filepath.Abs

// ParseConfig reads expansion options from a YAML file. If fp is a directory, DefaultConfigName is
// read inside it. The configured root is resolved against the configuration's directory, which is
// also its default value.
func ParseConfig(fp string) (*Options, error) {
	info, err := os.Stat(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}
	if info.IsDir() {
		fp = filepath.Join(fp, DefaultConfigName)
	}
	data, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}

	var opts Options
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if opts.Concurrency < 0 {
		return nil, fmt.Errorf("%w: negative concurrency", ErrInvalidConfig)
	}

	absPath, err := filepathAbs(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}
	opts.Root = fspath.Resolve(filepath.Dir(absPath), opts.Root)
	return &opts, nil
}
