package pico

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// ConfigFormat names the encoding of an options document.
type ConfigFormat string

const (
	ConfigYAML ConfigFormat = "yaml"
	ConfigTOML ConfigFormat = "toml"
)

// Options configures a root Writer created with [NewWithOptions].
type Options struct {
	// IndentUnit is written once per indent level. Default: three spaces.
	IndentUnit string `yaml:"indent_unit" toml:"indent_unit"`

	// InitialIndent is the level the root starts at. Negative values are
	// treated as zero.
	InitialIndent int `yaml:"initial_indent" toml:"initial_indent"`

	// LineSeparator terminates each rendered line. Default: "\n".
	LineSeparator string `yaml:"line_separator" toml:"line_separator"`

	// NormalizeBlankLines collapses runs of blank lines into one.
	NormalizeBlankLines bool `yaml:"normalize_blank_lines" toml:"normalize_blank_lines"`

	// Logger receives debug events. Default: discarded.
	Logger *log.Logger `yaml:"-" toml:"-"`
}

// DefaultOptions returns the options [New] uses.
func DefaultOptions() Options {
	return Options{
		IndentUnit:    DefaultIndentUnit,
		LineSeparator: DefaultLineSeparator,
	}
}

// ParseConfigFormat parses a config format name such as a file extension
// without the dot. Matching is case-insensitive and "yml" is accepted.
func ParseConfigFormat(s string) (ConfigFormat, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return ConfigYAML, nil
	case "toml":
		return ConfigTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedConfig, s)
	}
}

// ParseOptions decodes an options document. Keys that are absent keep their
// [DefaultOptions] value and unknown keys are an error.
func ParseOptions(data []byte, format ConfigFormat) (Options, error) {
	opts := DefaultOptions()
	switch format {
	case ConfigYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
			return Options{}, fmt.Errorf("decode yaml options: %w", err)
		}
	case ConfigTOML:
		md, err := toml.Decode(string(data), &opts)
		if err != nil {
			return Options{}, fmt.Errorf("decode toml options: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Options{}, fmt.Errorf("decode toml options: unknown key %q", undecoded[0].String())
		}
	default:
		return Options{}, fmt.Errorf("%w: %q", ErrUnsupportedConfig, format)
	}
	return opts, nil
}
