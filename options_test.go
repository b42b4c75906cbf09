package pico_test

import (
	"testing"

	"github.com/bjaus/pico"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		data    string
		format  pico.ConfigFormat
		want    pico.Options
		wantErr require.ErrorAssertionFunc
	}{
		"yaml": {
			data:   "indent_unit: \"\\t\"\nnormalize_blank_lines: true\n",
			format: pico.ConfigYAML,
			want: pico.Options{
				IndentUnit:          "\t",
				LineSeparator:       "\n",
				NormalizeBlankLines: true,
			},
			wantErr: require.NoError,
		},
		"yaml empty": {
			data:    "",
			format:  pico.ConfigYAML,
			want:    pico.DefaultOptions(),
			wantErr: require.NoError,
		},
		"yaml unknown key": {
			data:    "indent: 4\n",
			format:  pico.ConfigYAML,
			wantErr: require.Error,
		},
		"toml": {
			data:   "indent_unit = \"  \"\ninitial_indent = 1\nline_separator = \"\\r\\n\"\n",
			format: pico.ConfigTOML,
			want: pico.Options{
				IndentUnit:    "  ",
				InitialIndent: 1,
				LineSeparator: "\r\n",
			},
			wantErr: require.NoError,
		},
		"toml unknown key": {
			data:    "tabs = true\n",
			format:  pico.ConfigTOML,
			wantErr: require.Error,
		},
		"toml malformed": {
			data:    "indent_unit = \n",
			format:  pico.ConfigTOML,
			wantErr: require.Error,
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := pico.ParseOptions([]byte(tt.data), tt.format)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOptionsUnsupported(t *testing.T) {
	t.Parallel()
	_, err := pico.ParseOptions([]byte("{}"), "json")
	require.ErrorIs(t, err, pico.ErrUnsupportedConfig)
}

func TestParseConfigFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    pico.ConfigFormat
		wantErr require.ErrorAssertionFunc
	}{
		"yaml":    {input: "yaml", want: pico.ConfigYAML, wantErr: require.NoError},
		"yml":     {input: "YML", want: pico.ConfigYAML, wantErr: require.NoError},
		"toml":    {input: "toml", want: pico.ConfigTOML, wantErr: require.NoError},
		"unknown": {input: "ini", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := pico.ParseConfigFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOptionsIntoWriter(t *testing.T) {
	t.Parallel()
	opts, err := pico.ParseOptions([]byte("indent_unit: \"--\"\ninitial_indent: 1\n"), pico.ConfigYAML)
	require.NoError(t, err)
	w := pico.NewWithOptions(opts)
	w.WriteLineThenIndentRight("a").WriteLine("b")
	assert.Equal(t, "--a\n----b\n", w.Render())
}
