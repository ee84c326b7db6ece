package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlConfig = `
borderColor: "#336699"
animationDuration: 350ms
easing: ease-out
useNativeDriver: true
fields:
  - name: email
    label: Email
    value: ""
    lowercase: true
  - name: code
    label: Code
    default: "1234"
    editable: false
`

const tomlConfig = `
borderColor = "#336699"
animationDuration = "350ms"
easing = "ease-out"
useNativeDriver = true

[[fields]]
name = "email"
label = "Email"
value = ""
lowercase = true

[[fields]]
name = "code"
label = "Code"
default = "1234"
editable = false
`

func TestParse_FormatsAgree(t *testing.T) {
	fromYAML, err := Parse([]byte(yamlConfig), FormatYAML)
	require.NoError(t, err)
	fromTOML, err := Parse([]byte(tomlConfig), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, fromYAML, fromTOML)

	require.Len(t, fromYAML.Fields, 2)
	assert.True(t, fromYAML.Fields[0].Controlled())
	assert.True(t, fromYAML.Fields[0].Lowercase)
	assert.False(t, fromYAML.Fields[1].Controlled())
	require.NotNil(t, fromYAML.Fields[1].Editable)
	assert.False(t, *fromYAML.Fields[1].Editable)
}

func TestParse_DefaultFields(t *testing.T) {
	cfg, err := Parse([]byte("borderColor: \"#000000\"\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Default().Fields, cfg.Fields)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("fields: [{label: x}]"), FormatYAML)
	assert.ErrorContains(t, err, "missing name")

	_, err = Parse([]byte("fields = ["), FormatTOML)
	assert.ErrorContains(t, err, "decode toml")

	_, err = Parse(nil, Format("ini"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "form.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlConfig), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#336699", cfg.BorderColor)

	_, err = Load(filepath.Join(dir, "form.json"))
	assert.ErrorContains(t, err, "unsupported extension")

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_Options(t *testing.T) {
	cfg, err := Parse([]byte(yamlConfig), FormatYAML)
	require.NoError(t, err)

	opts, err := cfg.Options(cfg.Fields[0])
	require.NoError(t, err)
	assert.Equal(t, "Email", opts.Label)
	assert.Equal(t, "#336699", opts.BorderColor)
	require.NotNil(t, opts.AnimationDuration)
	assert.Equal(t, 350*time.Millisecond, *opts.AnimationDuration)
	assert.Nil(t, opts.LabelHeight)
	assert.True(t, opts.UseNativeDriver)
	assert.NotNil(t, opts.Easing)
	require.NotNil(t, opts.Value)
	assert.Equal(t, "", *opts.Value)

	opts, err = cfg.Options(cfg.Fields[1])
	require.NoError(t, err)
	assert.Nil(t, opts.Value)
	assert.Equal(t, "1234", opts.DefaultValue)
}

func TestConfig_ExplicitZeroPassesThrough(t *testing.T) {
	cfg, err := Parse([]byte("animationDuration: 0s\nlabelHeight: 0\ninputPadding: 0\nheight: 0\n"), FormatYAML)
	require.NoError(t, err)

	opts, err := cfg.Options(cfg.Fields[0])
	require.NoError(t, err)
	require.NotNil(t, opts.AnimationDuration)
	assert.Equal(t, time.Duration(0), *opts.AnimationDuration)
	require.NotNil(t, opts.LabelHeight)
	assert.Equal(t, 0, *opts.LabelHeight)
	require.NotNil(t, opts.InputPadding)
	assert.Equal(t, 0, *opts.InputPadding)
	require.NotNil(t, opts.Height)
	assert.Equal(t, 0, *opts.Height)

	cfg, err = Parse([]byte("animationDuration = \"0s\"\nheight = 0\n"), FormatTOML)
	require.NoError(t, err)
	opts, err = cfg.Options(cfg.Fields[0])
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), *opts.AnimationDuration)
	assert.Equal(t, 0, *opts.Height)
	assert.Nil(t, opts.LabelHeight)
}

func TestConfig_OptionsErrors(t *testing.T) {
	_, err := Config{AnimationDuration: "soon"}.Options(Field{Name: "x"})
	assert.ErrorContains(t, err, "animationDuration")

	_, err = Config{Easing: "bounce"}.Options(Field{Name: "x"})
	assert.ErrorContains(t, err, "unknown curve")
}
