package undofsm_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/enetx/g"
	. "github.com/enetx/undofsm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const moodYAML = `
initial: normal
states:
  normal:
    transitions:
      study: busy
  busy:
    transitions:
      get_tired: sleeping
      get_hungry: hungry
  hungry:
    transitions:
      eat: normal
  sleeping:
    transitions:
      get_hungry: hungry
      get_up: normal
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(moodYAML))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	fsm, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, State("normal"), fsm.Current())
	assert.Equal(t, g.Slice[State]{"normal", "busy", "hungry", "sleeping"}, fsm.States())
	assert.Equal(t, g.Slice[State]{"busy", "sleeping"}, fsm.States("get_hungry"))

	require.NoError(t, fsm.Trigger("study"))
	assert.Equal(t, State("busy"), fsm.Current())
}

func TestParseConfig_KeepsDocumentOrder(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
initial: z
states:
  z: {transitions: {next: a}}
  a: {transitions: {next: m}}
  m:
`))
	require.NoError(t, err)

	fsm, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, g.Slice[State]{"z", "a", "m"}, fsm.States())
	assert.Equal(t, g.Slice[State]{"z", "a"}, fsm.States("next"))
}

func TestParseConfig_JSON(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"initial": "off", "states": {"off": {"transitions": {"toggle": "on"}}, "on": {"transitions": {"toggle": "off"}}}}`))
	require.NoError(t, err)

	fsm, err := New(cfg)
	require.NoError(t, err)

	require.NoError(t, fsm.Trigger("toggle"))
	assert.Equal(t, State("on"), fsm.Current())
	assert.Equal(t, g.Slice[State]{"off", "on"}, fsm.States())
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		reason string
	}{
		{name: "syntax", doc: "initial: [", reason: "failed to decode document"},
		{name: "missing states", doc: "initial: a", reason: "states must be a mapping"},
		{name: "states list", doc: "initial: a\nstates: [a, b]", reason: "states must be a mapping"},
		{name: "bad state", doc: "initial: a\nstates:\n  a: [1, 2]", reason: "failed to decode state a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.doc))
			assert.Nil(t, cfg)

			var cfgErr *ErrConfig
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.reason, cfgErr.Reason)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(moodYAML))
	require.NoError(t, err)
	assert.Len(t, cfg.States, 4)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mood.yaml")
	require.NoError(t, os.WriteFile(path, []byte(moodYAML), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, State("normal"), cfg.Initial)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))

	var cfgErr *ErrConfig
	require.ErrorAs(t, err, &cfgErr)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
