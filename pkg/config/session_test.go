package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bkucera/selenium/pkg/remote"
)

const sampleDefinition = `
remote_url: http://localhost:4444/wd/hub
capabilities:
  "se:cheese": brie
browsers:
  - browser: chrome
    args: ["--headless=new"]
    capabilities:
      "se:cheese": cheddar
  - browser: firefox
metadata:
  "cloud:options":
    build: "1742"
policy:
  allowed_namespaces: ["goog:*", "moz:*", "se:*", "cloud:*"]
`

func TestParseSessionDefinition(t *testing.T) {
	s, err := Parse([]byte(sampleDefinition))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:4444/wd/hub", s.RemoteURL)
	require.Len(t, s.Browsers, 2)
	assert.Equal(t, "chrome", s.Browsers[0].Name)
	assert.Equal(t, []string{"--headless=new"}, s.Browsers[0].Args)
	assert.Equal(t, "brie", s.Capabilities["se:cheese"])
	require.NoError(t, s.Validate())
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("browsers: [\n"))
	assert.Error(t, err)
}

func TestLoadReadsDefinitionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDefinition), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Browsers, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSessionBuilderAssemblesPlan(t *testing.T) {
	s, err := Parse([]byte(sampleDefinition))
	require.NoError(t, err)

	b, err := s.Builder()
	require.NoError(t, err)

	plan, err := b.Plan()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:4444/wd/hub", plan.RemoteURL().String())
	assert.False(t, plan.UsingDriverService())

	effective := plan.Capabilities()
	require.Len(t, effective, 2)
	assert.Equal(t, "chrome", effective[0].BrowserName())
	assert.Equal(t, "brie", effective[0]["se:cheese"], "global capability wins over the entry value")
	assert.Equal(t, "firefox", effective[1].BrowserName())
	assert.Equal(t, "brie", effective[1]["se:cheese"])

	var buf bytes.Buffer
	require.NoError(t, plan.WritePayload(&buf))

	var body map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &body))
	assert.Equal(t, map[string]any{"build": "1742"}, body["cloud:options"])
}

func TestSessionBuilderWithDriverService(t *testing.T) {
	s, err := Parse([]byte(`
driver_service:
  path: chromedriver
  port: 9515
browsers:
  - browser: chrome
`))
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	b, err := s.Builder()
	require.NoError(t, err)

	plan, err := b.Plan()
	require.NoError(t, err)

	assert.True(t, plan.UsingDriverService())
	require.NotNil(t, plan.Service())
	assert.Equal(t, "http://localhost:9515", plan.Service().URL().String())
}

func TestValidateRejectsBothTargets(t *testing.T) {
	s, err := Parse([]byte(`
remote_url: http://localhost:4444/wd/hub
driver_service:
  path: chromedriver
  port: 9515
browsers:
  - browser: chrome
`))
	require.NoError(t, err)

	assert.ErrorIs(t, s.Validate(), remote.ErrTargetConflict)
}

func TestValidateRejectsEmptyBrowserList(t *testing.T) {
	s := &Session{}
	assert.Error(t, s.Validate())
}

func TestValidateRejectsInvalidCapabilityNames(t *testing.T) {
	s, err := Parse([]byte(`
browsers:
  - browser: raw
    capabilities:
      platform: WINDOWS
`))
	require.NoError(t, err)

	err = s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "platform")
}

func TestBrowserOptionsDispatch(t *testing.T) {
	tests := []struct {
		name        string
		entry       Browser
		browserName string
		wantErr     bool
	}{
		{
			name:        "chrome",
			entry:       Browser{Name: "chrome", Args: []string{"--headless=new"}},
			browserName: "chrome",
		},
		{
			name:        "edge alias",
			entry:       Browser{Name: "MicrosoftEdge"},
			browserName: "MicrosoftEdge",
		},
		{
			name:        "firefox",
			entry:       Browser{Name: "firefox", Binary: "/usr/bin/firefox"},
			browserName: "firefox",
		},
		{
			name:        "ie",
			entry:       Browser{Name: "ie"},
			browserName: "internet explorer",
		},
		{
			name: "raw",
			entry: Browser{Name: "raw", Capabilities: map[string]any{
				"browserName": "safari",
			}},
			browserName: "safari",
		},
		{name: "ie with args", entry: Browser{Name: "ie", Args: []string{"-x"}}, wantErr: true},
		{
			name: "raw with args",
			entry: Browser{Name: "raw", Args: []string{"-x"}, Capabilities: map[string]any{
				"browserName": "safari",
			}},
			wantErr: true,
		},
		{name: "raw without capabilities", entry: Browser{Name: "raw"}, wantErr: true},
		{name: "missing name", entry: Browser{}, wantErr: true},
		{name: "unknown name", entry: Browser{Name: "netscape"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.entry.Options()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.browserName, opts.CapabilityMap().BrowserName())
		})
	}
}

func TestBrowserEntryCapabilitiesOverrideRenderedDefaults(t *testing.T) {
	entry := Browser{Name: "chrome", Capabilities: map[string]any{
		"browserVersion": "139",
		"se:cheese":      "cheddar",
	}}

	opts, err := entry.Options()
	require.NoError(t, err)

	caps := opts.CapabilityMap()
	assert.Equal(t, "chrome", caps.BrowserName())
	assert.Equal(t, "139", caps["browserVersion"])
	assert.Equal(t, "cheddar", caps["se:cheese"])
}
