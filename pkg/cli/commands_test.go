package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testDefinition = `remote_url: https://grid.example.com/wd/hub
capabilities:
  "se:cheese": brie
metadata:
  "cloud:options":
    build: "42"
browsers:
  - browser: chrome
    args: ["--headless=new"]
  - browser: firefox
`

// writeDefinition drops a session definition into a temp dir and returns its path.
func writeDefinition(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("write definition: %v", err)
	}
	return path
}

// runRoot executes the root command with args and captures combined output.
// HOME is pointed at a temp dir so command logging stays out of the real one.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	payloadOut = ""
	var buf bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestPayloadCommand(t *testing.T) {
	path := writeDefinition(t, testDefinition)

	output, err := runRoot(t, "payload", "-f", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal([]byte(output), &body); err != nil {
		t.Fatalf("payload is not valid JSON: %v, output: %q", err, output)
	}

	caps, ok := body["capabilities"].(map[string]any)
	if !ok {
		t.Fatalf("missing capabilities object in %v", body)
	}
	always, ok := caps["alwaysMatch"].(map[string]any)
	if !ok {
		t.Fatalf("missing alwaysMatch in %v", caps)
	}
	if always["se:cheese"] != "brie" {
		t.Errorf("alwaysMatch[se:cheese] = %v, want brie", always["se:cheese"])
	}
	first, ok := caps["firstMatch"].([]any)
	if !ok || len(first) != 2 {
		t.Fatalf("firstMatch = %v, want two entries", caps["firstMatch"])
	}
	entry := first[0].(map[string]any)
	if entry["browserName"] != "chrome" {
		t.Errorf("firstMatch[0].browserName = %v, want chrome", entry["browserName"])
	}
	if _, ok := body["cloud:options"]; !ok {
		t.Errorf("metadata cloud:options missing from payload top level: %v", body)
	}
}

func TestPayloadCommandWritesFile(t *testing.T) {
	path := writeDefinition(t, testDefinition)
	outPath := filepath.Join(t.TempDir(), "payload.json")

	if _, err := runRoot(t, "payload", "-f", path, "-o", outPath); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read payload file: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("payload file is not valid JSON: %v", err)
	}
}

func TestPayloadCommandMissingFile(t *testing.T) {
	_, err := runRoot(t, "payload", "-f", filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing definition file")
	}
}

func TestPayloadCommandRejectsInvalidDefinition(t *testing.T) {
	path := writeDefinition(t, `remote_url: https://grid.example.com
browsers:
  - browser: chrome
    capabilities:
      platform: WINDOWS
`)

	_, err := runRoot(t, "payload", "-f", path)
	if err == nil {
		t.Fatal("expected error for legacy capability name")
	}
	if !strings.Contains(err.Error(), "platformName") {
		t.Errorf("error %q should hint at platformName", err)
	}
}

func TestValidateCommand(t *testing.T) {
	path := writeDefinition(t, testDefinition)

	output, err := runRoot(t, "validate", "-f", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(output, "ok") {
		t.Errorf("output %q should report ok", output)
	}
	if !strings.Contains(output, "2 option sets") {
		t.Errorf("output %q should report the option set count", output)
	}
}

func TestValidateCommandRejectsBadDefinition(t *testing.T) {
	path := writeDefinition(t, `browsers: []`)

	_, err := runRoot(t, "validate", "-f", path)
	if err == nil {
		t.Fatal("expected error for definition without browsers")
	}
}

func TestBrowsersCommand(t *testing.T) {
	output, err := runRoot(t, "browsers")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"goog:chromeOptions", "moz:firefoxOptions", "ms:edgeOptions", "se:ieOptions", "raw"} {
		if !strings.Contains(output, want) {
			t.Errorf("browsers output missing %q:\n%s", want, output)
		}
	}
}

func TestCommandHelp(t *testing.T) {
	commands := []string{"payload", "validate", "browsers"}

	for _, cmd := range commands {
		t.Run(cmd, func(t *testing.T) {
			output, err := runRoot(t, cmd, "--help")
			if err != nil {
				t.Errorf("Execute() for %s --help error = %v", cmd, err)
			}
			if output == "" {
				t.Errorf("expected help output for %s, got empty", cmd)
			}
		})
	}
}
