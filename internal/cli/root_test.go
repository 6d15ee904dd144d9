package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/valter-silva-au/taskdeck/internal/core"
)

func TestConfigCommandPrintsYAML(t *testing.T) {
	prevCfg := Cfg
	defer func() { Cfg = prevCfg }()
	Cfg = core.DefaultConfig()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"config"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config command failed: %v", err)
	}

	got := out.String()
	for _, key := range []string{"color:", "id_prefix_len:", "done_glyph:", "default_sort:"} {
		if !strings.Contains(got, key) {
			t.Errorf("expected %q in config output:\n%s", key, got)
		}
	}
}

func TestConfigCommandWithoutConfig(t *testing.T) {
	prevCfg := Cfg
	defer func() { Cfg = prevCfg }()
	Cfg = nil

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"config"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected an error when the configuration is not initialized")
	}
}
