package unitsafe

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewCommand(t *testing.T) {
	cmd := NewCommand()

	t.Run("root command exists", func(t *testing.T) {
		if cmd == nil {
			t.Fatal("NewCommand returned nil")
		}
		if cmd.Use != "units" {
			t.Errorf("Use = %q, want %q", cmd.Use, "units")
		}
	})

	t.Run("has global flags", func(t *testing.T) {
		flags := []string{"json", "quiet", "verbose"}
		for _, name := range flags {
			if cmd.PersistentFlags().Lookup(name) == nil {
				t.Errorf("missing global flag: %s", name)
			}
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		subcommands := []string{"convert", "parse", "list", "info"}
		for _, name := range subcommands {
			found := false
			for _, sub := range cmd.Commands() {
				if sub.Name() == name {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("missing subcommand: %s", name)
			}
		}
	})
}

// runCommand executes a fresh command tree and returns its combined output.
func runCommand(t *testing.T, opts []CommandOption, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(opts...)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestConvertCommand(t *testing.T) {
	t.Run("converts between units", func(t *testing.T) {
		out, err := runCommand(t, nil, "convert", "1", "km", "m")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !strings.Contains(out, "1000 m") {
			t.Errorf("output = %q, want it to contain %q", out, "1000 m")
		}
	})

	t.Run("honors precision", func(t *testing.T) {
		out, err := runCommand(t, nil, "convert", "150", "lb", "kg", "--precision", "2")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !strings.Contains(out, "68.04 kg") {
			t.Errorf("output = %q, want it to contain %q", out, "68.04 kg")
		}
	})

	t.Run("json output", func(t *testing.T) {
		out, err := runCommand(t, nil, "convert", "1", "km", "m", "--json")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		var got struct {
			Text  string `json:"text"`
			Label string `json:"label"`
		}
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("invalid JSON output %q: %v", out, err)
		}
		if got.Text != "1000 m" || got.Label != "m" {
			t.Errorf("json = %+v, want text %q label %q", got, "1000 m", "m")
		}
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, err := runCommand(t, nil, "convert", "1", "furlong", "m")
		if !errors.Is(err, ErrUnknownUnit) {
			t.Errorf("Execute() error = %v, want ErrUnknownUnit", err)
		}
	})

	t.Run("invalid number", func(t *testing.T) {
		_, err := runCommand(t, nil, "convert", "bogus", "km", "m")
		if !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("Execute() error = %v, want ErrInvalidNumber", err)
		}
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := runCommand(t, nil, "convert", "1", "kg", "m")
		if !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("Execute() error = %v, want ErrDimensionMismatch", err)
		}
	})

	t.Run("logs when a logger is configured", func(t *testing.T) {
		logger := &testLogger{}
		_, err := runCommand(t, []CommandOption{WithCommandLogger(logger)}, "convert", "1", "km", "m")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(logger.debugCalls) == 0 {
			t.Error("expected a debug log entry for the conversion")
		}
	})
}

func TestParseCommand(t *testing.T) {
	t.Run("parses quantity text", func(t *testing.T) {
		out, err := runCommand(t, nil, "parse", "75.5 kg")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !strings.Contains(out, "75.5 kg") {
			t.Errorf("output = %q, want it to contain %q", out, "75.5 kg")
		}
	})

	t.Run("converts with --to", func(t *testing.T) {
		out, err := runCommand(t, nil, "parse", "1 km", "--to", "m")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !strings.Contains(out, "1000 m") {
			t.Errorf("output = %q, want it to contain %q", out, "1000 m")
		}
	})

	t.Run("rejects malformed text", func(t *testing.T) {
		_, err := runCommand(t, nil, "parse", "１ m")
		if !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("Execute() error = %v, want ErrInvalidNumber", err)
		}
	})
}

func TestListCommand(t *testing.T) {
	t.Run("has family flag", func(t *testing.T) {
		cmd := NewCommand()
		listCmd, _, err := cmd.Find([]string{"list"})
		if err != nil {
			t.Fatalf("finding list command: %v", err)
		}
		if listCmd.Flags().Lookup("family") == nil {
			t.Error("missing --family flag")
		}
	})

	t.Run("lists all units", func(t *testing.T) {
		out, err := runCommand(t, nil, "list")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		for _, label := range []string{"kg", "km/h", "pt-liq", "TiB"} {
			if !strings.Contains(out, label) {
				t.Errorf("output should contain %q", label)
			}
		}
	})

	t.Run("filters by family", func(t *testing.T) {
		out, err := runCommand(t, nil, "list", "--family", "temperature")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !strings.Contains(out, "degC") {
			t.Errorf("output = %q, want it to contain %q", out, "degC")
		}
		if strings.Contains(out, "kg") {
			t.Errorf("output = %q, should not contain mass units", out)
		}
	})

	t.Run("json lists the whole registry", func(t *testing.T) {
		out, err := runCommand(t, nil, "list", "--json")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		var units []unitJSON
		if err := json.Unmarshal([]byte(out), &units); err != nil {
			t.Fatalf("invalid JSON output: %v", err)
		}
		if len(units) != 110 {
			t.Errorf("json listed %d units, want 110", len(units))
		}
	})
}

func TestInfoCommand(t *testing.T) {
	t.Run("shows a definition", func(t *testing.T) {
		out, err := runCommand(t, nil, "info", "degF")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		for _, want := range []string{"degF", "temperature"} {
			if !strings.Contains(out, want) {
				t.Errorf("output = %q, want it to contain %q", out, want)
			}
		}
	})

	t.Run("unknown label", func(t *testing.T) {
		_, err := runCommand(t, nil, "info", "__proto__")
		if !errors.Is(err, ErrUnknownUnit) {
			t.Errorf("Execute() error = %v, want ErrUnknownUnit", err)
		}
	})
}
