package cli

import (
	"io"
	"testing"

	"github.com/spacerabbit99982/abbund/pkg/errors"
)

func TestParseLengths(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []float64
		wantErr bool
	}{
		{"plain", []string{"3.0", "2.5", "1"}, []float64{3.0, 2.5, 1}, false},
		{"decimal comma", []string{"2,5"}, []float64{2.5}, false},
		{"zero rejected", []string{"0"}, nil, true},
		{"negative rejected", []string{"-1.5"}, nil, true},
		{"garbage rejected", []string{"abc"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLengths(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLengths(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("error code = %v, want INVALID_INPUT", err)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseLengths(%v) = %v, want %v", tt.args, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseLengths(%v)[%d] = %v, want %v", tt.args, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRootCommandStructure(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"plan", "cut", "check", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.SetLogLevel(LogDebug)
	if got := c.Logger.GetLevel(); got != LogDebug {
		t.Errorf("log level = %v, want %v", got, LogDebug)
	}
}
