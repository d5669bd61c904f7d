package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	// The config loader filters for "-a -d -t -r" and separately for
	// "-c -config"; the cases below mirror that split.
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "own flag with separate value, others dropped",
			args:         []string{"-a", "https://script.example/exec", "-c", "conf.json"},
			allowedFlags: []string{"-a", "-d", "-t", "-r"},
			want:         []string{"-a", "https://script.example/exec"},
		},
		{
			name:         "equals form",
			args:         []string{"-config=conf.json", "-r", "500"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=conf.json"},
		},
		{
			name:         "several owned flags keep their order",
			args:         []string{"-d", "prdir.db", "-t", "30", "-r", "500"},
			allowedFlags: []string{"-a", "-d", "-t", "-r"},
			want:         []string{"-d", "prdir.db", "-t", "30", "-r", "500"},
		},
		{
			name:         "nothing owned yields empty, not nil",
			args:         []string{"-x", "1", "positional"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{},
		},
		{
			name:         "trailing flag without value is kept bare",
			args:         []string{"-c"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c"},
		},
		{
			name:         "dash-starting follower is not swallowed as a value",
			args:         []string{"-c", "-r"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c"},
		},
		{
			name:         "repeated flag preserved",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-a"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short form", func(t *testing.T) {
		os.Args = []string{"prdir", "-c", "/etc/prdir/conf.json"}
		assert.Equal(t, "/etc/prdir/conf.json", JsonConfigFlags())
	})

	t.Run("long form", func(t *testing.T) {
		os.Args = []string{"prdir", "-config", "/etc/prdir/conf.json"}
		assert.Equal(t, "/etc/prdir/conf.json", JsonConfigFlags())
	})

	t.Run("unrelated flags ignored", func(t *testing.T) {
		os.Args = []string{"prdir", "-a", "https://script.example/exec", "-r", "500"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("last occurrence wins", func(t *testing.T) {
		os.Args = []string{"prdir", "-c", "/one.json", "-config", "/two.json"}
		assert.Equal(t, "/two.json", JsonConfigFlags())
	})
}
