package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate flag and value",
			args:         []string{"-a", "http://localhost:5000", "-x", "junk"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a", "http://localhost:5000"},
		},
		{
			name:         "combined flag=value",
			args:         []string{"--config=conf.json", "-other=1"},
			allowedFlags: []string{"--config"},
			want:         []string{"--config=conf.json"},
		},
		{
			name:         "flag without value followed by another flag",
			args:         []string{"-a", "-i", "10"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a"},
		},
		{
			name:         "nothing allowed",
			args:         []string{"-a", "1", "-b", "2"},
			allowedFlags: []string{},
			want:         []string{},
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
			got := FilterArgs(tt.args, tt.allowedFlags)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "long flag", args: []string{"bin", "-config", "conf.json"}, want: "conf.json"},
		{name: "short flag", args: []string{"bin", "-c", "short.json"}, want: "short.json"},
		{name: "no flag", args: []string{"bin", "-a", "127.0.0.1"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, JsonConfigFlags())
		})
	}
}
