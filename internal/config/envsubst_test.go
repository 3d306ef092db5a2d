package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("FF_OMDB_KEY", "abc123")
	t.Setenv("FF_EMPTY", "")

	tests := []struct {
		name        string
		in          string
		want        string
		wantMissing []string
	}{
		{
			name: "plain",
			in:   `api_key = "${FF_OMDB_KEY}"`,
			want: `api_key = "abc123"`,
		},
		{
			name: "plain empty",
			in:   `api_key = "${FF_EMPTY}"`,
			want: `api_key = ""`,
		},
		{
			name:        "plain unset",
			in:          `api_key = "${FF_NEVER_SET_1}"`,
			want:        `api_key = "${FF_NEVER_SET_1}"`,
			wantMissing: []string{"FF_NEVER_SET_1"},
		},
		{
			name: "default used when unset",
			in:   `port = ${FF_NEVER_SET_2:-8484}`,
			want: `port = 8484`,
		},
		{
			name: "default used when empty",
			in:   `level = "${FF_EMPTY:-info}"`,
			want: `level = "info"`,
		},
		{
			name: "default ignored when set",
			in:   `api_key = "${FF_OMDB_KEY:-fallback}"`,
			want: `api_key = "abc123"`,
		},
		{
			name: "empty default",
			in:   `api_key = "${FF_NEVER_SET_3:-}"`,
			want: `api_key = ""`,
		},
		{
			name:        "required message",
			in:          `api_key = "${FF_EMPTY:? OMDb key is required }"`,
			want:        `api_key = "${FF_EMPTY:? OMDb key is required }"`,
			wantMissing: []string{"FF_EMPTY: OMDb key is required"},
		},
		{
			name: "required satisfied",
			in:   `api_key = "${FF_OMDB_KEY:?required}"`,
			want: `api_key = "abc123"`,
		},
		{
			name:        "several",
			in:          "${FF_OMDB_KEY} ${FF_NEVER_SET_4} ${FF_EMPTY:-three}",
			want:        "abc123 ${FF_NEVER_SET_4} three",
			wantMissing: []string{"FF_NEVER_SET_4"},
		},
		{
			name: "not a reference",
			in:   `path = "$HOME/${1bad}"`,
			want: `path = "$HOME/${1bad}"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, missing := substituteEnvVars(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMissing, missing)
		})
	}
}
