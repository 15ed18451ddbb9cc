package launcher

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentOrderAndReplacement(t *testing.T) {
	t.Parallel()

	env := NewEnvironment()
	env.Set("PATH", "/usr/bin")
	env.Set("PYTHONIOENCODING", "utf-8")
	env.Set("PYTHONNOUSERSITE", "1")

	// Replacing a value must not duplicate the key or move it.
	env.Set("PATH", "/usr/bin:/bin")

	require.Equal(t, []string{
		"PATH=/usr/bin:/bin",
		"PYTHONIOENCODING=utf-8",
		"PYTHONNOUSERSITE=1",
	}, env.Environ())
}

func TestEnvironmentEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewEnvironment().Environ())
}

func TestPassthroughExact(t *testing.T) { //nolint:paralleltest // mutates the process environment
	for _, tt := range []struct {
		testCaseName string
		value        string
		set          bool
		want         string
		expectCopied bool
	}{
		{
			testCaseName: "exact match copied",
			value:        "1",
			set:          true,
			want:         "1",
			expectCopied: true,
		},
		{
			testCaseName: "mismatch dropped",
			value:        "true",
			set:          true,
			want:         "1",
			expectCopied: false,
		},
		{
			testCaseName: "empty value dropped",
			value:        "",
			set:          true,
			want:         "1",
			expectCopied: false,
		},
		{
			testCaseName: "unset dropped",
			set:          false,
			want:         "1",
			expectCopied: false,
		},
	} {
		tt := tt
		t.Run(tt.testCaseName, func(t *testing.T) {
			const key = "AGENT_TEST_PASSTHROUGH"
			if tt.set {
				t.Setenv(key, tt.value)
			} else {
				t.Setenv(key, "")
				require.NoError(t, os.Unsetenv(key))
			}

			env := NewEnvironment()
			copied := env.PassthroughExact(key, tt.want)

			require.Equal(t, tt.expectCopied, copied)
			if tt.expectCopied {
				require.Equal(t, []string{key + "=" + tt.value}, env.Environ())
			} else {
				require.Empty(t, env.Environ())
			}
		})
	}
}
