package argtest

import (
	"bytes"
	"context"
	"testing"

	"github.com/specialistvlad/ostepgo/internal/atoi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         Config
		expectedErr error
		expectedOut string
	}{
		{
			name:        "no argument",
			cfg:         Config{},
			expectedErr: ErrNoArgument,
		},
		{
			name:        "number",
			cfg:         Config{Args: []string{"42"}},
			expectedOut: "Test: 42\n",
		},
		{
			name:        "negative number",
			cfg:         Config{Args: []string{"-3"}},
			expectedOut: "Test: -3\n",
		},
		{
			name:        "malformed input reads as zero",
			cfg:         Config{Args: []string{"hello"}},
			expectedOut: "Test: 0\n",
		},
		{
			name:        "numeric prefix",
			cfg:         Config{Args: []string{"7up"}},
			expectedOut: "Test: 7\n",
		},
		{
			name:        "extra arguments ignored",
			cfg:         Config{Args: []string{"5", "6", "7"}},
			expectedOut: "Test: 5\n",
		},
		{
			name:        "strict accepts a number",
			cfg:         Config{Args: []string{"42"}, Strict: true},
			expectedOut: "Test: 42\n",
		},
		{
			name:        "strict rejects malformed input",
			cfg:         Config{Args: []string{"7up"}, Strict: true},
			expectedErr: atoi.ErrInvalidNumber,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := New(tc.cfg).Run(context.Background(), &out)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				assert.Empty(t, out.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedOut, out.String())
		})
	}
}

func TestErrNoArgumentMessage(t *testing.T) {
	assert.Equal(t, "You did not feed me arguments, I will die now :( ...", ErrNoArgument.Error())
}
