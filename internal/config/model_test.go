package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelValidate(t *testing.T) {
	t.Parallel()

	intPtr := func(v int) *int { return &v }

	testCases := []struct {
		name    string
		model   *Model
		wantErr string
	}{
		{
			name:  "empty model is valid",
			model: &Model{},
		},
		{
			name: "well-formed waves",
			model: &Model{Waves: []*Wave{
				{Name: "small", Rows: 3, Cols: 3, Rounds: 5, Expect: intPtr(13)},
				{Name: "wide", Rows: 2, Cols: 10, Rounds: 0},
			}},
		},
		{
			name:    "empty name",
			model:   &Model{Waves: []*Wave{{Rows: 3, Cols: 3, Rounds: 1}}},
			wantErr: "empty name",
		},
		{
			name: "duplicate name",
			model: &Model{Waves: []*Wave{
				{Name: "twin", Rows: 3, Cols: 3, Rounds: 1},
				{Name: "twin", Rows: 4, Cols: 4, Rounds: 1},
			}},
			wantErr: `duplicate wave name "twin"`,
		},
		{
			name:    "zero rows",
			model:   &Model{Waves: []*Wave{{Name: "flat", Rows: 0, Cols: 3, Rounds: 1}}},
			wantErr: "dimensions must be positive",
		},
		{
			name:    "negative rounds",
			model:   &Model{Waves: []*Wave{{Name: "rewind", Rows: 3, Cols: 3, Rounds: -2}}},
			wantErr: "rounds must be non-negative",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			err := tc.model.Validate()

			// --- Assert ---
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
