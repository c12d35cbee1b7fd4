package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSpan(t *testing.T) {
	base := time.Date(2024, 1, 31, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "7 days",
			input:    "7d",
			expected: time.Date(2024, 2, 7, 18, 0, 0, 0, time.UTC),
		},
		{
			name:     "2 weeks",
			input:    "2w",
			expected: time.Date(2024, 2, 14, 18, 0, 0, 0, time.UTC),
		},
		{
			name:     "1 month normalizes past February",
			input:    "1m",
			expected: time.Date(2024, 3, 2, 18, 0, 0, 0, time.UTC),
		},
		{
			name:     "1 year",
			input:    "1y",
			expected: time.Date(2025, 1, 31, 18, 0, 0, 0, time.UTC),
		},
		{
			name:    "invalid format - no number",
			input:   "d",
			wantErr: true,
		},
		{
			name:    "invalid format - no unit",
			input:   "7",
			wantErr: true,
		},
		{
			name:    "invalid unit",
			input:   "7x",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "negative number",
			input:   "-7d",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddSpan(base, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestParseDay(t *testing.T) {
	now := time.Date(2024, 5, 13, 9, 30, 0, 0, time.UTC)

	got, err := ParseDay("2024-05-05", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 4, 18, 0, 0, 0, time.UTC), got)

	got, err = ParseDay("TODAY", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 12, 18, 0, 0, 0, time.UTC), got)

	got, err = ParseDay("2024-03-01", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 18, 0, 0, 0, time.UTC), got)

	_, err = ParseDay("05/05/2024", now)
	assert.Error(t, err)
}

func TestParseKind(t *testing.T) {
	got, err := ParseKind("minorholiday")
	require.NoError(t, err)
	assert.Equal(t, "MinorHoliday", got)

	got, err = ParseKind("ShabbosMevarchim")
	require.NoError(t, err)
	assert.Equal(t, "ShabbosMevarchim", got)

	_, err = ParseKind("holiday")
	assert.Error(t, err)
}

func TestBuildQueryOptions(t *testing.T) {
	now := time.Date(2024, 5, 13, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		limit       int
		offset      int
		exportID    int64
		kind        string
		from        string
		span        string
		expectError bool
		checkOpts   func(t *testing.T, opts QueryOptions)
	}{
		{
			name:   "basic pagination",
			limit:  20,
			offset: 40,
			checkOpts: func(t *testing.T, opts QueryOptions) {
				assert.Equal(t, 20, opts.Limit)
				assert.Equal(t, 40, opts.Offset)
				assert.Empty(t, opts.Kind)
				assert.Nil(t, opts.From)
				assert.Nil(t, opts.Until)
			},
		},
		{
			name: "kind filter",
			kind: "torahreading",
			checkOpts: func(t *testing.T, opts QueryOptions) {
				assert.Equal(t, "TorahReading", opts.Kind)
			},
		},
		{
			name:     "export filter",
			exportID: 3,
			checkOpts: func(t *testing.T, opts QueryOptions) {
				assert.Equal(t, int64(3), opts.ExportID)
			},
		},
		{
			name: "from without span",
			from: "2024-05-05",
			checkOpts: func(t *testing.T, opts QueryOptions) {
				require.NotNil(t, opts.From)
				assert.Equal(t, time.Date(2024, 5, 4, 18, 0, 0, 0, time.UTC).Unix(), *opts.From)
				assert.Nil(t, opts.Until)
			},
		},
		{
			name: "span starts today",
			span: "1w",
			checkOpts: func(t *testing.T, opts QueryOptions) {
				require.NotNil(t, opts.From)
				require.NotNil(t, opts.Until)
				assert.Equal(t, time.Date(2024, 5, 12, 18, 0, 0, 0, time.UTC).Unix(), *opts.From)
				assert.Equal(t, time.Date(2024, 5, 19, 18, 0, 0, 0, time.UTC).Unix(), *opts.Until)
			},
		},
		{
			name:        "invalid kind",
			kind:        "festival",
			expectError: true,
		},
		{
			name:        "invalid from",
			from:        "yesterday",
			expectError: true,
		},
		{
			name:        "invalid span",
			from:        "2024-05-05",
			span:        "3x",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := BuildQueryOptions(tt.limit, tt.offset, tt.exportID, tt.kind, tt.from, tt.span, now)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.checkOpts != nil {
				tt.checkOpts(t, opts)
			}
		})
	}
}
