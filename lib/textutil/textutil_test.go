package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDollars(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
		fails    bool
	}{
		{input: "$29", expected: 29},
		{input: "Added via waivers for $29 faab", expected: 29},
		{input: "Waiver Claim - $15 faab", expected: 15},
		{input: "Waiver Claim ($12)", expected: 12},
		{input: "$0 bid", expected: 0},
		{input: "no amount here", fails: true},
		{input: "$ 12", fails: true},
	}

	for _, test := range testCases {
		n, err := ParseDollars(test.input)
		if test.fails {
			require.Error(t, err, test.input)
			continue
		}
		require.NoError(t, err, test.input)
		require.Equal(t, test.expected, n, test.input)
	}
}

func TestNormalizeTimestamp(t *testing.T) {
	require.Equal(t, "Oct 31,9:43 pm", NormalizeTimestamp("Oct 31, 9:43 pm"))
	require.Equal(t, "Oct 31,9:43 pm", NormalizeTimestamp("Oct 31,9:43 pm"))
	require.Equal(t, "no comma at all", NormalizeTimestamp("no comma at all"))
}

func TestCleanText(t *testing.T) {
	require.Equal(t, "Dontrelle Inman", CleanText("  Dontrelle   Inman\n"))
	require.Equal(t, "Alice", CleanText("\tAlice "))
}

func TestFirstLine(t *testing.T) {
	require.Equal(t, "Chris Doe", FirstLine("Chris Doe\nFA - RB"))
	require.Equal(t, "Chris Doe", FirstLine("Chris Doe"))
}
