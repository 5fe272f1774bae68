package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{
		LeagueID:     "12345",
		Threshold:    2,
		GroupmeBotID: "bot-id",
	}
	require.NoError(t, valid.validate())

	testCases := []struct {
		name   string
		config Config
	}{
		{
			name:   "missing league id",
			config: Config{Threshold: 2, GroupmeBotID: "bot-id"},
		},
		{
			name:   "missing bot id",
			config: Config{LeagueID: "12345", Threshold: 2},
		},
		{
			name:   "absent threshold defaults to zero",
			config: Config{LeagueID: "12345", GroupmeBotID: "bot-id"},
		},
		{
			name:   "negative threshold",
			config: Config{LeagueID: "12345", Threshold: -1, GroupmeBotID: "bot-id"},
		},
	}

	for _, test := range testCases {
		require.Error(t, test.config.validate(), test.name)
	}
}
