package overbid

import (
	"testing"

	"faabwatch/lib/scrapers/yahoo"

	"github.com/stretchr/testify/require"
)

func TestFindNotableThresholdIsStrict(t *testing.T) {
	records := []yahoo.Transaction{
		{Winner: "Carol", WinningBid: 14, Player: "Jaylen Samuels", RunnerUp: "Dave", RunnerUpBid: 12, Difference: 2, ID: "a"},
		{Winner: "Erin", WinningBid: 10, Player: "Chris Doe", RunnerUp: "Frank", RunnerUpBid: 7, Difference: 3, ID: "b"},
	}

	sentences := FindNotable(records, 2)
	require.Len(t, sentences, 1)
	require.Contains(t, sentences[0], "Erin")
}

func TestFindNotableSentences(t *testing.T) {
	contested := yahoo.Transaction{
		Winner:      "Alice",
		WinningBid:  29,
		Player:      "Dontrelle Inman",
		RunnerUp:    "Bob",
		RunnerUpBid: 2,
		Difference:  27,
		ID:          "a",
	}
	uncontested := yahoo.Transaction{
		Winner:      "Alice",
		WinningBid:  15,
		Player:      "Chris Doe",
		RunnerUp:    yahoo.NoCompetitor,
		RunnerUpBid: yahoo.NoCompetitionBid,
		Difference:  15,
		ID:          "b",
	}

	sentences := FindNotable([]yahoo.Transaction{contested, uncontested}, 2)
	require.Equal(t, []string{
		"Alice paid $29 for Dontrelle Inman, while the next highest bidder (Bob) only bid $2.",
		"Alice paid $15 for Chris Doe. No one else even bid on him.",
	}, sentences)
}

func TestFindNotableOrdersByLargestOverbid(t *testing.T) {
	records := []yahoo.Transaction{
		{Winner: "Alice", WinningBid: 10, Player: "A", RunnerUp: "X", RunnerUpBid: 5, Difference: 5, ID: "a"},
		{Winner: "Bob", WinningBid: 40, Player: "B", RunnerUp: "X", RunnerUpBid: 10, Difference: 30, ID: "b"},
		{Winner: "Carol", WinningBid: 20, Player: "C", RunnerUp: "X", RunnerUpBid: 10, Difference: 10, ID: "c"},
	}

	sentences := FindNotable(records, 2)
	require.Len(t, sentences, 3)
	require.Contains(t, sentences[0], "Bob")
	require.Contains(t, sentences[1], "Carol")
	require.Contains(t, sentences[2], "Alice")
}
