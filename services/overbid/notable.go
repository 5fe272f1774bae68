package overbid

import (
	"fmt"
	"slices"

	"faabwatch/lib/scrapers/yahoo"
)

// FindNotable renders one sentence per transaction whose winning bid
// beat the competition by strictly more than threshold dollars,
// largest overbid first.
func FindNotable(records []yahoo.Transaction, threshold int) []string {
	var notable []yahoo.Transaction
	for _, t := range records {
		if t.Difference > threshold {
			notable = append(notable, t)
		}
	}
	slices.SortStableFunc(notable, func(a, b yahoo.Transaction) int {
		return b.Difference - a.Difference
	})

	sentences := make([]string, len(notable))
	for i, t := range notable {
		if t.RunnerUpBid != yahoo.NoCompetitionBid {
			sentences[i] = fmt.Sprintf(
				"%s paid $%d for %s, while the next highest bidder (%s) only bid $%d.",
				t.Winner, t.WinningBid, t.Player, t.RunnerUp, t.RunnerUpBid,
			)
			continue
		}
		sentences[i] = fmt.Sprintf(
			"%s paid $%d for %s. No one else even bid on him.",
			t.Winner, t.WinningBid, t.Player,
		)
	}
	return sentences
}
