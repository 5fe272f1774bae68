package yahoo

import "faabwatch/lib/textutil"

// sentinel values marking a waiver claim that had no competing bid
const (
	NoCompetitor     = "Nobody"
	NoCompetitionBid = 999
)

// Transaction is one completed waiver acquisition, whichever feed it
// came from. Difference is computed once at extraction time: for
// contested auctions it is WinningBid - RunnerUpBid, for uncontested
// claims it is the full WinningBid (the 999 sentinel never enters the
// arithmetic).
type Transaction struct {
	Player      string
	WinningBid  int
	Winner      string
	RunnerUp    string
	RunnerUpBid int
	Difference  int
	ID          string
}

// both feeds must synthesize ids the same way or cross-feed
// deduplication silently breaks
func transactionID(player, timestamp string) string {
	return player + textutil.NormalizeTimestamp(timestamp)
}
