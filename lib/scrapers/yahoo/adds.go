package yahoo

import (
	"context"
	"fmt"
	"strings"

	"faabwatch/lib/htmlutil"
	"faabwatch/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ParseAdds extracts priced waiver claims that had no competing bid
// from the unfiltered add feed. Free pickups and trades are skipped.
// Records whose id was already produced by the contested feed this run
// are suppressed, the contested version being the richer of the two.
func ParseAdds(ctx context.Context, doc *goquery.Document, seen map[string]bool) ([]Transaction, error) {
	ctx, span := tracer.Start(ctx, "ParseAdds")
	defer span.End()

	tables := doc.Find("table")
	if tables.Length() < 2 {
		err := fmt.Errorf("%w: expected at least two tables on the add feed", ErrParse)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	// the add feed lists transactions in the second table of the page
	addsTable := tables.Eq(1)

	adds := addsTable.Find("td.Fill-x.No-pstart")
	meta := addsTable.Find("td.Ta-end")
	if adds.Length() != meta.Length() {
		err := fmt.Errorf(
			"%w: %d transaction cells but %d metadata cells on the add feed",
			ErrParse, adds.Length(), meta.Length(),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var claims []Transaction
	for i := 0; i < adds.Length(); i++ {
		entry := adds.Eq(i)

		label := textutil.CleanText(entry.Find("h6.F-shade.Fz-xxs").First().Text())
		if !strings.Contains(label, "Waiver") {
			continue
		}
		if !strings.Contains(label, "$") {
			// free pickup, nothing was bid
			continue
		}

		amount, err := textutil.ParseDollars(label)
		if err != nil {
			err = fmt.Errorf("%w: add entry %d: %v", ErrParse, i, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		playerCell := entry.Find("div.Pbot-xs").First()
		if len(playerCell.Nodes) == 0 {
			err := fmt.Errorf("%w: add entry %d is missing a player cell", ErrParse, i)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		player := textutil.CleanText(textutil.FirstLine(htmlutil.GetText(playerCell.Nodes[0])))

		info := meta.Eq(i)
		winner := textutil.CleanText(info.Find("a.Tst-team-name").First().Text())
		timestamp := textutil.CleanText(info.Find("span.Block.F-timestamp.Fz-xxs.Nowrap").First().Text())
		if player == "" || winner == "" || timestamp == "" {
			err := fmt.Errorf("%w: add entry %d is missing a player, winner or timestamp", ErrParse, i)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		id := transactionID(player, timestamp)
		if seen[id] {
			continue
		}

		claims = append(claims, Transaction{
			Player:      player,
			WinningBid:  amount,
			Winner:      winner,
			RunnerUp:    NoCompetitor,
			RunnerUpBid: NoCompetitionBid,
			// the full winning bid, not winning bid minus the
			// sentinel
			Difference: amount,
			ID:         id,
		})
	}

	span.SetAttributes(attribute.Int("claims", len(claims)))
	return claims, nil
}
