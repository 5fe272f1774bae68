package yahoo

import (
	"context"
	"errors"
	"fmt"

	"faabwatch/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var ErrParse = errors.New("transactions page did not match the expected markup")

type winnerCell struct {
	name      string
	timestamp string
}

// ParseContested extracts one Transaction per contested faab auction on
// the page. The markup contract (tag names, class attributes) belongs
// to the upstream provider; any deviation fails the whole parse rather
// than guessing at partially extracted entries.
func ParseContested(ctx context.Context, doc *goquery.Document) ([]Transaction, error) {
	ctx, span := tracer.Start(ctx, "ParseContested")
	defer span.End()

	var winners []winnerCell
	var winnerErr error
	doc.Find("td.Ta-end").EachWithBreak(func(i int, td *goquery.Selection) bool {
		name := textutil.CleanText(td.Find("a").First().Text())
		timestamp := textutil.CleanText(td.Find("span.Block.F-timestamp.Nowrap").First().Text())
		if name == "" || timestamp == "" {
			winnerErr = fmt.Errorf("%w: winner cell %d is missing a name or timestamp", ErrParse, i)
			return false
		}
		winners = append(winners, winnerCell{name: name, timestamp: timestamp})
		return true
	})
	if winnerErr != nil {
		span.RecordError(winnerErr)
		span.SetStatus(codes.Error, winnerErr.Error())
		return nil, winnerErr
	}

	var transactions []Transaction
	var bidErr error
	doc.Find("td.No-pstart").EachWithBreak(func(i int, td *goquery.Selection) bool {
		player := textutil.CleanText(td.Find("a").First().Text())
		if player == "" {
			bidErr = fmt.Errorf("%w: bid cell %d is missing a player name", ErrParse, i)
			return false
		}

		winningBid, err := textutil.ParseDollars(td.Find("h6").First().Text())
		if err != nil {
			bidErr = fmt.Errorf("%w: bid cell %d: %w", ErrParse, i, err)
			return false
		}

		runnerUpInfo := td.Find("div.Mtop-med.Fz-xxs").First()
		runnerUp := textutil.CleanText(runnerUpInfo.Find("a").First().Text())
		if runnerUp == "" {
			bidErr = fmt.Errorf("%w: bid cell %d is missing a runner-up name", ErrParse, i)
			return false
		}
		runnerUpBid, err := textutil.ParseDollars(runnerUpInfo.Find("p").First().Text())
		if err != nil {
			bidErr = fmt.Errorf("%w: bid cell %d: %w", ErrParse, i, err)
			return false
		}

		transactions = append(transactions, Transaction{
			Player:      player,
			WinningBid:  winningBid,
			RunnerUp:    runnerUp,
			RunnerUpBid: runnerUpBid,
			Difference:  winningBid - runnerUpBid,
		})
		return true
	})
	if bidErr != nil {
		span.RecordError(bidErr)
		span.SetStatus(codes.Error, bidErr.Error())
		return nil, bidErr
	}

	if len(winners) != len(transactions) {
		err := fmt.Errorf(
			"%w: %d winner cells but %d bid cells",
			ErrParse, len(winners), len(transactions),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	for i := range transactions {
		transactions[i].Winner = winners[i].name
		transactions[i].ID = transactionID(transactions[i].Player, winners[i].timestamp)
	}

	span.SetAttributes(attribute.Int("transactions", len(transactions)))
	return transactions, nil
}
