package yahoo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http/cookiejar"
	"time"

	"faabwatch/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/yahoo")

var ErrFetch = errors.New("failed to fetch transactions page")

const defaultBaseUrl = "https://football.fantasysports.yahoo.com"

type Client struct {
	LeagueID string
	Http     *resty.Client
}

type ClientOptions struct {
	LeagueID string
	// defaults to the public fantasy football host
	BaseUrl string
}

func NewClient(opts ClientOptions) (Client, error) {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = defaultBaseUrl
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return Client{}, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/yahoo/http")

	return Client{
		LeagueID: opts.LeagueID,
		Http:     client,
	}, nil
}

func (c Client) fetchTransactions(ctx context.Context, filter string) (*goquery.Document, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		SetQueryParam("transactionsfilter", filter).
		Get(fmt.Sprintf("/f1/%s/transactions", c.LeagueID))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("%w: status %s", ErrFetch, res.Status())
	}
	return goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
}

// FetchContested retrieves the transactions page filtered to contested
// faab auctions.
func (c Client) FetchContested(ctx context.Context) (*goquery.Document, error) {
	return c.fetchTransactions(ctx, "faab")
}

// FetchAdds retrieves the unfiltered add feed, which also contains
// trades, free pickups and uncontested waiver claims.
func (c Client) FetchAdds(ctx context.Context) (*goquery.Document, error) {
	return c.fetchTransactions(ctx, "add")
}
