package groupme

import (
	"context"
	"errors"
	"fmt"
	"time"

	"faabwatch/lib/telemetry"

	"github.com/go-resty/resty/v2"
)

var ErrNotify = errors.New("failed to deliver groupme message")

const defaultBaseUrl = "https://api.groupme.com"

// Client posts messages through a single GroupMe bot, created on
// dev.groupme.com.
type Client struct {
	botID string
	http  *resty.Client
}

type ClientOptions struct {
	BotID string
	// defaults to the public GroupMe API host
	BaseUrl string
}

func NewClient(opts ClientOptions) Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = defaultBaseUrl
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetTimeout(time.Second * 10)

	telemetry.InstrumentResty(client, "groupme/http")

	return Client{
		botID: opts.BotID,
		http:  client,
	}
}

// Post delivers a single message through the bot.
func (c Client) Post(ctx context.Context, text string) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"bot_id": c.botID,
			"text":   text,
		}).
		Post("/v3/bots/post")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotify, err)
	}
	if res.IsError() {
		return fmt.Errorf("%w: status %s", ErrNotify, res.Status())
	}
	return nil
}
