package sms

import (
	"errors"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Client sends SMS through Twilio.
type Client struct {
	rest *twilio.RestClient
	from string
}

func New(accountSID, authToken, from string) *Client {
	return &Client{
		rest: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

func (c *Client) Send(to, body string) error {
	if to == "" {
		return errors.New("missing recipient phone")
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetBody(body)

	_, err := c.rest.Api.CreateMessage(params)
	return err
}
