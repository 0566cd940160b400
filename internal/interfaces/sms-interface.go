package interfaces

// SMSSender submits one message to the SMS provider.
type SMSSender interface {
	Send(to, body string) error
}
