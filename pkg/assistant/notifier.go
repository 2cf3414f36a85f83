package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/lavanyassgit/Medicine-AI/pkg/catalog"
)

type StockAlert struct {
	SessionID string
	Medicine  catalog.Medicine
	RaisedAt  time.Time
}

func (a StockAlert) Title() string {
	return "Stock Alert"
}

func (a StockAlert) Description() string {
	return fmt.Sprintf("%s has finished! Please reorder immediately.", a.Medicine.Name)
}

type Notifier interface {
	Notify(ctx context.Context, alert StockAlert) error
}

type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, alert StockAlert) error {
	log.Warnw(alert.Title(), "description", alert.Description(), "session", alert.SessionID)
	return nil
}

// MailFunc matches mailing.SendMail.
type MailFunc func(toEmail string, subject string, body string) error

type MailNotifier struct {
	to   string
	send MailFunc
}

func NewMailNotifier(to string, send MailFunc) *MailNotifier {
	return &MailNotifier{to: to, send: send}
}

func (n *MailNotifier) Notify(ctx context.Context, alert StockAlert) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body := fmt.Sprintf("<p>%s</p><p>Regulatory ID: %s</p><p>Raised at %s</p>",
		alert.Description(), alert.Medicine.RegulatoryID, alert.RaisedAt.Format(time.RFC1123))
	if err := n.send(n.to, alert.Title()+": "+alert.Medicine.Name, body); err != nil {
		return fmt.Errorf("send stock alert mail: %w", err)
	}
	return nil
}

// MultiNotifier delivers to every notifier and returns the first error.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, alert StockAlert) error {
	var first error
	for _, n := range m {
		if err := n.Notify(ctx, alert); err != nil && first == nil {
			first = err
		}
	}
	return first
}
