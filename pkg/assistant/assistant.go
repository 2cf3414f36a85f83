package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/lavanyassgit/Medicine-AI/domain"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type Message struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Sender      Sender    `json:"sender"`
	Timestamp   time.Time `json:"timestamp"`
	ReplyTo     string    `json:"reply_to,omitempty"`
	Intent      Intent    `json:"intent,omitempty"`
	Action      Action    `json:"action,omitempty"`
	CallTargets []string  `json:"call_targets,omitempty"`
}

const (
	DefaultReplyDelay = 500 * time.Millisecond
	DefaultAlertDelay = 500 * time.Millisecond
)

type AssistantService interface {
	Send(sessionID, text string) (Message, error)
	Transcript(sessionID string) []Message
	EndSession(sessionID string)
}

var _ AssistantService = (*Assistant)(nil)

type Option func(*Assistant)

func WithReplyDelay(d time.Duration) Option {
	return func(a *Assistant) { a.replyDelay = d }
}

func WithAlertDelay(d time.Duration) Option {
	return func(a *Assistant) { a.alertDelay = d }
}

func WithClock(now func() time.Time) Option {
	return func(a *Assistant) { a.now = now }
}

// Assistant keeps one transcript per session. Each session has a single
// worker that answers queued messages in the order they were sent, each one
// replyDelay after it arrived. Ending a session or closing the assistant
// cancels every pending reply and alert.
type Assistant struct {
	engine     *Engine
	notifier   Notifier
	replyDelay time.Duration
	alertDelay time.Duration
	now        func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	closed   bool
	sessions map[string]*session
}

type session struct {
	id     string
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	messages []Message
	queue    []pending
	working  bool
}

type pending struct {
	prompt Message
	due    time.Time
}

func New(engine *Engine, notifier Notifier, opts ...Option) *Assistant {
	ctx, cancel := context.WithCancel(context.Background())
	a := &Assistant{
		engine:     engine,
		notifier:   notifier,
		replyDelay: DefaultReplyDelay,
		alertDelay: DefaultAlertDelay,
		now:        time.Now,
		ctx:        ctx,
		cancel:     cancel,
		sessions:   make(map[string]*session),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Send records the user's message immediately and queues the reply.
func (a *Assistant) Send(sessionID, text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, domain.ErrEmptyMessage
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return Message{}, domain.ErrAssistantClosed
	}

	s, ok := a.sessions[sessionID]
	if !ok {
		s = a.newSession(sessionID)
		a.sessions[sessionID] = s
	}

	msg := Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    SenderUser,
		Timestamp: a.now(),
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.queue = append(s.queue, pending{prompt: msg, due: time.Now().Add(a.replyDelay)})
	start := !s.working
	s.working = true
	s.mu.Unlock()

	// wg.Add stays under a.mu so it never races with Close.
	if start {
		a.wg.Add(1)
		go a.work(s)
	}
	return msg, nil
}

// Transcript never creates a session; an unknown session reads as the greeting.
func (a *Assistant) Transcript(sessionID string) []Message {
	a.mu.Lock()
	s, ok := a.sessions[sessionID]
	a.mu.Unlock()

	if !ok {
		return []Message{a.greeting()}
	}
	return s.snapshot()
}

// EndSession drops the transcript and cancels anything still pending for it.
func (a *Assistant) EndSession(sessionID string) {
	a.mu.Lock()
	s, ok := a.sessions[sessionID]
	delete(a.sessions, sessionID)
	a.mu.Unlock()

	if ok {
		s.cancel()
	}
}

// Close rejects further messages, cancels all sessions and waits for their
// goroutines to exit.
func (a *Assistant) Close() {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()

	a.cancel()
	a.wg.Wait()
}

func (a *Assistant) newSession(sessionID string) *session {
	ctx, cancel := context.WithCancel(a.ctx)
	return &session{
		id:       sessionID,
		ctx:      ctx,
		cancel:   cancel,
		messages: []Message{a.greeting()},
	}
}

func (a *Assistant) greeting() Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      GreetingText,
		Sender:    SenderBot,
		Timestamp: a.now(),
	}
}

// work drains the session queue in FIFO order and exits when it is empty.
func (a *Assistant) work(s *session) {
	defer a.wg.Done()

	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.working = false
			s.mu.Unlock()
			return
		}
		next := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		if !sleep(s.ctx, time.Until(next.due)) {
			log.Debugf("assistant replies dropped for closed session %s", s.id)
			return
		}
		a.reply(s, next.prompt)
	}
}

func (a *Assistant) reply(s *session, prompt Message) {
	resp := a.engine.Respond(prompt.Text)
	s.append(Message{
		ID:          uuid.NewString(),
		Text:        resp.Text,
		Sender:      SenderBot,
		Timestamp:   a.now(),
		ReplyTo:     prompt.ID,
		Intent:      resp.Intent,
		Action:      resp.Action,
		CallTargets: resp.CallTargets,
	})

	if !resp.StockAlert || resp.Medicine == nil || a.notifier == nil {
		return
	}
	// The worker still holds a wg slot, so this Add cannot start from zero.
	alert := StockAlert{SessionID: s.id, Medicine: *resp.Medicine}
	a.wg.Add(1)
	go a.alert(s, alert)
}

func (a *Assistant) alert(s *session, alert StockAlert) {
	defer a.wg.Done()

	if !sleep(s.ctx, a.alertDelay) {
		return
	}
	alert.RaisedAt = a.now()
	if err := a.notifier.Notify(s.ctx, alert); err != nil {
		log.Errorw("failed to deliver stock alert", "medicine", alert.Medicine.Name, "error", err)
	}
}

func (s *session) append(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

func (s *session) snapshot() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// sleep waits for d and reports false if ctx ends first.
func sleep(ctx context.Context, d time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
