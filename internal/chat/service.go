package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/space42/astra/internal/intent"
	"github.com/space42/astra/internal/observability"
	"github.com/space42/astra/internal/policy"
	"github.com/space42/astra/internal/session"
	"github.com/space42/astra/internal/transcript"
)

// Canned introductions injected by the quick-action buttons.
const (
	QuickCandidateText = "I'm a candidate exploring career opportunities"
	QuickNewHireText   = "I'm a new hire starting soon"
)

var (
	ErrSessionEnded = errors.New("session ended")
	ErrClosed       = errors.New("chat service closed")
)

// EventKind discriminates subscriber notifications.
type EventKind int

const (
	EventTurn EventKind = iota
	EventTyping
)

// Event notifies subscribers of transcript activity on one session.
type Event struct {
	Kind   EventKind
	Turn   transcript.Turn
	Typing bool
}

// Service orchestrates the request/response cycle: append the user turn
// synchronously, then generate exactly one assistant turn after the typing
// delay. Each session owns a single worker goroutine, so assistant replies
// are appended strictly in the order their user turns were submitted even
// when typing delays overlap.
type Service struct {
	sessions    *session.Manager
	store       transcript.Store
	matcher     *intent.Matcher
	metrics     *observability.Metrics
	typingDelay time.Duration
	now         func() time.Time

	mu      sync.Mutex
	workers map[string]*worker
	subs    map[string]map[int]chan Event
	nextSub int
	closed  bool

	done chan struct{}
	wg   sync.WaitGroup
}

type job struct {
	text        string
	submittedAt time.Time
}

type worker struct {
	jobs chan job
}

func NewService(sessions *session.Manager, store transcript.Store, matcher *intent.Matcher, metrics *observability.Metrics, typingDelay time.Duration) *Service {
	return &Service{
		sessions:    sessions,
		store:       store,
		matcher:     matcher,
		metrics:     metrics,
		typingDelay: typingDelay,
		now:         func() time.Time { return time.Now().UTC() },
		workers:     make(map[string]*worker),
		subs:        make(map[string]map[int]chan Event),
		done:        make(chan struct{}),
	}
}

// Open creates a session seeded with the assistant welcome turn.
func (s *Service) Open(ctx context.Context, userID string) (*session.Session, *transcript.Turn, error) {
	sess := s.sessions.Create(userID)

	welcome := transcript.Turn{
		ID:        uuid.NewString(),
		SessionID: sess.ID,
		Role:      transcript.RoleAssistant,
		Content:   intent.WelcomeText,
		CreatedAt: s.now(),
	}
	if err := s.store.Append(ctx, welcome); err != nil {
		_, _ = s.sessions.End(sess.ID)
		return nil, nil, err
	}
	_ = s.sessions.RecordTurn(sess.ID)

	s.metrics.SessionEvents.WithLabelValues("created").Inc()
	s.metrics.ActiveSessions.Set(float64(s.sessions.ActiveCount()))
	s.metrics.Turns.WithLabelValues(string(transcript.RoleAssistant)).Inc()

	return sess, &welcome, nil
}

// Submit accepts one user input. Empty or whitespace-only input is a silent
// no-op and returns (nil, nil). Otherwise the user turn is appended
// immediately and the assistant reply is scheduled on the session's worker;
// the returned turn is the appended user turn.
func (s *Service) Submit(ctx context.Context, sessionID, text string) (*transcript.Turn, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != session.StatusActive {
		return nil, ErrSessionEnded
	}

	content, redacted := policy.RedactPII(text)
	userTurn := transcript.Turn{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      transcript.RoleUser,
		Content:   content,
		Redacted:  redacted,
		CreatedAt: s.now(),
	}
	if err := s.store.Append(ctx, userTurn); err != nil {
		return nil, err
	}
	_ = s.sessions.RecordTurn(sessionID)
	s.metrics.Turns.WithLabelValues(string(transcript.RoleUser)).Inc()

	s.publish(sessionID, Event{Kind: EventTurn, Turn: userTurn})
	s.publish(sessionID, Event{Kind: EventTyping, Typing: true})

	w, err := s.workerFor(sessionID)
	if err != nil {
		return nil, err
	}
	select {
	case w.jobs <- job{text: text, submittedAt: s.now()}:
	case <-s.done:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &userTurn, nil
}

// SubmitAndWait submits one input and blocks until its assistant reply has
// been appended. Empty input returns (nil, nil, nil) without waiting.
func (s *Service) SubmitAndWait(ctx context.Context, sessionID, text string) (*transcript.Turn, *transcript.Turn, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, nil
	}

	events, cancel := s.Subscribe(sessionID)
	defer cancel()

	userTurn, err := s.Submit(ctx, sessionID, text)
	if err != nil {
		return nil, nil, err
	}

	for {
		select {
		case <-ctx.Done():
			return userTurn, nil, ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return userTurn, nil, ErrClosed
			}
			if ev.Kind == EventTurn && ev.Turn.Role == transcript.RoleAssistant {
				reply := ev.Turn
				return userTurn, &reply, nil
			}
		}
	}
}

// End closes the session. Replies already queued still complete, so every
// accepted input produces exactly one assistant turn.
func (s *Service) End(sessionID string) (*session.Session, error) {
	sess, err := s.sessions.End(sessionID)
	if err != nil {
		return nil, err
	}
	s.metrics.SessionEvents.WithLabelValues("ended").Inc()
	s.metrics.ActiveSessions.Set(float64(s.sessions.ActiveCount()))
	return sess, nil
}

// Transcript returns the most recent turns of a session in transcript order.
func (s *Service) Transcript(ctx context.Context, sessionID string, limit int) ([]transcript.Turn, error) {
	if _, err := s.sessions.Get(sessionID); err != nil {
		return nil, err
	}
	return s.store.BySession(ctx, sessionID, limit)
}

// Subscribe registers for transcript events on a session. The returned
// cancel func must be called to release the subscription.
func (s *Service) Subscribe(sessionID string) (<-chan Event, func()) {
	ch := make(chan Event, 32)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	if s.subs[sessionID] == nil {
		s.subs[sessionID] = make(map[int]chan Event)
	}
	s.subs[sessionID][id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if m := s.subs[sessionID]; m != nil {
			delete(m, id)
			if len(m) == 0 {
				delete(s.subs, sessionID)
			}
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// Close stops all session workers. Pending typing delays are abandoned.
func (s *Service) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.done)
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Service) workerFor(sessionID string) (*worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	if w, ok := s.workers[sessionID]; ok {
		return w, nil
	}
	w := &worker{jobs: make(chan job, 64)}
	s.workers[sessionID] = w
	s.wg.Add(1)
	go s.runWorker(sessionID, w)
	return w, nil
}

// runWorker serializes reply generation for one session.
func (s *Service) runWorker(sessionID string, w *worker) {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case j := <-w.jobs:
			s.reply(sessionID, j)
		}
	}
}

func (s *Service) reply(sessionID string, j job) {
	if s.typingDelay > 0 {
		timer := time.NewTimer(s.typingDelay)
		select {
		case <-s.done:
			timer.Stop()
			return
		case <-timer.C:
		}
	}

	// Only this worker ever mutates the session's classification, so the
	// read-classify-write below is race free.
	ut := intent.UserTypeUnset
	if sess, err := s.sessions.Get(sessionID); err == nil {
		ut = sess.UserType
	}

	matchStart := s.now()
	reply, detected := s.matcher.Respond(ut, j.text)
	s.metrics.ObserveReplyStage("match", s.now().Sub(matchStart))
	if detected != ut {
		_, _ = s.sessions.ClassifyOnce(sessionID, detected)
	}

	assistantTurn := transcript.Turn{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      transcript.RoleAssistant,
		Content:   reply.Text,
		CreatedAt: s.now(),
	}
	appendStart := s.now()
	if err := s.store.Append(context.Background(), assistantTurn); err != nil {
		s.publish(sessionID, Event{Kind: EventTyping, Typing: false})
		return
	}
	s.metrics.ObserveReplyStage("append_turn", s.now().Sub(appendStart))
	_ = s.sessions.RecordTurn(sessionID)

	s.metrics.Turns.WithLabelValues(string(transcript.RoleAssistant)).Inc()
	s.metrics.ObserveIntent(reply.Rule)
	s.metrics.ObserveReplyLatency(s.now().Sub(j.submittedAt))

	s.publish(sessionID, Event{Kind: EventTyping, Typing: false})
	s.publish(sessionID, Event{Kind: EventTurn, Turn: assistantTurn})
}

func (s *Service) publish(sessionID string, ev Event) {
	s.mu.Lock()
	chans := make([]chan Event, 0, len(s.subs[sessionID]))
	for _, ch := range s.subs[sessionID] {
		chans = append(chans, ch)
	}
	s.mu.Unlock()

	for _, ch := range chans {
		select {
		case ch <- ev:
		default:
			// Slow subscriber; drop rather than stall the session worker.
		}
	}
}
