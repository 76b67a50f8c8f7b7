package chat

import (
	"context"

	"github.com/space42/astra/internal/protocol"
	"github.com/space42/astra/internal/session"
)

// RunConnection drives one websocket conversation. Inbound carries parsed
// client messages; transcript events and errors are forwarded to outbound.
// The call returns when ctx is cancelled, inbound closes, or the client ends
// the session.
func (s *Service) RunConnection(ctx context.Context, sess *session.Session, inbound <-chan any, outbound chan<- any) error {
	events, cancel := s.Subscribe(sess.ID)
	defer cancel()

	send := func(msg any) bool {
		select {
		case <-ctx.Done():
			return false
		case outbound <- msg:
			return true
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev.Kind {
			case EventTurn:
				if !send(protocol.TurnEvent{Type: protocol.TypeTurnEvent, SessionID: sess.ID, Turn: ev.Turn}) {
					return ctx.Err()
				}
			case EventTyping:
				if !send(protocol.AssistantTyping{Type: protocol.TypeAssistantTyping, SessionID: sess.ID, Active: ev.Typing}) {
					return ctx.Err()
				}
			}

		case raw, ok := <-inbound:
			if !ok {
				return nil
			}
			switch msg := raw.(type) {
			case protocol.UserMessage:
				if _, err := s.Submit(ctx, sess.ID, msg.Text); err != nil {
					send(protocol.ErrorEvent{
						Type:      protocol.TypeErrorEvent,
						SessionID: sess.ID,
						Code:      "submit_failed",
						Detail:    err.Error(),
					})
				}
			case protocol.ClientControl:
				switch msg.Action {
				case protocol.ActionQuickCandidate:
					if _, err := s.Submit(ctx, sess.ID, QuickCandidateText); err != nil {
						send(protocol.ErrorEvent{Type: protocol.TypeErrorEvent, SessionID: sess.ID, Code: "submit_failed", Detail: err.Error()})
					}
				case protocol.ActionQuickNewHire:
					if _, err := s.Submit(ctx, sess.ID, QuickNewHireText); err != nil {
						send(protocol.ErrorEvent{Type: protocol.TypeErrorEvent, SessionID: sess.ID, Code: "submit_failed", Detail: err.Error()})
					}
				case protocol.ActionEndSession:
					if _, err := s.End(sess.ID); err != nil {
						send(protocol.ErrorEvent{Type: protocol.TypeErrorEvent, SessionID: sess.ID, Code: "end_failed", Detail: err.Error()})
						continue
					}
					send(protocol.SystemEvent{Type: protocol.TypeSystemEvent, SessionID: sess.ID, Code: "session_ended"})
					return nil
				}
			}
		}
	}
}
