package session

import (
	"context"
	"testing"
	"time"

	"github.com/space42/astra/internal/intent"
)

func TestManagerCreateGetEnd(t *testing.T) {
	m := NewManager(time.Minute)
	s := m.Create("u1")
	if s.ID == "" {
		t.Fatalf("session ID should not be empty")
	}

	got, err := m.Get(s.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.UserID != "u1" || got.Status != StatusActive || got.UserType != intent.UserTypeUnset {
		t.Fatalf("unexpected session state: %+v", got)
	}

	ended, err := m.End(s.ID)
	if err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if ended.Status != StatusEnded {
		t.Fatalf("ended status = %q, want %q", ended.Status, StatusEnded)
	}
}

func TestManagerClassifyOnceIsWriteOnce(t *testing.T) {
	m := NewManager(time.Minute)
	s := m.Create("u1")

	applied, err := m.ClassifyOnce(s.ID, intent.UserTypeCandidate)
	if err != nil {
		t.Fatalf("ClassifyOnce() error = %v", err)
	}
	if !applied {
		t.Fatalf("first classification should apply")
	}

	applied, err = m.ClassifyOnce(s.ID, intent.UserTypeNewHire)
	if err != nil {
		t.Fatalf("ClassifyOnce() error = %v", err)
	}
	if applied {
		t.Fatalf("second classification must not apply")
	}

	got, err := m.Get(s.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.UserType != intent.UserTypeCandidate {
		t.Fatalf("UserType = %q, want sticky %q", got.UserType, intent.UserTypeCandidate)
	}
}

func TestManagerClassifyOnceIgnoresUnset(t *testing.T) {
	m := NewManager(time.Minute)
	s := m.Create("u1")
	applied, err := m.ClassifyOnce(s.ID, intent.UserTypeUnset)
	if err != nil {
		t.Fatalf("ClassifyOnce() error = %v", err)
	}
	if applied {
		t.Fatalf("unset must never be applied as a classification")
	}
}

func TestManagerRecordTurn(t *testing.T) {
	m := NewManager(time.Minute)
	s := m.Create("u1")
	for i := 0; i < 3; i++ {
		if err := m.RecordTurn(s.ID); err != nil {
			t.Fatalf("RecordTurn() error = %v", err)
		}
	}
	got, err := m.Get(s.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.TurnCount != 3 {
		t.Fatalf("TurnCount = %d, want 3", got.TurnCount)
	}
}

func TestManagerJanitorExpiresInactive(t *testing.T) {
	m := NewManager(30 * time.Millisecond)
	s := m.Create("u1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.StartJanitor(ctx, 10*time.Millisecond)

	time.Sleep(90 * time.Millisecond)
	got, err := m.Get(s.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Status != StatusEnded {
		t.Fatalf("Status = %q, want %q", got.Status, StatusEnded)
	}
}
