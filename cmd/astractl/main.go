package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/space42/astra/internal/chat"
	"github.com/space42/astra/internal/intent"
	"github.com/space42/astra/internal/knowledge"
	"github.com/space42/astra/internal/observability"
	"github.com/space42/astra/internal/session"
	"github.com/space42/astra/internal/transcript"
)

// astractl is an offline terminal chat against the intent engine. It runs the
// full conversation cycle in-process with no server, no database, and no
// typing delay, which makes it handy for checking rule responses quickly.
func main() {
	userID := flag.String("user", "cli", "user id recorded on the session")
	as := flag.String("as", "", "start as a known visitor type: candidate or new-hire")
	flag.Parse()

	sessions := session.NewManager(10 * time.Minute)
	store := transcript.NewInMemoryStore()
	matcher := intent.NewMatcher(knowledge.Default())
	metrics := observability.NewMetrics(fmt.Sprintf("astractl_%d", time.Now().UnixNano()))
	service := chat.NewService(sessions, store, matcher, metrics, 0)
	defer service.Close()

	ctx := context.Background()
	sess, welcome, err := service.Open(ctx, *userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open session: %v\n", err)
		os.Exit(1)
	}
	printAssistant(welcome.Content)

	switch strings.ToLower(strings.TrimSpace(*as)) {
	case "":
	case "candidate":
		intro(ctx, service, sess.ID, chat.QuickCandidateText)
	case "new-hire", "newhire":
		intro(ctx, service, sess.ID, chat.QuickNewHireText)
	default:
		fmt.Fprintf(os.Stderr, "unknown -as value %q (expected candidate or new-hire)\n", *as)
		os.Exit(2)
	}

	fmt.Println("type a message and press enter; /quit to exit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "/quit" || line == "/exit" {
			break
		}
		if line == "" {
			continue
		}
		_, reply, err := service.SubmitAndWait(ctx, sess.ID, line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "submit: %v\n", err)
			continue
		}
		printAssistant(reply.Content)
	}

	if _, err := service.End(sess.ID); err == nil {
		fmt.Println("session ended")
	}
}

func intro(ctx context.Context, service *chat.Service, sessionID, text string) {
	fmt.Printf("you: %s\n", text)
	_, reply, err := service.SubmitAndWait(ctx, sessionID, text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "submit: %v\n", err)
		return
	}
	printAssistant(reply.Content)
}

func printAssistant(content string) {
	fmt.Printf("astra: %s\n\n", content)
}
