package cmd

import (
	"bytes"
	"testing"

	"github.com/semiotic-labs/agentium-docs/internal/chatstream"
	"github.com/semiotic-labs/agentium-docs/internal/progress"
)

type fakeIndicator struct {
	starts, stops int
}

func (f *fakeIndicator) Start(string) { f.starts++ }
func (f *fakeIndicator) Stop()        { f.stops++ }

var _ progress.Indicator = (*fakeIndicator)(nil)

func TestReplyPrinterStreamsIncrementally(t *testing.T) {
	var buf bytes.Buffer
	ind := &fakeIndicator{}
	p := &replyPrinter{w: &buf, indicator: ind}

	user := chatstream.Message{Role: chatstream.RoleUser, Content: "hi"}
	reply := func(s string) chatstream.Message {
		return chatstream.Message{Role: chatstream.RoleAssistant, Content: s}
	}

	p.update(chatstream.Snapshot{State: chatstream.StateSending, Messages: []chatstream.Message{user}})
	p.update(chatstream.Snapshot{State: chatstream.StateStreaming, Messages: []chatstream.Message{user, reply("Hel")}})
	p.update(chatstream.Snapshot{State: chatstream.StateStreaming, Messages: []chatstream.Message{user, reply("Hello")}})
	p.update(chatstream.Snapshot{State: chatstream.StateIdle, Messages: []chatstream.Message{user, reply("Hello")}})

	if got := buf.String(); got != "Hello\n" {
		t.Errorf("unexpected output %q", got)
	}
	if ind.starts != 1 || ind.stops == 0 {
		t.Errorf("indicator starts=%d stops=%d", ind.starts, ind.stops)
	}
}

func TestReplyPrinterIgnoresPreviousTurns(t *testing.T) {
	var buf bytes.Buffer
	p := &replyPrinter{w: &buf, indicator: &fakeIndicator{}}

	history := []chatstream.Message{
		{Role: chatstream.RoleUser, Content: "a"},
		{Role: chatstream.RoleAssistant, Content: "old reply"},
		{Role: chatstream.RoleUser, Content: "b"},
	}
	p.update(chatstream.Snapshot{State: chatstream.StateSending, Messages: history})
	// Failed before any delta: no new assistant message.
	p.update(chatstream.Snapshot{State: chatstream.StateIdle, Messages: history})

	if buf.Len() != 0 {
		t.Errorf("expected nothing printed, got %q", buf.String())
	}
}

func TestParseParams(t *testing.T) {
	got, err := parseParams([]string{"chainId=eip155:84532", "flag=", "jwt=a.b=c"})
	if err != nil {
		t.Fatalf("parseParams: %v", err)
	}
	if got["chainId"] != "eip155:84532" || got["flag"] != "" || got["jwt"] != "a.b=c" {
		t.Errorf("unexpected params %v", got)
	}

	for _, bad := range []string{"novalue", "=x"} {
		if _, err := parseParams([]string{bad}); err == nil {
			t.Errorf("parseParams(%q) should fail", bad)
		}
	}
}
