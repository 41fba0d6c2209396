package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/semiotic-labs/agentium-docs/internal/chatstream"
	"github.com/semiotic-labs/agentium-docs/internal/progress"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Chat with the docs assistant",
	Long: `Sends a question to the docs assistant and streams the reply. Without a
question, starts an interactive chat; type /clear to start over and /quit
to leave. Ctrl+C aborts a reply in progress and exits.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	defer log.Sync()

	client := chatstream.NewClient(cfg.Chat.URL,
		chatstream.WithPublicKey(cfg.Chat.PublicKey),
		chatstream.WithMaxBuffered(cfg.Chat.MaxBuffered),
	)

	ind := progress.NewIndicator(os.Stderr)
	printer := &replyPrinter{w: os.Stdout, indicator: ind}
	session := chatstream.NewSession(client,
		chatstream.WithLogger(log),
		chatstream.WithUpdates(printer.update),
		chatstream.WithNotifier(chatstream.NotifierFunc(func(n chatstream.Notification) {
			ind.Stop()
			fmt.Fprintf(os.Stderr, "\n%s: %s\n", n.Title, n.Message)
		})),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		session.Close()
		ind.Stop()
	}()

	if len(args) == 1 {
		if err := session.Ask(ctx, args[0]); err != nil {
			// The notifier has already reported it.
			cmd.SilenceErrors = true
			return err
		}
		return nil
	}

	fmt.Println("Ask anything about the Agentium SDK. Try:")
	for _, s := range chatstream.Suggestions {
		fmt.Printf("  - %s\n", s)
	}
	fmt.Println()

	for {
		prompt := promptui.Prompt{Label: "You"}
		line, err := prompt.Run()
		if err != nil {
			// Ctrl+C / Ctrl+D at the prompt.
			return nil
		}

		switch strings.TrimSpace(line) {
		case "/quit", "/exit":
			return nil
		case "/clear":
			if err := session.Clear(); err != nil {
				return err
			}
			fmt.Println("Conversation cleared.")
			continue
		}

		err = session.Ask(ctx, line)
		switch {
		case errors.Is(err, chatstream.ErrClosed), errors.Is(err, context.Canceled):
			return nil
		case err != nil:
			// Reported by the notifier; the input is kept, so just go on.
			continue
		}
	}
}

// replyPrinter writes the assistant's reply to w as it streams in.
type replyPrinter struct {
	w         io.Writer
	indicator progress.Indicator
	printed   int
	turn      int
}

func (p *replyPrinter) update(s chatstream.Snapshot) {
	switch s.State {
	case chatstream.StateSending:
		p.printed = 0
		p.turn = len(s.Messages)
		p.indicator.Start("Thinking...")
	case chatstream.StateStreaming:
		p.indicator.Stop()
		p.flush(s)
	case chatstream.StateIdle:
		p.indicator.Stop()
		p.flush(s)
		if p.printed > 0 {
			fmt.Fprintln(p.w)
			p.printed = 0
		}
	}
}

// flush prints the part of this turn's reply not yet written.
func (p *replyPrinter) flush(s chatstream.Snapshot) {
	if len(s.Messages) <= p.turn {
		return
	}
	last := s.Messages[len(s.Messages)-1]
	if last.Role != chatstream.RoleAssistant || len(last.Content) <= p.printed {
		return
	}
	fmt.Fprint(p.w, last.Content[p.printed:])
	p.printed = len(last.Content)
}
