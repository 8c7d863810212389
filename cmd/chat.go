package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/asha-actions/internal/actions"
	"github.com/spigell/asha-actions/internal/form"
	"github.com/spigell/asha-actions/internal/utils"
)

var (
	botColor  = color.New(color.FgCyan)
	infoColor = color.New(color.FgHiBlack)
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the actions interactively",
	Run: func(cmd *cobra.Command, _ []string) {
		sessionID, _ := cmd.Flags().GetString("session")
		chat(sessionID)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().String("session", "", "session id to continue (default is a new random id)")
}

// route picks the action for a free text message. Commands are matched
// before the open form so the user can always pause or ask a question.
func route(text, activeForm string) (string, string) {
	lowered := strings.ToLower(strings.TrimSpace(text))

	switch {
	case lowered == "pause":
		return actions.NamePauseConversation, text
	case lowered == "resume":
		return actions.NameResumeConversation, text
	case strings.HasPrefix(lowered, "faq "):
		return actions.NameHandleFAQ, strings.TrimSpace(text[len("faq "):])
	case activeForm == form.JobSearch:
		return actions.NameValidateJobSearch, text
	case utils.ContainsAny(lowered, "job", "position", "opening", "vacanc"):
		return actions.NameValidateJobSearch, text
	case utils.ContainsAny(lowered, "webinar", "session", "workshop"):
		return actions.NameSessionsInfo, text
	case utils.ContainsAny(lowered, "event", "meetup", "conference"):
		return actions.NameEventsInfo, text
	case utils.ContainsAny(lowered, "mentor"):
		return actions.NameMentorshipInfo, text
	case utils.ContainsAny(lowered, "bias", "discriminat", "harass", "unfair"):
		return actions.NameAddressGenderBias, text
	default:
		return actions.NameHandleFAQ, text
	}
}

func chat(sessionID string) {
	ctx := context.Background()
	app := mustApplication(ctx)
	defer app.Close()

	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	infoColor.Printf("session %s, type 'pause', 'resume', 'faq <question>' or 'quit'\n", sessionID)

	prompt := promptui.Prompt{Label: "you"}

	for {
		text, err := prompt.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return
		}
		if err != nil {
			app.logger.Fatal("reading input", zap.Error(err))
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if text == "quit" || text == "exit" {
			return
		}

		if err := app.chatTurn(ctx, sessionID, text); err != nil {
			app.logger.Error("handling message", zap.Error(err))
		}
	}
}

func (a *application) chatTurn(ctx context.Context, sessionID, text string) error {
	state, err := a.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	name, message := route(text, state.ActiveForm)
	if err := a.say(ctx, sessionID, name, message); err != nil {
		return err
	}

	if name != actions.NameValidateJobSearch {
		return nil
	}

	// a finished form hands over to the search
	state, err = a.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	if state.ActiveForm == form.JobSearch {
		return nil
	}
	if _, missing := form.NextMissing(state.Slots); missing {
		return nil
	}
	return a.say(ctx, sessionID, actions.NameSearchJobs, text)
}

func (a *application) say(ctx context.Context, sessionID, name, text string) error {
	resp, err := a.executor.Execute(ctx, sessionID, name, actions.Turn{Text: text})
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	for _, message := range resp.Messages {
		botColor.Println(message)
	}
	return nil
}
