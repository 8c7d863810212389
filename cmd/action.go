package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/asha-actions/internal/actions"
)

type actionOutput struct {
	SessionID string          `json:"session_id"`
	Messages  []string        `json:"messages"`
	Events    []actions.Event `json:"events"`
}

var actionCmd = &cobra.Command{
	Use:   "action <name>",
	Short: "Run a registered action against a conversation session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sessionID, _ := cmd.Flags().GetString("session")
		text, _ := cmd.Flags().GetString("text")
		slots, _ := cmd.Flags().GetStringArray("slot")
		entities, _ := cmd.Flags().GetStringArray("entity")
		runAction(args[0], sessionID, text, slots, entities)
	},
}

func init() {
	rootCmd.AddCommand(actionCmd)

	actionCmd.Flags().String("session", "", "session id (default is a new random id)")
	actionCmd.Flags().String("text", "", "the user's latest message")
	actionCmd.Flags().StringArray("slot", nil, "slot value as key=value, may be repeated")
	actionCmd.Flags().StringArray("entity", nil, "entity value as key=value, may be repeated")
}

func runAction(name, sessionID, text string, rawSlots, rawEntities []string) {
	ctx := context.Background()
	app := mustApplication(ctx)
	defer app.Close()

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	turn := actions.Turn{Text: text, Slots: map[string]any{}, Entities: map[string][]string{}}

	slots, err := parseAssignments(rawSlots)
	if err != nil {
		app.logger.Fatal("parsing slots", zap.Error(err))
	}
	for _, kv := range slots {
		turn.Slots[kv[0]] = kv[1]
	}

	entities, err := parseAssignments(rawEntities)
	if err != nil {
		app.logger.Fatal("parsing entities", zap.Error(err))
	}
	for _, kv := range entities {
		turn.Entities[kv[0]] = append(turn.Entities[kv[0]], kv[1])
	}

	resp, err := app.executor.Execute(ctx, sessionID, name, turn)
	if err != nil {
		app.logger.Fatal("running action", zap.Error(err), zap.String("action", name))
	}

	pretty, _ := json.MarshalIndent(actionOutput{
		SessionID: sessionID,
		Messages:  resp.Messages,
		Events:    resp.Events,
	}, "", "  ")
	fmt.Println(string(pretty))
}
