package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/asha-actions/internal/actions"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a question from the FAQ corpus",
	Args:  cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ask(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func ask(question string) {
	ctx := context.Background()
	app := mustApplication(ctx)
	defer app.Close()

	resp, err := app.executor.Execute(ctx, uuid.NewString(), actions.NameHandleFAQ, actions.Turn{Text: question})
	if err != nil {
		app.logger.Fatal("answering question", zap.Error(err))
	}
	for _, message := range resp.Messages {
		fmt.Println(message)
	}
}
