package commands

import (
	"context"
	"time"

	"supply-chain-insights/internal/clients_api/telegram"
	"supply-chain-insights/internal/features/report"
	logging "supply-chain-insights/internal/infra/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPublishCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render a chart and send it to a Telegram chat",
		Long: `Render the selected dataset chart and post it as a photo with a caption
summarizing each series. Requires TELEGRAM_BOT_TOKEN and a chat id.`,
		RunE: runPublish,
	}

	addChartFlags(cmd)
	cmd.Flags().String("chat-id", "", "Target chat id (env: TELEGRAM_CHAT_ID)")
	cmd.Flags().Int("max-retries", 3, "Retries on 429 and 5xx responses")
	cmd.Flags().Int("timeout", 30, "HTTP request timeout in seconds")
	return cmd
}

func runPublish(cmd *cobra.Command, args []string) error {
	if err := appConfig.ValidateTelegram(); err != nil {
		return err
	}
	chatID, err := telegram.ParseChatID(appConfig.Telegram.ChatID)
	if err != nil {
		return err
	}

	job, err := resolveChartJob(appConfig)
	if err != nil {
		return err
	}
	chart, err := report.Render(job.input, job.output, job.preset, job.opts)
	if err != nil {
		logging.LogError("Chart rendering failed", zap.String("input", job.input), zap.Error(err))
		return err
	}

	tc := appConfig.Telegram
	client, err := telegram.NewClient(telegram.Options{
		Token:         tc.BotToken,
		APIEndpoint:   tc.APIEndpoint,
		Timeout:       time.Duration(tc.RequestTimeout) * time.Second,
		MaxRetries:    tc.MaxRetries,
		RatePerSecond: tc.RatePerSecond,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	messageID, err := client.SendPhoto(ctx, chatID, job.output, report.Caption(chart, telegram.MaxCaptionLength))
	if err != nil {
		logging.LogError("Chart delivery failed", zap.Int64("chat_id", chatID), zap.Error(err))
		return err
	}
	logging.LogSuccess("Chart published",
		zap.String("file", job.output),
		zap.Int64("chat_id", chatID),
		zap.Int("message_id", messageID),
	)
	return nil
}
