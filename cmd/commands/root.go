package commands

// Root command: loads configuration and the logger before any subcommand runs.

import (
	"fmt"

	"supply-chain-insights/internal/infra/config"
	logging "supply-chain-insights/internal/infra/log"

	"github.com/spf13/cobra"
)

var appConfig *config.Config

// NewRootCommand builds the command tree with fresh flag sets.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scinsights",
		Short: "Supply chain insights - illustrative datasets and charts for route optimization",
		Long: `scinsights generates illustrative supply chain datasets (algorithm comparison,
case study performance, cost factors), renders them as grouped bar charts,
plans nearest-neighbour routes over sample scenarios and publishes charts to Telegram.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := logging.Init(cfg.Log.Dir); err != nil {
				return err
			}
			appConfig = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default ./config.yaml)")
	rootCmd.PersistentFlags().String("log-dir", "logs", "Directory for app.log (env: SCI_LOG_DIR)")

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newOptimizeCommand())
	rootCmd.AddCommand(newPublishCommand())
	return rootCmd
}

func Execute() error {
	return NewRootCommand().Execute()
}
