package commands

import (
	"supply-chain-insights/internal/features/generator"
	logging "supply-chain-insights/internal/infra/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the algorithm, case study and cost factor datasets as CSV",
		Long: `Build the three fixed datasets and write algorithm_comparison.csv,
case_studies_performance.csv and cost_factors_analysis.csv. Output is identical on every run.`,
		RunE: runGenerate,
	}

	cmd.Flags().String("out", ".", "Output directory (env: SCI_DATA_DIR)")
	cmd.Flags().String("xlsx", "", "Also export every dataset to this workbook")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	_, err := generator.Generate(generator.Options{
		Dir:  appConfig.Data.Dir,
		XLSX: appConfig.Data.XLSX,
		Out:  cmd.OutOrStdout(),
	})
	if err != nil {
		logging.LogError("Dataset generation failed", zap.Error(err))
		return err
	}
	return nil
}
