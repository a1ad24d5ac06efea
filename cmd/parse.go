package cmd

import (
	"fmt"
	"os"

	"github.com/Fenix-Okami/finance-tool/aggregate"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse statement PDFs into a combined transaction table",
	Long: `Parses every statement PDF under the given folder. Each file is
classified by issuer markers in its text and handed to the matching
extraction pipeline; the merged results are hashed, sorted and written
as CSV. Files that cannot be parsed end up in the problem list instead
of aborting the run.`,
	Run: handler,
}

func handler(cmd *cobra.Command, args []string) {
	target := viper.GetString("target")
	fmt.Println("scanning ", target)
	if err := aggregate.Run(target); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("folder", "f", ".", "Folder in which to scan for statement PDFs")
	viper.BindPFlag("target", parseCmd.Flags().Lookup("folder"))
}
