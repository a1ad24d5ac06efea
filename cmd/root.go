package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Embedded default configuration. A .finance-tool.yaml in the working
// directory or home directory overrides it.
const defaultConfigYAML = `
workers: 8
output:
  transactions: output/parsed_transactions_combined.csv
  problems: output/problem_pdfs.txt
filter:
  positive_only: true
statement:
  BOA_CREDIT_CARD:
    marker: www.bankofamerica.com
    window_start: Page 3 of
    window_end: TOTAL PURCHASES AND ADJUSTMENTS
    patterns:
      transaction: (\d{2}/\d{2})\s(\d{2}/\d{2})\s([\w\s\.\*\-]+?)\s(\d{4})\s(\d{4})\s(-?\d+\.\d{2})
  BOA_CHECKING:
    marker: bankofamerica.com
    patterns:
      date_start: ^(\d{2}/\d{2}/\d{2})\s+(.*)
      amount_tail: (-?\$?\d[\d,]*\.\d{2})\s*$
    sections:
      deposits: deposits and other additions
      atm_debit: atm and debit card subtractions
      other_subtractions: other subtractions
  CHASE_CREDIT_CARD:
    marker: www.chase.com
    window_start: Page2 of
    window_end: Total fees charged
    patterns:
      transaction: (\d{2}/\d{2})\s+(.*?)\s+(-?\d+\.\d{2})
  BESTBUY_CREDIT_CARD:
    markers:
      - best buy
      - bestbuy
    patterns:
      transaction: (\d{2}/\d{2})\s+(.*?)\s+(-?\d+\.\d{2})
`

var (
	cfgFile string
	verbose bool
	rootCmd = &cobra.Command{
		Use:   "finance-tool [folder]",
		Short: "Extract structured transactions from bank statement PDFs",
		Long: `finance-tool scans a folder tree of bank and credit card statement
PDFs, detects each statement's issuer, extracts its transactions and
writes one combined, hashed, sorted CSV table plus an audit list of
documents that could not be parsed.`,
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 1 {
				viper.Set("target", args[0])
				handler(parseCmd, []string{})
				return
			}
			cmd.Help()
		},
	}
)

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default is ./.finance-tool.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func initLogging() {
	if !verbose {
		log.SetOutput(io.Discard)
	} else {
		log.SetFlags(log.Ltime | log.Lmsgprefix)
		log.SetPrefix("INFO: ")
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".finance-tool")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file found, use the embedded defaults
			viper.SetConfigType("yaml")
			if err := viper.ReadConfig(bytes.NewBufferString(defaultConfigYAML)); err != nil {
				fmt.Printf("Error loading embedded configuration: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Printf("Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}
}
