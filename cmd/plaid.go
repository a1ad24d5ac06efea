package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Fenix-Okami/finance-tool/integrations/plaid"
	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

var (
	plaidToken string
	plaidDays  int
)

var plaidCmd = &cobra.Command{
	Use:   "plaid",
	Short: "Fetch recent transactions from the Plaid aggregation API",
	Long: `Fetches recent transactions for one linked account via Plaid and
prints them as CSV. This is a separate ingestion path: its output is its
own table and is never merged into the statement pipeline's hashed
dataset.

Credentials come from PLAID_CLIENT_ID, PLAID_SECRET and PLAID_ENV.`,
	Run: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stdout)
		log.SetFlags(log.Ltime | log.Lmsgprefix)

		client := plaid.NewFromEnv()

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		transactions, err := client.RecentTransactions(ctx, plaidToken, plaidDays)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}

		out, err := gocsv.MarshalString(&transactions)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(plaidCmd)

	plaidCmd.Flags().StringVarP(&plaidToken, "access-token", "t", "", "Plaid access token (required)")
	plaidCmd.Flags().IntVar(&plaidDays, "days", 30, "How many days of history to fetch")
	plaidCmd.MarkFlagRequired("access-token")
}
