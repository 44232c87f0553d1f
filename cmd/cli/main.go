package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/bankview/internal/adapter/http/dto"
	"github.com/iho/bankview/internal/domain"
)

var (
	baseURL string
	timeout time.Duration
	asJSON  bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bankview-cli",
		Short:         "bankview CLI tool",
		Long:          `A command line interface for interacting with a running bankview service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the bankview API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print raw JSON responses")

	rootCmd.AddCommand(
		balanceCmd(),
		summaryCmd(domain.KindCredit),
		summaryCmd(domain.KindDebit),
		loginCmd(),
		addCmd(),
		refreshCmd(),
	)

	return rootCmd
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the current account balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var home dto.HomeResponse
			if err := doRequest(http.MethodGet, "/", nil, &home); err != nil {
				return err
			}
			if asJSON {
				printJSON(home)
				return nil
			}
			fmt.Printf("%s: %s\n", home.UserName, home.AccountBalance)
			return nil
		},
	}
}

func summaryCmd(kind domain.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   kind.Plural(),
		Short: fmt.Sprintf("List %s in date order", kind.Plural()),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var summary dto.SummaryResponse
			if err := doRequest(http.MethodGet, "/"+kind.Plural(), nil, &summary); err != nil {
				return err
			}
			if asJSON {
				printJSON(summary)
				return nil
			}
			printSummary(summary)
			return nil
		},
	}
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login NAME",
		Short: "Log in with a display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var user dto.UserResponse
			if err := doRequest(http.MethodPost, "/login", dto.LoginRequest{UserName: args[0]}, &user); err != nil {
				return err
			}
			if asJSON {
				printJSON(user)
				return nil
			}
			fmt.Printf("Logged in as %s (member since %s)\n", user.UserName, user.MemberSince)
			return nil
		},
	}
}

func addCmd() *cobra.Command {
	var description, date string

	cmd := &cobra.Command{
		Use:       "add credit|debit AMOUNT",
		Short:     "Add a manual credit or debit",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(domain.KindCredit), string(domain.KindDebit)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := domain.Kind(args[0])
			if !kind.IsValid() {
				return fmt.Errorf("unknown kind %q: expected credit or debit", args[0])
			}

			amount, err := domain.ParseAmount(json.RawMessage(args[1]))
			if err != nil {
				return fmt.Errorf("amount %q: %w", args[1], err)
			}

			req := dto.AddTransactionRequest{Description: description, Amount: amount, Date: date}
			var tx dto.TransactionResponse
			if err := doRequest(http.MethodPost, "/"+kind.Plural(), req, &tx); err != nil {
				return err
			}
			if asJSON {
				printJSON(tx)
				return nil
			}
			fmt.Printf("Added %s %s (%s)\n", kind, tx.Amount, tx.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Transaction description")
	cmd.Flags().StringVar(&date, "date", "", "Transaction date (defaults to now)")

	return cmd
}

func refreshCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Re-fetch credits and debits from the remote API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/refresh"
			if force {
				path += "?force=true"
			}

			var report dto.RefreshResponse
			if err := doRequest(http.MethodPost, path, nil, &report); err != nil {
				return err
			}
			if asJSON {
				printJSON(report)
				return nil
			}
			printOutcome("credits", report.Credits)
			printOutcome("debits", report.Debits)
			fmt.Printf("Balance: %s\n", report.AccountBalance)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Bypass the fetch cache")

	return cmd
}

// doRequest sends body as JSON and decodes a 2xx response into out.
func doRequest(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, strings.TrimRight(baseURL, "/")+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			if apiErr.Message != "" {
				return fmt.Errorf("request failed (status %d): %s: %s", resp.StatusCode, apiErr.Error, apiErr.Message)
			}
			return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func printSummary(summary dto.SummaryResponse) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDESCRIPTION\tAMOUNT")
	for _, tx := range summary.Transactions {
		fmt.Fprintf(w, "%s\t%s\t%s\n", tx.Date.Format(domain.DisplayDateLayout), truncate(tx.Description, 40), tx.Amount)
	}
	w.Flush()

	fmt.Printf("\n%d %s, total %s, balance %s\n", summary.Count, summary.Kind.Plural(), summary.Total, summary.AccountBalance)
}

func printOutcome(name string, outcome dto.FetchOutcomeResponse) {
	if outcome.Error != "" {
		fmt.Printf("%s: %s (%s)\n", name, outcome.Status, outcome.Error)
		return
	}
	fmt.Printf("%s: %s, %d records\n", name, outcome.Status, outcome.Count)
}

func printJSON(v any) {
	data, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(data))
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}
