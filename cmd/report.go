package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fguardian/backend/internal/config"
	"github.com/fguardian/backend/internal/models"
	"github.com/fguardian/backend/internal/report"
	"github.com/fguardian/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var errEmailMissing = errors.New("--email is required")

var (
	flagEmail    string
	flagMonth    string
	flagLocale   string
	flagDatabase string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the monthly report of a user",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&flagEmail, "email", "e", "", "Email address of the user")
	reportCmd.Flags().StringVarP(&flagMonth, "month", "m", "", "Month of the report as YYYY-MM. Defaults to the current month")
	reportCmd.Flags().StringVarP(&flagLocale, "locale", "l", "pt-BR", "Locale for number and currency formatting")
	reportCmd.Flags().StringVar(&flagDatabase, "database", "", "Path of the database. Defaults to DATABASE_PATH")
}

func runReport(cmd *cobra.Command, _ []string) error {
	if flagEmail == "" {
		return errEmailMissing
	}

	month := types.MonthOf(time.Now().UTC())
	if flagMonth != "" {
		var err error
		month, err = types.ParseMonth(flagMonth)
		if err != nil {
			return fmt.Errorf("invalid month %q: %w", flagMonth, err)
		}
	}

	tag, err := language.Parse(flagLocale)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", flagLocale, err)
	}

	path := flagDatabase
	if path == "" {
		path = config.DatabasePath()
	}

	err = models.Connect(path)
	if err != nil {
		return err
	}
	defer models.Close()

	var user models.User
	err = models.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(flagEmail))).Error
	if err != nil {
		return err
	}

	monthly, err := report.Load(models.DB, user.ID, month.Year(), month.Month())
	if err != nil {
		return err
	}

	printMonthly(cmd.OutOrStdout(), monthly, tag)
	return nil
}

// printMonthly writes the report as a table, formatting amounts for the locale.
func printMonthly(out io.Writer, monthly report.Monthly, tag language.Tag) {
	p := message.NewPrinter(tag)

	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		unit = currency.USD
	}

	amount := func(d decimal.Decimal) string {
		return p.Sprint(currency.Symbol(unit.Amount(d.InexactFloat64())))
	}

	fmt.Fprintf(out, "Report %04d-%02d\n\n", monthly.Year, monthly.Month)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Income\t%s\n", amount(monthly.TotalIncome))
	fmt.Fprintf(w, "Expenses\t%s\n", amount(monthly.TotalExpenses))
	fmt.Fprintf(w, "Balance\t%s\n", amount(monthly.Balance))
	p.Fprintf(w, "Transactions\t%d\n", monthly.TransactionsCount)
	_ = w.Flush()

	if len(monthly.TopCategories) == 0 {
		fmt.Fprintln(out, "\nNo expenses in this month.")
		return
	}

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Category\tAmount\tShare")
	for _, c := range monthly.TopCategories {
		p.Fprintf(w, "%s\t%s\t%.2f%%\n", c.CategoryName, amount(c.Amount), c.Percentage.InexactFloat64())
	}
	_ = w.Flush()
}
