// Package output - CLI table renderer
package output

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"contractor-quote/core/quote"
)

type cliFormatter struct {
	opts Options
}

func (f *cliFormatter) Format() Format {
	return FormatCLI
}

func (f *cliFormatter) Render(w io.Writer, result *quote.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "QUOTE %s\n\n", result.ID)
	fmt.Fprintln(tw, "ITEM\tCATEGORY\tQTY\tUNIT\tUNIT PRICE\tTOTAL PRICE\tPROFIT %")
	for _, li := range result.LineItems {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			li.Description,
			li.CategoryID,
			li.Quantity.String(),
			li.Unit,
			f.amount(li.UnitPrice),
			f.amount(li.TotalPrice),
			li.ProfitPercent.Round(1).String(),
		)
	}

	if f.opts.ShowDetails {
		fmt.Fprintln(tw, "\nCOST BREAKDOWN")
		fmt.Fprintln(tw, "CATEGORY\tLABOR\tMATERIAL\tTOTAL")
		for _, categoryID := range sortedCategories(result) {
			sub := result.Breakdown.Categories[categoryID]
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				categoryID,
				f.amount(sub.LaborCost),
				f.amount(sub.MaterialCost),
				f.amount(sub.TotalCost),
			)
		}
	}

	fmt.Fprintf(tw, "\nTotal cost:\t%s\n", f.amount(result.Breakdown.GrandTotal))
	fmt.Fprintf(tw, "Total price:\t%s\n", f.amount(result.TotalPrice))

	if result.Guard != nil {
		fmt.Fprintf(tw, "Profit:\t%s%%\n", result.Guard.CurrentProfitPercent.Round(1).String())
		if result.Guard.NeedsAdjustment {
			fmt.Fprintf(tw, "Profit below floor; recommended price:\t%s\n", f.amount(result.Guard.RecommendedPrice))
		}
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(tw, "WARNING:\t%s\n", warning)
	}

	return tw.Flush()
}

func (f *cliFormatter) amount(d decimal.Decimal) string {
	if f.opts.Currency == "" {
		return d.StringFixed(2)
	}
	return d.StringFixed(2) + " " + f.opts.Currency
}

func sortedCategories(result *quote.Result) []string {
	ids := make([]string, 0, len(result.Breakdown.Categories))
	for id := range result.Breakdown.Categories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
