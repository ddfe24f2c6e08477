package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"boxoffice/entities"
)

// RenderTables writes one table per event in the export layout: ticket
// type, quantity, revenue. Events without confirmed bookings get a
// single line instead of a table.
func RenderTables(w io.Writer, reports []entities.EventReport) error {
	for i, report := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, "%s (%s)\n", report.EventName, report.VenueName)
		if err != nil {
			return err
		}

		if !report.HasBookings {
			if _, err := fmt.Fprintln(w, "no confirmed bookings"); err != nil {
				return err
			}
			continue
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Ticket Type\tQuantity\tRevenue")
		for _, line := range report.Breakdown {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", line.TicketTypeName, line.Quantity, entities.FormatMoney(line.Revenue))
		}
		fmt.Fprintf(tw, "Total\t%d\t%s\n", report.TotalTickets, entities.FormatMoney(report.TotalRevenue))
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	return nil
}
