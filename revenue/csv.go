package revenue

import (
	"encoding/csv"
	"fmt"
	"io"

	"boxoffice/entities"
)

var csvHeader = []string{
	"transactionId",
	"bookingId",
	"eventName",
	"ticketTypeName",
	"amount",
	"status",
	"method",
	"date",
}

// WriteCSV exports the whole filtered set, not just one page. Amounts
// are converted from minor units to two-decimal major units; dates are
// local, human readable.
func WriteCSV(w io.Writer, payments []entities.EnrichedPayment, f Filter) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("could not write csv header: %w", err)
	}

	for _, p := range Filtered(payments, f) {
		row := []string{
			p.TransactionID,
			p.BookingID.String(),
			p.EventName,
			p.TicketTypeName,
			entities.FormatMinorUnits(p.Amount),
			string(p.Status),
			p.Method,
			p.PaidAt.Local().Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
