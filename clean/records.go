package clean

import (
	"strings"

	"github.com/GermanMF/table-reader-bank/model"
)

// MSIRecords maps raw 7-column installment rows onto typed records,
// cleaning the date, the three amount columns and the rate.
func MSIRecords(rows [][]string) []model.MSIRecord {
	records := make([]model.MSIRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, model.MSIRecord{
			OperationDate:   Date(field(row, 0)),
			Description:     field(row, 1),
			OriginalAmount:  Amount(field(row, 2)),
			PendingBalance:  Amount(field(row, 3)),
			RequiredPayment: Amount(field(row, 4)),
			PaymentNumber:   field(row, 5),
			Rate:            Percentage(field(row, 6)),
		})
	}
	return records
}

// RegularRecords maps raw 5-column regular rows onto typed records.
// The raw sign column becomes Type: "-" is a credit ("Abono"), anything
// else a charge ("Cargo"). Any residual leading minus on the amount is
// stripped since Type already carries the sign. The card-type label is
// attached and the user-assigned fields start blank.
func RegularRecords(rows [][]string, card model.CardType) []model.RegularRecord {
	label := capitalize(string(card))
	records := make([]model.RegularRecord, 0, len(rows))
	for _, row := range rows {
		sign := strings.TrimSpace(field(row, 3))
		if sign == "" {
			sign = "+"
		}
		txType := "Cargo"
		if sign == "-" {
			txType = "Abono"
		}
		records = append(records, model.RegularRecord{
			TransactionDate: Date(field(row, 0)),
			ChargeDate:      Date(field(row, 1)),
			Description:     Description(field(row, 2)),
			Amount:          strings.TrimLeft(Amount(field(row, 4)), "-"),
			Type:            txType,
			CardType:        label,
			Assignee:        "",
			Comment:         "",
		})
	}
	return records
}

// Consolidate builds the combined regular dataset: titular rows first,
// then adicional rows, in a fresh slice.
func Consolidate(titular, adicional []model.RegularRecord) []model.RegularRecord {
	if len(titular) == 0 && len(adicional) == 0 {
		return nil
	}
	out := make([]model.RegularRecord, 0, len(titular)+len(adicional))
	out = append(out, titular...)
	out = append(out, adicional...)
	return out
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
