package formatter

import (
	"encoding/csv"
	"os"

	"github.com/penwyp/go-log-lens/internal/util"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(data ViewData) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	headers := []string{
		"request_id", "timestamp", "source_file", "function_name",
		"severity", "message", "time_delta_seconds", "extra_info",
	}
	if err := w.Write(headers); err != nil {
		return err
	}

	tp := util.GetTimeProvider()
	for _, row := range data.Rows {
		record := []string{
			row.RequestID,
			tp.Format(row.Timestamp, timestampLayout),
			row.SourceFile,
			row.FunctionName,
			string(row.Severity),
			row.Message,
			util.FormatSeconds(row.TimeDeltaSeconds),
			row.ExtraInfo.String(),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}
