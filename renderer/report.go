package renderer

import (
	"sort"

	"github.com/cloudfx/journal"
)

// RecentRows is how many records the report's trade table shows, newest
// (highest id) first.
const RecentRows = 15

type reportRow struct {
	ID      string
	Date    string
	Profit  string
	Outcome string
}

type reportData struct {
	TotalTrades int
	Wins        int
	WinRate     string
	TotalProfit string
	Chart       string
	Recent      []reportRow
	Issues      []string
}

// Report renders the performance report for a snapshot and its analytics:
// summary metrics, the equity curve, and the most recent trades by id
// descending. The output is plain markdown, identical bytes on every render
// of the same inputs.
func Report(s *journal.Snapshot, a *journal.Analytics) string {
	data := reportData{
		TotalTrades: a.TotalTrades,
		Wins:        a.Wins,
		WinRate:     a.WinRate.String(),
		TotalProfit: a.TotalProfit.SignedString(),
		Chart:       Chart(a.Curve, 60, 12),
	}

	records := s.All()
	sort.SliceStable(records, func(i, j int) bool { return records[i].ID > records[j].ID })
	if len(records) > RecentRows {
		records = records[:RecentRows]
	}
	for _, r := range records {
		// the table shows the trade date only; an unparseable time cell is
		// shown verbatim.
		date := r.RawTime
		if !r.InvalidTime {
			date = r.Time.Format("2006-01-02")
		}
		data.Recent = append(data.Recent, reportRow{
			ID:      r.RawID,
			Date:    date,
			Profit:  r.Profit.String(),
			Outcome: string(r.Outcome),
		})
	}

	for _, issue := range s.Issues() {
		data.Issues = append(data.Issues, issue.String())
	}

	partials := map[string]string{
		"report_title":   "templates/report_title.md",
		"report_summary": "templates/report_summary.md",
		"report_chart":   "templates/report_chart.md",
		"report_table":   "templates/report_table.md",
		"report_issues":  "templates/report_issues.md",
	}
	return renderTemplate("report", "templates/report.md", partials, data)
}

// Records renders the full journal listing by id descending, the tabular
// view of every stored record.
func Records(s *journal.Snapshot) string {
	type listRow struct {
		ID, Time, Direction, Timeframe string
		TargetRR, ActualRR             string
		Profit, Outcome, Setup, Notes  string
	}
	var data struct {
		Rows []listRow
	}

	records := s.All()
	sort.SliceStable(records, func(i, j int) bool { return records[i].ID > records[j].ID })
	for _, r := range records {
		data.Rows = append(data.Rows, listRow{
			ID:        r.RawID,
			Time:      r.RawTime,
			Direction: string(r.Direction),
			Timeframe: string(r.Timeframe),
			TargetRR:  nullString(r.TargetRR.Valid, r.TargetRR.Decimal.String()),
			ActualRR:  nullString(r.ActualRR.Valid, r.ActualRR.Decimal.String()),
			Profit:    r.Profit.String(),
			Outcome:   string(r.Outcome),
			Setup:     r.Setup,
			Notes:     r.Notes,
		})
	}
	return renderTemplate("records", "templates/records.md", nil, data)
}

func nullString(valid bool, s string) string {
	if !valid {
		return "-"
	}
	return s
}
