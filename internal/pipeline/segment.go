package pipeline

import (
	"regexp"
	"strings"

	"github.com/edocuenta/edocuenta/internal/model"
)

// Segmentation is a three-state machine: before the first dated row,
// inside the table, and inside an open transaction group.
type segState int

const (
	outsideTable segState = iota
	inTable
	inTransaction
)

// Segment splits filtered reading-order rows into transaction groups.
// A row whose date column matches the date pattern opens a new group;
// every following row is a continuation of that group until the next
// match. Rows before the first match are residual noise and dropped.
func Segment(rows []model.Row, dateCol string, date *regexp.Regexp) [][]model.Row {
	var groups [][]model.Row
	state := outsideTable

	for _, r := range rows {
		starts := date.MatchString(r.Col(dateCol))
		switch state {
		case outsideTable:
			if !starts {
				continue
			}
			groups = append(groups, []model.Row{r})
			state = inTransaction
		case inTransaction, inTable:
			if starts {
				groups = append(groups, []model.Row{r})
				continue
			}
			groups[len(groups)-1] = append(groups[len(groups)-1], r)
		}
	}
	return groups
}

// MergeSpec names the columns that feed each field of a merged
// transaction. Empty names mean the format has no such column.
type MergeSpec struct {
	DateColumn   string
	OriginColumn string
	// DescColumns are pipe-joined across all rows of the group, one
	// segment per physical source row, preserving multi-line detail.
	DescColumns []string
	Deposit     string
	Withdrawal  string
	Amount      string
	Balance     string
}

// Merge collapses one transaction group into a RawMovement: the first
// row is canonical for date and origin, amount columns take the first
// non-empty value in the group, and description text from every row is
// joined with "|" separators.
func Merge(group []model.Row, spec MergeSpec) model.RawMovement {
	raw := model.RawMovement{
		Date:   group[0].Col(spec.DateColumn),
		Origin: group[0].Col(spec.OriginColumn),
	}

	var desc strings.Builder
	for _, r := range group {
		desc.WriteByte('|')
		var parts []string
		for _, col := range spec.DescColumns {
			if v := r.Col(col); v != "" {
				parts = append(parts, v)
			}
		}
		desc.WriteString(strings.Join(parts, " "))
	}
	raw.Description = desc.String()

	raw.Deposit = firstNonEmpty(group, spec.Deposit)
	raw.Withdrawal = firstNonEmpty(group, spec.Withdrawal)
	raw.Amount = firstNonEmpty(group, spec.Amount)
	raw.Balance = firstNonEmpty(group, spec.Balance)
	return raw
}

func firstNonEmpty(group []model.Row, col string) string {
	if col == "" {
		return ""
	}
	for _, r := range group {
		if v := r.Col(col); v != "" {
			return v
		}
	}
	return ""
}
