package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"bridgescore/session"
	"bridgescore/types"
	"bridgescore/util/scoring"
)

// describeParseError repeats the input with a caret under the first
// invalid character.
func describeParseError(input string, err error) string {
	var perr *scoring.ParseError
	if errors.As(err, &perr) {
		if at, ok := perr.Cursor(); ok {
			return fmt.Sprintf("%s\n%s^ %s", input, strings.Repeat(" ", at), perr)
		}
	}
	return fmt.Sprintf("%s: %s", input, err)
}

func renderChart(score scoring.Score) (string, error) {
	made := pterm.TableData{{"Tricks", "Result", "Score"}}
	for _, row := range score.Chart() {
		made = append(made, []string{
			strconv.Itoa(row.Tricks),
			scoring.FormatResult(row.Overtricks),
			strconv.Itoa(row.Value),
		})
	}
	madeTable, err := pterm.DefaultTable.WithHasHeader().WithData(made).Srender()
	if err != nil {
		return "", err
	}

	down := pterm.TableData{{"Tricks", "Result", "Score"}}
	for i, value := range score.Penalties(score.Contract.Tricks()) {
		margin := -(i + 1)
		down = append(down, []string{
			strconv.Itoa(score.Contract.Tricks() + margin),
			scoring.FormatResult(margin),
			strconv.Itoa(value),
		})
	}
	downTable, err := pterm.DefaultTable.WithHasHeader().WithData(down).Srender()
	if err != nil {
		return "", err
	}

	title := fmt.Sprintf("%s %s", score.Contract, vulLabel(score.Vulnerable))
	body := fmt.Sprintf("%s\n\n%s", madeTable, downTable)
	return pterm.DefaultBox.WithTitle(title).WithTitleTopCenter().Sprint(body), nil
}

const (
	sheetColNS = 5
	sheetColEW = 6
)

func renderSheet(s *session.Session) (string, error) {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(sheetData(s)).Srender()
	if err != nil {
		return "", err
	}
	return pterm.DefaultBox.WithTitle("Session " + s.ID()).Sprint(table), nil
}

// sheetData lays out one row per board with the points in the column of the
// side credited, followed by the session totals.
func sheetData(s *session.Session) pterm.TableData {
	data := pterm.TableData{{"Board", "Declarer", "Vul", "Contract", "Result", "NS", "EW"}}
	for _, e := range s.Entries() {
		row := []string{strconv.Itoa(e.Board()), e.Name(), e.Vulnerability().String(), "", "", "", ""}
		if c, ok := e.Contract(); ok {
			row[3] = c.String()
		}
		if r, ok := e.Result(); ok {
			row[4] = scoring.FormatResult(r)
		}
		if side, v, ok := e.Credit(); ok {
			col := sheetColNS
			if side == types.EastWest {
				col = sheetColEW
			}
			row[col] = fmt.Sprintf("%+d", v)
		}
		data = append(data, row)
	}

	totals := s.Totals()
	return append(data, []string{"Total", "", "", "", "", strconv.Itoa(totals.NS), strconv.Itoa(totals.EW)})
}
