package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bridgescore/session"
	"bridgescore/types"
	"bridgescore/util/scoring"
)

var errBoardLine = errors.New("want <board> <declarer> <contract> <result> [V|NV]")

// readBoards records one board per line. Blank lines and lines starting
// with '#' are skipped.
func readBoards(s *session.Session, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := readBoard(s, text); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return scanner.Err()
}

func readBoard(s *session.Session, text string) error {
	fields := strings.Fields(text)
	if len(fields) < 4 || len(fields) > 5 {
		return errBoardLine
	}

	board, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("board %q: %w", fields[0], errBoardLine)
	}
	declarer, err := types.ParseSeat(fields[1])
	if err != nil {
		return err
	}
	contract, err := scoring.ParseContract(fields[2])
	if err != nil {
		return errors.New(describeParseError(fields[2], err))
	}
	margin, err := scoring.ParseResult(fields[3], contract.Level())
	if err != nil {
		return err
	}

	entry, err := s.Add(declarer, board)
	if err != nil {
		return err
	}
	entry.SetContract(contract)
	if len(fields) == 5 {
		switch strings.ToUpper(fields[4]) {
		case "V":
			entry.SetVulnerable(true)
		case "NV":
			entry.SetVulnerable(false)
		default:
			_ = s.Remove(entry.ID())
			return fmt.Errorf("vulnerability %q: %w", fields[4], errBoardLine)
		}
	}
	return entry.Record(margin)
}
