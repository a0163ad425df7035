package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"bridgescore/config"
	"bridgescore/logging"
	"bridgescore/session"
	"bridgescore/types"
	"bridgescore/util/scoring"
)

var errUsage = errors.New("usage: bridgescore score [-vul] <contract> <result> | chart [-vul] <contract> | sheet [-id code] < boards")

func main() {
	conf, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading .env file:", err)
		os.Exit(1)
	}
	logging.BootstrapLogger(conf.LogLevel)

	if err := run(os.Args[1:], os.Stdin, os.Stdout, conf); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, in io.Reader, out io.Writer, conf *config.Config) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "score":
		return runScore(args[1:], out)
	case "chart":
		return runChart(args[1:], out)
	case "sheet":
		return runSheet(args[1:], in, out, conf)
	}
	return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
}

func runScore(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	vul := fs.Bool("vul", false, "declarer is vulnerable")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errUsage
	}

	contract, err := scoring.ParseContract(fs.Arg(0))
	if err != nil {
		return errors.New(describeParseError(fs.Arg(0), err))
	}
	margin, err := scoring.ParseResult(fs.Arg(1), contract.Level())
	if err != nil {
		return err
	}

	value := scoring.ScoreContract(contract, margin, *vul)
	logging.Log.WithField("contract", contract).Debugf("margin %d scores %d", margin, value)
	fmt.Fprintf(out, "%s%s %s: %+d\n", contract, scoring.FormatResult(margin), vulLabel(*vul), value)
	return nil
}

func runChart(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("chart", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	vul := fs.Bool("vul", false, "declarer is vulnerable")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage
	}

	contract, err := scoring.ParseContract(fs.Arg(0))
	if err != nil {
		return errors.New(describeParseError(fs.Arg(0), err))
	}
	chart, err := renderChart(scoring.Derive(contract, *vul))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, chart)
	return nil
}

func runSheet(args []string, in io.Reader, out io.Writer, conf *config.Config) error {
	fs := flag.NewFlagSet("sheet", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	id := fs.String("id", "", "session code printed on the sheet")
	if err := fs.Parse(args); err != nil {
		return err
	}

	table := session.NewTable()
	if conf != nil {
		for _, seat := range types.Seats {
			table.SetPlayer(seat, conf.Players[seat])
		}
	}

	var (
		s   *session.Session
		err error
	)
	if *id != "" {
		s, err = session.NewWithID(*id, table)
	} else {
		s, err = session.New(table)
	}
	if err != nil {
		return err
	}

	if err := readBoards(s, in); err != nil {
		return err
	}
	sheet, err := renderSheet(s)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, sheet)
	return nil
}

func vulLabel(vulnerable bool) string {
	if vulnerable {
		return "vul"
	}
	return "non-vul"
}
