package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"netdiag/internal/analysis"
	"netdiag/internal/config"
	"netdiag/internal/database"
	"netdiag/internal/models"
	"netdiag/internal/monitor"
	"netdiag/internal/ping"
	"netdiag/internal/report"
	"netdiag/internal/web"
)

// env is what a command runs with
type env struct {
	cfg       config.Config
	db        *database.DB
	sessionID string
	stdin     io.Reader
	stdout    io.Writer

	file  string
	hours int
	out   string
}

type command struct {
	usage   string
	db      bool
	probe   bool
	monitor bool
	run     func(ctx context.Context, e *env) error
}

var commands = map[string]command{
	"ping": {
		usage: "probe each target once and print the diagnosis",
		db:    true,
		probe: true,
		run:   runProbes,
	},
	"run": {
		usage: "run every diagnostic probe",
		db:    true,
		probe: true,
		run:   runProbes,
	},
	"dns": {
		usage: "DNS diagnostics (not available yet)",
		run: func(ctx context.Context, e *env) error {
			logrus.Info("[ DNS ] dns diagnostics are not available yet")
			return nil
		},
	},
	"parse": {
		usage: "diagnose saved ping output from -file or stdin",
		probe: true,
		run:   runParse,
	},
	"monitor": {
		usage:   "probe periodically and serve the JSON API",
		db:      true,
		probe:   true,
		monitor: true,
		run:     runMonitor,
	},
	"report": {
		usage: "write charts and a summary of stored records",
		db:    true,
		run:   runReport,
	},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if len(args) == 0 {
		usage(os.Stderr)
		return 2
	}
	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
		usage(os.Stderr)
		return 2
	}

	e := &env{stdin: stdin, stdout: stdout}
	flags := config.NewFlags(name)
	if cmd.probe {
		flags.WithProbe()
	}
	if cmd.monitor {
		flags.WithMonitor()
	}
	fs := flags.FlagSet()
	switch name {
	case "parse":
		fs.StringVar(&e.file, "file", "", "File with captured ping output (default stdin)")
	case "report":
		fs.IntVar(&e.hours, "hours", 24, "Hours of records to include")
		fs.StringVar(&e.out, "out", "reports", "Output directory")
	}
	if err := flags.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := flags.LoadWithFlags()
	if err != nil {
		logrus.WithError(err).Error("[ CONFIG ] failed to load configuration")
		return 1
	}
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Error("[ CONFIG ] invalid configuration")
		return 1
	}
	logrus.SetLevel(cfg.Level())
	e.cfg = cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cmd.db {
		if err := cmd.run(ctx, e); err != nil {
			logrus.WithError(err).Error("[ ", name, " ] failed")
			return 1
		}
		return 0
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logrus.WithError(err).Error("[ DB ] failed to open database")
		return 1
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		logrus.WithError(err).Error("[ DB ] failed to initialize schema")
		return 1
	}

	e.db = db
	e.sessionID = uuid.NewString()
	if err := db.InsertSession(e.sessionID, name); err != nil {
		logrus.WithError(err).Error("[ DB ] failed to record session")
		return 1
	}
	log := logrus.WithFields(logrus.Fields{"command": name, "session": e.sessionID})
	log.Debug("[ SESSION ] started")

	status, code := models.SessionCompleted, 0
	if err := cmd.run(ctx, e); err != nil {
		log.WithError(err).Error("[ SESSION ] command failed")
		status, code = models.SessionFailed, 1
	}
	if err := db.UpdateSessionStatus(e.sessionID, status); err != nil {
		log.WithError(err).Error("[ DB ] failed to update session")
	}
	log.WithField("status", status).Debug("[ SESSION ] finished")
	return code
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: netdiag <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-8s %s\n", name, commands[name].usage)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "run 'netdiag <command> -h' for the flags of a command")
}

func runProbes(ctx context.Context, e *env) error {
	mon, err := monitor.New(e.cfg, e.db, ping.New(), e.sessionID)
	if err != nil {
		return err
	}

	records := mon.RunOnce(ctx)
	for _, r := range records {
		fmt.Fprintln(e.stdout, report.FormatRecord(r))
	}
	if len(records) == 0 {
		return fmt.Errorf("no target of %v could be diagnosed", e.cfg.Targets)
	}
	return nil
}

func runParse(ctx context.Context, e *env) error {
	in := e.stdin
	if e.file != "" {
		f, err := os.Open(e.file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read ping output: %w", err)
	}

	platform, err := e.cfg.PingPlatform()
	if err != nil {
		return err
	}
	record, err := analysis.New(e.cfg.Thresholds).Analyze("", string(raw), platform)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, string(out))
	return nil
}

func runMonitor(ctx context.Context, e *env) error {
	mon, err := monitor.New(e.cfg, e.db, ping.New(), e.sessionID)
	if err != nil {
		return err
	}
	webServer := web.New(e.db, e.cfg.Port)

	if err := mon.Start(); err != nil {
		return fmt.Errorf("start monitor: %w", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- webServer.Start()
	}()
	logrus.Info("[ WEB ] API available at http://localhost:", e.cfg.Port, "/api/records")

	select {
	case <-ctx.Done():
		logrus.Info("[ MONITOR ] shutting down")
	case err = <-serverErr:
		if err != nil {
			err = fmt.Errorf("web server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if serr := webServer.Shutdown(shutdownCtx); serr != nil {
		logrus.WithError(serr).Warn("[ WEB ] shutdown")
	}
	mon.Stop()
	mon.Wait()
	return err
}

func runReport(ctx context.Context, e *env) error {
	dir, err := report.NewGenerator(e.db).Generate(e.out, e.hours)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, dir)
	return nil
}
