package config

import (
	"flag"
	"strings"
	"time"
)

// Flags binds command-line overrides for one subcommand. Only flags that are
// set explicitly replace values loaded from the config file.
type Flags struct {
	fs *flag.FlagSet

	configPath string
	dbPath     string
	logLevel   string

	count     int
	timeoutMs int
	targets   string
	platform  string

	port      int
	interval  time.Duration
	retention int
}

// NewFlags creates the flag set of a subcommand with the common flags
func NewFlags(name string) *Flags {
	f := &Flags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	d := Default()
	f.fs.StringVar(&f.configPath, "config", "", "Config file path (default <user config dir>/netdiag/config.yaml)")
	f.fs.StringVar(&f.dbPath, "db", d.DatabasePath, "Database path")
	f.fs.StringVar(&f.logLevel, "log-level", d.LogLevel, "Log level (trace, debug, info, warn, error)")
	return f
}

// WithProbe adds the flags that control a ping run
func (f *Flags) WithProbe() *Flags {
	d := Default()
	f.fs.IntVar(&f.count, "c", d.Count, "Number of echo requests per target")
	f.fs.IntVar(&f.count, "count", d.Count, "Number of echo requests per target")
	f.fs.IntVar(&f.timeoutMs, "t", int(d.Timeout/time.Millisecond), "Per-reply timeout in milliseconds")
	f.fs.IntVar(&f.timeoutMs, "timeout-ms", int(d.Timeout/time.Millisecond), "Per-reply timeout in milliseconds")
	f.fs.StringVar(&f.targets, "targets", strings.Join(d.Targets, ","), "Comma-separated ping targets (\"gateway\" for the default gateway)")
	f.fs.StringVar(&f.platform, "platform", d.Platform, "Output grammar: auto, unix or windows")
	return f
}

// WithMonitor adds the flags of the long-running monitor
func (f *Flags) WithMonitor() *Flags {
	d := Default()
	f.fs.IntVar(&f.port, "port", d.Port, "Web server port")
	f.fs.DurationVar(&f.interval, "interval", d.Interval, "Probe interval")
	f.fs.IntVar(&f.retention, "retention-days", d.RetentionDays, "Days of records to keep")
	return f
}

// FlagSet exposes the underlying set for command specific flags
func (f *Flags) FlagSet() *flag.FlagSet {
	return f.fs
}

// Parse parses args into the flag set
func (f *Flags) Parse(args []string) error {
	return f.fs.Parse(args)
}

// ConfigPath returns the -config value
func (f *Flags) ConfigPath() string {
	return f.configPath
}

// Apply copies every explicitly set flag into cfg
func (f *Flags) Apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "db":
			cfg.DatabasePath = f.dbPath
		case "log-level":
			cfg.LogLevel = f.logLevel
		case "c", "count":
			cfg.Count = f.count
		case "t", "timeout-ms":
			cfg.Timeout = time.Duration(f.timeoutMs) * time.Millisecond
		case "targets":
			cfg.Targets = splitTargets(f.targets)
		case "platform":
			cfg.Platform = f.platform
		case "port":
			cfg.Port = f.port
		case "interval":
			cfg.Interval = f.interval
		case "retention-days":
			cfg.RetentionDays = f.retention
		}
	})
}

// LoadWithFlags loads the config file named by -config and applies the flags
func (f *Flags) LoadWithFlags() (Config, error) {
	cfg, err := Load(f.configPath)
	if err != nil {
		return Config{}, err
	}
	f.Apply(&cfg)
	return cfg, nil
}

func splitTargets(s string) []string {
	var targets []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			targets = append(targets, t)
		}
	}
	return targets
}
