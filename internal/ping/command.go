package ping

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// GatewayAlias is the target name that resolves to the default gateway
const GatewayAlias = "gateway"

// ExecFunc runs a command and returns its standard output
type ExecFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Runner invokes the OS ping command. It implements models.Prober.
type Runner struct {
	GOOS string
	Exec ExecFunc
}

// New creates a Runner for the running OS
func New() *Runner {
	return &Runner{
		GOOS: runtime.GOOS,
		Exec: execCommand,
	}
}

// Command builds the ping argv for the given OS
func Command(goos, host string, count int, timeout time.Duration) []string {
	switch goos {
	case "windows":
		return []string{"ping", host, "-n", strconv.Itoa(count), "-w", strconv.FormatInt(timeout.Milliseconds(), 10)}
	case "darwin", "freebsd", "openbsd", "netbsd", "dragonfly":
		// BSD ping takes -W in milliseconds
		return []string{"ping", "-c", strconv.Itoa(count), "-W", strconv.FormatInt(timeout.Milliseconds(), 10), host}
	default:
		// iputils takes -W in whole seconds
		secs := int(math.Ceil(timeout.Seconds()))
		if secs < 1 {
			secs = 1
		}
		return []string{"ping", "-c", strconv.Itoa(count), "-W", strconv.Itoa(secs), host}
	}
}

// Probe runs ping against host and returns the captured standard output.
// ping exits non-zero when replies are lost, so an exit error with output is
// not treated as a failure.
func (r *Runner) Probe(ctx context.Context, host string, count int, timeout time.Duration) (string, error) {
	if host == GatewayAlias {
		gw, err := r.Gateway(ctx)
		if err != nil {
			return "", err
		}
		logrus.Debug("[ GATEWAY ] resolved: ", gw)
		host = gw
	}

	deadline := time.Duration(count)*(timeout+time.Second) + 2*time.Second
	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	argv := Command(r.GOOS, host, count, timeout)
	out, err := r.Exec(ctx, argv[0], argv[1:]...)
	if len(bytes.TrimSpace(out)) == 0 {
		if err != nil {
			return "", fmt.Errorf("ping %s: %w", host, err)
		}
		return "", fmt.Errorf("ping %s: empty output", host)
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{"target": host, "error": err}).Debug("ping exited with error")
	}

	return string(out), nil
}

func execCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	logrus.Tracef("EXEC: %v %v", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	var outb, errb bytes.Buffer
	cmd.Stdout = &outb
	cmd.Stderr = &errb

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(errb.String()); msg != "" {
			return outb.Bytes(), fmt.Errorf("%w: %s", err, msg)
		}
		return outb.Bytes(), err
	}
	return outb.Bytes(), nil
}
