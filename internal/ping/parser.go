package ping

import (
	"fmt"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"netdiag/internal/models"
)

// Platform selects which ping output grammar to apply
type Platform int

const (
	// Unix covers macOS/BSD and Linux (iputils, BusyBox)
	Unix Platform = iota
	Windows
)

func (p Platform) String() string {
	switch p {
	case Unix:
		return "unix"
	case Windows:
		return "windows"
	default:
		return "unknown"
	}
}

// PlatformFor maps a GOOS value onto a grammar
func PlatformFor(goos string) Platform {
	if goos == "windows" {
		return Windows
	}
	return Unix
}

// ParsePlatform resolves a configured platform name. "auto" and "" select
// the grammar of the running OS.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return PlatformFor(runtime.GOOS), nil
	case "unix", "linux", "darwin", "macos", "bsd", "freebsd", "openbsd", "netbsd":
		return Unix, nil
	case "windows":
		return Windows, nil
	default:
		return Unix, fmt.Errorf("unknown platform: %q", s)
	}
}

// grammar is the compiled pattern set of one platform
type grammar struct {
	header      *regexp.Regexp
	headerHint  string
	packets     *regexp.Regexp
	packetsHint string
	rtt         *regexp.Regexp
}

const number = `\d+(?:\.\d+)?`

// 64 bytes from 8.8.8.8: icmp_seq=3 ttl=107 time=(1008).473 ms
// Reply from 8.8.8.8: bytes=32 time=10ms TTL=117
// Reply from 127.0.0.1: bytes=32 time<1ms TTL=128
var timeRe = regexp.MustCompile(`(?i)\btime\s*([=<])\s*(\(?\d[\d.]*\)?(?:\.\d+)?)\s*ms\b`)

var grammars = map[Platform]grammar{
	Unix: {
		// --- google.com ping statistics ---
		header:     regexp.MustCompile(`(?i)^---\s+(?P<addr>.+?)\s+ping statistics\s+---$`),
		headerHint: "--- <address> ping statistics ---",
		// macOS:    5 packets transmitted, 5 packets received, 0.0% packet loss
		// iputils:  5 packets transmitted, 5 received, 0% packet loss, time 4006ms
		// iputils:  5 packets transmitted, 0 received, +5 errors, 100% packet loss, time 4005ms
		packets: regexp.MustCompile(`(?i)(?P<tx>\d+)\s+packets transmitted,\s+` +
			`(?P<rx>\d+)\s+(?:packets\s+)?received,(?:\s+\+\d+\s+\w+,)*\s+` +
			`(?P<loss>` + number + `)%\s+packet loss`),
		packetsHint: "<n> packets transmitted, <n> received, <p>% packet loss",
		// macOS:    round-trip min/avg/max/stddev = 10.1/14.2/18.2/2.8 ms
		// Linux:    rtt min/avg/max/mdev = 10.1/14.2/18.2/2.8 ms
		// BusyBox:  round-trip min/avg/max = 12.3/12.3/12.3 ms
		rtt: regexp.MustCompile(`(?i)(?:round-trip|rtt)\s+min/avg/max(?:/(?:stddev|mdev))?\s*=\s*` +
			`(?P<min>` + number + `)/(?P<avg>` + number + `)/(?P<max>` + number + `)` +
			`(?:/(?P<std>` + number + `))?\s*ms`),
	},
	Windows: {
		// Ping statistics for 8.8.8.8:
		header:     regexp.MustCompile(`(?i)^Ping statistics for\s+(?P<addr>.+?):?\s*$`),
		headerHint: "Ping statistics for <address>:",
		//     Packets: Sent = 5, Received = 5, Lost = 0 (0% loss),
		packets: regexp.MustCompile(`(?i)Packets:\s*Sent\s*=\s*(?P<tx>\d+),\s*` +
			`Received\s*=\s*(?P<rx>\d+),\s*Lost\s*=\s*\d+\s*\((?P<loss>` + number + `)%\s*loss\)`),
		packetsHint: "Packets: Sent = <n>, Received = <n>, Lost = <n> (<p>% loss)",
		//     Minimum = 10ms, Maximum = 18ms, Average = 13ms
		rtt: regexp.MustCompile(`(?i)Minimum\s*=\s*(?P<min>` + number + `)\s*ms,\s*` +
			`Maximum\s*=\s*(?P<max>` + number + `)\s*ms,\s*Average\s*=\s*(?P<avg>` + number + `)\s*ms`),
	},
}

// Parse normalizes the complete standard output of one ping invocation
func Parse(platform Platform, raw string) (models.ParseResult, error) {
	g, ok := grammars[platform]
	if !ok {
		return models.ParseResult{}, fmt.Errorf("unsupported platform: %v", platform)
	}

	lines := splitLines(raw)
	if len(lines) == 0 {
		return models.ParseResult{}, newParseError(ReasonEmptyInput, "empty ping output")
	}

	times := parseTimes(lines)

	header := findLine(g.header, lines)
	if header == nil {
		return models.ParseResult{}, newParseError(ReasonMissingHeader, "missing '%s' header", g.headerHint)
	}
	addr := group(g.header, header, "addr")

	packets := findLine(g.packets, lines)
	if packets == nil {
		return models.ParseResult{}, newParseError(ReasonMissingPacketSummary, "missing packets summary line (%s)", g.packetsHint)
	}
	sent, _ := strconv.Atoi(group(g.packets, packets, "tx"))
	received, _ := strconv.Atoi(group(g.packets, packets, "rx"))
	loss, _ := strconv.ParseFloat(group(g.packets, packets, "loss"), 64)
	if received > sent {
		return models.ParseResult{}, newParseError(ReasonInconsistentCounts, "received %d exceeds transmitted %d", received, sent)
	}
	loss = clamp(loss, 0, 100)

	result := models.ParseResult{
		Address:  addr,
		TimesMs:  times,
		Sent:     sent,
		Received: received,
		LossPct:  loss,
	}

	rtt := findLine(g.rtt, lines)
	if rtt == nil {
		if received > 0 {
			return models.ParseResult{}, newParseError(ReasonMissingRTTSummary, "missing rtt stats line despite receiving %d replies", received)
		}
		// No replies: RTT and jitter stay 0.0
		return result, nil
	}
	if received == 0 {
		return result, nil
	}

	result.RTTMinMs, _ = strconv.ParseFloat(group(g.rtt, rtt, "min"), 64)
	result.RTTAvgMs, _ = strconv.ParseFloat(group(g.rtt, rtt, "avg"), 64)
	result.RTTMaxMs, _ = strconv.ParseFloat(group(g.rtt, rtt, "max"), 64)
	if std := group(g.rtt, rtt, "std"); std != "" {
		result.RTTStdDevMs, _ = strconv.ParseFloat(std, 64)
	} else {
		result.RTTStdDevMs = StdDev(times)
	}
	result.Jitter = Jitter(times)
	result.JitterRatio = JitterRatio(result.Jitter, result.RTTAvgMs)

	return result, nil
}

func splitLines(raw string) []string {
	var lines []string
	for _, ln := range strings.Split(raw, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

// parseTimes collects one latency sample per reply line. time<N readings are
// below the platform's resolution and yield no sample.
func parseTimes(lines []string) []float64 {
	times := []float64{}
	for _, ln := range lines {
		m := timeRe.FindStringSubmatch(ln)
		if m == nil || m[1] == "<" {
			continue
		}
		// macOS can wrap the integer part: (1008).473
		value := strings.NewReplacer("(", "", ")", "").Replace(m[2])
		ms, err := strconv.ParseFloat(value, 64)
		if err != nil {
			continue
		}
		times = append(times, ms)
	}
	return times
}

func findLine(re *regexp.Regexp, lines []string) []string {
	for _, ln := range lines {
		if m := re.FindStringSubmatch(ln); m != nil {
			return m
		}
	}
	return nil
}

func group(re *regexp.Regexp, match []string, name string) string {
	i := re.SubexpIndex(name)
	if i < 0 || i >= len(match) {
		return ""
	}
	return match[i]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
