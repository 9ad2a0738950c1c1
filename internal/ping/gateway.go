package ping

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var errNoGateway = errors.New("gateway IP not found")

// Gateway looks up the default gateway address of the host
func (r *Runner) Gateway(ctx context.Context) (string, error) {
	var (
		argv  []string
		parse func(string) (string, error)
	)
	switch r.GOOS {
	case "windows":
		argv, parse = []string{"ipconfig"}, parseIPConfig
	case "linux":
		argv, parse = []string{"ip", "route", "show", "default"}, parseIPRoute
	default:
		argv, parse = []string{"route", "-n", "get", "default"}, parseRouteGet
	}

	out, err := r.Exec(ctx, argv[0], argv[1:]...)
	if err != nil {
		return "", fmt.Errorf("gateway lookup: %w", err)
	}
	return parse(string(out))
}

// parseRouteGet reads the output of BSD `route -n get default`
func parseRouteGet(out string) (string, error) {
	for _, ln := range strings.Split(out, "\n") {
		ln = strings.TrimSpace(ln)
		if strings.HasPrefix(ln, "gateway:") {
			if gw := strings.TrimSpace(strings.TrimPrefix(ln, "gateway:")); gw != "" {
				return gw, nil
			}
		}
	}
	return "", errNoGateway
}

// parseIPRoute reads the output of `ip route show default`
func parseIPRoute(out string) (string, error) {
	for _, ln := range strings.Split(out, "\n") {
		fields := strings.Fields(ln)
		for i := 0; i+1 < len(fields); i++ {
			if fields[i] == "via" {
				return fields[i+1], nil
			}
		}
	}
	return "", errNoGateway
}

// parseIPConfig reads the output of Windows `ipconfig`
func parseIPConfig(out string) (string, error) {
	for _, ln := range strings.Split(out, "\n") {
		if !strings.Contains(ln, "Default Gateway") {
			continue
		}
		parts := strings.SplitN(ln, ":", 2)
		if len(parts) < 2 {
			continue
		}
		if gw := strings.TrimSpace(parts[1]); gw != "" {
			return gw, nil
		}
	}
	return "", errNoGateway
}
