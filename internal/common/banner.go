package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/ternarybob/banner"
)

// PrintBanner displays the application startup banner to stderr.
func PrintBanner(config *Config) {
	serviceURL := fmt.Sprintf("http://%s:%d", config.Server.Host, config.Server.Port)

	cacheMode := "disabled"
	if config.Cache.Enabled {
		cacheMode = "memory"
		if config.Cache.Address != "" {
			cacheMode = config.Cache.Address
		}
	}

	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	width := 70
	hr := lineColor + strings.Repeat("═", width) + banner.ColorReset

	art := []string{
		` 8888888888 8888888 888b    888 8888888b.  888           d8888 888b    888`,
		` 888          888   8888b   888 888   Y88b 888          d88888 8888b   888`,
		` 888          888   88888b  888 888    888 888         d88P888 88888b  888`,
		` 8888888      888   888Y88b 888 888   d88P 888        d88P 888 888Y88b 888`,
		` 888          888   888 Y88b888 8888888P'  888       d88P  888 888 Y88b888`,
		` 888          888   888  Y88888 888        888      d88P   888 888  Y88888`,
		` 888          888   888   Y8888 888        888     d8888888888 888   Y8888`,
		` 888        8888888 888    Y888 888        88888888d88P    888 888    Y888`,
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s\n", hr)
	fmt.Fprintf(os.Stderr, "\n")
	for _, line := range art {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", textColor, line, banner.ColorReset)
	}
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s  Retirement & Insurance Planning%s\n", textColor, banner.ColorReset)
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s\n", hr)
	fmt.Fprintf(os.Stderr, "\n")

	kvPad := 16
	kvLines := [][2]string{
		{"Version", GetVersion()},
		{"Build", GetBuild()},
		{"Commit", GetGitCommit()},
		{"Environment", config.Environment},
		{"Service URL", serviceURL},
		{"Result cache", cacheMode},
	}
	for _, kv := range kvLines {
		fmt.Fprintf(os.Stderr, "%s  %-*s %s%s\n", textColor, kvPad, kv[0], kv[1], banner.ColorReset)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s\n", hr)
	fmt.Fprintf(os.Stderr, "\n")
}
