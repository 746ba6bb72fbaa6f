// Command headeranalyzer parses a raw HTTP header block, prints it as JSON
// and replays it as a live request, reporting the response status code.
//
// With no flags it analyzes a built-in sample block; input can also come
// from a file (-file) or a pipe on stdin.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/WhileEndless/go-headertools/internal/config"
	"github.com/WhileEndless/go-headertools/pkg/headerblock"
	"github.com/WhileEndless/go-headertools/pkg/rawhttp"
	"github.com/WhileEndless/go-headertools/pkg/version"
)

func main() {
	cfg := config.Load()

	var (
		file        string
		scheme      string
		timeout     time.Duration
		proxyURL    string
		insecure    bool
		noSend      bool
		compact     bool
		showVersion bool
	)

	flag.StringVar(&file, "file", "", "read the header block from a file")
	flag.StringVar(&scheme, "scheme", cfg.Scheme, "scheme for the replayed request (http or https)")
	flag.DurationVar(&timeout, "timeout", cfg.Timeout, "network timeout for the replayed request")
	flag.StringVar(&proxyURL, "proxy", cfg.ProxyURL, "SOCKS5 proxy URL (e.g. socks5://127.0.0.1:1080)")
	flag.BoolVar(&insecure, "insecure", cfg.Insecure, "skip TLS certificate verification")
	flag.BoolVar(&noSend, "no-send", false, "parse and print only, do not send the request")
	flag.BoolVar(&compact, "compact", false, "print compact JSON instead of indented")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.GetVersion())
		return
	}

	input, err := readInput(file)
	if err != nil {
		color.Red("read input: %v", err)
		os.Exit(1)
	}

	parsed := headerblock.Parse(input)

	var output string
	if compact {
		output, err = parsed.ToJSON()
	} else {
		output, err = parsed.ToJSONIndent()
	}
	if err != nil {
		color.Red("serialize: %v", err)
		os.Exit(1)
	}
	fmt.Println(output)

	if noSend {
		return
	}

	targetURL, err := rawhttp.BuildURL(parsed, scheme)
	if err != nil {
		color.Red("build request: %v", err)
		os.Exit(1)
	}
	fmt.Printf("sending %s %s\n", parsed.Method(), targetURL)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := rawhttp.NewSender().Send(ctx, parsed, rawhttp.Options{
		Scheme:             scheme,
		ConnTimeout:        timeout,
		ReadTimeout:        timeout,
		WriteTimeout:       timeout,
		ProxyURL:           proxyURL,
		InsecureSkipVerify: insecure,
	})
	if err != nil {
		color.Red("request failed: %v", err)
		os.Exit(1)
	}

	printStatus(resp)
}

// readInput returns the header block to analyze: a file when -file is given,
// stdin when piped, the built-in sample otherwise
func readInput(file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	return headerblock.Sample, nil
}

// printStatus prints the response status line, colorized by class
func printStatus(resp *rawhttp.Response) {
	line := fmt.Sprintf("status: %d %s", resp.StatusCode, strings.TrimSpace(resp.Status))

	switch {
	case resp.IsSuccessful():
		color.Green(line)
	case resp.IsRedirect():
		color.Yellow(line)
	default:
		color.Red(line)
	}
}
