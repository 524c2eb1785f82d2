// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (without the program
// name). Unknown flags are an error.
//
// Flags:
//
//	-a catalogue server address in format [host]:[port]
//	-server-timeout catalogue server request timeout (e.g. "15s")
//	-packages-file path of the safari packages JSON fixture
//	-media-dir directory served under /media/
//	-b API base URL used by the client (e.g. "http://127.0.0.1:8000")
//	-request-timeout client request timeout (e.g. "10s")
//	-sync-interval polling interval (e.g. "30s")
//	-headless log state changes instead of running the terminal UI
//	-log-file client log file path
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var serverTimeout time.Duration
	var packagesFile string
	var mediaDir string
	var baseURL string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var headless bool
	var logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Server request timeout (e.g., 15s)")
	fs.StringVar(&packagesFile, "packages-file", "", "Safari packages JSON fixture")
	fs.StringVar(&mediaDir, "media-dir", "", "Media directory served under /media/")
	fs.StringVar(&baseURL, "b", "", "API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Polling interval (e.g., 30s)")
	fs.BoolVar(&headless, "headless", false, "Log state changes instead of running the terminal UI")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Headless: headless,
			LogFile:  logFile,
		},
		Storage: Storage{
			Files: Files{
				PackagesFile: packagesFile,
				MediaDir:     mediaDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "safari-sync"
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
