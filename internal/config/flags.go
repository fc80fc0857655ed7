package config

import (
	"errors"
	"flag"
	"io"
	"net"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-version application version
//	-log-level zerolog level name
//	-notification-ttl notification lifetime (e.g. "5s")
//	-request-timeout inbound request timeout (e.g. "30s")
//	-session-ttl idle session lifetime (e.g. "30m")
//	-fal-key inference service credential
//	-fal-url inference queue base URL
//	-fal-model inference model identifier
//	-fal-timeout whole removal job timeout (e.g. "2m")
//	-fal-poll-interval status poll interval (e.g. "500ms")
//	-sweep-interval idle session sweep interval (e.g. "1m")
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var version, logLevel string
	var notificationTTL, requestTimeout, sessionTTL time.Duration
	var falKey, falURL, falModel string
	var falTimeout, falPollInterval time.Duration
	var sweepInterval time.Duration

	fs := flag.NewFlagSet("bg-remover", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&version, "version", "", "Application version")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&notificationTTL, "notification-ttl", 0, "Notification lifetime (e.g., 5s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Idle session lifetime (e.g., 30m)")
	fs.StringVar(&falKey, "fal-key", "", "Inference service credential")
	fs.StringVar(&falURL, "fal-url", "", "Inference queue base URL")
	fs.StringVar(&falModel, "fal-model", "", "Inference model identifier")
	fs.DurationVar(&falTimeout, "fal-timeout", 0, "Removal job timeout (e.g., 2m)")
	fs.DurationVar(&falPollInterval, "fal-poll-interval", 0, "Status poll interval (e.g., 500ms)")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Idle session sweep interval (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Version:         version,
			LogLevel:        logLevel,
			NotificationTTL: notificationTTL,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			SessionTTL:     sessionTTL,
		},
		Adapter: Adapter{
			Key:            falKey,
			BaseURL:        falURL,
			Model:          falModel,
			RequestTimeout: falTimeout,
			PollInterval:   falPollInterval,
		},
		Workers: Workers{
			SweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
