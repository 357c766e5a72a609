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
//	-host interface to bind to
//	-p port to listen on
//	-env environment name ("development" enables verbose errors)
//	-access-log access log file path
//	-log-level process log level
//	-shutdown-timeout graceful shutdown timeout (e.g., "10s")
//	-c/-config json file path with configs
//
// -host and -p take precedence over the matching part of -a.
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var host string
	var port int
	var environment string
	var accessLogPath string
	var logLevel string
	var shutdownTimeout time.Duration
	var jsonConfigPath string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&host, "host", "", "Interface to bind to")
	fs.IntVar(&port, "p", 0, "Port to listen on")
	fs.StringVar(&environment, "env", "", "Environment name")
	fs.StringVar(&accessLogPath, "access-log", "", "Access log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (e.g., debug, info)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if host == "" {
		host = serverAddress.Host
	}
	if port == 0 {
		port = serverAddress.Port
	}

	return &StructuredConfig{
		App: App{
			Environment: environment,
		},
		Server: Server{
			Host:            host,
			Port:            port,
			ShutdownTimeout: shutdownTimeout,
		},
		Log: Log{
			AccessLogPath: accessLogPath,
			Level:         logLevel,
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
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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
