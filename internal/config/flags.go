package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-strategy sign-in strategy to negotiate
//	-a configuration/session service address
//	-request-timeout request timeout (e.g., "10s")
//	-retry-count transport retries
//	-d local session database DSN
//	-identity-client-id identity SDK client id
//	-identity-failure-policy forward|fail-fast
//	-fetch-mode sequential|parallel
//	-config-ttl remote config cache TTL
//	-metrics-address metrics endpoint address in format [host]:[port]
//	-log-file client log file path
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-sign-in", flag.ContinueOnError)

	var metricsAddress NetAddress
	var strategy, adapterAddress, databaseDSN, identityClientID string
	var identityFailurePolicy, fetchMode, logFile, jsonConfigPath string
	var requestTimeout, configTTL time.Duration
	var retryCount int

	fs.StringVar(&strategy, "strategy", "", "Sign-in strategy")
	fs.StringVar(&adapterAddress, "a", "", "Configuration and session service address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.IntVar(&retryCount, "retry-count", 0, "Transport retries")
	fs.StringVar(&databaseDSN, "d", "", "Local session database DSN")
	fs.StringVar(&identityClientID, "identity-client-id", "", "Identity SDK client id")
	fs.StringVar(&identityFailurePolicy, "identity-failure-policy", "", "forward or fail-fast")
	fs.StringVar(&fetchMode, "fetch-mode", "", "sequential or parallel")
	fs.DurationVar(&configTTL, "config-ttl", 0, "Remote config cache TTL")
	fs.Var(&metricsAddress, "metrics-address", "Metrics address host:port")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Strategy:              strategy,
			IdentityClientID:      identityClientID,
			IdentityFailurePolicy: identityFailurePolicy,
			FetchMode:             fetchMode,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
			RetryCount:     retryCount,
		},
		Storage:      Storage{DB: DB{DSN: databaseDSN}},
		Cache:        Cache{ConfigTTL: configTTL},
		Metrics:      Metrics{Address: metricsAddress.String()},
		Log:          Log{FilePath: logFile},
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
