// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags from os.Args into a partial
// config. Positional arguments left after the flags (the client command and
// its own flags) stay available through flag.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "720h")
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-mint-token print a token for the given owner id and exit
//	-log-level zerolog level
//	-log-path client log file
//	-s bookmark server URL used by the client
//	-token client bearer token
//	-adapter-timeout default client request timeout
//	-l/-local-path local store path
//	-local-driver local store driver ("sqlite" or "pebble")
//	-sync-interval background sync period
//	-hadith-api-key hadithapi.com key
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var mintToken string
	var logLevel, logPath string
	var bookmarksAddress string
	var token string
	var adapterTimeout time.Duration
	var localPath, localDriver string
	var syncInterval time.Duration
	var hadithAPIKey string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 720h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&mintToken, "mint-token", "", "Print a signed token for this owner id and exit")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&logPath, "log-path", "", "Client log file path")
	flag.StringVar(&bookmarksAddress, "s", "", "Bookmark server URL")
	flag.StringVar(&token, "token", "", "Bearer token for the bookmark server")
	flag.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Default outbound request timeout")
	flag.StringVar(&localPath, "l", "", "Local bookmark store path")
	flag.StringVar(&localPath, "local-path", "", "Local bookmark store path (alias)")
	flag.StringVar(&localDriver, "local-driver", "", "Local bookmark store driver: sqlite or pebble")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval")
	flag.StringVar(&hadithAPIKey, "hadith-api-key", "", "hadithapi.com API key")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			Token:         token,
			LogLevel:      logLevel,
			LogPath:       logPath,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Local: Local{
				Driver: localDriver,
				Path:   localPath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			BookmarksAddress: bookmarksAddress,
			RequestTimeout:   adapterTimeout,
			HadithAPIKey:     hadithAPIKey,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
		MintToken:    mintToken,
	}
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
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
