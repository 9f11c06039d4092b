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

// ParseFlags parses the client flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a transform service address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-d history database file
//	-download-dir directory for downloaded results
//	-letters-only comma separated letters-only cipher list
//	-binary-capable comma separated binary-capable cipher list
//	-history-retention how long history entries are kept (e.g., "720h")
//	-prune-interval how often old history entries are removed
//	-hide-preview hide the digraph preview pane
//	-hide-history hide the history pane
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("cipher-desk", flag.ContinueOnError)

	var serviceAddress NetAddress
	var requestTimeout time.Duration
	var databaseDSN string
	var downloadDir string
	var lettersOnly string
	var binaryCapable string
	var historyRetention time.Duration
	var pruneInterval time.Duration
	var hidePreview bool
	var hideHistory bool
	var jsonConfigPath string

	fs.Var(&serviceAddress, "a", "Transform service address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "History database file")
	fs.StringVar(&downloadDir, "download-dir", "", "Directory for downloaded results")
	fs.StringVar(&lettersOnly, "letters-only", "", "Comma separated letters-only ciphers")
	fs.StringVar(&binaryCapable, "binary-capable", "", "Comma separated binary-capable ciphers")
	fs.DurationVar(&historyRetention, "history-retention", 0, "History retention (e.g., 720h)")
	fs.DurationVar(&pruneInterval, "prune-interval", 0, "History prune interval (e.g., 1h)")
	fs.BoolVar(&hidePreview, "hide-preview", false, "Hide the digraph preview pane")
	fs.BoolVar(&hideHistory, "hide-history", false, "Hide the history pane")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    serviceAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{DownloadDir: downloadDir},
		},
		Catalog: Catalog{
			LettersOnly:   splitList(lettersOnly),
			BinaryCapable: splitList(binaryCapable),
		},
		Workers: Workers{
			HistoryRetention: historyRetention,
			PruneInterval:    pruneInterval,
		},
		UI: UI{
			HidePreview: hidePreview,
			HideHistory: hideHistory,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
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
