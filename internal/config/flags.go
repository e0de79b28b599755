package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses args on a dedicated FlagSet, so the shared flag.CommandLine
// stays untouched.
//
// Flags:
//
//	-a receiver listen address in format [host]:[port]
//	-server-request-timeout receiver read/write timeout
//	-endpoint registration receiver base URL
//	-register-path upload route
//	-request-timeout upload timeout (0 disables it)
//	-d receiver database DSN
//	-j client upload journal path
//	-c/-config json file path with configs
//	-source frame source kind
//	-device source locator
//	-width, -height drawing surface size
//	-quality JPEG quality
//	-n frames per session
//	-delay pause between captures
//	-frame-timeout wait bound for frame-ready signals
//	-empty-frame-policy fail, skip or include
//	-ui plain or tui
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-face-register", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var serverRequestTimeout time.Duration
	var adapterAddress, registerPath string
	var requestTimeout time.Duration
	var databaseDSN, journalPath string
	var jsonConfigPath string
	var source, device string
	var width, height, quality int
	var frameCount int
	var frameDelay, frameTimeout time.Duration
	var emptyFramePolicy string
	var uiMode string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&serverRequestTimeout, "server-request-timeout", 0, "Receiver read/write timeout")
	fs.StringVar(&adapterAddress, "endpoint", "", "Registration receiver base URL")
	fs.StringVar(&registerPath, "register-path", "", "Registration route")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Upload timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Receiver database DSN")
	fs.StringVar(&journalPath, "j", "", "Client upload journal path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&source, "source", "", "Frame source: file, http, websocket, pattern, device")
	fs.StringVar(&device, "device", "", "Frame source locator")
	fs.IntVar(&width, "width", 0, "Drawing surface width")
	fs.IntVar(&height, "height", 0, "Drawing surface height")
	fs.IntVar(&quality, "quality", 0, "JPEG quality 1-100")
	fs.IntVar(&frameCount, "n", 0, "Frames per session")
	fs.DurationVar(&frameDelay, "delay", 0, "Pause between captures")
	fs.DurationVar(&frameTimeout, "frame-timeout", 0, "Frame-ready wait bound")
	fs.StringVar(&emptyFramePolicy, "empty-frame-policy", "", "fail, skip or include")
	fs.StringVar(&uiMode, "ui", "", "plain or tui")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Camera: Camera{
			Source:      source,
			Device:      device,
			Width:       width,
			Height:      height,
			JPEGQuality: quality,
		},
		Capture: Capture{
			FrameCount:       frameCount,
			FrameDelay:       frameDelay,
			FrameTimeout:     frameTimeout,
			EmptyFramePolicy: emptyFramePolicy,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RegisterPath:   registerPath,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB:      DB{DSN: databaseDSN},
			Journal: Journal{Path: journalPath},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverRequestTimeout,
		},
		UI:           UI{Mode: uiMode},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty.
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
