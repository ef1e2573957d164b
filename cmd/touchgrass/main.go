// Command touchgrass is the UCI engine binary: it wires internal/uciloop
// to stdin/stdout. Flag handling in init() follows the zurichess
// reference's main.go.
package main

import (
	"flag"
	"os"

	logging "github.com/op/go-logging"

	"github.com/datavorous/touchgrass/bitboard"
	"github.com/datavorous/touchgrass/internal/uciloop"
)

var (
	name     = flag.String("name", "touchgrass", "engine name reported to \"uci\"")
	author   = flag.String("author", "datavorous", "author name reported to \"uci\"")
	logLevel = flag.String("log-level", "INFO", "log verbosity: DEBUG, INFO, WARNING, ERROR")
)

func init() {
	flag.Parse()

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`,
	)
	backendFormatted := logging.NewBackendFormatter(backend, formatter)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		level = logging.INFO
	}
	leveled := logging.AddModuleLevel(backendFormatted)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}

func main() {
	bitboard.Init()
	loop := uciloop.New(*name, *author, os.Stdout)
	if err := loop.Run(os.Stdin); err != nil {
		os.Exit(1)
	}
}
