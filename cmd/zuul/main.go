// Command zuul is the interactive entry point for the Zuul scripting
// language. Only the lexer stage is wired in so far: every line typed is
// echoed back as the token stream it scans to.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"

	"github.com/pacer/zuul/internal/lang/repl"
)

// version is set by goreleaser at build time.
var version = "dev"

const programName = "Zuul"

func main() {
	versionFlag := flag.Bool("version", false, "print the zuul version")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("%s -- version %s\n", programName, version)
		os.Exit(0)
	}

	configureLogging()

	username := "there"
	if current, err := user.Current(); err == nil {
		username = current.Username
	}

	fmt.Printf("Hello %s! This is the %s programming language\n", username, programName)
	fmt.Println("Please type in commands")

	slog.Info("starting repl",
		slog.String("program", programName),
		slog.String("version", version),
	)

	if err := repl.Start(os.Stdin, os.Stdout); err != nil {
		slog.Error("repl stopped", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("input exhausted, shutting down")
}

// configureLogging routes structured logs to a cache-dir file so they never
// interleave with the interactive session on stdout.
func configureLogging() {
	file := createLogFile()
	if file == nil {
		file = os.Stderr
	}

	logger := slog.New(slog.NewJSONHandler(file, nil))
	slog.SetDefault(logger)
}

// createLogFile creates or opens the log file, starting it over once it
// grows past 5MB.
func createLogFile() *os.File {
	userCachePath, err := os.UserCacheDir()
	if err != nil {
		return os.Stderr
	}

	appCachePath := filepath.Join(userCachePath, "zuul")
	logFilePath := filepath.Join(appCachePath, "zuul.log")

	_ = os.Mkdir(appCachePath, 0750)

	mode := os.O_APPEND | os.O_CREATE | os.O_WRONLY
	if info, err := os.Stat(logFilePath); err == nil && info.Size() >= 5_000_000 {
		mode = os.O_TRUNC | os.O_WRONLY
	}

	file, err := os.OpenFile(logFilePath, mode, 0600)
	if err != nil {
		return os.Stderr
	}

	return file
}
