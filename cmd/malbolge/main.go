/*
 * malbolge - Main process.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/rcornwell/malbolge/command/parser"
	"github.com/rcornwell/malbolge/command/reader"
	"github.com/rcornwell/malbolge/internal/debugger"
	"github.com/rcornwell/malbolge/internal/loader"
	"github.com/rcornwell/malbolge/internal/malerr"
	"github.com/rcornwell/malbolge/internal/script"
	"github.com/rcornwell/malbolge/internal/vcpu"
	"github.com/rcornwell/malbolge/util/debug"
	"github.com/rcornwell/malbolge/util/logger"
)

// Version is printed verbatim by -v/--version.
const Version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	optHelp := getopt.BoolLong("help", 'h', "Show usage and exit")
	optVersion := getopt.BoolLong("version", 'v', "Show version and exit")
	optVerbose := getopt.CounterLong("verbose", 'l', "Raise trace verbosity; repeatable up to three times")
	optString := getopt.StringLong("string", 0, "", "Program source given literally, instead of a file")
	optScript := getopt.StringLong("debugger-script", 0, "", "Run a debugger script instead of the interactive REPL")
	optForceDenorm := getopt.BoolLong("force-non-normalised", 0, "Disable auto-detection; treat source as already in cipher form")
	getopt.SetParameters("[path]")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		return 0
	}
	if *optVersion {
		fmt.Println("malbolge", Version)
		return 0
	}
	if *optVerbose > 3 {
		fmt.Fprintln(os.Stderr, "-l may be repeated at most three times")
		return 1
	}
	debug.Level = *optVerbose

	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	log := slog.New(logger.NewHandler(os.Stderr, &slog.HandlerOptions{Level: programLevel}, boolPtr(*optVerbose > 0)))
	slog.SetDefault(log)

	source, err := readSource(*optString)
	if err != nil {
		log.Error(err.Error())
		return exitCode(err)
	}

	mode := loader.Auto
	if *optForceDenorm {
		mode = loader.ForceDenormalised
	}

	mem, err := loader.Load(source, mode)
	if err != nil {
		log.Error(err.Error())
		return exitCode(err)
	}

	cpu := vcpu.New(mem, log)
	dbg, err := debugger.New(cpu)
	if err != nil {
		log.Error(err.Error())
		return exitCode(err)
	}

	if *optScript != "" {
		return runScript(cpu, dbg, *optScript, log)
	}
	return runInteractive(cpu, dbg)
}

func readSource(literal string) (string, error) {
	args := getopt.Args()
	if literal != "" {
		if len(args) > 0 {
			return "", malerr.NewSystemError("--string and a source path are mutually exclusive", 1)
		}
		return literal, nil
	}

	if len(args) > 1 {
		return "", malerr.NewSystemError("at most one source path may be given", 1)
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", malerr.NewSystemError(err.Error(), 1)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", malerr.NewSystemError(err.Error(), 1)
	}
	return string(data), nil
}

func runScript(cpu *vcpu.CPU, dbg *debugger.Debugger, path string, log *slog.Logger) int {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error(err.Error())
		return exitCode(err)
	}

	cmds, err := script.Parse(string(data))
	if err != nil {
		log.Error(err.Error())
		return exitCode(err)
	}

	runner := script.NewRunner(cpu, dbg, os.Stdout, log)
	if err := runner.Run(context.Background(), cmds); err != nil {
		log.Error(err.Error())
		return exitCode(err)
	}
	if err := runner.Wait(); err != nil {
		log.Error(err.Error())
		return exitCode(err)
	}
	return 0
}

func runInteractive(cpu *vcpu.CPU, dbg *debugger.Debugger) int {
	sess := &parser.Session{CPU: cpu, Dbg: dbg, Out: os.Stdout, In: os.Stdin}
	if err := reader.ConsoleReader(sess); err != nil {
		return exitCode(err)
	}
	return 0
}

// exitCode maps an error to the process exit code spec.md §6 defines: the
// wrapped OS code for a SystemError, 1 for anything else.
func exitCode(err error) int {
	var sysErr *malerr.SystemError
	if errors.As(err, &sysErr) && sysErr.Code != 0 {
		return sysErr.Code
	}
	return 1
}

func boolPtr(b bool) *bool { return &b }
