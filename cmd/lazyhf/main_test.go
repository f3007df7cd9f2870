package main

import (
	"errors"
	"os"
	"testing"

	"github.com/spf13/cobra"

	"lazyhf/internal/config"
)

type exitPanic struct{ code int }

func resetMainGlobals() {
	rootCommand = newRootCommand
	osExit = os.Exit
}

func runMain(t *testing.T) (code int, exited bool) {
	t.Helper()
	args := os.Args
	t.Cleanup(func() { os.Args = args })
	os.Args = []string{"lazyhf"}
	osExit = func(code int) { panic(exitPanic{code}) }
	defer func() {
		if r := recover(); r != nil {
			ep, ok := r.(exitPanic)
			if !ok {
				panic(r)
			}
			code, exited = ep.code, true
		}
	}()
	main()
	return 0, false
}

func TestMainSuccess(t *testing.T) {
	t.Cleanup(resetMainGlobals)
	var executed bool
	rootCommand = func() *cobra.Command {
		return &cobra.Command{Run: func(*cobra.Command, []string) { executed = true }}
	}
	if code, exited := runMain(t); exited {
		t.Fatalf("unexpected exit code %d", code)
	}
	if !executed {
		t.Fatal("expected root command to execute")
	}
}

func TestMainConfigDirFailureExitsWithTwo(t *testing.T) {
	t.Cleanup(resetMainGlobals)
	rootCommand = func() *cobra.Command {
		return &cobra.Command{
			SilenceErrors: true,
			SilenceUsage:  true,
			RunE: func(*cobra.Command, []string) error {
				return errors.Join(errors.New("startup"), config.ErrConfigDir)
			},
		}
	}
	code, exited := runMain(t)
	if !exited || code != 2 {
		t.Fatalf("expected exit code 2, got %d (exited=%v)", code, exited)
	}
}
