package main

import (
	"fmt"
)

func dispatchCommand(state *cliState, args []string) error {
	if len(args) == 0 {
		printUsage()
		return nil
	}

	switch args[0] {
	case "balance":
		return runBalance(state, args[1:])
	case "history":
		return runHistory(state, args[1:])
	case "audit":
		return runAudit(state, args[1:])
	case "adjust":
		return runAdjust(state, args[1:])
	case "topup":
		return runTopup(state, args[1:])
	case "sync":
		return runSync(state, args[1:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printUsage() {
	fmt.Println("usage: airisbill [global flags] <command> [command flags]")
	fmt.Println("commands: balance, history, audit, adjust, topup, sync")
}
