package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	List(ctx context.Context) error
	AddNote(ctx context.Context) error
	DeleteNote(ctx context.Context, args []string) error
	Refresh(ctx context.Context) error
	SelectYear(ctx context.Context, args []string) error
	SelectMonth(ctx context.Context, args []string) error
	Years(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, help, exit"
	helpLoggedIn  = "Available commands: (l)ist, add, delete <id>, refresh, year <yyyy|all>, month <1-12|all>, years, whoami, logout, help, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
//
//	Not logged in:
//	  register, login, help, exit | quit
//
//	Logged in:
//	  list | l, add, delete <id>, refresh, year <yyyy|all>,
//	  month <1-12|all>, years, whoami, logout, help, exit | quit
//
// Command errors are printed and the loop continues. It returns on EOF or exit.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("diary%s> ", prefixed(statusFn())))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
		default:
			printError(dispatch(ctx, a, cmd, args))
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "whoami":
		return a.Whoami(ctx)
	}

	if !isKnown(cmd) {
		printlnFn("Unknown command:", cmd)
		return nil
	}
	if !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return nil
	}

	switch cmd {
	case "l", "list":
		return a.List(ctx)
	case "add":
		return a.AddNote(ctx)
	case "delete", "rm":
		return a.DeleteNote(ctx, args)
	case "refresh":
		return a.Refresh(ctx)
	case "year":
		return a.SelectYear(ctx, args)
	case "month":
		return a.SelectMonth(ctx, args)
	case "years":
		return a.Years(ctx)
	case "logout":
		return a.Logout(ctx)
	}
	return nil
}

func isKnown(cmd string) bool {
	switch cmd {
	case "l", "list", "add", "delete", "rm", "refresh", "year", "month", "years", "logout":
		return true
	}
	return false
}

func prefixed(status string) string {
	if status == "" {
		return ""
	}
	return " " + status
}

func printError(err error) {
	if err == nil {
		return
	}
	printlnFn("Error:", err.Error())
}
