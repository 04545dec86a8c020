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

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddBook(ctx context.Context) error
	ListBooks(ctx context.Context) error
	FindBook(ctx context.Context) error
}

// runREPL reads commands from reader and dispatches them to a until EOF or
// "exit"/"quit".
//
//	help                 show available commands
//	register | login     account commands
//	logout               forget the current user (logged in only)
//	addbook | books | findbook
//	exit | quit          leave the program
//
// Handlers read their own prompts from the same reader, so commands and
// answers interleave on one input stream. Errors returned by handlers are
// printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("uk%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		err = nil
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: addbook, books, findbook, logout, exit")
			} else {
				printlnFn("Available commands: register, login, addbook, books, findbook, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "addbook":
			err = a.AddBook(ctx)

		case "books":
			err = a.ListBooks(ctx)

		case "findbook":
			err = a.FindBook(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("error:", err.Error())
		}
	}
}
