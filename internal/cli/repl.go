package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// printlnFn is a test seam for menu output. In tests, replace it with a stub.
var printlnFn = func(w io.Writer, a ...any) { _, _ = fmt.Fprintln(w, a...) }

// getSimpleText, getLine, getNumber and getPassword are indirections over
// the input helpers so tests can script a session.
var (
	getSimpleText = GetSimpleText
	getLine       = GetLine
	getNumber     = GetNumber
	getPassword   = GetPassword
)

// execIface defines the minimal command surface the menus need to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Repair(ctx context.Context) error
	Enroll(ctx context.Context) error
	TakeQuiz(ctx context.Context) error
	Profile(ctx context.Context) error
	Logout(ctx context.Context) error
}

const (
	mainMenu = "\n1. Sign Up\n2. Log In\n3. Exit"
	userMenu = "\n1. Enroll in Course\n2. Take Quiz\n3. Log Out\n4. Profile"
)

// runMainMenu loops over the top-level menu until the operator picks exit or
// input ends. A successful login switches to the user menu.
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors.
func runMainMenu(ctx context.Context, a execIface, r *bufio.Reader, w io.Writer) {
	for {
		printlnFn(w, mainMenu)
		choice, err := getSimpleText(r, "Your choice:", w)
		if err != nil {
			return
		}

		switch choice {
		case "1", "signup":
			_ = a.SignUp(ctx)

		case "2", "login":
			_ = a.Login(ctx)
			if a.isLoggedIn() && !runUserMenu(ctx, a, r, w) {
				return
			}

		case "3", "exit", "quit":
			printlnFn(w, "Exiting program. Goodbye!")
			return

		case "repair":
			_ = a.Repair(ctx)

		case "":

		default:
			printlnFn(w, "Unknown choice:", choice)
		}
	}
}

// runUserMenu serves a logged-in user until logout. It returns false when
// input ended, which also ends the main menu.
func runUserMenu(ctx context.Context, a execIface, r *bufio.Reader, w io.Writer) bool {
	for {
		printlnFn(w, userMenu)
		choice, err := getSimpleText(r, "Your choice:", w)
		if err != nil {
			return false
		}

		switch choice {
		case "1":
			_ = a.Enroll(ctx)
		case "2":
			_ = a.TakeQuiz(ctx)
		case "3":
			_ = a.Logout(ctx)
			return true
		case "4":
			_ = a.Profile(ctx)
		case "":
		default:
			printlnFn(w, "Unknown choice:", choice)
		}
	}
}
