package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and asks the gate to authenticate.
//
// After maxLoginAttempts failures the command refuses further attempts for
// the rest of the console run. The gate never says why a login failed, so
// the messaging here stays generic.
func (a *App) Login(ctx context.Context) error {
	if a.failedLogins >= maxLoginAttempts {
		fmt.Fprintln(a.out, "Too many failed attempts. Please try again later.")
		return nil
	}

	username, err := getSimpleText(a.reader, "Enter username or email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	ok, err := a.gate.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if !ok {
		a.failedLogins++
		remaining := maxLoginAttempts - a.failedLogins
		if remaining > 0 {
			fmt.Fprintf(a.out, "Invalid username or password. %d attempts remaining.\n", remaining)
		} else {
			fmt.Fprintln(a.out, "Too many failed attempts. Please try again later.")
		}
		return nil
	}

	a.failedLogins = 0
	fmt.Fprintf(a.out, "Welcome back, %s!\n", a.gate.Operator().Username)
	return nil
}

// Logout tears the session down. Safe to call when already logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.gate.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
