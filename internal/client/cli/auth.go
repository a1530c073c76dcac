package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mentormatch/mentorauth/internal/client/api"
	"github.com/mentormatch/mentorauth/internal/client/session"
	"github.com/mentormatch/mentorauth/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates the account on the
// server. The password is checked against the strength policy before
// anything leaves the machine and is wiped before returning. Registration
// does not log the user in; login stays an explicit step.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Enter role (student/mentor)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := session.ValidatePassword(string(password)); err != nil {
		fmt.Println("Weak password:", err)
		return err
	}

	_, err = a.client.Register(ctx, api.RegisterRequest{
		Email:    email,
		Username: userName,
		Password: string(password),
		Name:     name,
		Role:     role,
	})
	if err != nil {
		switch {
		case errors.Is(err, api.ErrDuplicate):
			fmt.Println("An account with this email or username already exists")
		case errors.Is(err, api.ErrBadRequest):
			fmt.Println("Registration rejected:", err)
		default:
			fmt.Println("Registration failed:", err)
		}
		return err
	}

	fmt.Println("Account created, you can log in now")
	return nil
}

// Login prompts for credentials and establishes a cached session. The
// password is wiped before returning. A rejected login shows a generic
// notice only; which part of the credentials was wrong is not revealed.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	identity, err := a.session.Login(ctx, userName, string(password))
	if err != nil {
		var fe *common.FieldError
		switch {
		case errors.As(err, &fe):
			fmt.Printf("Check the %s field: %s\n", fe.Field, fe.Reason)
		case errors.Is(err, common.ErrInvalidCredentials):
			fmt.Println("Invalid credentials")
		default:
			fmt.Println("Login failed:", err)
		}
		return err
	}

	a.userName = identity.Username
	fmt.Printf("Logged in as %s\n", a.userName)
	return nil
}

// Logout clears the cached session. The server is not contacted.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	fmt.Println("Logged out")
	return nil
}

// Status revalidates the cached session and reports who is logged in.
func (a *App) Status(ctx context.Context) {
	if !a.session.IsLoggedIn(ctx) {
		a.userName = ""
		fmt.Println("Not logged in")
		return
	}

	rec, err := a.session.Current(ctx)
	if err != nil || rec == nil {
		a.userName = ""
		fmt.Println("Not logged in")
		return
	}

	a.userName = rec.Identity.Username
	fmt.Printf("Logged in as %s (%s)\n", rec.Identity.Username, rec.Identity.Role)
}
