package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/vaulthub/vaulthub-cli/internal/client/callback"
	"github.com/vaulthub/vaulthub-cli/internal/client/session"
	"github.com/vaulthub/vaulthub-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// oidcLoginTimeout bounds how long the CLI waits for the browser round trip.
const oidcLoginTimeout = 2 * time.Minute

// Login prompts for credentials and exchanges them for a session. On
// success the token is persisted locally and subsequent commands run
// authenticated. The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Logged in as " + email)
	return nil
}

// Signup prompts for account details and creates a new account. A
// successful signup logs the user straight in, same as the web client.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter display name (optional)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Signup(ctx, email, string(password), name); err != nil {
		printlnFn("Signup failed:", err.Error())
		return err
	}

	printlnFn("Account created. Logged in as " + email)
	return nil
}

// LoginWithOidc runs the browser round trip: start a loopback listener,
// send the user's browser to the server's OIDC entry point with the
// listener as the redirect target, and consume the one-time token the
// callback delivers.
func (a *App) LoginWithOidc(ctx context.Context) error {
	srv := callback.New(a.config.CallbackAddr, a.log)
	cbURL, err := srv.Start()
	if err != nil {
		printlnFn("Could not start the login listener:", err.Error())
		return err
	}
	defer srv.Shutdown(context.Background())

	loginURL := a.api.OidcLoginURL() + "?redirect_uri=" + url.QueryEscape(cbURL)
	if err := openBrowser(loginURL); err != nil {
		printlnFn("Could not open a browser. Visit this URL to sign in:")
		printlnFn(loginURL)
	} else {
		printlnFn("Waiting for the browser sign-in to complete...")
	}

	waitCtx, cancel := context.WithTimeout(ctx, oidcLoginTimeout)
	defer cancel()
	resultURL, err := srv.Wait(waitCtx)
	if err != nil {
		printlnFn("Sign-in did not complete:", err.Error())
		return err
	}

	a.session.Initialize(ctx, resultURL)
	if !a.session.IsAuthenticated() {
		printlnFn("Sign-in failed: the token was not accepted.")
		return common.ErrInvalidToken
	}
	printlnFn("Logged in via OIDC.")
	return nil
}

// RequestMagicLink asks the server to email a single-use sign-in link. The
// confirmation message is identical whether or not the account exists. The
// user can then paste the emailed link to finish signing in here.
func (a *App) RequestMagicLink(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	printlnFn(a.session.RequestMagicLink(ctx, email))

	link, err := getSimpleText(a.reader, "Paste the sign-in link from your email (or press Enter to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if link == "" {
		return nil
	}

	a.session.Initialize(ctx, link)
	if !a.session.IsAuthenticated() {
		printlnFn("Sign-in failed: the link was not accepted.")
		return common.ErrInvalidToken
	}
	printlnFn("Logged in.")
	return nil
}

// ResetPassword runs the two-step reset flow: request the email, then
// optionally complete the reset with the token it carried.
func (a *App) ResetPassword(ctx context.Context) error {
	haveToken, err := Confirm(a.reader, "Do you already have a reset token?", os.Stdout)
	if err != nil {
		return err
	}

	if !haveToken {
		email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
		if err != nil {
			return err
		}
		printlnFn(a.session.RequestPasswordReset(ctx, email))

		haveToken, err = Confirm(a.reader, "Enter the reset token now?", os.Stdout)
		if err != nil || !haveToken {
			return err
		}
	}

	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	msg, err := a.session.ConfirmPasswordReset(ctx, token, string(password))
	if err != nil {
		printlnFn("Password reset failed:", err.Error())
		return err
	}
	printlnFn(msg)
	return nil
}

// Logout ends the session. Local teardown always succeeds even when the
// server cannot be reached.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	return nil
}

// Whoami prints the signed-in user's profile.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn("Email:", u.Email)
	if u.Name != "" {
		printlnFn("Name:", u.Name)
	}
	if exp, ok := session.TokenExpiry(a.tokens.Token(ctx)); ok {
		printlnFn(fmt.Sprintf("Token expires: %s", exp.Format(time.RFC3339)))
	}
	return nil
}
