// Package session runs onboarding and shows who is signed in.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/unload/pkg/prompt"
	"tableflip.dev/unload/pkg/session"
)

const intro = `Unload helps you set a worry down: name it, notice how much of it is
yours, and leave yourself a short note. Entries stay on this machine.`

// Onboard introduces the app and signs the user in.
type Onboard struct {
	Name  string
	Email string
	// Interactive asks for anything not given.
	Interactive bool

	Provider session.Provider
	Prompt   prompt.Prompter
	Out      io.Writer
}

func out(w io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return color.Output
}

func (n *Onboard) Do(ctx context.Context) error {
	if n.Provider == nil {
		return errors.New("can not onboard, no session provider")
	}
	p := n.Prompt
	if p == nil {
		p = prompt.IO{}
	}
	current, err := n.Provider.Current(ctx)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out(n.Out), "\n%s\n\n", intro)

	s := session.Session{Name: n.Name, Email: n.Email}
	if n.Interactive {
		if s.Name == "" {
			if s.Name, err = p.Text("Name", current.Name, true); err != nil {
				return err
			}
		}
		if s.Email == "" {
			if s.Email, err = p.Text("Email", current.Email, false); err != nil {
				return err
			}
		}
	}

	s, err = n.Provider.SignIn(ctx, s)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out(n.Out), "Welcome, %s.\n", color.New(color.Bold).Sprint(s.Name))
	return nil
}

// WhoAmI prints the current session.
type WhoAmI struct {
	Provider session.Provider
	Out      io.Writer
}

func (n *WhoAmI) Do(ctx context.Context) error {
	if n.Provider == nil {
		return errors.New("no session provider")
	}
	s, err := n.Provider.Current(ctx)
	if err != nil {
		return err
	}
	if !s.SignedIn() {
		_, _ = fmt.Fprintln(out(n.Out), "Not signed in. Run `unload onboard`.")
		return nil
	}
	b := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(b.Sprint("Name"), s.Name)
	if s.Email != "" {
		tbl.AddRow(b.Sprint("Email"), s.Email)
	}
	if s.Avatar != "" {
		tbl.AddRow(b.Sprint("Avatar"), s.Avatar)
	}
	tbl.AddRow(b.Sprint("Onboarded"), s.Onboarded)
	_, _ = fmt.Fprintln(out(n.Out), tbl)
	return nil
}

// SignOut forgets the cached session.
type SignOut struct {
	Provider session.Provider
	Out      io.Writer
}

func (n *SignOut) Do(ctx context.Context) error {
	if n.Provider == nil {
		return errors.New("no session provider")
	}
	if err := n.Provider.SignOut(ctx); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out(n.Out), "Signed out.")
	return nil
}
