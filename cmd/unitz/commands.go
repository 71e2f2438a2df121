package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/sambeau/unitz/pkg/unitz"
	"github.com/sambeau/unitz/pkg/unitz/repl"
	"github.com/sambeau/unitz/server"
)

type command struct {
	// longRunning commands log at the configured level and watch catalogs.
	longRunning bool
	run         func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"parse": {run: transform(func(b *unitz.Base, _ *unitz.Defaults) *unitz.Base { return b })},
	"normalize": {run: transform(func(b *unitz.Base, d *unitz.Defaults) *unitz.Base {
		return b.Normalize(&d.Transform, &d.Output)
	})},
	"compact":     {run: transform(func(b *unitz.Base, d *unitz.Defaults) *unitz.Base { return b.Compact(&d.Transform) })},
	"expand":      {run: transform(func(b *unitz.Base, d *unitz.Defaults) *unitz.Base { return b.Expand(&d.Transform) })},
	"conversions": {run: transform(func(b *unitz.Base, d *unitz.Defaults) *unitz.Base { return b.Conversions(&d.Transform) })},
	"filter":      {run: transform(func(b *unitz.Base, d *unitz.Defaults) *unitz.Base { return b.Filter(&d.Transform) })},
	"sort":        {run: transform(func(b *unitz.Base, d *unitz.Defaults) *unitz.Base { return b.Sort(&d.Sort) })},
	"convert":     {run: runConvert},
	"scale":       {run: runScale},
	"add":         {run: arithmetic((*unitz.Base).Add)},
	"sub":         {run: arithmetic((*unitz.Base).Sub)},
	"classes":     {run: runClasses},
	"repl":        {longRunning: true, run: runREPL},
	"serve":       {longRunning: true, run: runServe},
}

func transform(fn func(*unitz.Base, *unitz.Defaults) *unitz.Base) func(context.Context, *app, []string) error {
	return func(_ context.Context, a *app, args []string) error {
		return a.each(args, func(b *unitz.Base, d *unitz.Defaults) (*unitz.Base, error) {
			return fn(b, d), nil
		})
	}
}

func runConvert(_ context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: convert <unit> [quantity]", errUsage)
	}
	unit := args[0]
	if a.reg.Lookup(unit) == nil {
		if hint := a.reg.Suggest(unit); hint != "" {
			return fmt.Errorf("%w: %q (did you mean %q?)", unitz.ErrUnknownUnit, unit, hint)
		}
		return fmt.Errorf("%w: %q", unitz.ErrUnknownUnit, unit)
	}
	return a.each(args[1:], func(b *unitz.Base, _ *unitz.Defaults) (*unitz.Base, error) {
		return b.To(unit), nil
	})
}

func runScale(_ context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: scale <factor> [quantity]", errUsage)
	}
	factor, err := parseFactor(args[0])
	if err != nil {
		return err
	}
	return a.each(args[1:], func(b *unitz.Base, _ *unitz.Defaults) (*unitz.Base, error) {
		return b.Scale(factor), nil
	})
}

func arithmetic(op func(*unitz.Base, unitz.Input) *unitz.Base) func(context.Context, *app, []string) error {
	return func(_ context.Context, a *app, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("%w: expected <quantity> <other>", errUsage)
		}
		other := a.reg.Parse(unitz.Text(args[1]))
		if other.Len() == 0 || !other.IsValid() {
			return fmt.Errorf("%w: %q", unitz.ErrInvalidInput, args[1])
		}
		return a.each(args[:1], func(b *unitz.Base, _ *unitz.Defaults) (*unitz.Base, error) {
			return op(b, other), nil
		})
	}
}

func runClasses(_ context.Context, a *app, _ []string) error {
	heading := color.New(color.Bold)
	dim := color.New(color.Faint)
	if !isTerminal(a.stdout) {
		heading.DisableColor()
		dim.DisableColor()
	}

	for _, c := range a.reg.Classes() {
		fmt.Fprintln(a.stdout, heading.Sprint(c.Name()))
		for _, g := range c.Groups() {
			var aliases []string
			for _, al := range g.Units() {
				if al.Name != g.Unit() {
					aliases = append(aliases, al.Name)
				}
			}
			fmt.Fprintf(a.stdout, "  %-8s %-9s %s\n", g.Unit(), g.System(), dim.Sprint(strings.Join(aliases, " ")))
		}
	}
	return nil
}

func runREPL(_ context.Context, a *app, _ []string) error {
	session := repl.NewSession(a.reg, a.stdout)
	if isTerminal(a.stdin) && isTerminal(a.stdout) {
		return repl.Start(session, repl.Config{
			Prompt:  a.cfg.REPL.Prompt,
			History: a.cfg.REPL.History,
			Version: Version,
		})
	}
	return session.Run(a.stdin)
}

func runServe(ctx context.Context, a *app, _ []string) error {
	srv, err := server.New(a.cfg, a.reg, a.log)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer srv.Close()
	return srv.Run(ctx)
}
