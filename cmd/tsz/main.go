// Command tsz is the compiler driver's CLI: check a project, dump one
// file's bind result, or inspect the compilation cache.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mohsen1/tsz-sub013/internal/binder"
	"github.com/mohsen1/tsz-sub013/internal/cache"
	"github.com/mohsen1/tsz-sub013/internal/config"
	"github.com/mohsen1/tsz-sub013/internal/logx"
	"github.com/mohsen1/tsz-sub013/internal/parser"
	"github.com/mohsen1/tsz-sub013/internal/project"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tsz",
		Short: "A TypeScript front-end: scan, bind, and analyze a project",
	}
	cmd.AddCommand(newCheckCmd(), newBindDumpCmd(), newCacheCmd())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		os.Exit(1)
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "check",
		Short:              "Bind every source file under root and report diagnostics",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if _, err := config.ApplyFlags(cfg, args); err != nil {
				return err
			}

			log := logx.Stderr(logx.LevelInfo)
			if !cfg.Verbose {
				log = logx.Stderr(logx.LevelWarn)
			}

			prog, err := project.Build(context.Background(), cfg.Root, project.BuildOptions{
				Include:      cfg.Include,
				Exclude:      cfg.Exclude,
				SkipDataflow: cfg.SkipDataflow,
			})
			if err != nil {
				return fmt.Errorf("build: %w", err)
			}

			hadErrors := false
			for module, sf := range prog.Files {
				n := sf.ParseDiagnostics.Len()
				log.Info("bound file", logx.Fields{"module": string(module), "diagnostics": n})
				if sf.ParseDiagnostics.HasErrors() {
					hadErrors = true
					for _, d := range sf.ParseDiagnostics.All() {
						fmt.Printf("%s %s: %s (TS%d)\n", red("error"), module, d.Message, d.Code)
					}
				}
			}

			if hadErrors {
				return fmt.Errorf("check failed")
			}
			fmt.Printf("%s %d files bound cleanly\n", green("ok"), len(prog.Files))
			return nil
		},
	}
}

func newBindDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bind-dump <file>",
		Short: "Parse and bind a single file, printing its file-scope symbol table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			text, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			p := parser.New(string(text), path)
			root := p.ParseSourceFile()
			arena, diags := p.IntoParts()
			state := binder.Bind(arena, root, binder.ModuleSpecifier(path))

			fmt.Printf("%s %s\n", bold("file:"), path)
			fmt.Printf("%s %d\n", bold("parse diagnostics:"), diags.Len())

			if state.FileLocals != nil {
				for _, name := range state.FileLocals.Names() {
					id, ok := state.FileLocals.Get(name)
					if !ok {
						continue
					}
					sym := state.Symbols.Get(id)
					if sym == nil {
						continue
					}
					fmt.Printf("  %s  flags=%#x  exported=%v\n", arena.Interner.Resolve(name), sym.Flags, sym.IsExported)
				}
			}
			return nil
		},
	}
}

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the compilation cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:                "stats",
		Short:              "Print the cache's run id and connection DSN",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if _, err := config.ApplyFlags(cfg, args); err != nil {
				return err
			}
			store, err := cache.Open(cfg.CacheDSN, cfg.Debug)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer store.Close()
			fmt.Printf("%s %s\n", bold("dsn:"), cfg.CacheDSN)
			fmt.Printf("%s %s\n", bold("run id:"), store.RunID)
			fmt.Printf("%s %s\n", bold("opened at:"), time.Now().UTC().Format(time.RFC3339))
			return nil
		},
	})
	return cmd
}
