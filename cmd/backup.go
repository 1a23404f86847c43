package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/rafioktavian/keuanganku/backup"
)

type backupCmd struct {
	addr string
	pull bool
	out  string
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "push the whole database to the backup sink" }
func (*backupCmd) Usage() string {
	return `kk backup [-to <url>] [-pull [-o <file>]]

  Pushes a snapshot of every table to the sink, replacing the previous one.
  With -pull the last snapshot is downloaded instead and written as JSON to
  -o (or stdout). The sink defaults to KK_BACKUP_URL.

`
}

func (p *backupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.addr, "to", os.Getenv("KK_BACKUP_URL"), "Backup sink URL.")
	f.BoolVar(&p.pull, "pull", false, "Download the last snapshot instead of pushing.")
	f.StringVar(&p.out, "o", "", "With -pull, write the snapshot to this file.")
}

func (p *backupCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.addr == "" {
		fmt.Fprintln(os.Stderr, "Error: no sink configured, set -to or KK_BACKUP_URL")
		return subcommands.ExitUsageError
	}
	client := backup.NewClient(p.addr)

	if p.pull {
		snap, err := client.Pull(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		content, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		if p.out == "" {
			fmt.Println(string(content))
			return subcommands.ExitSuccess
		}
		if err := os.WriteFile(p.out, content, 0644); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wrote snapshot %s to %s\n", snap.ID, p.out)
		return subcommands.ExitSuccess
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	snap, err := backup.BuildSnapshot(ctx, store)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := client.Push(ctx, snap); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Pushed snapshot %s (%d transactions)\n", snap.ID, len(snap.Transactions))
	return subcommands.ExitSuccess
}
