package cmd

import (
	"context"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/rafioktavian/keuanganku"
	"github.com/rafioktavian/keuanganku/receipt"
)

type scanCmd struct {
	file   string
	record bool
}

func (*scanCmd) Name() string     { return "scan" }
func (*scanCmd) Synopsis() string { return "pre-fill a transaction from a receipt photo" }
func (*scanCmd) Usage() string {
	return `kk scan -file <image> [-record]

  Sends the image to the vision model and prints the guessed transaction.
  With -record the guess is recorded immediately; otherwise copy it into a
  kk add invocation after review. Requires GEMINI_API_KEY.

`
}

func (p *scanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "file", "", "Path to the receipt image (jpg, png, webp).")
	f.BoolVar(&p.record, "record", false, "Record the guess without review.")
}

func (p *scanCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		return subcommands.ExitUsageError
	}
	image, err := os.ReadFile(p.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	mimeType := mime.TypeByExtension(filepath.Ext(p.file))
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	vocab, err := vocabulary(ctx, store)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	extractor, err := receipt.NewExtractor(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	draft, err := extractor.Extract(ctx, image, mimeType, vocab)
	if err != nil {
		// Extraction failing is recoverable: fill the form by hand.
		fmt.Fprintln(os.Stderr, "Error:", err)
		fmt.Fprintln(os.Stderr, "Could not read the receipt; record the transaction with kk add instead.")
		return subcommands.ExitFailure
	}

	tx := draft.Transaction()
	fmt.Printf("Guessed: %s %s on %s, category %q, fund source %q, %q\n",
		tx.Type, tx.Amount, tx.Date, tx.Category, tx.FundSource, tx.Description)

	if !p.record {
		fmt.Println("Review and record with kk add, or re-run with -record.")
		return subcommands.ExitSuccess
	}
	ledger := keuanganku.NewLedger(store, store)
	recorded, err := ledger.Record(ctx, tx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded transaction %d\n", recorded.ID)
	return subcommands.ExitSuccess
}

// vocabulary assembles the extraction vocabulary from the store.
func vocabulary(ctx context.Context, store keuanganku.ReferenceStore) (receipt.Vocabulary, error) {
	cats, err := store.Categories(ctx)
	if err != nil {
		return receipt.Vocabulary{}, err
	}
	sources, err := store.FundSources(ctx)
	if err != nil {
		return receipt.Vocabulary{}, err
	}
	var vocab receipt.Vocabulary
	for _, c := range cats {
		if c.Type == keuanganku.Income {
			vocab.IncomeCategories = append(vocab.IncomeCategories, c.Name)
		} else {
			vocab.ExpenseCategories = append(vocab.ExpenseCategories, c.Name)
		}
	}
	for _, s := range sources {
		vocab.FundSources = append(vocab.FundSources, s.Name)
	}
	return vocab, nil
}
