// Package backup synchronizes the full on-device store with a remote sink.
// The sink is a plain bulk read/write endpoint: the whole database travels as
// one snapshot document, last write wins. There is no merging; the single
// user runs one device at a time.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rafioktavian/keuanganku"
)

// Snapshot is the wire form of the whole database plus a sync marker.
type Snapshot struct {
	ID           string                         `json:"id"`
	Transactions []keuanganku.TransactionRecord `json:"transactions"`
	Goals        []keuanganku.GoalRecord        `json:"goals"`
	Investments  []keuanganku.InvestmentRecord  `json:"investments"`
	Debts        []keuanganku.DebtRecord        `json:"debts"`
	Categories   []keuanganku.CategoryRecord    `json:"categories"`
	FundSources  []keuanganku.FundSourceRecord  `json:"fundSources"`
	LastSync     time.Time                      `json:"lastSync"`
}

// BuildSnapshot reads every table and assembles a snapshot with a fresh id.
func BuildSnapshot(ctx context.Context, db keuanganku.Database) (Snapshot, error) {
	snap := Snapshot{ID: uuid.NewString(), LastSync: time.Now().UTC()}

	txs, err := db.Transactions(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("backup: %w", err)
	}
	for _, tx := range txs {
		snap.Transactions = append(snap.Transactions, tx.Record())
	}

	goals, err := db.Goals(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("backup: %w", err)
	}
	for _, g := range goals {
		snap.Goals = append(snap.Goals, g.Record())
	}

	invs, err := db.Investments(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("backup: %w", err)
	}
	for _, inv := range invs {
		snap.Investments = append(snap.Investments, inv.Record())
	}

	debts, err := db.Debts(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("backup: %w", err)
	}
	for _, d := range debts {
		snap.Debts = append(snap.Debts, d.Record())
	}

	cats, err := db.Categories(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("backup: %w", err)
	}
	for _, c := range cats {
		snap.Categories = append(snap.Categories, c.Record())
	}

	sources, err := db.FundSources(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("backup: %w", err)
	}
	for _, f := range sources {
		snap.FundSources = append(snap.FundSources, f.Record())
	}

	return snap, nil
}

// Client talks to the remote sink.
type Client struct {
	http *http.Client
	addr string
}

// NewClient creates a backup client for the sink at addr.
func NewClient(addr string) *Client {
	return &Client{http: new(http.Client), addr: addr}
}

// Push uploads the snapshot, replacing whatever the sink held before.
func (c *Client) Push(ctx context.Context, snap Snapshot) error {
	content, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.addr, bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("cannot build backup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cannot reach backup sink: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("cannot PUT %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return nil
}

// Pull downloads the last snapshot from the sink.
func (c *Client) Pull(ctx context.Context) (Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.addr, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cannot build restore request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cannot reach backup sink: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Snapshot{}, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cannot read snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(content, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("cannot decode snapshot: %w", err)
	}
	return snap, nil
}
