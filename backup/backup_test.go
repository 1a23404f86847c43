package backup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rafioktavian/keuanganku"
	"github.com/rafioktavian/keuanganku/localdb"
)

func testStore(t *testing.T) *localdb.Store {
	t.Helper()
	ctx := context.Background()
	store, err := localdb.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.AddGoal(ctx, keuanganku.Goal{
		Name:         "Dana Darurat",
		TargetAmount: keuanganku.IDR(10_000_000),
		TargetDate:   keuanganku.MustParseDate("2026-12-31"),
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.AddTransaction(ctx, keuanganku.Transaction{
		Type:       keuanganku.Expense,
		Amount:     keuanganku.IDR(100_000),
		Date:       keuanganku.MustParseDate("2025-07-01"),
		Category:   "Tabungan Tujuan",
		FundSource: "Tunai",
		LinkedTo:   "goal_1",
		Purpose:    keuanganku.GoalContribution,
	}); err != nil {
		t.Fatal(err)
	}
	return store
}

func TestBuildSnapshot(t *testing.T) {
	ctx := context.Background()
	snap, err := BuildSnapshot(ctx, testStore(t))
	if err != nil {
		t.Fatal(err)
	}
	if snap.ID == "" {
		t.Error("snapshot has no id")
	}
	if snap.LastSync.IsZero() {
		t.Error("snapshot has no sync time")
	}
	if len(snap.Transactions) != 1 {
		t.Errorf("got %d transactions, want 1", len(snap.Transactions))
	}
	if len(snap.Goals) != 1 {
		t.Errorf("got %d goals, want 1", len(snap.Goals))
	}
	if len(snap.Categories) == 0 || len(snap.FundSources) == 0 {
		t.Error("seeded vocabularies missing from snapshot")
	}
	if snap.Transactions[0].LinkedTo != "goal_1" {
		t.Errorf("linkedTo = %q, want goal_1", snap.Transactions[0].LinkedTo)
	}
}

func TestPush(t *testing.T) {
	ctx := context.Background()
	snap, err := BuildSnapshot(ctx, testStore(t))
	if err != nil {
		t.Fatal(err)
	}

	var gotMethod, gotType string
	var gotBody Snapshot
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("sink received malformed body: %v", err)
		}
	}))
	defer srv.Close()

	if err := NewClient(srv.URL).Push(ctx, snap); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPut {
		t.Errorf("method = %s, want PUT", gotMethod)
	}
	if gotType != "application/json" {
		t.Errorf("content type = %q, want application/json", gotType)
	}
	if gotBody.ID != snap.ID || len(gotBody.Transactions) != len(snap.Transactions) {
		t.Errorf("sink received %+v, want the pushed snapshot", gotBody)
	}
}

func TestPushRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer srv.Close()

	if err := NewClient(srv.URL).Push(context.Background(), Snapshot{ID: "x"}); err == nil {
		t.Error("expected error on non-2xx response")
	}
}

func TestPullRoundTrip(t *testing.T) {
	ctx := context.Background()
	snap, err := BuildSnapshot(ctx, testStore(t))
	if err != nil {
		t.Fatal(err)
	}
	content, err := json.Marshal(snap)
	if err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(content)
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL).Pull(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != snap.ID {
		t.Errorf("pulled id = %q, want %q", got.ID, snap.ID)
	}
	if len(got.Transactions) != 1 || !got.Transactions[0].Amount.Equal(snap.Transactions[0].Amount) {
		t.Errorf("pulled transactions = %+v, want %+v", got.Transactions, snap.Transactions)
	}
}
