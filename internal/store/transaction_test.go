package store

import (
	"sync"
	"testing"

	"github.com/byonar/Rep-Rakbank-POC-Kafka-Bronze-Webhook-APIKey/internal/models"
)

func strPtr(s string) *string { return &s }

func TestAppendAssignsIdentity(t *testing.T) {
	l := NewTransactionLog()

	for i := 1; i <= 3; i++ {
		got := l.Append(models.Transaction{})
		if got.SequenceID != int64(i) {
			t.Fatalf("sequence_id = %d, want %d", got.SequenceID, i)
		}
		if got.ReceivedAt == "" {
			t.Fatal("received_at not assigned on append")
		}
	}

	if l.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", l.Count())
	}
}

func TestAppendKeepsBatchID(t *testing.T) {
	l := NewTransactionLog()

	got := l.Append(models.Transaction{BatchID: "20260824_120000"})
	if got.BatchID != "20260824_120000" {
		t.Fatalf("batch_id = %q, want it preserved through append", got.BatchID)
	}
}

func TestConcurrentAppendsYieldUniqueSequence(t *testing.T) {
	const n = 200

	l := NewTransactionLog()
	ids := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- l.Append(models.Transaction{}).SequenceID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate sequence id %d", id)
		}
		seen[id] = true
	}
	for i := int64(1); i <= n; i++ {
		if !seen[i] {
			t.Fatalf("missing sequence id %d", i)
		}
	}
	if l.Count() != n {
		t.Fatalf("Count() = %d, want %d", l.Count(), n)
	}
}

func TestLastReturnsSuffixInAppendOrder(t *testing.T) {
	l := NewTransactionLog()

	if got := l.Last(10); len(got) != 0 {
		t.Fatalf("Last(10) on empty log returned %d records", len(got))
	}

	for i := 0; i < 15; i++ {
		l.Append(models.Transaction{})
	}

	got := l.Last(10)
	if len(got) != 10 {
		t.Fatalf("Last(10) returned %d records", len(got))
	}
	for i, tx := range got {
		if want := int64(6 + i); tx.SequenceID != want {
			t.Fatalf("Last(10)[%d].SequenceID = %d, want %d", i, tx.SequenceID, want)
		}
	}

	if got := l.Last(100); len(got) != 15 {
		t.Fatalf("Last(100) returned %d records, want all 15", len(got))
	}
}

func TestFirstAndNewest(t *testing.T) {
	l := NewTransactionLog()

	if _, ok := l.First(); ok {
		t.Fatal("First() reported a record on an empty log")
	}
	if _, ok := l.Newest(); ok {
		t.Fatal("Newest() reported a record on an empty log")
	}

	l.Append(models.Transaction{UserTransaction: models.UserTransaction{Usrname: strPtr("a")}})
	l.Append(models.Transaction{UserTransaction: models.UserTransaction{Usrname: strPtr("b")}})

	first, ok := l.First()
	if !ok || first.SequenceID != 1 {
		t.Fatalf("First() = (%+v, %v), want sequence 1", first, ok)
	}
	newest, ok := l.Newest()
	if !ok || newest.SequenceID != 2 {
		t.Fatalf("Newest() = (%+v, %v), want sequence 2", newest, ok)
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	l := NewTransactionLog()
	l.Append(models.Transaction{UserTransaction: models.UserTransaction{Usrname: strPtr("alice")}})

	all := l.All()
	all[0].SequenceID = 999

	if got := l.All()[0].SequenceID; got != 1 {
		t.Fatalf("stored record mutated through snapshot: sequence_id = %d", got)
	}

	last := l.Last(1)
	last[0].BatchID = "tampered"

	if got := l.Last(1)[0].BatchID; got != "" {
		t.Fatalf("stored record mutated through Last snapshot: batch_id = %q", got)
	}
}
