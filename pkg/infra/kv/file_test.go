package kv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/t-okuda/relwatch/pkg/infra/kv"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s := gt.R1(kv.NewFile(dir)).NoError(t)

	gt.NoError(t, s.SetValue(ctx, "viem", "fp-1"))
	got := gt.R1(s.GetValue(ctx, "viem", "")).NoError(t)
	gt.Value(t, got).Equal("fp-1")

	// Last writer wins.
	gt.NoError(t, s.SetValue(ctx, "viem", "fp-2"))
	got = gt.R1(s.GetValue(ctx, "viem", "")).NoError(t)
	gt.Value(t, got).Equal("fp-2")
}

func TestFileStoreMissingKeyReturnsDefault(t *testing.T) {
	ctx := context.Background()
	s := gt.R1(kv.NewFile(t.TempDir())).NoError(t)

	got := gt.R1(s.GetValue(ctx, "absent", "fallback")).NoError(t)
	gt.Value(t, got).Equal("fallback")
}

func TestFileStoreCorruptFileReturnsDefault(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := gt.R1(kv.NewFile(dir)).NoError(t)

	gt.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	got := gt.R1(s.GetValue(ctx, "bad", "fallback")).NoError(t)
	gt.Value(t, got).Equal("fallback")
}

func TestFileStoreKeysAreDisjointFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := gt.R1(kv.NewFile(dir)).NoError(t)

	gt.NoError(t, s.SetValue(ctx, "a", "1"))
	gt.NoError(t, s.SetValue(ctx, "b", "2"))

	gt.Value(t, gt.R1(s.GetValue(ctx, "a", "")).NoError(t)).Equal("1")
	gt.Value(t, gt.R1(s.GetValue(ctx, "b", "")).NoError(t)).Equal("2")

	entries := gt.R1(os.ReadDir(dir)).NoError(t)
	gt.Number(t, len(entries)).Equal(2)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := kv.NewMemory()

	got := gt.R1(s.GetValue(ctx, "k", "default")).NoError(t)
	gt.Value(t, got).Equal("default")

	gt.NoError(t, s.SetValue(ctx, "k", "v"))
	got = gt.R1(s.GetValue(ctx, "k", "default")).NoError(t)
	gt.Value(t, got).Equal("v")
}
