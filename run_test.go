package apiflags

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/agentstation/apiflags/pkg/apilist"
	"github.com/agentstation/apiflags/pkg/errors"
)

// Helper function to write an input file
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	public := writeFile(t, dir, "public.txt", "La/A;->a()V\n")
	private := writeFile(t, dir, "private.txt", "Lb/B;->b()V\nLc/C;->c()V\n")
	whitelist := writeFile(t, dir, "whitelist.txt", "# nothing extra\n")
	greylist := writeFile(t, dir, "greylist.txt", "Lb/B;->b()V\n")
	vendor := writeFile(t, dir, "vendor.txt", "Lc/C;->c()V\nLd/D;->d()V\n")
	output := filepath.Join(dir, "flags.csv")

	p, err := New(
		WithPublicList(public),
		WithPrivateList(private),
		WithStrict(apilist.TagWhitelist, whitelist),
		WithStrict(apilist.TagGreylist, greylist),
		WithLenient(apilist.TagBlacklist, vendor),
		WithOutput(output),
	)
	if err != nil {
		t.Fatalf("Failed to create pipeline: %v", err)
	}

	result, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	want := "La/A;->a()V,whitelist\nLb/B;->b()V,greylist\nLc/C;->c()V,blacklist\n"
	if string(data) != want {
		t.Errorf("Expected output:\n%swant:\n%s", string(data), want)
	}

	if result.Entries != 3 {
		t.Errorf("Expected 3 entries, got %d", result.Entries)
	}
	if result.Count(apilist.TagWhitelist) != 1 {
		t.Errorf("Expected 1 whitelist entry, got %d", result.Count(apilist.TagWhitelist))
	}
	if result.Count(apilist.TagGreylist) != 1 {
		t.Errorf("Expected 1 greylist entry, got %d", result.Count(apilist.TagGreylist))
	}
	if result.Count(apilist.TagBlacklist) != 1 {
		t.Errorf("Expected 1 blacklist entry, got %d", result.Count(apilist.TagBlacklist))
	}
	if result.RunID == "" {
		t.Error("Expected a run ID")
	}
	if result.Lines != 3 {
		t.Errorf("Expected 3 output lines, got %d", result.Lines)
	}
}

func TestRunAllPrivateFallsBack(t *testing.T) {
	dir := t.TempDir()
	public := writeFile(t, dir, "public.txt", "# no public API\n")
	private := writeFile(t, dir, "private.txt", "Lx/X;->x()V\n")
	output := filepath.Join(dir, "flags.csv")

	p, err := New(
		WithPublicList(public),
		WithPrivateList(private),
		WithOutput(output),
	)
	if err != nil {
		t.Fatalf("Failed to create pipeline: %v", err)
	}

	result, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if string(data) != "Lx/X;->x()V,blacklist\n" {
		t.Errorf("Expected fallback blacklist output, got %q", string(data))
	}
	if result.FallbackAssigned() != 1 {
		t.Errorf("Expected 1 fallback assignment, got %d", result.FallbackAssigned())
	}
}

func TestRunSerializationAutoWhitelist(t *testing.T) {
	dir := t.TempDir()
	public := writeFile(t, dir, "public.txt", "# none\n")
	private := writeFile(t, dir, "private.txt",
		"Lser/S;->writeReplace()Ljava/lang/Object;\nLx/X;->x()V\n")
	output := filepath.Join(dir, "flags.csv")

	p, err := New(
		WithPublicList(public),
		WithPrivateList(private),
		WithOutput(output),
	)
	if err != nil {
		t.Fatalf("Failed to create pipeline: %v", err)
	}

	result, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, _ := os.ReadFile(output)
	want := "Lser/S;->writeReplace()Ljava/lang/Object;,whitelist\nLx/X;->x()V,blacklist\n"
	if string(data) != want {
		t.Errorf("Expected %q, got %q", want, string(data))
	}
	if result.Count(apilist.TagWhitelist) != 1 {
		t.Errorf("Expected serialization member on whitelist, got %d", result.Count(apilist.TagWhitelist))
	}
	if result.AutoClassified() != 1 {
		t.Errorf("Expected 1 auto-classified member, got %d", result.AutoClassified())
	}
}

func TestRunCSVMerge(t *testing.T) {
	dir := t.TempDir()
	public := writeFile(t, dir, "public.txt", "# none\n")
	private := writeFile(t, dir, "private.txt", "Lb/B;->b()V\n")
	csv := writeFile(t, dir, "prev.csv", "Lb/B;->b()V,greylist,greylist-max-o\n")
	output := filepath.Join(dir, "flags.csv")

	p, err := New(
		WithPublicList(public),
		WithPrivateList(private),
		WithCSV(csv),
		WithOutput(output),
	)
	if err != nil {
		t.Fatalf("Failed to create pipeline: %v", err)
	}

	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, _ := os.ReadFile(output)
	if string(data) != "Lb/B;->b()V,greylist,greylist-max-o\n" {
		t.Errorf("Expected merged CSV tags, got %q", string(data))
	}
}

func TestRunOverlapAborts(t *testing.T) {
	dir := t.TempDir()
	public := writeFile(t, dir, "public.txt", "La/A;->a()V\n")
	private := writeFile(t, dir, "private.txt", "La/A;->a()V\n")
	output := filepath.Join(dir, "flags.csv")

	p, err := New(
		WithPublicList(public),
		WithPrivateList(private),
		WithOutput(output),
	)
	if err != nil {
		t.Fatalf("Failed to create pipeline: %v", err)
	}

	_, err = p.Run(context.Background())
	if err == nil {
		t.Fatal("Expected overlap error")
	}
	if !errors.IsOverlap(err) {
		t.Errorf("Expected overlap error, got %v", err)
	}

	// No output may exist after a failed run.
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("Expected no output file after failure")
	}
}

func TestRunStrictConflictAborts(t *testing.T) {
	dir := t.TempDir()
	public := writeFile(t, dir, "public.txt", "La/A;->a()V\n")
	private := writeFile(t, dir, "private.txt", "Lb/B;->b()V\n")
	greylist := writeFile(t, dir, "greylist.txt", "Lmissing/M;->m()V\n")
	output := filepath.Join(dir, "flags.csv")

	p, err := New(
		WithPublicList(public),
		WithPrivateList(private),
		WithStrict(apilist.TagGreylist, greylist),
		WithOutput(output),
	)
	if err != nil {
		t.Fatalf("Failed to create pipeline: %v", err)
	}

	_, err = p.Run(context.Background())
	if err == nil {
		t.Fatal("Expected unknown entry error")
	}
	if !errors.IsUnknownEntry(err) {
		t.Errorf("Expected unknown entry error, got %v", err)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("Expected no output file after failure")
	}
}

func TestRunDryRun(t *testing.T) {
	dir := t.TempDir()
	public := writeFile(t, dir, "public.txt", "La/A;->a()V\n")
	private := writeFile(t, dir, "private.txt", "Lb/B;->b()V\n")
	output := filepath.Join(dir, "flags.csv")

	p, err := New(
		WithPublicList(public),
		WithPrivateList(private),
		WithOutput(output),
		WithDryRun(true),
	)
	if err != nil {
		t.Fatalf("Failed to create pipeline: %v", err)
	}

	result, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !result.DryRun {
		t.Error("Expected dry run result")
	}
	if result.Lines != 2 {
		t.Errorf("Expected 2 lines computed, got %d", result.Lines)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("Expected no output file for dry run")
	}
}

func TestRunDeterministic(t *testing.T) {
	dir := t.TempDir()
	public := writeFile(t, dir, "public.txt", "Lb/B;->b()V\nLa/A;->a()V\n")
	private := writeFile(t, dir, "private.txt", "Ld/D;->d()V\nLc/C;->c()V\n")

	run := func(name string) string {
		output := filepath.Join(dir, name)
		p, err := New(
			WithPublicList(public),
			WithPrivateList(private),
			WithOutput(output),
		)
		if err != nil {
			t.Fatalf("Failed to create pipeline: %v", err)
		}
		if _, err := p.Run(context.Background()); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		data, err := os.ReadFile(output)
		if err != nil {
			t.Fatalf("Failed to read output: %v", err)
		}
		return string(data)
	}

	first := run("first.csv")
	second := run("second.csv")
	if first != second {
		t.Errorf("Expected identical outputs, got:\n%s\nand:\n%s", first, second)
	}
}

func TestRunInputOrderIndependent(t *testing.T) {
	dir := t.TempDir()
	public := writeFile(t, dir, "public.txt", "La/A;->a()V\n")
	private := writeFile(t, dir, "private.txt", "Lb/B;->b()V\nLc/C;->c()V\n")
	first := writeFile(t, dir, "first.txt", "Lb/B;->b()V\n")
	second := writeFile(t, dir, "second.txt", "Lc/C;->c()V\n")

	run := func(name string, paths ...string) string {
		output := filepath.Join(dir, name)
		p, err := New(
			WithPublicList(public),
			WithPrivateList(private),
			WithStrict(apilist.TagGreylist, paths...),
			WithOutput(output),
		)
		if err != nil {
			t.Fatalf("Failed to create pipeline: %v", err)
		}
		if _, err := p.Run(context.Background()); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		data, err := os.ReadFile(output)
		if err != nil {
			t.Fatalf("Failed to read output: %v", err)
		}
		return string(data)
	}

	forward := run("forward.csv", first, second)
	reversed := run("reversed.csv", second, first)
	if forward != reversed {
		t.Errorf("Expected order-independent output, got:\n%s\nand:\n%s", forward, reversed)
	}
}

func TestRunMissingInputs(t *testing.T) {
	p, err := New(WithDryRun(true))
	if err != nil {
		t.Fatalf("Failed to create pipeline: %v", err)
	}

	_, err = p.Run(context.Background())
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !errors.IsValidationError(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestRunNilContext(t *testing.T) {
	dir := t.TempDir()
	public := writeFile(t, dir, "public.txt", "La/A;->a()V\n")
	private := writeFile(t, dir, "private.txt", "Lb/B;->b()V\n")

	p, err := New(
		WithPublicList(public),
		WithPrivateList(private),
		WithDryRun(true),
	)
	if err != nil {
		t.Fatalf("Failed to create pipeline: %v", err)
	}

	//nolint:staticcheck // nil context is part of the contract
	if _, err := p.Run(nil); err != nil {
		t.Fatalf("Run with nil context failed: %v", err)
	}
}
