package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/agentstation/apiflags"
	"github.com/agentstation/apiflags/internal/listfile"
	"github.com/agentstation/apiflags/pkg/apilist"
)

func write(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := listfile.WriteLines(path, lines); err != nil {
		t.Fatalf("WriteLines(%s) failed: %v", name, err)
	}
	return path
}

func runPipeline(t *testing.T, opts ...apiflags.Option) *apiflags.Result {
	t.Helper()
	pipeline, err := apiflags.New(opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	result, err := pipeline.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	return result
}

// TestGenerateMergeRoundTrip generates a flag file, merges it back into a
// fresh run over the same universe, and expects byte-identical output.
func TestGenerateMergeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	public := write(t, dir, "public.txt", "La/A;->a()V", "Lb/B;->b(I)Z")
	private := write(t, dir, "private.txt",
		"Lc/C;->c()V",
		"Ld/D;->d:I",
		"Lser/S;->writeObject(Ljava/io/ObjectOutputStream;)V")
	grey := write(t, dir, "grey.txt", "Lc/C;->c()V")

	first := filepath.Join(dir, "first.csv")
	runPipeline(t,
		apiflags.WithPublicList(public),
		apiflags.WithPrivateList(private),
		apiflags.WithStrict(apilist.TagGreylist, grey),
		apiflags.WithOutput(first),
	)

	// Second run drops the list pass and merges the first output instead.
	second := filepath.Join(dir, "second.csv")
	runPipeline(t,
		apiflags.WithPublicList(public),
		apiflags.WithPrivateList(private),
		apiflags.WithCSV(first),
		apiflags.WithOutput(second),
	)

	got1, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("ReadFile(first) failed: %v", err)
	}
	got2, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("ReadFile(second) failed: %v", err)
	}
	if string(got1) != string(got2) {
		t.Errorf("round trip diverged:\nfirst:\n%ssecond:\n%s", got1, got2)
	}
}

// TestCustomRegistryFile runs the pipeline against a registry loaded from
// YAML and checks the custom vocabulary flows through to the output.
func TestCustomRegistryFile(t *testing.T) {
	dir := t.TempDir()
	registryPath := filepath.Join(dir, "registry.yaml")
	yaml := "tags:\n  - allow\n  - warn\n  - deny\nbaseline: allow\nfallback: deny\n"
	if err := os.WriteFile(registryPath, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile(registry) failed: %v", err)
	}

	public := write(t, dir, "public.txt", "La/A;->a()V")
	private := write(t, dir, "private.txt", "Lb/B;->b()V", "Lc/C;->c()V")
	warnList := write(t, dir, "warn.txt", "Lb/B;->b()V")
	output := filepath.Join(dir, "flags.csv")

	result := runPipeline(t,
		apiflags.WithRegistryFile(registryPath),
		apiflags.WithPublicList(public),
		apiflags.WithPrivateList(private),
		apiflags.WithStrict(apilist.Tag("warn"), warnList),
		apiflags.WithOutput(output),
	)

	if result.Count(apilist.Tag("allow")) != 1 {
		t.Errorf("allow count = %d, want 1", result.Count(apilist.Tag("allow")))
	}

	lines, err := listfile.ReadLines(output)
	if err != nil {
		t.Fatalf("ReadLines(output) failed: %v", err)
	}
	want := []string{
		"La/A;->a()V,allow",
		"Lb/B;->b()V,warn",
		"Lc/C;->c()V,deny",
	}
	if len(lines) != len(want) {
		t.Fatalf("output has %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("line %d = %q, want %q", i, lines[i], line)
		}
	}
}

// TestGzipInputs verifies compressed membership lists work end to end.
func TestGzipInputs(t *testing.T) {
	dir := t.TempDir()
	gzPublic := write(t, dir, "public.txt.gz", "La/A;->a()V")
	gzPrivate := write(t, dir, "private.txt.gz", "Lb/B;->b()V")
	plainPublic := write(t, dir, "public.txt", "La/A;->a()V")
	plainPrivate := write(t, dir, "private.txt", "Lb/B;->b()V")

	gzOutput := filepath.Join(dir, "gz-flags.csv")
	result := runPipeline(t,
		apiflags.WithPublicList(gzPublic),
		apiflags.WithPrivateList(gzPrivate),
		apiflags.WithOutput(gzOutput),
	)
	if result.Entries != 2 {
		t.Errorf("Entries = %d, want 2", result.Entries)
	}

	plainOutput := filepath.Join(dir, "plain-flags.csv")
	runPipeline(t,
		apiflags.WithPublicList(plainPublic),
		apiflags.WithPrivateList(plainPrivate),
		apiflags.WithOutput(plainOutput),
	)

	gzData, err := os.ReadFile(gzOutput)
	if err != nil {
		t.Fatalf("ReadFile(gzOutput) failed: %v", err)
	}
	plainData, err := os.ReadFile(plainOutput)
	if err != nil {
		t.Fatalf("ReadFile(plainOutput) failed: %v", err)
	}
	if string(gzData) != string(plainData) {
		t.Errorf("gzip inputs produced %q, plain inputs produced %q", gzData, plainData)
	}
}
