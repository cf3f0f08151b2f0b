package main

import "os"
import "path/filepath"
import "strings"
import "testing"

import "github.com/neurlang/climber/net/feedforward"

func chdir(t *testing.T, dir string) {
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestRunSynthetic(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "model.json.lzw")
	csvlog := filepath.Join(dir, "gens.csv")
	err := run([]string{"-synthetic", "isalnum", "-hidden", "4,3", "-max-generations", "3", "-seed", "1",
		"-logdir", filepath.Join(dir, "logs"), "-dstmodel", model, "-csv", csvlog})
	if err != nil {
		t.Fatal(err)
	}
	log, err := os.ReadFile(filepath.Join(dir, "logs", "log_0.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(log), "# run ") || !strings.Contains(string(log), "2 : L=") {
		t.Errorf("log %q", log)
	}
	net, err := feedforward.ReadCompressedNetworkFromFile(model)
	if err != nil {
		t.Fatal(err)
	}
	if net.Len() != 4 || net.Seed().Len() != 8 {
		t.Errorf("saved network of %d layers over %d inputs", net.Len(), net.Seed().Len())
	}
	rows, _ := os.ReadFile(csvlog)
	if n := strings.Count(string(rows), "\n"); n != 4 {
		t.Errorf("csv log of %d lines", n)
	}
}

func TestRunErrorStopsProfile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile("bad.json.lzw", []byte("not a model"), 0644); err != nil {
		t.Fatal(err)
	}
	err := run([]string{"-pgo", "-synthetic", "isalnum", "-hidden", "4", "-resume", "-dstmodel", "bad.json.lzw",
		"-logdir", "logs"})
	if err == nil {
		t.Fatal("corrupt model resumed")
	}
	info, err := os.Stat(filepath.Join(dir, "default.pgo"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("profile not flushed")
	}
}

func TestRunBadFlags(t *testing.T) {
	if err := run([]string{"-synthetic", "digits"}); err == nil {
		t.Error("unknown synthetic dataset accepted")
	}
	if err := run([]string{"-synthetic", "isalnum", "-loss", "hinge"}); err == nil {
		t.Error("unknown loss accepted")
	}
	if err := run([]string{"-explore", "2"}); err == nil {
		t.Error("explore above 1 accepted")
	}
}

func TestSizes(t *testing.T) {
	got, err := sizes("64, 32")
	if err != nil || len(got) != 2 || got[0] != 64 || got[1] != 32 {
		t.Errorf("sizes = %v, %v", got, err)
	}
	if got, _ := sizes(""); got != nil {
		t.Errorf("empty sizes = %v", got)
	}
	if _, err := sizes("8,0"); err == nil {
		t.Error("zero size accepted")
	}
}
