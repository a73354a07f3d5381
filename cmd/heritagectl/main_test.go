package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testBase = "https://w3id.org/heritage/ontology"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--base", testBase, "--prefix", "heritage"))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "heritagectl" {
		t.Errorf("expected Use 'heritagectl', got %q", rootCmd.Use)
	}
	if !uriCmd.HasSubCommands() {
		t.Error("uri should have subcommands")
	}
}

func TestURIBuildNormalizesAlias(t *testing.T) {
	out, err := execute(t, "uri", "build", "museum", "12")
	if err != nil {
		t.Fatalf("uri build: %v", err)
	}
	if strings.TrimSpace(out) != testBase+"/id/institution/12" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestURIParse(t *testing.T) {
	out, err := execute(t, "uri", "parse", testBase+"/id/actor/ulan/500115588")
	if err != nil {
		t.Fatalf("uri parse: %v", err)
	}
	if !strings.Contains(out, "type: actor") || !strings.Contains(out, "id:   ulan/500115588") {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := execute(t, "uri", "parse", "https://example.org/nothing"); err == nil {
		t.Fatal("expected error for non-entity URI")
	}
}

func TestTypeCommand(t *testing.T) {
	out, err := execute(t, "type", "collections")
	if err != nil {
		t.Fatalf("type: %v", err)
	}
	if !strings.Contains(out, "detail: collections") || !strings.Contains(out, "list:   artwork") {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = execute(t, "type", "venue")
	if err != nil {
		t.Fatalf("type: %v", err)
	}
	if !strings.Contains(out, "detail: place") || !strings.Contains(out, "(not listable)") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDescribeFetchesAndSerializes(t *testing.T) {
	var requested string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"label":"Water Lilies"}]}`))
	}))
	defer upstream.Close()

	out, err := execute(t, "describe", "work", "88", "--format", "ttl", "--store", upstream.URL)
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if requested != "/get_object_any_type/artwork/88" {
		t.Fatalf("unexpected upstream path %q", requested)
	}
	if !strings.Contains(out, "<"+testBase+"/id/artwork/88> <"+testBase+"#label> \"Water Lilies\" .") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDescribeRejectsHTML(t *testing.T) {
	if _, err := execute(t, "describe", "artwork", "7", "--format", "html"); err == nil {
		t.Fatal("expected error for html format")
	}
}
