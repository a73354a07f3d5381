package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"heritage/api/internal/config"
	"heritage/api/internal/gateway"
	"heritage/api/internal/ontology"
	"heritage/api/internal/rdf"
	"heritage/api/internal/resource"
)

var cfg = config.Load()

var (
	ontologyBase   string
	ontologyPrefix string
	storeURL       string
	storeTimeout   time.Duration
	describeFormat string
)

var rootCmd = &cobra.Command{
	Use:           "heritagectl",
	Short:         "Inspect canonical entity URIs and their RDF descriptions",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var uriCmd = &cobra.Command{
	Use:   "uri",
	Short: "Build and parse canonical entity URIs",
}

var uriBuildCmd = &cobra.Command{
	Use:   "build <type> <id>",
	Short: "Print the canonical URI for an entity",
	Args:  cobra.ExactArgs(2),
	RunE:  runURIBuild,
}

var uriParseCmd = &cobra.Command{
	Use:   "parse <uri>",
	Short: "Split a canonical or legacy fragment URI into type and id",
	Args:  cobra.ExactArgs(1),
	RunE:  runURIParse,
}

var typeCmd = &cobra.Command{
	Use:   "type <name>",
	Short: "Show how a type name or alias normalizes",
	Args:  cobra.ExactArgs(1),
	RunE:  runType,
}

var describeCmd = &cobra.Command{
	Use:   "describe <type> <id>",
	Short: "Fetch an entity from the knowledge store and print it as RDF",
	Args:  cobra.ExactArgs(2),
	RunE:  runDescribe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ontologyBase, "base", cfg.OntologyBase, "ontology base URI")
	rootCmd.PersistentFlags().StringVar(&ontologyPrefix, "prefix", cfg.OntologyPrefix, "ontology prefix used in Turtle output")

	describeCmd.Flags().StringVarP(&describeFormat, "format", "f", "ttl", "output format: ttl, rdf, xml, jsonld")
	describeCmd.Flags().StringVar(&storeURL, "store", cfg.KnowledgeStoreURL, "knowledge store base URL")
	describeCmd.Flags().DurationVar(&storeTimeout, "timeout", cfg.KnowledgeStoreTimeout, "knowledge store request timeout")

	uriCmd.AddCommand(uriBuildCmd)
	uriCmd.AddCommand(uriParseCmd)
	rootCmd.AddCommand(uriCmd)
	rootCmd.AddCommand(typeCmd)
	rootCmd.AddCommand(describeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func namespace() ontology.Namespace {
	return ontology.NewNamespace(ontologyBase, ontologyPrefix)
}

func runURIBuild(cmd *cobra.Command, args []string) error {
	typ := ontology.NormalizeDetailType(args[0])
	fmt.Fprintln(cmd.OutOrStdout(), namespace().CanonicalEntityURI(typ, args[1]))
	return nil
}

func runURIParse(cmd *cobra.Command, args []string) error {
	ref, ok := namespace().ParseEntityURI(args[0])
	if !ok {
		return fmt.Errorf("not an entity URI: %s", args[0])
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "type: %s\n", ref.Type)
	fmt.Fprintf(out, "id:   %s\n", ref.ID)
	return nil
}

func runType(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	detail := ontology.NormalizeDetailType(args[0])
	fmt.Fprintf(out, "detail: %s\n", detail)
	if list, ok := ontology.NormalizeListType(args[0]); ok {
		fmt.Fprintf(out, "list:   %s\n", list)
	} else {
		fmt.Fprintln(out, "list:   (not listable)")
	}
	return nil
}

func runDescribe(cmd *cobra.Command, args []string) error {
	format, ok := resource.ParseFormat(describeFormat)
	if !ok || format == resource.FormatHTML {
		return fmt.Errorf("unsupported format %q", describeFormat)
	}

	ns := namespace()
	ref := ontology.EntityRef{Type: ontology.NormalizeDetailType(args[0]), ID: args[1]}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	client := gateway.New(storeURL, storeTimeout)
	props, err := client.Fetch(ctx, ref.Type, ref.ID)
	if err != nil {
		return fmt.Errorf("fetch %s/%s: %w", ref.Type, ref.ID, err)
	}

	body, err := rdf.Serialize(format, ns, ns.CanonicalEntityURI(ref.Type, ref.ID), props)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(body)
	return err
}
