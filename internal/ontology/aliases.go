package ontology

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed aliases.yaml
var aliasesYAML []byte

// AliasTables resolves type-name synonyms to canonical type keys. The zero
// value resolves nothing; tables are read-only once loaded.
type AliasTables struct {
	detail   map[string]string
	list     map[string]string
	listable map[string]struct{}
}

type aliasDocument struct {
	Detail   map[string]string `yaml:"detail"`
	List     map[string]string `yaml:"list"`
	Listable []string          `yaml:"listable"`
}

var defaultTables = mustLoadAliases(aliasesYAML)

// LoadAliases parses an alias document. The list table is the union of the
// detail and list sections.
func LoadAliases(data []byte) (AliasTables, error) {
	var doc aliasDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return AliasTables{}, fmt.Errorf("parse alias tables: %w", err)
	}

	tables := AliasTables{
		detail:   make(map[string]string, len(doc.Detail)),
		list:     make(map[string]string, len(doc.Detail)+len(doc.List)),
		listable: make(map[string]struct{}, len(doc.Listable)),
	}
	for alias, target := range doc.Detail {
		key := strings.ToLower(strings.TrimSpace(alias))
		tables.detail[key] = target
		tables.list[key] = target
	}
	for alias, target := range doc.List {
		tables.list[strings.ToLower(strings.TrimSpace(alias))] = target
	}
	for _, typ := range doc.Listable {
		tables.listable[typ] = struct{}{}
	}

	if err := tables.validate(); err != nil {
		return AliasTables{}, err
	}
	return tables, nil
}

// validate keeps resolution idempotent: no alias may point at another alias.
func (t AliasTables) validate() error {
	for name, table := range map[string]map[string]string{"detail": t.detail, "list": t.list} {
		for alias, target := range table {
			if target == "" {
				return fmt.Errorf("%s alias %q has an empty target", name, alias)
			}
			if next, ok := table[strings.ToLower(target)]; ok && next != target {
				return fmt.Errorf("%s alias %q targets %q which is itself an alias of %q", name, alias, target, next)
			}
		}
	}
	for typ := range t.listable {
		if target, ok := t.list[strings.ToLower(typ)]; ok && target != typ {
			return fmt.Errorf("listable type %q is an alias of %q", typ, target)
		}
	}
	return nil
}

func mustLoadAliases(data []byte) AliasTables {
	tables, err := LoadAliases(data)
	if err != nil {
		panic(err)
	}
	return tables
}

// NormalizeDetail maps raw to its canonical type, or returns raw unchanged.
func (t AliasTables) NormalizeDetail(raw string) string {
	if target, ok := t.detail[strings.ToLower(raw)]; ok {
		return target
	}
	return raw
}

// NormalizeList maps raw to a list-capable canonical type. The boolean is
// false when the type has no collection view.
func (t AliasTables) NormalizeList(raw string) (string, bool) {
	typ := raw
	if target, ok := t.list[strings.ToLower(raw)]; ok {
		typ = target
	}
	if _, ok := t.listable[typ]; !ok {
		return "", false
	}
	return typ, true
}

// NormalizeDetailType resolves raw against the built-in detail aliases.
func NormalizeDetailType(raw string) string {
	return defaultTables.NormalizeDetail(raw)
}

// NormalizeListType resolves raw against the built-in list aliases and the
// list-capable allow-list.
func NormalizeListType(raw string) (string, bool) {
	return defaultTables.NormalizeList(raw)
}
