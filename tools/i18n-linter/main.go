// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the Go sources. It reports
// keys passed to i18n.T that the primary locale lacks, keys of the primary
// locale that other locales lack, orphaned keys and string literals that
// look like untranslated user facing text.
//
// Usage:
//
//	go run ./tools/i18n-linter [-root .] [-locales internal/i18n/locales] [-primary en.yaml]
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location stores the file and line number of a found string.
type Location struct {
	Filepath string
	Line     int
}

// report is the outcome of one lint run.
type report struct {
	undefined    []string            // used in code, absent from the primary locale
	orphaned     []string            // in the primary locale, never used
	missing      map[string][]string // locale file -> keys it lacks
	untranslated map[string][]Location
}

func (r report) failed() bool {
	return len(r.undefined) > 0 || len(r.missing) > 0
}

var (
	tCallRe   = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	keyLitRe  = regexp.MustCompile(`"([a-z_]+\.[a-z_][a-z\._]*)"`)
	callLitRe = regexp.MustCompile(`([a-zA-Z0-9_]+\.)?([a-zA-Z0-9_]+)\("([^"]+)"`)
	keyRe     = regexp.MustCompile(`^[a-z_]+\.[a-z\._]+$`)
	allCapsRe = regexp.MustCompile(`^[A-Z_]+$`)
	formatRe  = regexp.MustCompile(`^[\s%.,:;()#\d\w-]*%[\s\w-]*$`)
)

// functions whose string arguments are never user facing text
var ignoredFuncs = map[string]struct{}{
	"Print": {}, "Println": {}, "Printf": {}, "Fatal": {}, "Fatalf": {},
	"WriteString": {}, "Errorf": {}, "Debugf": {}, "Infof": {}, "Warnf": {},
	"New": {}, "Getenv": {}, "NewBinding": {}, "WithKeys": {}, "Contains": {},
}

func main() {
	root := flag.String("root", ".", "project root to scan")
	locales := flag.String("locales", "internal/i18n/locales", "directory holding the locale files")
	primary := flag.String("primary", "en.yaml", "locale file treated as the source of truth")
	flag.Parse()

	r, err := lint(*root, filepath.Join(*root, *locales), *primary)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-linter: %v\n", err)
		os.Exit(2)
	}
	printReport(os.Stdout, r)
	if r.failed() {
		os.Exit(1)
	}
}

func lint(root, localesDir, primary string) (report, error) {
	r := report{missing: map[string][]string{}}

	tKeys, litKeys, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("scanning sources: %w", err)
	}
	primaryKeys, err := loadKeysFromLocale(filepath.Join(localesDir, primary))
	if err != nil {
		return r, fmt.Errorf("loading primary locale %s: %w", primary, err)
	}

	for key := range tKeys {
		if _, ok := primaryKeys[key]; !ok {
			r.undefined = append(r.undefined, key)
		}
	}
	for key := range primaryKeys {
		_, inT := tKeys[key]
		_, inLit := litKeys[key]
		if !inT && !inLit {
			r.orphaned = append(r.orphaned, key)
		}
	}
	sort.Strings(r.undefined)
	sort.Strings(r.orphaned)

	files, err := filepath.Glob(filepath.Join(localesDir, "*.yaml"))
	if err != nil {
		return r, err
	}
	for _, file := range files {
		if filepath.Base(file) == primary {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return r, fmt.Errorf("loading %s: %w", file, err)
		}
		var lacking []string
		for key := range primaryKeys {
			if _, ok := keys[key]; !ok {
				lacking = append(lacking, key)
			}
		}
		if len(lacking) > 0 {
			sort.Strings(lacking)
			r.missing[filepath.Base(file)] = lacking
		}
	}

	r.untranslated, err = findUntranslatedStrings(root, primaryKeys)
	return r, err
}

func printReport(w io.Writer, r report) {
	section := func(title string, items []string) {
		fmt.Fprintf(w, "--- %s ---\n", title)
		if len(items) == 0 {
			fmt.Fprintln(w, "  none")
		}
		for _, item := range items {
			fmt.Fprintf(w, "  - %s\n", item)
		}
	}

	section("Used but not defined in the primary locale", r.undefined)
	section("Orphaned keys", r.orphaned)

	locales := make([]string, 0, len(r.missing))
	for name := range r.missing {
		locales = append(locales, name)
	}
	sort.Strings(locales)
	for _, name := range locales {
		section("Missing in "+name, r.missing[name])
	}

	literals := make([]string, 0, len(r.untranslated))
	for literal := range r.untranslated {
		loc := r.untranslated[literal][0]
		literals = append(literals, fmt.Sprintf("%q (%s:%d)", literal, loc.Filepath, loc.Line))
	}
	sort.Strings(literals)
	section("Potentially untranslated strings", literals)
}

// walkSources calls fn for every non-test Go file below root. Directories
// starting with "_" or "." and the tools directory are skipped.
func walkSources(root string, fn func(path string, content []byte) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return fn(path, content)
	})
}

// findUsedKeys returns the keys passed to i18n.T and, separately, string
// literals that merely look like keys.
func findUsedKeys(root string) (tKeys, litKeys map[string]struct{}, err error) {
	tKeys = map[string]struct{}{}
	litKeys = map[string]struct{}{}
	err = walkSources(root, func(_ string, content []byte) error {
		for _, m := range tCallRe.FindAllSubmatch(content, -1) {
			tKeys[string(m[1])] = struct{}{}
		}
		for _, m := range keyLitRe.FindAllSubmatch(content, -1) {
			litKeys[string(m[1])] = struct{}{}
		}
		return nil
	})
	return tKeys, litKeys, err
}

// findUntranslatedStrings scans for hardcoded strings that might need translation.
func findUntranslatedStrings(root string, allKeys map[string]struct{}) (map[string][]Location, error) {
	untranslated := make(map[string][]Location)
	err := walkSources(root, func(path string, content []byte) error {
		for i, line := range strings.Split(string(content), "\n") {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "import") {
				continue
			}
			for _, m := range callLitRe.FindAllStringSubmatch(line, -1) {
				if _, ignored := ignoredFuncs[m[2]]; ignored {
					continue
				}
				if looksLikeCode(m[3], allKeys) {
					continue
				}
				untranslated[m[3]] = append(untranslated[m[3]], Location{Filepath: path, Line: i + 1})
			}
		}
		return nil
	})
	return untranslated, err
}

// looksLikeCode filters out literals that are keys, identifiers or format
// strings rather than text.
func looksLikeCode(literal string, allKeys map[string]struct{}) bool {
	if _, ok := allKeys[literal]; ok {
		return true
	}
	switch {
	case keyRe.MatchString(literal),
		len(literal) < 4,
		!strings.Contains(literal, " "),
		strings.HasPrefix(literal, "file:"),
		strings.HasPrefix(literal, "http"),
		allCapsRe.MatchString(literal),
		formatRe.MatchString(literal):
		return true
	}
	upper := strings.ToUpper(literal)
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE ", "DROP "} {
		if strings.HasPrefix(upper, kw) {
			return true
		}
	}
	return strings.Contains(literal, " = ?")
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into dot-separated keys.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	case []any:
		for i, val := range v {
			flattenYAML(fmt.Sprintf("%s[%d]", prefix, i), val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
