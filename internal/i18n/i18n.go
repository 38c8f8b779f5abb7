// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides internationalization and localization support for connprompt.
// It uses the go-i18n library to load and manage translation files, allowing the
// prompts to be displayed in multiple languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

// bundle stores all the loaded translation messages from the locale files.
var bundle *i18n.Bundle

// localizer is used to translate messages into a specific language.
var localizer *i18n.Localizer

var currentLang string

// Init initializes the i18n bundle and sets up the localizer for a specific language.
// It parses all embedded YAML files from the 'locales' directory.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile(path.Join("locales", f.Name()))
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	currentLang = normalize(lang)
	localizer = i18n.NewLocalizer(bundle, currentLang, language.English.String())
}

// normalize maps the requested language onto the closest embedded locale.
func normalize(lang string) string {
	if lang == "" {
		return language.English.String()
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return language.English.String()
	}
	matcher := language.NewMatcher(bundle.LanguageTags())
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.English.String()
	}
	base, _ := bundle.LanguageTags()[idx].Base()
	return base.String()
}

// T translates a message by its ID.
// A single map argument is used as template data, any other arguments are
// applied fmt-style to the translated text. If the ID is unknown the ID
// itself is returned.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}

	msg, err := localizer.Localize(cfg)
	if err != nil {
		return messageID
	}
	if len(args) > 0 && strings.Contains(msg, "%") {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang changes the active language of the localizer.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language.
func GetLang() string {
	if localizer == nil {
		Init("en")
	}
	return currentLang
}

// GetAvailableLocales maps each embedded locale to its self-name.
func GetAvailableLocales() map[string]string {
	if bundle == nil {
		Init("en")
	}
	out := make(map[string]string)
	for _, tag := range bundle.LanguageTags() {
		name := display.Self.Name(tag)
		if name == "" {
			name = tag.String()
		}
		out[tag.String()] = name
	}
	return out
}

// Locales returns the embedded locale codes in sorted order.
func Locales() []string {
	av := GetAvailableLocales()
	out := make([]string, 0, len(av))
	for k := range av {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
