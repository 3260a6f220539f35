// Copyright (c) 2026 ToeiRei
// Rankscope - keyword ranking explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides internationalization and localization support for Rankscope.
// It uses the go-i18n library to load and manage translation files, allowing the
// console output and chart windows to be displayed in multiple languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
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

// printer formats numbers for the active language.
var printer *message.Printer

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
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	localizer = i18n.NewLocalizer(bundle, lang)
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	printer = message.NewPrinter(tag)
	currentLang = lang
}

// T translates a message by its ID. Extra arguments are applied with
// fmt.Sprintf to the translated text; a single map argument is passed to
// go-i18n as template data instead.
// If the i18n system has not been initialized, it will default to English.
// If a translation for the given ID is not found, the ID itself is used.
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
		msg = messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Number formats n with the digit grouping of the active language.
func Number(n int) string {
	if printer == nil {
		Init("en")
	}
	return printer.Sprintf("%d", n)
}

// SetLang changes the active language of the localizer.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language code.
func GetLang() string {
	if localizer == nil {
		Init("en")
	}
	return currentLang
}

// GetAvailableLocales maps every embedded locale code to its name in that
// language, e.g. "de" -> "Deutsch".
func GetAvailableLocales() map[string]string {
	out := make(map[string]string)
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		code := strings.TrimSuffix(f.Name(), path.Ext(f.Name()))
		name := code
		if tag, err := language.Parse(code); err == nil {
			if n := display.Self.Name(tag); n != "" {
				name = n
			}
		}
		out[code] = name
	}
	return out
}
