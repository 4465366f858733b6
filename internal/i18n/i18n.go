// Package i18n holds the user-facing strings of the bot and renders them in
// the configured locale.
package i18n

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies a message. Its value is the English format string; numbers
// use %s (see Printer.Sprintf).
type Key string

var locales = map[string]language.Tag{
	"en": language.English,
	"id": language.Indonesian,
}

var builder = func() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range map[language.Tag]map[Key]string{
		language.English:    english,
		language.Indonesian: indonesian,
	} {
		for k, v := range entries {
			if err := b.SetString(tag, string(k), v); err != nil {
				panic(fmt.Sprintf("i18n: %s %q: %v", tag, k, err))
			}
		}
	}
	return b
}()

// Printer formats messages for one locale. It is safe for concurrent use.
type Printer struct {
	locale string
	p      *message.Printer
}

// New returns a printer for a locale code such as "en" or "id".
func New(locale string) (*Printer, error) {
	code := strings.ToLower(strings.TrimSpace(locale))
	tag, ok := locales[code]
	if !ok {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}
	return &Printer{locale: code, p: message.NewPrinter(tag, message.Catalog(builder))}, nil
}

// MustNew is New for locales known at compile time.
func MustNew(locale string) *Printer {
	p, err := New(locale)
	if err != nil {
		panic(err)
	}
	return p
}

// Locale returns the locale code of the printer.
func (p *Printer) Locale() string { return p.locale }

// Sprintf renders key with args. Integers are rendered as bare digits; the
// catalog formats them with %s so the locale never adds digit grouping.
func (p *Printer) Sprintf(key Key, args ...interface{}) string {
	return p.p.Sprintf(string(key), plainNumbers(args)...)
}

func plainNumbers(args []interface{}) []interface{} {
	out := make([]interface{}, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case int:
			out[i] = strconv.Itoa(v)
		case int64:
			out[i] = strconv.FormatInt(v, 10)
		case int32:
			out[i] = strconv.FormatInt(int64(v), 10)
		case uint:
			out[i] = strconv.FormatUint(uint64(v), 10)
		case uint64:
			out[i] = strconv.FormatUint(v, 10)
		default:
			out[i] = a
		}
	}
	return out
}
