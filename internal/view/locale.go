package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
	"golang.org/x/text/language"
)

var persianMonths = [12]string{
	"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
}

// Locale decides calendar, digits and UI strings.
type Locale struct {
	Tag      language.Tag
	Location *time.Location
	Strings  Strings
}

// NewLocale parses a BCP 47 tag such as "fa-IR". A nil location means UTC.
func NewLocale(lang string, loc *time.Location) (Locale, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return Locale{}, fmt.Errorf("parse locale %q: %w", lang, err)
	}
	if loc == nil {
		loc = time.UTC
	}

	return Locale{Tag: tag, Location: loc, Strings: PersianStrings()}, nil
}

func (l Locale) persian() bool {
	base, _ := l.Tag.Base()
	return base.String() == "fa"
}

// HTMLLang is the value for <html lang>.
func (l Locale) HTMLLang() string {
	return l.Tag.String()
}

// Dir is the text direction of the locale.
func (l Locale) Dir() string {
	switch base, _ := l.Tag.Base(); base.String() {
	case "fa", "ar", "he", "ur":
		return "rtl"
	}
	return "ltr"
}

// OGLocale renders the tag in Open Graph form, e.g. fa_IR.
func (l Locale) OGLocale() string {
	base, _ := l.Tag.Base()
	region, conf := l.Tag.Region()
	if conf == language.No {
		return base.String()
	}
	return base.String() + "_" + region.String()
}

// FormatDate renders the long calendar form: "۲۴ دی ۱۴۰۲" for Persian, "14 January 2024" otherwise.
func (l Locale) FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	loc := l.Location
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)

	if !l.persian() {
		return t.Format("2 January 2006")
	}

	pt := ptime.New(t)
	month := persianMonths[int(pt.Month())-1]
	return l.Digits(strconv.Itoa(pt.Day())) + " " + month + " " + l.Digits(strconv.Itoa(pt.Year()))
}

// Digits localizes ASCII digits in s.
func (l Locale) Digits(s string) string {
	if !l.persian() {
		return s
	}

	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return '۰' + (r - '0')
		}
		return r
	}, s)
}

// Number localizes an integer.
func (l Locale) Number(n int) string {
	return l.Digits(strconv.Itoa(n))
}
