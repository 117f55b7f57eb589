// Copyright Fieber IT, 2026. All rights reserved.

// Package vcard parses vCard 3.0 text into structured contact records and
// classifies typed properties by their TYPE parameters.
package vcard

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/fieberit/vcard2pdf/pkg/types"
)

// ParseFile reads and parses a .vcf file.
func ParseFile(path string) (*types.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vcard file %s: %w", path, err)
	}
	return Parse(data), nil
}

// Parse parses vCard 3.0 text into a Card. Parsing is lenient: malformed
// lines, unknown properties, and undecodable photo data are skipped rather
// than reported. Missing properties leave their Card fields zero.
func Parse(data []byte) *types.Card {
	card := &types.Card{}

	for _, line := range unfold(string(data)) {
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		name, params := splitKey(line[:idx])
		value := strings.TrimSpace(line[idx+1:])

		switch {
		case name == "FN":
			if card.FormattedName == "" {
				card.FormattedName = value
			}
		case name == "ORG":
			if card.Organization == "" {
				org, dept := splitOrg(value)
				card.Organization = org
				card.Department = dept
			}
		case name == "TITLE":
			if card.Title == "" {
				card.Title = value
			}
		case name == "TEL":
			card.Phones = append(card.Phones, types.Property{Value: value, Params: params})
		case name == "EMAIL":
			card.Emails = append(card.Emails, types.Property{Value: value, Params: params})
		case name == "ADR":
			card.Addresses = append(card.Addresses, types.Property{Value: Unescape(value), Params: params})
		case name == "URL" || strings.HasSuffix(name, ".URL"):
			card.URLs = append(card.URLs, types.Property{Value: value, Params: params})
		case name == "NOTE":
			card.Notes = append(card.Notes, Unescape(value))
		case name == "X-SOCIALPROFILE":
			card.SocialProfiles = append(card.SocialProfiles, types.Property{Value: value, Params: params})
		case name == "PHOTO":
			if photo, err := decodePhoto(value); err == nil {
				card.Photo = photo
			}
		case name == "VERSION":
			card.Version = value
		case name == "PRODID":
			card.ProdID = value
		}
	}

	return card
}

// unfold merges folded physical lines into logical lines. A line starting
// with a space or tab continues the previous line with the leading byte
// removed (RFC 2425 § 5.8.1). Blank lines and a leading continuation with
// no line to attach to are dropped.
func unfold(text string) []string {
	var logical []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSuffix(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if (line[0] == ' ' || line[0] == '\t') && len(logical) > 0 {
			logical[len(logical)-1] += line[1:]
			continue
		}
		logical = append(logical, line)
	}
	return logical
}

// splitKey splits the part before the ':' into the uppercased property name
// and its parameter tokens. For "key=value" parameters only the value side
// is kept; all tokens are uppercased and trimmed.
func splitKey(keyPart string) (name string, params []string) {
	pieces := strings.Split(keyPart, ";")
	name = strings.ToUpper(pieces[0])
	for _, p := range pieces[1:] {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if idx := strings.Index(p, "="); idx >= 0 {
			p = p[idx+1:]
		}
		params = append(params, strings.ToUpper(p))
	}
	return name, params
}

// splitOrg splits an ORG value into organization and department components.
func splitOrg(value string) (org, dept string) {
	parts := strings.Split(strings.TrimRight(value, ";"), ";")
	org = parts[0]
	if len(parts) > 1 {
		dept = strings.TrimSpace(parts[1])
	}
	return org, dept
}

// Unescape resolves the vCard text escapes: \n and \N become newlines,
// \, and \; become the literal characters.
func Unescape(s string) string {
	r := strings.NewReplacer(`\n`, "\n", `\N`, "\n", `\,`, ",", `\;`, ";")
	return r.Replace(s)
}

// AddressLines extracts the printable lines from a structured (already
// unescaped) ADR value. The components are semicolon-separated; index 2 is
// the street, 3 the city, 5 the postal code. Returns the street line and a
// "postal city" line, dropping whichever is blank.
func AddressLines(value string) []string {
	parts := strings.Split(value, ";")
	component := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}

	var lines []string
	if street := component(2); street != "" {
		lines = append(lines, street)
	}
	if cityLine := strings.TrimSpace(component(5) + " " + component(3)); cityLine != "" {
		lines = append(lines, cityLine)
	}
	return lines
}

// decodePhoto decodes inline base64 PHOTO data. Whitespace is stripped
// first; Apple Contacts folds photo data across many continuation lines.
func decodePhoto(value string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, value)
	if compact == "" {
		return nil, fmt.Errorf("empty photo data")
	}
	return base64.StdEncoding.DecodeString(compact)
}
