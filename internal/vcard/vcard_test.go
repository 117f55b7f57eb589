// Copyright Fieber IT, 2026. All rights reserved.

package vcard

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieberit/vcard2pdf/pkg/types"
)

const sampleCard = `BEGIN:VCARD
VERSION:3.0
PRODID:-//Apple Inc.//macOS 14.0//EN
N:Muster;Erika;;;
FN:Erika Muster
ORG:Musterfirma GmbH;Vertrieb;
TITLE:Sales Director
TEL;type=CELL;type=VOICE;type=pref:+49 170 1234567
TEL;type=WORK;type=VOICE:+49 30 555-0
EMAIL;type=INTERNET;type=WORK;type=pref:erika@musterfirma.example
ADR;type=WORK;type=pref:;;Musterstr. 12;Berlin;;10115;Germany
URL;type=WORK;type=pref:https://www.musterfirma.example
NOTE:First line.\nSecond line\, with comma.
X-SOCIALPROFILE;type=linkedin:x-apple:erika-muster
END:VCARD
`

func TestParse(t *testing.T) {
	card := Parse([]byte(sampleCard))

	assert.Equal(t, "Erika Muster", card.FormattedName)
	assert.Equal(t, "Musterfirma GmbH", card.Organization)
	assert.Equal(t, "Vertrieb", card.Department)
	assert.Equal(t, "Sales Director", card.Title)
	assert.Equal(t, "3.0", card.Version)
	assert.Equal(t, "-//Apple Inc.//macOS 14.0//EN", card.ProdID)

	require.Len(t, card.Phones, 2)
	assert.Equal(t, "+49 170 1234567", card.Phones[0].Value)
	assert.Equal(t, []string{"CELL", "VOICE", "PREF"}, card.Phones[0].Params)
	assert.Equal(t, []string{"WORK", "VOICE"}, card.Phones[1].Params)

	require.Len(t, card.Emails, 1)
	assert.Equal(t, "erika@musterfirma.example", card.Emails[0].Value)

	require.Len(t, card.Addresses, 1)
	assert.Equal(t, ";;Musterstr. 12;Berlin;;10115;Germany", card.Addresses[0].Value)

	require.Len(t, card.URLs, 1)
	require.Len(t, card.SocialProfiles, 1)

	require.Len(t, card.Notes, 1)
	assert.Equal(t, "First line.\nSecond line, with comma.", card.Notes[0])
}

func TestParseFirstOccurrenceWins(t *testing.T) {
	card := Parse([]byte("FN:First Name\nFN:Second Name\nORG:First Org\nORG:Second Org\nTITLE:First\nTITLE:Second\n"))

	assert.Equal(t, "First Name", card.FormattedName)
	assert.Equal(t, "First Org", card.Organization)
	assert.Equal(t, "First", card.Title)
}

func TestParseOrg(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantOrg  string
		wantDept string
	}{
		{
			name:    "organization only",
			line:    "ORG:Acme Corp",
			wantOrg: "Acme Corp",
		},
		{
			name:    "trailing semicolon stripped",
			line:    "ORG:Acme Corp;",
			wantOrg: "Acme Corp",
		},
		{
			name:     "organization with department",
			line:     "ORG:Acme Corp;Engineering",
			wantOrg:  "Acme Corp",
			wantDept: "Engineering",
		},
		{
			name:    "blank department dropped",
			line:    "ORG:Acme Corp;  ",
			wantOrg: "Acme Corp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := Parse([]byte(tt.line + "\n"))
			assert.Equal(t, tt.wantOrg, card.Organization)
			assert.Equal(t, tt.wantDept, card.Department)
		})
	}
}

func TestParseUnfolding(t *testing.T) {
	// Continuation lines start with a space or tab; the leading byte is
	// removed and the rest appended to the previous logical line.
	input := "NOTE:A long note that\n continues here\n\tand here\nFN:Unf old\n"
	card := Parse([]byte(input))

	require.Len(t, card.Notes, 1)
	assert.Equal(t, "A long note thatcontinues hereand here", card.Notes[0])
	assert.Equal(t, "Unf old", card.FormattedName)
}

func TestParseIgnoresMalformedLines(t *testing.T) {
	input := "garbage without colon\nFN:Valid Name\n   \nX-UNKNOWN:whatever\n"
	card := Parse([]byte(input))

	assert.Equal(t, "Valid Name", card.FormattedName)
	assert.Empty(t, card.Phones)
}

func TestParseGroupedURL(t *testing.T) {
	card := Parse([]byte("item1.URL;type=pref:https://example.com\nitem1.X-ABLabel:_$!<HomePage>!$_\n"))

	require.Len(t, card.URLs, 1)
	assert.Equal(t, "https://example.com", card.URLs[0].Value)
	assert.Equal(t, []string{"PREF"}, card.URLs[0].Params)
}

func TestParsePhoto(t *testing.T) {
	raw := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}
	encoded := base64.StdEncoding.EncodeToString(raw)

	t.Run("decodes folded base64", func(t *testing.T) {
		mid := len(encoded) / 2
		input := "PHOTO;ENCODING=b;TYPE=JPEG:" + encoded[:mid] + "\n " + encoded[mid:] + "\n"
		card := Parse([]byte(input))
		assert.Equal(t, raw, card.Photo)
	})

	t.Run("discards invalid data", func(t *testing.T) {
		card := Parse([]byte("PHOTO;ENCODING=b:!!!not-base64!!!\n"))
		assert.Nil(t, card.Photo)
	})
}

func TestParseParamTokens(t *testing.T) {
	// Bare tokens and key=value parameters both contribute their value
	// side, uppercased.
	card := Parse([]byte("TEL;HOME;type=voice;TYPE=pref:+49 30 1234\n"))

	require.Len(t, card.Phones, 1)
	assert.Equal(t, []string{"HOME", "VOICE", "PREF"}, card.Phones[0].Params)
}

func TestParseCRLF(t *testing.T) {
	card := Parse([]byte("BEGIN:VCARD\r\nFN:Windows Export\r\nEND:VCARD\r\n"))
	assert.Equal(t, "Windows Export", card.FormattedName)
}

func TestAddressLines(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{
			name:  "street city and postal",
			value: ";;Musterstr. 12;Berlin;;10115;Germany",
			want:  []string{"Musterstr. 12", "10115 Berlin"},
		},
		{
			name:  "street only",
			value: ";;Hauptweg 1;;;;",
			want:  []string{"Hauptweg 1"},
		},
		{
			name:  "city without postal code",
			value: ";;;Hamburg;;;",
			want:  []string{"Hamburg"},
		},
		{
			name:  "empty value",
			value: "",
			want:  nil,
		},
		{
			name:  "short component list",
			value: ";;Kurze Str. 5",
			want:  []string{"Kurze Str. 5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddressLines(tt.value))
		})
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("/nonexistent/card.vcf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading vcard file")
}

func TestParseEmptyInput(t *testing.T) {
	card := Parse(nil)
	assert.Equal(t, &types.Card{}, card)
}
