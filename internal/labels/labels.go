// Copyright Fieber IT, 2026. All rights reserved.

// Package labels holds the human-readable strings for contact sheet
// sections and field labels. Catalogs are keyed maps so a YAML file can
// override individual entries for localization.
package labels

import (
	"fmt"
	"os"
	"sort"

	"go.yaml.in/yaml/v3"
)

// Catalog keys.
const (
	Position   = "position"
	Department = "department"
	Mobile     = "mobile"
	MainOffice = "main_office"
	Work       = "work"
	Home       = "home"
	Address    = "address"
	Homepage   = "homepage"
	Website    = "website"
	Facebook   = "facebook"
	Xing       = "xing"
	LinkedIn   = "linkedin"
	Instagram  = "instagram"
	Twitter    = "twitter"

	PhoneHeading         = "phone_heading"
	EmailHeading         = "email_heading"
	EmailHeadingPlural   = "email_heading_plural"
	AddressHeading       = "address_heading"
	AddressHeadingPlural = "address_heading_plural"
	WebsiteHeading       = "website_heading"
	WebsiteHeadingPlural = "website_heading_plural"
	SocialHeading        = "social_heading"
	NotesHeading         = "notes_heading"

	// GeneratedBy is a format string taking the tool version.
	GeneratedBy = "generated_by"
)

// Catalog maps label keys to display strings.
type Catalog map[string]string

// Get returns the display string for key, or the key itself when the
// catalog has no entry. Returning the key keeps a missing entry visible
// on the page instead of silently dropping a label.
func (c Catalog) Get(key string) string {
	if v, ok := c[key]; ok {
		return v
	}
	return key
}

// ColumnKeys lists the label keys that share the global label column on
// the contact sheet. The widest of these determines the column width.
func ColumnKeys() []string {
	return []string{
		Position, Department, Mobile, MainOffice, Work, Home,
		Address, Homepage, Website,
		Facebook, Xing, LinkedIn, Instagram, Twitter,
	}
}

// English returns the default label catalog.
func English() Catalog {
	return Catalog{
		Position:   "Position",
		Department: "Department",
		Mobile:     "Mobile",
		MainOffice: "Main office",
		Work:       "Work",
		Home:       "Home",
		Address:    "Address",
		Homepage:   "Homepage",
		Website:    "Website",
		Facebook:   "Facebook",
		Xing:       "XING",
		LinkedIn:   "LinkedIn",
		Instagram:  "Instagram",
		Twitter:    "Twitter",

		PhoneHeading:         "Phone",
		EmailHeading:         "Email",
		EmailHeadingPlural:   "Email(s)",
		AddressHeading:       "Address",
		AddressHeadingPlural: "Addresses",
		WebsiteHeading:       "Website",
		WebsiteHeadingPlural: "Website(s)",
		SocialHeading:        "Social Media",
		NotesHeading:         "Notes",

		GeneratedBy: "Generated by vcard2pdf %s",
	}
}

// German returns the German label catalog.
func German() Catalog {
	return Catalog{
		Position:   "Position",
		Department: "Abteilung",
		Mobile:     "Mobil",
		MainOffice: "Zentrale",
		Work:       "Geschäftlich",
		Home:       "Privat",
		Address:    "Adresse",
		Homepage:   "Homepage",
		Website:    "Website",
		Facebook:   "Facebook",
		Xing:       "XING",
		LinkedIn:   "LinkedIn",
		Instagram:  "Instagram",
		Twitter:    "Twitter",

		PhoneHeading:         "Telefon",
		EmailHeading:         "E-Mail",
		EmailHeadingPlural:   "E-Mail(s)",
		AddressHeading:       "Adresse",
		AddressHeadingPlural: "Adressen",
		WebsiteHeading:       "Website",
		WebsiteHeadingPlural: "Website(s)",
		SocialHeading:        "Social Media",
		NotesHeading:         "Notizen",

		GeneratedBy: "Generiert durch vcard2pdf %s",
	}
}

// ForLocale returns the built-in catalog for a locale code. An empty
// locale selects English.
func ForLocale(locale string) (Catalog, error) {
	switch locale {
	case "", "en":
		return English(), nil
	case "de":
		return German(), nil
	}
	return nil, fmt.Errorf("unknown locale %q (built-in: en, de)", locale)
}

// LoadOverrides reads a YAML file mapping label keys to replacement
// strings and applies it on top of base, returning a new catalog. A key
// not present in base is rejected so typos surface instead of silently
// leaving the default in place.
func LoadOverrides(path string, base Catalog) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading labels file %s: %w", path, err)
	}

	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing labels file %s: %w", path, err)
	}

	merged := make(Catalog, len(base))
	for k, v := range base {
		merged[k] = v
	}

	// Apply in sorted order so the first error is deterministic.
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, ok := base[k]; !ok {
			return nil, fmt.Errorf("labels file %s: unknown label key %q", path, k)
		}
		merged[k] = overrides[k]
	}

	return merged, nil
}
