// Copyright Fieber IT, 2026. All rights reserved.

package types

// RenderStatus indicates the state of vCard-to-PDF rendering for a source file.
type RenderStatus string

const (
	RenderNone   RenderStatus = "none"
	RenderDone   RenderStatus = "rendered"
	RenderFailed RenderStatus = "failed"
)

// Property holds one occurrence of a repeating vCard property (TEL, EMAIL,
// ADR, URL, X-SOCIALPROFILE) together with its TYPE parameter tokens.
// Tokens are uppercased at parse time; values keep their input form except
// where the vCard escaping rules apply (ADR, NOTE).
type Property struct {
	// Value is the property value, unescaped where the format requires it.
	Value string `json:"value" yaml:"value"`

	// Params lists the uppercased parameter tokens in input order
	// (e.g. "WORK", "VOICE", "PREF").
	Params []string `json:"params,omitempty" yaml:"params,omitempty"`
}

// Card is the structured form of one parsed vCard 3.0 contact.
// Every field is optional; the renderer drops sections whose fields are empty.
type Card struct {
	// FormattedName is the FN property (display name). First occurrence wins.
	FormattedName string `json:"formatted_name,omitempty" yaml:"formatted_name,omitempty"`

	// Organization is the first component of the ORG property.
	Organization string `json:"organization,omitempty" yaml:"organization,omitempty"`

	// Department is the second ORG component, when present and non-blank.
	Department string `json:"department,omitempty" yaml:"department,omitempty"`

	// Title is the TITLE property (job title). First occurrence wins.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Phones collects TEL properties in input order.
	Phones []Property `json:"phones,omitempty" yaml:"phones,omitempty"`

	// Emails collects EMAIL properties in input order.
	Emails []Property `json:"emails,omitempty" yaml:"emails,omitempty"`

	// Addresses collects ADR properties, values unescaped.
	Addresses []Property `json:"addresses,omitempty" yaml:"addresses,omitempty"`

	// URLs collects URL properties, including grouped forms like "ITEM1.URL".
	URLs []Property `json:"urls,omitempty" yaml:"urls,omitempty"`

	// SocialProfiles collects X-SOCIALPROFILE properties.
	SocialProfiles []Property `json:"social_profiles,omitempty" yaml:"social_profiles,omitempty"`

	// Notes collects NOTE properties, unescaped.
	Notes []string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Photo holds the base64-decoded PHOTO bytes, or nil when the property
	// is absent or does not decode.
	Photo []byte `json:"-" yaml:"-"`

	// Version is the VERSION property, kept verbatim for the page footer.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// ProdID is the PRODID property, kept verbatim for the page footer.
	ProdID string `json:"prodid,omitempty" yaml:"prodid,omitempty"`
}
