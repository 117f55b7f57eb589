// Copyright Fieber IT, 2026. All rights reserved.

package vcard

import "strings"

// Class is the semantic category of a typed property, derived from its
// TYPE parameter tokens.
type Class string

const (
	ClassMobile Class = "mobile"
	ClassWork   Class = "work"
	ClassHome   Class = "home"
	ClassOther  Class = "other"
)

// Network identifies a recognized social network in an X-SOCIALPROFILE
// property.
type Network string

const (
	NetworkFacebook  Network = "facebook"
	NetworkXing      Network = "xing"
	NetworkLinkedIn  Network = "linkedin"
	NetworkInstagram Network = "instagram"
	NetworkTwitter   Network = "twitter"
	NetworkOther     Network = "other"
)

// ClassifyPhone maps TEL parameter tokens to a phone category. Mobile
// markers win over work markers, which win over home markers.
func ClassifyPhone(params []string) Class {
	if hasAny(params, "CELL", "MOBILE", "IPHONE") {
		return ClassMobile
	}
	if hasAny(params, "MAIN", "WORK", "BUSINESS") {
		return ClassWork
	}
	if hasAny(params, "HOME", "PRIVATE") {
		return ClassHome
	}
	return ClassOther
}

// ClassifyPlace maps EMAIL, ADR, and URL parameter tokens to work/home/other.
func ClassifyPlace(params []string) Class {
	if hasAny(params, "WORK", "BUSINESS") {
		return ClassWork
	}
	if hasAny(params, "HOME", "PRIVATE") {
		return ClassHome
	}
	return ClassOther
}

// ClassifyNetwork identifies the social network named in X-SOCIALPROFILE
// parameters. Matching is by substring, so "TYPE=twitter" and
// "X-USER=twitter.com" both count.
func ClassifyNetwork(params []string) Network {
	networks := []struct {
		marker string
		net    Network
	}{
		{"FACEBOOK", NetworkFacebook},
		{"XING", NetworkXing},
		{"LINKEDIN", NetworkLinkedIn},
		{"INSTAGRAM", NetworkInstagram},
		{"TWITTER", NetworkTwitter},
	}
	for _, n := range networks {
		for _, p := range params {
			if strings.Contains(p, n.marker) {
				return n.net
			}
		}
	}
	return NetworkOther
}

// Handle extracts the profile handle from an X-SOCIALPROFILE value: the
// segment after the last colon, so "x-apple:username" and plain
// "username" both yield "username".
func Handle(value string) string {
	if idx := strings.LastIndex(value, ":"); idx >= 0 {
		return value[idx+1:]
	}
	return value
}

// hasAny reports whether any of the (already uppercased) tokens equals one
// of the wanted markers.
func hasAny(tokens []string, wanted ...string) bool {
	for _, t := range tokens {
		for _, w := range wanted {
			if t == w {
				return true
			}
		}
	}
	return false
}
