// Copyright Fieber IT, 2026. All rights reserved.

package layout

import (
	"strings"

	"github.com/fieberit/vcard2pdf/internal/vcard"
)

// profileBases maps each recognized network to its profile URL prefix.
var profileBases = map[vcard.Network]string{
	vcard.NetworkFacebook:  "https://www.facebook.com/",
	vcard.NetworkXing:      "https://www.xing.com/profile/",
	vcard.NetworkLinkedIn:  "https://www.linkedin.com/in/",
	vcard.NetworkInstagram: "https://www.instagram.com/",
	vcard.NetworkTwitter:   "https://twitter.com/",
}

// ProfileURL derives a clickable profile URL from a network and handle.
// Handles that are already URLs pass through ("www." gets a scheme
// prefixed); otherwise the network's profile prefix is applied. Returns
// the empty string when no URL can be derived.
func ProfileURL(network vcard.Network, handle string) string {
	h := strings.TrimSpace(handle)
	if h == "" {
		return ""
	}
	lower := strings.ToLower(h)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return h
	}
	if strings.HasPrefix(lower, "www.") {
		return "https://" + h
	}
	if base, ok := profileBases[network]; ok {
		return base + h
	}
	return ""
}
