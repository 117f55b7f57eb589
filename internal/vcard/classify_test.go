// Copyright Fieber IT, 2026. All rights reserved.

package vcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPhone(t *testing.T) {
	tests := []struct {
		name   string
		params []string
		want   Class
	}{
		{"cell", []string{"CELL", "VOICE", "PREF"}, ClassMobile},
		{"iphone marker", []string{"IPHONE"}, ClassMobile},
		{"work", []string{"WORK", "VOICE"}, ClassWork},
		{"main counts as work", []string{"MAIN"}, ClassWork},
		{"home", []string{"HOME"}, ClassHome},
		{"private counts as home", []string{"PRIVATE"}, ClassHome},
		{"mobile beats work", []string{"WORK", "CELL"}, ClassMobile},
		{"work beats home", []string{"HOME", "WORK"}, ClassWork},
		{"untyped", []string{"VOICE"}, ClassOther},
		{"no params", nil, ClassOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPhone(tt.params))
		})
	}
}

func TestClassifyPlace(t *testing.T) {
	tests := []struct {
		name   string
		params []string
		want   Class
	}{
		{"work", []string{"INTERNET", "WORK"}, ClassWork},
		{"business counts as work", []string{"BUSINESS"}, ClassWork},
		{"home", []string{"HOME", "PREF"}, ClassHome},
		{"work beats home", []string{"HOME", "WORK"}, ClassWork},
		{"untyped", []string{"INTERNET"}, ClassOther},
		{"no params", nil, ClassOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPlace(tt.params))
		})
	}
}

func TestClassifyNetwork(t *testing.T) {
	tests := []struct {
		name   string
		params []string
		want   Network
	}{
		{"linkedin", []string{"LINKEDIN"}, NetworkLinkedIn},
		{"substring match", []string{"X-USER=SOMETHING", "WWW.TWITTER.COM"}, NetworkTwitter},
		{"facebook", []string{"FACEBOOK"}, NetworkFacebook},
		{"xing", []string{"XING"}, NetworkXing},
		{"instagram", []string{"INSTAGRAM"}, NetworkInstagram},
		{"unknown network", []string{"MASTODON"}, NetworkOther},
		{"no params", nil, NetworkOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyNetwork(tt.params))
		})
	}
}

func TestHandle(t *testing.T) {
	assert.Equal(t, "erika-muster", Handle("x-apple:erika-muster"))
	assert.Equal(t, "plainuser", Handle("plainuser"))
	assert.Equal(t, "c", Handle("a:b:c"))
}
