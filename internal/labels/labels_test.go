// Copyright Fieber IT, 2026. All rights reserved.

package labels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogsCoverColumnKeys(t *testing.T) {
	for _, cat := range []Catalog{English(), German()} {
		for _, key := range ColumnKeys() {
			assert.Contains(t, cat, key)
		}
	}
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	en, de := English(), German()
	require.Equal(t, len(en), len(de))
	for k := range en {
		assert.Contains(t, de, k, "German catalog missing key %q", k)
	}
}

func TestGetFallsBackToKey(t *testing.T) {
	cat := English()
	assert.Equal(t, "Mobile", cat.Get(Mobile))
	assert.Equal(t, "no_such_key", cat.Get("no_such_key"))
}

func TestForLocale(t *testing.T) {
	tests := []struct {
		locale     string
		wantMobile string
		errMsg     string
	}{
		{locale: "", wantMobile: "Mobile"},
		{locale: "en", wantMobile: "Mobile"},
		{locale: "de", wantMobile: "Mobil"},
		{locale: "fr", errMsg: "unknown locale"},
	}

	for _, tt := range tests {
		t.Run("locale "+tt.locale, func(t *testing.T) {
			cat, err := ForLocale(tt.locale)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMobile, cat.Get(Mobile))
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		check  func(t *testing.T, cat Catalog)
		errMsg string
	}{
		{
			name: "applies overrides and keeps the rest",
			yaml: "mobile: Cellphone\nwork: Office\n",
			check: func(t *testing.T, cat Catalog) {
				assert.Equal(t, "Cellphone", cat.Get(Mobile))
				assert.Equal(t, "Office", cat.Get(Work))
				assert.Equal(t, "Home", cat.Get(Home))
			},
		},
		{
			name:   "rejects unknown keys",
			yaml:   "mobile: Cellphone\nmisspelled_key: Oops\n",
			errMsg: `unknown label key "misspelled_key"`,
		},
		{
			name:   "rejects malformed yaml",
			yaml:   "mobile: [unterminated\n",
			errMsg: "parsing labels file",
		},
		{
			name: "empty file changes nothing",
			yaml: "",
			check: func(t *testing.T, cat Catalog) {
				assert.Equal(t, English(), cat)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "labels.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cat, err := LoadOverrides(path, English())
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			tt.check(t, cat)
		})
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	_, err := LoadOverrides(filepath.Join(t.TempDir(), "absent.yaml"), English())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading labels file")
}

func TestLoadOverridesDoesNotMutateBase(t *testing.T) {
	base := English()
	path := filepath.Join(t.TempDir(), "labels.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mobile: Cellphone\n"), 0o644))

	_, err := LoadOverrides(path, base)
	require.NoError(t, err)
	assert.Equal(t, "Mobile", base.Get(Mobile))
}
