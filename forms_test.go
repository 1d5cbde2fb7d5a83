package folio

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormRows(t *testing.T) {
	t.Run("pairs parallel arrays in order", func(t *testing.T) {
		form := url.Values{
			"navNames": {"Home", "Blog"},
			"navLinks": {"/", "/blog"},
		}
		rows := formRows(form, []string{"navNames", "navLinks"}, []string{"navNames", "navLinks"})
		assert.Equal(t, []map[string]string{
			{"navNames": "Home", "navLinks": "/"},
			{"navNames": "Blog", "navLinks": "/blog"},
		}, rows)
	})

	t.Run("scalar submission behaves like a one-element array", func(t *testing.T) {
		form := url.Values{
			"navNames": {"Home"},
			"navLinks": {"/"},
		}
		rows := formRows(form, []string{"navNames", "navLinks"}, []string{"navNames", "navLinks"})
		assert.Len(t, rows, 1)
		assert.Equal(t, "Home", rows[0]["navNames"])
	})

	t.Run("drops rows with a blank required field", func(t *testing.T) {
		form := url.Values{
			"navNames": {"Home", "  ", "About"},
			"navLinks": {"/", "/gone", ""},
		}
		rows := formRows(form, []string{"navNames", "navLinks"}, []string{"navNames", "navLinks"})
		assert.Equal(t, []map[string]string{
			{"navNames": "Home", "navLinks": "/"},
		}, rows)
	})

	t.Run("pads short groups with empty strings", func(t *testing.T) {
		form := url.Values{
			"socialPlatforms": {"GitHub", "Twitter"},
			"socialUrls":      {"https://github.com/x", "https://twitter.com/x"},
			"socialIcons":     {"fa-github"},
		}
		rows := formRows(form,
			[]string{"socialPlatforms", "socialUrls", "socialIcons"},
			[]string{"socialPlatforms", "socialUrls"})
		assert.Len(t, rows, 2)
		assert.Equal(t, "", rows[1]["socialIcons"])
	})

	t.Run("missing fields yield no rows", func(t *testing.T) {
		rows := formRows(url.Values{}, []string{"navNames", "navLinks"}, []string{"navNames"})
		assert.Empty(t, rows)
	})
}

func TestFilterEmpty(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, filterEmpty([]string{" a ", "", "  ", "b"}))
	assert.Nil(t, filterEmpty([]string{"", "   "}))
}

func TestSplitCommaList(t *testing.T) {
	assert.Equal(t, []string{"Logo", "Branding", "SEO"}, splitCommaList("Logo, Branding , SEO,"))
	assert.Nil(t, splitCommaList(""))
}
