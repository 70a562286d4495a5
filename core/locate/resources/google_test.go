package resources

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/fontsets/core"
	"github.com/npillmayer/fontsets/core/font/fontregistry"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const exampleRespFragm string = `
{
    "kind": "webfonts#webfontList",
    "items": [
        {
            "kind": "webfonts#webfont",
            "family": "Anonymous Pro",
            "variants": [
                "regular",
                "italic",
                "700",
                "700italic"
            ],
            "subsets": [
                "greek",
                "latin",
                "cyrillic"
            ],
            "version": "v3",
            "lastModified": "2012-07-25",
            "files": {
                "regular": "$SERVER/fonts/anonymouspro-regular.ttf",
                "italic": "$SERVER/fonts/anonymouspro-italic.ttf",
                "700": "$SERVER/fonts/anonymouspro-700.ttf",
                "700italic": "$SERVER/fonts/anonymouspro-700italic.ttf"
            }
        },
        {
            "kind": "webfonts#webfont",
            "family": "Antic",
            "variants": [
                "regular"
            ],
            "subsets": [
                "latin"
            ],
            "version": "v4",
            "lastModified": "2012-07-25",
            "files": {
                "regular": "$SERVER/fonts/antic.ttf"
            }
        }
    ]
}
`

// fakeGoogleFonts serves a font directory and the Antic font, which is in
// fact Go Regular.
func fakeGoogleFonts(t *testing.T) *httptest.Server {
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/webfonts", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			http.Error(w, "invalid key", http.StatusForbidden)
			return
		}
		fmt.Fprint(w, strings.ReplaceAll(exampleRespFragm, "$SERVER", srv.URL))
	})
	mux.HandleFunc("/fonts/antic.ttf", func(w http.ResponseWriter, r *http.Request) {
		w.Write(goregular.TTF)
	})
	srv = httptest.NewServer(mux)
	saved := googleFonts
	googleFonts = &googleDirectory{api: srv.URL + "/webfonts?"}
	t.Cleanup(func() {
		googleFonts = saved
		srv.Close()
	})
	return srv
}

func TestGoogleRespDecode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.resources")
	defer teardown()
	//
	dec := json.NewDecoder(strings.NewReader(exampleRespFragm))
	var list googleFontsList
	err := dec.Decode(&list)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, 2, listGoogleFonts(list, "^An"))
	assert.Equal(t, 1, listGoogleFonts(list, "Pro$"))
	assert.Equal(t, 0, listGoogleFonts(list, "("))
}

func TestGoogleFindFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.resources")
	defer teardown()
	fakeGoogleFonts(t)
	//
	conf := testconfig.Conf{"google-api-key": "test-key"}
	fi, variant, err := FindGoogleFont(conf, "Antic", xfont.StyleNormal, xfont.WeightNormal)
	require.NoError(t, err)
	assert.Equal(t, "Antic", fi.Family)
	assert.Equal(t, "regular", variant)
	fi, variant, err = FindGoogleFont(conf, "anonymous pro", xfont.StyleItalic, xfont.WeightNormal)
	require.NoError(t, err)
	assert.Equal(t, "Anonymous Pro", fi.Family)
	assert.Equal(t, "italic", variant)
	_, variant, _ = FindGoogleFont(conf, "anonymous pro", xfont.StyleNormal, xfont.WeightBold)
	assert.Equal(t, "700", variant)
	_, _, err = FindGoogleFont(conf, "Inconsolata", xfont.StyleNormal, xfont.WeightNormal)
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, _, err = FindGoogleFont(conf, "Antic", xfont.StyleItalic, xfont.WeightNormal)
	assert.Error(t, err, "Antic has no italic variant")
}

func TestGoogleAPIKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.resources")
	defer teardown()
	fakeGoogleFonts(t)
	t.Setenv("GOOGLE_API_KEY", "")
	//
	_, _, err := FindGoogleFont(testconfig.Conf{}, "Antic", xfont.StyleNormal, xfont.WeightNormal)
	assert.Equal(t, core.EMISSING, core.Code(err))
	//
	fakeGoogleFonts(t)
	_, _, err = FindGoogleFont(testconfig.Conf{"google-api-key": "wrong"}, "Antic",
		xfont.StyleNormal, xfont.WeightNormal)
	assert.Equal(t, core.ECONNECTION, core.Code(err))
}

func TestGoogleCacheFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.resources")
	defer teardown()
	fakeGoogleFonts(t)
	tmp := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", tmp)
	t.Setenv("HOME", tmp)
	//
	conf := testconfig.Conf{"google-api-key": "test-key", "app-key": "fontsets-test"}
	fi, variant, err := FindGoogleFont(conf, "Antic", xfont.StyleNormal, xfont.WeightNormal)
	require.NoError(t, err)
	fpath, err := CacheGoogleFont(conf, fi, variant)
	require.NoError(t, err)
	_, err = os.Stat(fpath)
	assert.NoError(t, err)
	again, err := CacheGoogleFont(conf, fi, variant)
	require.NoError(t, err)
	assert.Equal(t, fpath, again)
	//
	fi, _, err = FindGoogleFont(conf, "Anonymous Pro", xfont.StyleNormal, xfont.WeightNormal)
	require.NoError(t, err)
	_, err = CacheGoogleFont(conf, fi, "regular")
	assert.Equal(t, core.ECONNECTION, core.Code(err), "font file is not served")
	_, err = CacheGoogleFont(conf, fi, "300")
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = CacheGoogleFont(testconfig.Conf{}, fi, "regular")
	assert.Equal(t, core.EINVALID, core.Code(err), "app-key is required")
}

func TestLoadGoogleFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsets.resources")
	defer teardown()
	fakeGoogleFonts(t)
	tmp := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", tmp)
	t.Setenv("HOME", tmp)
	//
	conf := testconfig.Conf{"google-api-key": "test-key", "app-key": "fontsets-test"}
	l := NewLoader(conf, fontregistry.NewRegistry())
	info, err := l.LoadFont(nil, "Antic")
	require.NoError(t, err)
	assert.Equal(t, "Go Regular", info.FullName, "served font file is Go Regular")
	assert.Greater(t, info.Height, 0)
}
