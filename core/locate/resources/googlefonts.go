package resources

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"os"
	"path"
	"regexp"
	"strings"
	"sync"

	"github.com/npillmayer/fontsets/core"
	"github.com/npillmayer/fontsets/core/font"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
)

// GoogleFontInfo describes a font family of the Google webfont service.
type GoogleFontInfo struct {
	Family   string            `json:"family"`
	Version  string            `json:"version"`
	Variants []string          `json:"variants"`
	Subsets  []string          `json:"subsets"`
	Files    map[string]string `json:"files"`
}

type googleFontsList struct {
	Items []GoogleFontInfo `json:"items"`
}

var googleFontsAPI string = `https://www.googleapis.com/webfonts/v1/webfonts?`

// googleDirectory is the list of fonts of the Google webfont service. It is
// downloaded once.
type googleDirectory struct {
	once sync.Once
	api  string
	list googleFontsList
	err  error
}

var googleFonts = &googleDirectory{api: googleFontsAPI}

func googleAPIKey(conf schuko.Configuration) string {
	apikey := conf.GetString("google-api-key")
	if apikey == "" {
		apikey = os.Getenv("GOOGLE_API_KEY")
	}
	return apikey
}

func (dir *googleDirectory) setup(conf schuko.Configuration) error {
	dir.once.Do(func() {
		apikey := googleAPIKey(conf)
		if apikey == "" {
			err := errors.New("Google API key not set")
			tracer().Errorf(err.Error())
			dir.err = core.WrapError(err, core.EMISSING,
				`Google Fonts API-key must be set in configuration or as GOOGLE_API_KEY in environment;
      please refer to https://developers.google.com/fonts/docs/developer_api`)
			return
		}
		values := url.Values{
			"sort": []string{"alpha"},
			"key":  []string{apikey},
		}
		resp, err := http.Get(dir.api + values.Encode())
		if err != nil {
			tracer().Errorf("Google Fonts API request not OK: %s", err.Error())
			dir.err = core.WrapError(err, core.ECONNECTION,
				"could not get fonts-directory from Google font service")
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			tracer().Errorf("Google Fonts API request not OK: %v", resp.Status)
			err := core.Error(resp.StatusCode, "response: %v", resp.Status)
			dir.err = core.WrapError(err, core.ECONNECTION,
				"could not get fonts-directory from Google font service")
			return
		}
		dec := json.NewDecoder(resp.Body)
		if err = dec.Decode(&dir.list); err != nil {
			dir.err = core.WrapError(err, core.EINVALID,
				"could not decode fonts-list from Google font service")
		}
	})
	return dir.err
}

// FindGoogleFont searches the Google webfont service for a font family
// matching pattern, with a variant suitable for style and weight.
func FindGoogleFont(conf schuko.Configuration, pattern string, style xfont.Style,
	weight xfont.Weight) (GoogleFontInfo, string, error) {
	//
	if err := googleFonts.setup(conf); err != nil {
		return GoogleFontInfo{}, "", err
	}
	return googleFonts.find(pattern, style, weight)
}

func (dir *googleDirectory) find(pattern string, style xfont.Style, weight xfont.Weight) (
	GoogleFontInfo, string, error) {
	//
	descs := make([]font.Descriptor, len(dir.list.Items))
	for i, fi := range dir.list.Items {
		descs[i] = font.Descriptor{Family: fi.Family, Variants: fi.Variants}
	}
	desc, variant, confidence := font.ClosestMatch(descs, "^"+regexp.QuoteMeta(pattern)+"$", style, weight)
	tracer().Debugf("closest Google font match confidence for %s|%s = %d", desc.Family, variant, confidence)
	if confidence <= font.LowConfidence {
		return GoogleFontInfo{}, "", NotFound(pattern)
	}
	for _, fi := range dir.list.Items {
		if fi.Family == desc.Family {
			return fi, variant, nil
		}
	}
	return GoogleFontInfo{}, "", NotFound(pattern)
}

// CacheGoogleFont downloads a variant of a Google font to the user's cache
// directory, if not already present, and returns the path of the font file.
func CacheGoogleFont(conf schuko.Configuration, fi GoogleFontInfo, variant string) (string, error) {
	fileurl, ok := fi.Files[variant]
	if !ok {
		return "", core.Error(core.EMISSING, "Google font %s has no variant %s", fi.Family, variant)
	}
	cachedir, err := CacheDirPath(conf, "fonts")
	if err != nil {
		return "", err
	}
	ext := path.Ext(fileurl)
	if ext == "" {
		ext = ".ttf"
	}
	name := strings.ReplaceAll(fi.Family, " ", "") + "-" + variant + ext
	fpath := path.Join(cachedir, name)
	if _, err = os.Stat(fpath); err == nil {
		tracer().Debugf("Google font %s already cached", name)
		return fpath, nil
	}
	if err = DownloadCachedFile(fpath, fileurl); err != nil {
		return "", err
	}
	return fpath, nil
}

// ListGoogleFonts produces a listing of available fonts from the Google webfont
// service, with font-family names matching a given pattern.
//
// If not aleady done, the list of fonts will be downloaded from Google.
func ListGoogleFonts(conf schuko.Configuration, pattern string) {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	if err := googleFonts.setup(conf); err != nil {
		tracer().Errorf(core.UserMessage(err))
	} else {
		listGoogleFonts(googleFonts.list, pattern)
	}
	tracer().SetTraceLevel(level)
}

func listGoogleFonts(list googleFontsList, pattern string) int {
	r, err := regexp.Compile(pattern)
	if err != nil {
		tracer().Errorf("cannot list Google fonts: invalid pattern: %v", err)
		return 0
	}
	tracer().Infof("%d fonts in list", len(list.Items))
	tracer().Infof("======================================")
	n := 0
	for i, finfo := range list.Items {
		if r.MatchString(finfo.Family) {
			n++
			tracer().Infof("[%4d] %-20s: %s", i, finfo.Family, finfo.Version)
			tracer().Infof("       subsets: %v", finfo.Subsets)
			for k, v := range finfo.Files {
				tracer().Infof("       - %-18s: %s", k, v[len(v)-4:])
			}
		}
	}
	return n
}
