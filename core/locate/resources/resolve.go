package resources

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/fontsets/core"
	"github.com/npillmayer/fontsets/core/font"
	xfont "golang.org/x/image/font"
)

// NotFound returns an application error for a missing font.
func NotFound(res string) error {
	e := fmt.Errorf("resource missing: %v", res)
	return core.WrapError(e, core.EMISSING, "font not found: %s", res)
}

// --- Fonts -----------------------------------------------------------------

type fontPlusErr struct {
	font *font.TypeCase
	err  error
}

// TypeCasePromise delivers a type case once it has been loaded.
type TypeCasePromise interface {
	TypeCase() (*font.TypeCase, error)
	TypeCaseContext(ctx context.Context) (*font.TypeCase, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*font.TypeCase, error)
}

func (loader fontLoader) TypeCase() (*font.TypeCase, error) {
	return loader.await(context.Background())
}

func (loader fontLoader) TypeCaseContext(ctx context.Context) (*font.TypeCase, error) {
	return loader.await(ctx)
}

// ResolveTypeCase resolves a font type case of a family with a given style,
// weight and size.
func (l *Loader) ResolveTypeCase(family string, style xfont.Style, weight xfont.Weight,
	size float64) TypeCasePromise {
	//
	ch := make(chan fontPlusErr, 1)
	go func(ch chan<- fontPlusErr) {
		result := fontPlusErr{}
		key := font.NormalizeFontname(family, style, weight)
		f, ok := l.registry.Font(key)
		if !ok {
			if f, result.err = l.locate(family, style, weight); result.err == nil {
				l.registry.StoreFont(key, f)
			}
		}
		if f != nil {
			result.font, result.err = l.registry.TypeCase(key, size)
		}
		ch <- result
		close(ch)
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*font.TypeCase, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}

// locate searches for a font file of a family.
func (l *Loader) locate(family string, style xfont.Style, weight xfont.Weight) (*font.ScalableFont, error) {
	if f, ok := font.Builtin(family, style, weight); ok {
		tracer().Debugf("%s is a built-in font", f.Fontname)
		return f, nil
	}
	if desc, variant := l.fc.find(l.conf, family, style, weight); desc.Path != "" {
		tracer().Debugf("fontconfig found %s %s", desc.Family, variant)
		return font.LoadOpenTypeFont(desc.Path)
	}
	if ext := strings.ToLower(path.Ext(family)); ext == ".ttf" || ext == ".otf" {
		if fpath, err := findfont.Find(family); err == nil && fpath != "" {
			tracer().Debugf("%s is a system font", family)
			return font.LoadOpenTypeFont(fpath)
		}
		return nil, NotFound(family)
	}
	for _, fpath := range findfont.List() {
		if font.Matches(fpath, family, style, weight) {
			tracer().Debugf("%s is a system font: %s", family, fpath)
			return font.LoadOpenTypeFont(fpath)
		}
	}
	if googleAPIKey(l.conf) != "" {
		fi, variant, err := FindGoogleFont(l.conf, family, style, weight)
		if err != nil {
			return nil, err
		}
		fpath, err := CacheGoogleFont(l.conf, fi, variant)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("%s is a Google font: %s", family, fpath)
		return font.LoadOpenTypeFont(fpath)
	}
	return nil, NotFound(family)
}
