package fontset

import (
	"errors"
	"fmt"

	"github.com/npillmayer/fontsets/core/charset"
	"github.com/npillmayer/fontsets/core/font"
)

// fakeDisplay realizes faces by counting.
type fakeDisplay struct {
	name     string
	next     FaceID
	fail     bool
	realized []charset.Char
	fonts    map[FaceID]*font.Info
	freed    []int
}

func newFakeDisplay(name string) *fakeDisplay {
	return &fakeDisplay{name: name, next: 100, fonts: make(map[FaceID]*font.Info)}
}

func (d *fakeDisplay) DisplayName() string { return d.name }

func (d *fakeDisplay) RealizeFace(c charset.Char, base FaceID) (FaceID, error) {
	if d.fail {
		return NoFace, errors.New("no font")
	}
	id := d.next
	d.next++
	d.realized = append(d.realized, c)
	d.fonts[id] = &font.Info{Name: "face", FullName: fmt.Sprintf("font-for-face-%d", id), Size: 8, Height: 12}
	return id, nil
}

func (d *fakeDisplay) FaceFont(face FaceID) (*font.Info, bool) {
	info, ok := d.fonts[face]
	return info, ok
}

func (d *fakeDisplay) FreeMultibyteFaces(fontset int) {
	d.freed = append(d.freed, fontset)
}

// fakeLoader knows a fixed set of fonts by name.
type fakeLoader struct {
	fonts  map[string]string // name → full name
	loaded []string
}

func (l *fakeLoader) LoadFont(d Display, name string) (*font.Info, error) {
	full, ok := l.fonts[name]
	if !ok {
		return nil, fmt.Errorf("font %s not found", name)
	}
	l.loaded = append(l.loaded, name)
	info := font.NewInfo(name, nil)
	info.FullName = full
	info.Size = 7
	return info, nil
}

func (l *fakeLoader) QueryFont(d Display, name string) (*font.Info, bool) {
	for _, n := range l.loaded {
		if n == name {
			info, _ := l.LoadFont(d, name)
			return info, true
		}
	}
	return nil, false
}
