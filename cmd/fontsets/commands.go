package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/fontsets/core"
	"github.com/npillmayer/fontsets/core/charset"
	"github.com/npillmayer/fontsets/core/face"
	"github.com/npillmayer/fontsets/core/fontset"
	"github.com/npillmayer/fontsets/core/locate/resources"
	"github.com/pterm/pterm"
)

type command struct {
	args  string // argument synopsis
	help  string
	nargs int // minimum number of arguments
	run   func(intp *Intp, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"new": {"NAME CHARSET=FONT …", "create a fontset; charset ascii is required", 2,
			(*Intp).newFontset},
		"set": {"NAME CHAR[..CHAR] FONT|FAMILY,REGISTRY", "set the font for characters of a fontset", 3,
			(*Intp).setFont},
		"font": {"NAME CHAR", "show the font entry of a fontset for a character", 2,
			(*Intp).fontsetFont},
		"face": {"NAME CHAR", "realize a face for a character", 2,
			(*Intp).faceForChar},
		"info": {"NAME", "show the fonts of a realized fontset", 1,
			(*Intp).info},
		"query": {"PATTERN [regex]", "find a fontset matching a pattern", 1,
			(*Intp).query},
		"list": {"[PATTERN [SIZE]]", "list fontsets", 0,
			(*Intp).list},
		"charsets": {"[PREFIX]", "list charsets", 0,
			(*Intp).charsets},
		"google": {"PATTERN", "list Google Fonts families matching a regexp", 1,
			(*Intp).google},
	}
}

// execute runs a command line. It returns true if the user wants to quit.
func (intp *Intp) execute(fields []string) (bool, error) {
	tracer().Debugf("command %v", fields)
	name, args := strings.ToLower(fields[0]), fields[1:]
	switch name {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		help()
		return false, nil
	}
	cmd, ok := commands[name]
	if !ok {
		return false, fmt.Errorf("unknown command %q, try 'help'", name)
	}
	if len(args) < cmd.nargs {
		return false, fmt.Errorf("usage: %s %s", name, cmd.args)
	}
	return false, cmd.run(intp, args)
}

func help() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	data := pterm.TableData{{"Command", "Arguments", "Description"}}
	sort.Strings(names)
	for _, name := range names {
		c := commands[name]
		data = append(data, []string{name, c.args, c.help})
	}
	data = append(data, []string{"quit", "", "leave the shell"})
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Println(`
  Characters are given as literal characters, as U+XXXX, as 0x… code points,
  or by the name of a charset, which denotes all characters of the charset.`)
}

func (intp *Intp) newFontset(args []string) error {
	var fontlist []fontset.FontListEntry
	for _, arg := range args[1:] {
		cs, font, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("expected CHARSET=FONT, got %q", arg)
		}
		fontlist = append(fontlist, fontset.FontListEntry{Charset: cs, Font: font})
	}
	id, err := intp.fontsets.NewFontset(args[0], fontlist)
	if err != nil {
		return err
	}
	pterm.Success.Printfln("created fontset %d: %s", id, intp.fontsets.FontsetName(id))
	return nil
}

func (intp *Intp) setFont(args []string) error {
	from, to, err := parseRange(args[1])
	if err != nil {
		return err
	}
	spec := parseFontSpec(strings.Join(args[2:], " "))
	if err = intp.fontsets.SetFontsetFont(args[0], from, to, spec); err != nil {
		return err
	}
	pterm.Success.Printfln("%s: %s..%s → %s", args[0], charset.Format(from), charset.Format(to), spec)
	return nil
}

func (intp *Intp) fontsetFont(args []string) error {
	c, err := parseChar(args[1])
	if err != nil {
		return err
	}
	spec, err := intp.fontsets.FontsetFont(args[0], c)
	if err != nil {
		return err
	}
	pterm.Printfln("%s: %s", charset.Format(c), spec)
	return nil
}

// asciiFace returns the ASCII face of the frame for a fontset, realizing it
// if necessary.
func (intp *Intp) asciiFace(name string) (*face.Face, error) {
	full, err := intp.fontsets.QueryFontset(name, false)
	if err != nil {
		return nil, err
	}
	if full == "" {
		return nil, core.WrapError(fontset.ErrUnknownFontset, core.EMISSING, "fontset %q does not exist", name)
	}
	if f, ok := intp.faces[full]; ok {
		if cached, ok := intp.frame.Face(f.ID); ok && cached == f {
			return f, nil
		}
	}
	id, err := intp.fontsets.LookupByName(full, false)
	if err != nil {
		return nil, err
	}
	f, err := intp.frame.RealizeASCIIFace(id)
	if err != nil {
		return nil, err
	}
	intp.faces[full] = f
	return f, nil
}

func (intp *Intp) faceForChar(args []string) error {
	af, err := intp.asciiFace(args[0])
	if err != nil {
		return err
	}
	c, err := parseChar(args[1])
	if err != nil {
		return err
	}
	f, err := intp.frame.ForChar(af, c)
	if err != nil {
		return err
	}
	pterm.Printfln("face %d for %s: %s", f.ID, charset.Format(c), f.Font.FullName)
	if f.Font.TypeCase != nil {
		pterm.Printfln("  %s at %.1fpt, size %d, height %d",
			f.Font.TypeCase.ScalableFontParent().Fontname, f.Font.TypeCase.PtSize(),
			f.Font.Size, f.Font.Height)
	}
	return nil
}

func (intp *Intp) info(args []string) error {
	info, err := intp.fontsets.FontsetInfo(args[0], intp.frame)
	if err != nil {
		return err
	}
	if info == nil {
		pterm.Info.Printfln("fontset %s is not realized yet, try 'face'", args[0])
		return nil
	}
	pterm.Printfln("size %d, height %d", info.Size, info.Height)
	data := pterm.TableData{{"Charset", "Requested", "Loaded"}}
	for _, row := range info.Fonts {
		data = append(data, []string{row.Charset, row.Requested, row.Loaded})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) query(args []string) error {
	regex := len(args) > 1 && args[1] == "regex"
	name, err := intp.fontsets.QueryFontset(args[0], regex)
	if err != nil {
		return err
	}
	if name == "" {
		pterm.Info.Println("no match")
		return nil
	}
	pterm.Println(name)
	return nil
}

func (intp *Intp) list(args []string) error {
	if len(args) == 0 {
		for _, name := range intp.fontsets.FontsetList() {
			pterm.Println(name)
		}
		return nil
	}
	size := 0
	if len(args) > 1 {
		var err error
		if size, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("size must be a number: %q", args[1])
		}
	}
	names, err := intp.fontsets.ListFontsets(intp.frame, args[0], size)
	if err != nil {
		return err
	}
	for _, name := range names {
		pterm.Println(name)
	}
	return nil
}

func (intp *Intp) charsets(args []string) error {
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}
	for _, name := range charset.Complete(prefix) {
		cs := charset.ByName(name)
		pterm.Printfln("%#02x  %-28s %s", int(cs.ID), cs.Name, cs.Registry)
	}
	return nil
}

func (intp *Intp) google(args []string) error {
	resources.ListGoogleFonts(intp.conf, args[0])
	return nil
}

// --- Parsing arguments -----------------------------------------------------

// parseChar reads a character argument: a literal character, "U+XXXX",
// a code point "0x…" or the name of a charset for its generic character.
func parseChar(arg string) (charset.Char, error) {
	switch {
	case strings.HasPrefix(arg, "U+") || strings.HasPrefix(arg, "u+"):
		r, err := strconv.ParseUint(arg[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid Unicode code point %q", arg)
		}
		return fromRune(rune(r))
	case strings.HasPrefix(arg, "0x"):
		c, err := strconv.ParseUint(arg[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid code point %q", arg)
		}
		return charset.Char(c), nil
	case utf8.RuneCountInString(arg) == 1:
		r, _ := utf8.DecodeRuneInString(arg)
		return fromRune(r)
	}
	if cs := charset.ByName(arg); cs != nil {
		return cs.Generic(), nil
	}
	return 0, fmt.Errorf("cannot read character %q", arg)
}

func fromRune(r rune) (charset.Char, error) {
	c, ok := charset.FromRune(r)
	if !ok {
		return 0, fmt.Errorf("no charset encodes %U", r)
	}
	return c, nil
}

// parseRange reads "CHAR" or "CHAR..CHAR".
func parseRange(arg string) (from, to charset.Char, err error) {
	first, last, ok := strings.Cut(arg, "..")
	if from, err = parseChar(first); err != nil {
		return
	}
	if !ok {
		return from, from, nil
	}
	to, err = parseChar(last)
	return
}

// parseFontSpec reads a font name pattern or a "family,registry" pair.
func parseFontSpec(arg string) fontset.FontSpec {
	if family, registry, ok := strings.Cut(arg, ","); ok {
		return fontset.Family(0, strings.TrimSpace(family), strings.TrimSpace(registry))
	}
	return fontset.Name(0, arg)
}
