/*
Command fontsets is an interactive shell for fontsets.

It keeps a fontset registry and a single frame, and lets users create
fontsets, change their entries and realize faces for characters. Fonts are
located by the resources package: the Go fonts are always available, system
fonts are found with fontconfig or in the usual font folders, and Google
Fonts are searched if an API key is set.

Usage:

	fontsets [-trace Info] [-fontconfig /usr/bin/fc-list] [-size 12] [-settings file]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontsets/core/charset"
	"github.com/npillmayer/fontsets/core/face"
	"github.com/npillmayer/fontsets/core/font/fontregistry"
	"github.com/npillmayer/fontsets/core/fontset"
	"github.com/npillmayer/fontsets/core/locate/resources"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fontsets.cli'
func tracer() tracing.Trace {
	return tracing.Select("fontsets.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fc := flag.String("fontconfig", "", "Path of fc-list")
	size := flag.Int("size", 12, "Default font size in points")
	settings := flag.String("settings", "", "File with fontset settings (key = value lines)")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := configuration(*tlevel, *fc, *size)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	if *settings != "" {
		if err := readSettings(*settings, conf); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
	}
	pterm.Info.Println("Welcome to the fontsets shell") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	intp, err := newIntp(conf)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       "fontsets > ",
		AutoComplete: completer(intp),
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	intp.repl = repl
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D or 'quit', 'help' lists commands")
	intp.REPL() // go into interactive mode
}

// traceKeys are the keys of all tracers of the module.
var traceKeys = []string{
	"fontsets.cli",
	"fontsets.core",
	"fontsets.fonts",
	"fontsets.faces",
	"fontsets.resources",
}

// configuration creates the configuration of a shell session from the
// command line flags. All tracers trace at level tlevel.
func configuration(tlevel, fc string, size int) testconfig.Conf {
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"app-key":         "fontsets",
		"font-size":       size,
	}
	for _, key := range traceKeys {
		conf["trace."+key] = tlevel
	}
	if fc != "" {
		conf["fontconfig"] = fc
	}
	return conf
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// readSettings adds "key = value" lines of a file to conf. Lines starting
// with '#' are comments.
func readSettings(path string, conf testconfig.Conf) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("%s:%d: expected key = value", path, i+1)
		}
		conf[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return nil
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	conf     schuko.Configuration
	fontsets *fontset.Registry
	frame    *face.Frame
	faces    map[string]*face.Face // ASCII faces by fontset name
}

func newIntp(conf schuko.Configuration) (*Intp, error) {
	settings, err := fontset.LoadSettings(conf)
	if err != nil {
		return nil, err
	}
	loader := resources.NewLoader(conf, fontregistry.GlobalRegistry())
	r := fontset.NewRegistry(settings, loader)
	return &Intp{
		conf:     conf,
		fontsets: r,
		frame:    face.NewFrame("shell", r),
		faces:    make(map[string]*face.Face),
	}, nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(strings.Fields(line))
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func completer(intp *Intp) *readline.PrefixCompleter {
	charsets := readline.PcItemDynamic(func(line string) []string {
		fields := strings.Fields(line)
		prefix := ""
		if len(fields) > 0 && !strings.HasSuffix(line, " ") {
			prefix = fields[len(fields)-1]
		}
		return charset.Complete(strings.SplitN(prefix, "=", 2)[0])
	})
	names := readline.PcItemDynamic(func(string) []string {
		return intp.fontsets.FontsetList()
	})
	return readline.NewPrefixCompleter(
		readline.PcItem("new"),
		readline.PcItem("set", names),
		readline.PcItem("font", names),
		readline.PcItem("face", names),
		readline.PcItem("info", names),
		readline.PcItem("query"),
		readline.PcItem("list"),
		readline.PcItem("charsets", charsets),
		readline.PcItem("google"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}
