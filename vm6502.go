// This file is part of vm6502.
//
// vm6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vm6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vm6502.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/vm6502/vm6502/curated"
	"github.com/vm6502/vm6502/disassembly"
	"github.com/vm6502/vm6502/hardware"
	"github.com/vm6502/vm6502/hardware/devices"
	"github.com/vm6502/vm6502/hardware/preferences"
	"github.com/vm6502/vm6502/host/display"
	"github.com/vm6502/vm6502/host/monitor"
	"github.com/vm6502/vm6502/host/terminal"
	"github.com/vm6502/vm6502/logger"
	"github.com/vm6502/vm6502/modalflag"
	"github.com/vm6502/vm6502/paths"
	"github.com/vm6502/vm6502/performance"
	"github.com/vm6502/vm6502/programloader"
	"github.com/vm6502/vm6502/regression"
	"github.com/vm6502/vm6502/setup"
	"github.com/vm6502/vm6502/statsview"
	"github.com/vm6502/vm6502/version"
)

const defaultPrefsFile = "preferences"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function. this
// is required because the display window must be created and serviced on
// the main thread.
type mainSync struct {
	state chan stateRequest

	// functions sent on this channel are run on the main thread. the result
	// is returned on the runResult channel
	run       chan func() error
	runResult chan error
}

// onMain runs the function on the main thread and waits for it to return.
func (sync *mainSync) onMain(f func() error) error {
	sync.run <- f
	return <-sync.runResult
}

// #mainthread
func main() {
	sync := &mainSync{
		state:     make(chan stateRequest),
		run:       make(chan func() error),
		runResult: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc the first interrupt cancels the context. the default handler is
	// restored after that so a second interrupt ends the program immediately
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	ctxDone := ctx.Done()

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(ctx, sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-ctxDone:
			ctxDone = nil
			stop()

		case f := <-sync.run:
			sync.runResult <- f()

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}
		}
	}

	stop()
	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// run functions on the main thread and to quit.
func launch(ctx context.Context, sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DISPLAY", "MONITOR", "DISASM", "PERFORMANCE", "REGRESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)

	case "DISPLAY":
		err = show(ctx, md, sync)

	case "MONITOR":
		err = mon(ctx, md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "REGRESS":
		err = regress(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	sf := addSystemFlags(md)
	rate := md.AddInt("rate", 0, "ticks per second. zero for unlimited")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sys, _, err := sf.create(md)
	if err != nil {
		return err
	}

	pt, err := terminal.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	asc, _ := setup.FindDevice[*devices.ASCII](sys)
	if asc == nil {
		logger.Log(logger.Allow, "vm6502", "no ASCIIIO device in layout. terminal input is ignored")
	}

	return terminal.Run(ctx, pt, sys, asc, terminal.Options{Rate: *rate})
}

func show(ctx context.Context, md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	sf := addSystemFlags(md)
	rate := md.AddInt("rate", 0, "ticks per second. zero for unlimited")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sys, ld, err := sf.create(md)
	if err != nil {
		return err
	}

	opts := display.Options{
		Title:     fmt.Sprintf("%s - %s", version.ApplicationName, ld.ShortName()),
		Rate:      *rate,
		ShortName: ld.ShortName(),
	}

	return sync.onMain(func() error {
		return display.Run(ctx, sys, opts)
	})
}

func mon(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	sf := addSystemFlags(md)
	rate := md.AddInt("rate", 0, "ticks per second when running. zero for unlimited")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// logging to stdout would corrupt the monitor views
	*sf.log = false

	sys, _, err := sf.create(md)
	if err != nil {
		return err
	}

	asc, _ := setup.FindDevice[*devices.ASCII](sys)

	return monitor.Run(ctx, sys, asc, monitor.Options{Rate: *rate})
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	sf := addSystemFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sys, ld, err := sf.create(md)
	if err != nil {
		return err
	}

	origin, err := setup.ProgramOrigin(sys, *sf.uid)
	if err != nil {
		return err
	}

	dsm := disassembly.FromBytes(origin, ld.Data)
	return dsm.Write(md.Output, sys.CPU().PC.Address())
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	sf := addSystemFlags(md)
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE (comma separated)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return curated.Errorf("statsview not available in this build")
		}
		statsview.Launch(md.Output)
	}

	sys, _, err := sf.create(md)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, sys, *duration)
}

func regressDB(md *modalflag.Modes) *string {
	defDB, err := paths.ResourcePath("", regression.DefaultDBFile)
	if err != nil {
		defDB = regression.DefaultDBFile
	}
	return md.AddString("db", defDB, "regression database file")
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// regression output is interleaved with progress messages
	logger.SetEcho(nil)

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		db := regressDB(md)
		verbose := md.AddBool("verbose", false, "output more detail (eg. failure reasons)")
		failOnError := md.AddBool("fail", false, "stop at the first regression that cannot be run")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressRunTests(md.Output, *db, *verbose, *failOnError, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		db := regressDB(md)

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) > 0 {
			return curated.Errorf("no additional arguments required for %s mode", md)
		}

		return regression.RegressList(md.Output, *db)

	case "DELETE":
		md.NewMode()

		db := regressDB(md)
		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return curated.Errorf("database key required for %s mode", md)
		case 1:
			// use stdin for confirmation unless "yes" flag has been sent
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}
			return regression.RegressDelete(md.Output, confirmation, *db, md.GetArg(0))
		default:
			return curated.Errorf("only one entry can be deleted at at time")
		}

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	db := regressDB(md)
	layout := md.AddString("layout", setup.DefaultLayout, "device layout: kind:origin[:size[:uid]] separated by semicolons")
	uid := md.AddString("program", setup.DefaultProgramUID, "uid of the ROM device to load the program into")
	origin := md.AddInt("origin", -1, "reset address. negative for the start of the program device")
	experimental := md.AddBool("experimental", false, "full behaviour for stack, flow and INC/DEC instructions")
	ticks := md.AddInt("ticks", 1000000, "number of ticks to run")

	md.AdditionalHelp(
		`The regression runs the program for the given number of ticks with the default
preferences. The state of the system and all output written to the ASCIIIO device
are recorded.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("program file required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("regression can only be added one at a time")
	}

	cfg := setup.Config{
		Layout:       *layout,
		Program:      md.GetArg(0),
		UID:          *uid,
		Origin:       *origin,
		Experimental: *experimental,
	}

	reg, err := regression.NewProgramRegression(cfg, *ticks)
	if err != nil {
		return err
	}

	return regression.RegressAdd(md.Output, *db, reg)
}

// yesReader always answers 'y' when it is read.
type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	return copy(p, "y\n"), nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		if r == "" {
			r = "no revision information"
		}
		fmt.Fprintln(md.Output, r)
	}

	return nil
}

// systemFlags are the command line flags shared by every mode that creates a
// System.
type systemFlags struct {
	log          *bool
	prefs        *string
	savePrefs    *bool
	layout       *string
	uid          *string
	origin       *int
	experimental *bool
	memviz       *bool
}

func addSystemFlags(md *modalflag.Modes) *systemFlags {
	defPrefs, err := paths.ResourcePath("", defaultPrefsFile)
	if err != nil {
		defPrefs = ""
	}

	return &systemFlags{
		log:          md.AddBool("log", false, "echo debugging log to stdout"),
		prefs:        md.AddString("prefs", defPrefs, "hardware preferences file. empty for defaults"),
		savePrefs:    md.AddBool("saveprefs", false, "save the hardware preferences after applying the command line"),
		layout:       md.AddString("layout", setup.DefaultLayout, "device layout: kind:origin[:size[:uid]] separated by semicolons"),
		uid:          md.AddString("program", setup.DefaultProgramUID, "uid of the ROM device to load the program into"),
		origin:       md.AddInt("origin", -1, "reset address. negative for the preference value or the start of the program device"),
		experimental: md.AddBool("experimental", false, "full behaviour for stack, flow and INC/DEC instructions"),
		memviz:       md.AddBool("memviz", false, "write a graph of the system structure as a dot file"),
	}
}

// create the System described by the flags and load the program named by the
// single remaining argument.
func (sf *systemFlags) create(md *modalflag.Modes) (*hardware.System, *programloader.Loader, error) {
	if *sf.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	var cfg setup.Config
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, nil, curated.Errorf("program file required for %s mode", md)
	case 1:
		cfg = sf.config(md.GetArg(0))
	default:
		return nil, nil, curated.Errorf("too many arguments for %s mode", md)
	}

	prefs, err := preferences.NewPreferences(*sf.prefs)
	if err != nil {
		return nil, nil, err
	}

	sys, ld, err := setup.Build(prefs, cfg)
	if err != nil {
		return nil, nil, err
	}

	if *sf.savePrefs {
		if err := prefs.Save(); err != nil {
			return nil, nil, err
		}
	}

	if *sf.memviz {
		if err := writeMemviz(sys, ld); err != nil {
			return nil, nil, err
		}
	}

	return sys, ld, nil
}

func (sf *systemFlags) config(program string) setup.Config {
	return setup.Config{
		Layout:       *sf.layout,
		Program:      program,
		UID:          *sf.uid,
		Origin:       *sf.origin,
		Experimental: *sf.experimental,
	}
}

// writeMemviz writes a graph of the system structure to a dot file in the
// resource directory.
func writeMemviz(sys *hardware.System, ld *programloader.Loader) error {
	fn, err := paths.ResourcePath("memviz", paths.UniqueFilename("memviz", ld.ShortName())+".dot")
	if err != nil {
		return err
	}

	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, sys)
	logger.Logf(logger.Allow, "vm6502", "memviz graph written to %s", fn)

	return nil
}
