package main

import (
	"fmt"
	"os"

	"github.com/juju/errors"
	"github.com/juju/gnuflag"

	"github.com/Qthai16/go-deque/common"
	"github.com/Qthai16/go-deque/utils"
)

var (
	cmdLineOpts = CmdlineOpts{}
)

type CmdlineOpts struct {
	LogPath  string
	LogLevel string
	Color    bool
	Rounds   int
}

func newFlagSet(opts *CmdlineOpts) *gnuflag.FlagSet {
	fs := gnuflag.NewFlagSet("dequedemo", gnuflag.ContinueOnError)
	fs.StringVar(&opts.LogPath, "log", "", "log file path, stderr is redirected there too")
	fs.StringVar(&opts.LogLevel, "log-level", "INFO", "log level (TRACE/DEBUG/INFO/WARNING/ERROR)")
	fs.BoolVar(&opts.Color, "color", false, "colour log output")
	fs.IntVar(&opts.Rounds, "rounds", 0, "extra round trips of this many items at each end")
	return fs
}

func parseArgs(args []string) (CmdlineOpts, error) {
	var opts CmdlineOpts
	if err := newFlagSet(&opts).Parse(true, args); err != nil {
		return opts, errors.Trace(err)
	}
	if opts.Rounds < 0 {
		return opts, errors.NotValidf("rounds %d", opts.Rounds)
	}
	return opts, nil
}

type scriptStep struct {
	desc   string
	insert func(d *common.Deque[uint32], item uint32)
	pop    func(d *common.Deque[uint32]) (uint32, bool)
	item   uint32
	wantOK bool
}

func insertHead(item uint32) scriptStep {
	return scriptStep{
		desc:   fmt.Sprintf("insert head %d", item),
		insert: (*common.Deque[uint32]).InsertHead,
		item:   item,
	}
}

func insertTail(item uint32) scriptStep {
	return scriptStep{
		desc:   fmt.Sprintf("insert tail %d", item),
		insert: (*common.Deque[uint32]).InsertTail,
		item:   item,
	}
}

func popHead(item uint32, ok bool) scriptStep {
	return scriptStep{desc: popDesc("head", item, ok), pop: (*common.Deque[uint32]).PopHead, item: item, wantOK: ok}
}

func popTail(item uint32, ok bool) scriptStep {
	return scriptStep{desc: popDesc("tail", item, ok), pop: (*common.Deque[uint32]).PopTail, item: item, wantOK: ok}
}

func popDesc(end string, item uint32, ok bool) string {
	if !ok {
		return fmt.Sprintf("pop %s none", end)
	}
	return fmt.Sprintf("pop %s %d", end, item)
}

// script is the fixed demonstration: two items in at the head, back out in
// reverse, then the empty pop. The tail half mirrors it.
func script(rounds int) []scriptStep {
	steps := []scriptStep{
		insertHead(13),
		insertHead(14),
		popHead(14, true),
		popHead(13, true),
		popHead(0, false),
		insertTail(13),
		insertTail(14),
		popTail(14, true),
		popTail(13, true),
		popTail(0, false),
	}
	for i := 0; i < rounds; i++ {
		steps = append(steps, insertHead(uint32(i)))
	}
	for i := rounds - 1; i >= 0; i-- {
		steps = append(steps, popHead(uint32(i), true))
	}
	for i := 0; i < rounds; i++ {
		steps = append(steps, insertTail(uint32(i)))
	}
	for i := 0; i < rounds; i++ {
		steps = append(steps, popHead(uint32(i), true))
	}
	if rounds > 0 {
		steps = append(steps, popHead(0, false), popTail(0, false))
	}
	return steps
}

// runScript returns an error describing the first step whose result does
// not match the script.
func runScript(d *common.Deque[uint32], steps []scriptStep) error {
	for i, s := range steps {
		utils.LogInfo("%s", s.desc)
		if s.insert != nil {
			s.insert(d, s.item)
			utils.LogDebug("%v", d)
			continue
		}
		got, ok := s.pop(d)
		utils.LogDebug("%v", d)
		if ok != s.wantOK || got != s.item {
			return errors.Errorf("step %d (%s): got (%d, %v), want (%d, %v)", i, s.desc, got, ok, s.item, s.wantOK)
		}
	}
	if !d.IsEmpty() {
		return errors.Errorf("deque not empty after script: %v", d)
	}
	return nil
}

func run() error {
	if len(cmdLineOpts.LogPath) > 0 {
		f, err := utils.OpenLogFile(cmdLineOpts.LogPath)
		if err != nil {
			return errors.Trace(err)
		}
		defer f.Close()
		if err := utils.SetupLogging(f, cmdLineOpts.LogLevel); err != nil {
			return errors.Trace(err)
		}
		if err := utils.RedirectFile(os.Stderr, f); err != nil {
			utils.LogWarn("panics will not reach the log file: %v", err)
		}
	} else if err := utils.SetupLogging(os.Stderr, cmdLineOpts.LogLevel); err != nil {
		return errors.Trace(err)
	}
	utils.SetColorPrint(cmdLineOpts.Color)

	steps := script(cmdLineOpts.Rounds)
	if err := runScript(common.NewDeque[uint32](), steps); err != nil {
		return errors.Trace(err)
	}
	utils.LogInfo("%d steps ok", len(steps))
	return nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, gnuflag.ErrHelp) {
			return
		}
		utils.LogFatal("invalid arguments: %v", err)
	}
	cmdLineOpts = opts
	if err := run(); err != nil {
		utils.LogFatal("%v", err)
	}
}
