package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/bodyig/core"
	"github.com/npillmayer/bodyig/core/option"
	"github.com/npillmayer/bodyig/engine/calculator"
	"github.com/npillmayer/bodyig/script/syllable"
	"github.com/npillmayer/bodyig/script/tibetan"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
)

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	calc *calculator.Calculator
}

// greet welcomes the user and shows the selections made from the command
// line, if any.
func (intp *Intp) greet() {
	pterm.Info.Println("Welcome to the Tibetan syllable calculator")
	pterm.Info.Println("Quit with <ctrl>D or 'quit', 'help' lists commands")
	if intp.calc.Syllable().Root != nil {
		printDisplays(intp.calc)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

const (
	QUIT int = iota
	HELP
	SET
	CLEAR
	RESET
	SHOW
	LIST
)

// Command is a parsed line of user input.
type Command struct {
	code int
	slot syllable.Slot
	arg  string
}

// slotNames maps command words to syllable slots.
var slotNames = map[string]syllable.Slot{
	"prefix":      syllable.Prefix,
	"pre":         syllable.Prefix,
	"super":       syllable.Superscript,
	"superscript": syllable.Superscript,
	"root":        syllable.Root,
	"sub":         syllable.Subscript,
	"subscript":   syllable.Subscript,
	"suffix":      syllable.Suffix,
	"suffix1":     syllable.Suffix,
	"suffix2":     syllable.SecondSuffix,
}

var errUnknownSlot = errors.New("unknown slot")

func parseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{code: HELP}, nil
	}
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}
	word := strings.ToLower(fields[0])
	tracer().Debugf("parse command %q, arg = %q", word, arg)
	switch word {
	case "quit", "exit", "q":
		return Command{code: QUIT}, nil
	case "help", "?":
		return Command{code: HELP, arg: arg}, nil
	case "reset":
		return Command{code: RESET}, nil
	case "show":
		return Command{code: SHOW}, nil
	case "list", "menus":
		cmd := Command{code: LIST, slot: -1}
		if arg != "" {
			slot, ok := slotNames[strings.ToLower(arg)]
			if !ok {
				return cmd, fmt.Errorf("%w: %s", errUnknownSlot, arg)
			}
			cmd.slot = slot
		}
		return cmd, nil
	case "clear":
		slot, ok := slotNames[strings.ToLower(arg)]
		if !ok {
			return Command{}, fmt.Errorf("%w: %q", errUnknownSlot, arg)
		}
		return Command{code: CLEAR, slot: slot}, nil
	}
	if slot, ok := slotNames[word]; ok {
		if arg == "" {
			return Command{code: CLEAR, slot: slot}, nil
		}
		return Command{code: SET, slot: slot, arg: arg}, nil
	}
	return Command{}, fmt.Errorf("unknown command: %s", fields[0])
}

func (intp *Intp) execute(cmd Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help(cmd.arg)
	case RESET:
		intp.calc.Reset()
		printDisplays(intp.calc)
	case SHOW:
		printDisplays(intp.calc)
	case LIST:
		if cmd.slot < 0 {
			return false, listMenus(intp.calc.Menus())
		}
		return false, listMenus([]calculator.Menu{intp.calc.Menu(cmd.slot)})
	case CLEAR:
		intp.calc.Clear(cmd.slot)
		printDisplays(intp.calc)
	case SET:
		if err := intp.calc.Set(cmd.slot, cmd.arg); err != nil {
			return false, err
		}
		printDisplays(intp.calc)
	}
	return false, nil
}

func printDisplays(calc *calculator.Calculator) {
	tib, phonetic := calc.Displays()
	pterm.Printfln("%s    %s", tib, phonetic)
}

func listMenus(menus []calculator.Menu) error {
	data := pterm.TableData{{"Slot", "Options", "Selected", ""}}
	for _, m := range menus {
		options := lo.Map(m.Options, func(r rune, _ int) string { return string(r) })
		selected, _ := option.Safe(m.Selected.Match(option.Maybe{
			option.None: "",
			option.Some: describe,
		})).(string)
		state := ""
		if m.Disabled {
			state = "disabled"
		}
		data = append(data, []string{m.Label, strings.Join(options, " "), selected, state})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// describe renders a selected letter together with its Wylie name.
func describe(x interface{}) (interface{}, error) {
	r := x.(option.RuneT).Unwrap()
	if c, ok := tibetan.Lookup(r); ok {
		return fmt.Sprintf("%c %s", r, c.Wylie), nil
	}
	return string(r), nil
}

// completer completes commands and Wylie names of letters.
func completer() readline.AutoCompleter {
	letters := readline.PcItemDynamic(func(line string) []string {
		fields := strings.Fields(line)
		prefix := ""
		if len(fields) > 1 && !strings.HasSuffix(line, " ") {
			prefix = fields[len(fields)-1]
		}
		return tibetan.Complete(prefix)
	})
	slots := lo.Map(syllable.Slots[:], func(slot syllable.Slot, _ int) readline.PrefixCompleterInterface {
		return readline.PcItem(flagName(slot))
	})
	return readline.NewPrefixCompleter(
		readline.PcItem("root", letters),
		readline.PcItem("prefix", letters),
		readline.PcItem("super", letters),
		readline.PcItem("sub", letters),
		readline.PcItem("suffix", letters),
		readline.PcItem("suffix2", letters),
		readline.PcItem("clear", slots...),
		readline.PcItem("list", slots...),
		readline.PcItem("show"),
		readline.PcItem("reset"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(topic) {
	case "letters", "names":
		pterm.Info.Println("Letters")
		data := pterm.TableData{{"Letter", "Wylie", "Unicode name", "Subscripts"}}
		for _, c := range tibetan.All() {
			subs := lo.Map(c.Subscripts, func(r rune, _ int) string { return string(r) })
			data = append(data, []string{string(c.Rune), c.Wylie, c.UnicodeName(), strings.Join(subs, " ")})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			tracer().Errorf(err.Error())
		}
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	root <letter>       select the root letter; clears all other slots
	prefix <letter>     select a prefix
	super <letter>      select a superscript
	sub <letter>        select a subscript
	suffix <letter>     select the first suffix
	suffix2 <letter>    select the second suffix
	clear <slot>        empty a slot
	reset               start over
	show                print the syllable and its pronunciation
	list [slot]         list the menus and their options
	help letters        list all letters with their Wylie names
	quit                leave

	Letters are given as Tibetan letters or by their Wylie names, e.g. 'kha'.
	`)
	}
}
