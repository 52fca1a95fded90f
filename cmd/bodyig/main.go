/*
Command bodyig composes Tibetan syllables and shows their pronunciation.

Usage:

	bodyig --root ga --super sa --sub ra --suffix la
	bodyig -i

Letters may be given either as Tibetan letters or by their Wylie names.
Without a root letter, or with flag -i, bodyig starts an interactive
session. Every flag may also be set from an environment variable with
prefix BODYIG_, e.g. BODYIG_TRACE=Debug.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/bodyig/core"
	"github.com/npillmayer/bodyig/engine/calculator"
	"github.com/npillmayer/bodyig/script/syllable"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
)

// tracer traces with key 'bodyig.cli'
func tracer() tracing.Trace {
	return tracing.Select("bodyig.cli")
}

func main() {
	initDisplay()

	// command line flags
	fs := ff.NewFlagSet("bodyig")
	tlevel := fs.StringLong("trace", "Error", "Trace level [Debug|Info|Error]")
	interactive := fs.Bool('i', "interactive", "Start an interactive session")
	nfc := fs.BoolLong("nfc", "Output precomposed phonetic letters")
	letters := make(map[syllable.Slot]*string, len(syllable.Slots))
	for _, slot := range syllable.Slots {
		letters[slot] = fs.StringLong(flagName(slot), "", fmt.Sprintf("Letter for the %s", slot))
	}
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("BODYIG")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		if errors.Is(err, ff.ErrHelp) {
			return
		}
		fmt.Printf("error parsing flags: %v\n", err)
		os.Exit(1)
	}

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.bodyig.cli":    *tlevel,
		"trace.bodyig.engine": *tlevel,
		"trace.bodyig.script": *tlevel,
		"trace.bodyig.core":   *tlevel,
	}
	if *nfc {
		conf[calculator.KeyNormalize] = "nfc"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("Trace level is %s", *tlevel)

	calc := calculator.New(conf)
	if lo.SomeBy(lo.Values(letters), func(l *string) bool { return *l != "" }) {
		if err := selectLetters(calc, letters); err != nil {
			core.UserError(err)
			os.Exit(2)
		}
		if !*interactive {
			printDisplays(calc)
			return
		}
	}

	// set up REPL
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       "bodyig > ",
		AutoComplete: completer(),
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{repl: repl, calc: calc}
	intp.greet()
	intp.REPL()
}

// selectLetters sets the root first, as selecting a root clears all other
// slots. Letters for other slots require a root.
func selectLetters(calc *calculator.Calculator, letters map[syllable.Slot]*string) error {
	if *letters[syllable.Root] == "" {
		return core.Error(core.EINVALID, "letters for other slots require a root letter (--root)")
	}
	if err := calc.Set(syllable.Root, *letters[syllable.Root]); err != nil {
		return err
	}
	for _, slot := range syllable.Slots {
		if slot == syllable.Root || *letters[slot] == "" {
			continue
		}
		if err := calc.Set(slot, *letters[slot]); err != nil {
			return err
		}
	}
	return nil
}

// flagName returns the command line flag for a slot.
func flagName(slot syllable.Slot) string {
	switch slot {
	case syllable.Superscript:
		return "super"
	case syllable.Subscript:
		return "sub"
	case syllable.SecondSuffix:
		return "suffix2"
	}
	return slot.String()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
