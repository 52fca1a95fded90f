/*
Package option provides matching on optional values.

Syllable slots and menu selections are optional by nature. Instead of
testing for nil in every client, values implementing option.Type may be
matched against a set of choices:

	s, _ := slot.Match(option.Maybe{
	    option.None: "–",
	    option.Some: func(x interface{}) (interface{}, error) { … },
	})

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bodyig.core'.
func tracer() tracing.Trace {
	return tracing.Select("bodyig.core")
}
