package seq

import (
	"os"

	"github.com/rs/zerolog"
)

// Log carries the package diagnostics, most notably the warning emitted
// when an already-consumed [Seq] is iterated a second time. Replace it to
// redirect or silence the output:
//
//	seq.Log = zerolog.Nop()
//	seq.Log = zerolog.New(&buf)
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func warnStale() {
	Log.Warn().Msg("seq: re-running already-consumed sequence; it will yield no elements")
}
