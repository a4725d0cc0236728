package bot

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gosuri/uilive"
)

// Countdown prints a single, in-place "Waiting N seconds" line that ticks
// down once per second. The uilive writer is flushed by hand so no refresh
// goroutine is started.
type Countdown struct {
	out   io.Writer
	sleep func(time.Duration)
}

// NewCountdown writes to out, or stdout when out is nil
func NewCountdown(out io.Writer) *Countdown {
	if out == nil {
		out = os.Stdout
	}
	return &Countdown{out: out, sleep: time.Sleep}
}

// Wait blocks for d, rounded down to whole seconds.
func (c *Countdown) Wait(d time.Duration) {
	seconds := int(d / time.Second)
	if seconds <= 0 {
		return
	}

	w := uilive.New()
	w.Out = c.out

	for i := seconds; i > 0; i-- {
		fmt.Fprintf(w, "Waiting %d seconds to continue the loop\n", i)
		w.Flush()
		c.sleep(time.Second)
	}

	fmt.Fprintln(w, "Waiting 0 seconds to continue the loop")
	w.Flush()
}
