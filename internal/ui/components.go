package ui

import (
	"fmt"
	"time"

	"github.com/olivier-w/eqviz/internal/engine"
	"github.com/olivier-w/eqviz/internal/util"
)

// renderStatusLine summarizes the stream below the bars.
func renderStatusLine(s engine.Stats, bandCount, fps int, now time.Time) string {
	line := fmt.Sprintf("bands %d  frames %d  dropped %d  %d fps", bandCount, s.Frames, s.Stale, fps)
	if !s.LastSeen.IsZero() {
		if age := now.Sub(s.LastSeen); age >= time.Second {
			line += "  idle " + util.FormatDuration(age)
		}
	}
	return line + "  " + helpText()
}
