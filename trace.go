package watchsat

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
)

// LogTracer implements Tracer by logging each step through a
// logrus.Logger at debug level. It is the diagnostic collaborator referred
// to in §4.L: purely a debugging aid, wired into the CLI's -v flag.
type LogTracer struct {
	Log *logrus.Logger
}

// NewLogTracer returns a LogTracer writing through log.
func NewLogTracer(log *logrus.Logger) *LogTracer {
	return &LogTracer{Log: log}
}

func (t *LogTracer) fields(level int, l Literal) logrus.Fields {
	return logrus.Fields{"level": level, "literal": l.String()}
}

func (t *LogTracer) OnDecide(level int, l Literal) {
	t.Log.WithFields(t.fields(level, l)).Debug("decide")
}

func (t *LogTracer) OnPropagate(level int, l Literal) {
	t.Log.WithFields(t.fields(level, l)).Debug("propagate")
}

func (t *LogTracer) OnBacktrack(level int, l Literal) {
	t.Log.WithFields(t.fields(level, l)).Debug("backtrack")
}

func (t *LogTracer) OnConflict(level int) {
	t.Log.WithField("level", level).Debug("conflict")
}

// DumpTrial renders a trial's internal state for interactive debugging,
// using kr/pretty the way ad hoc solver-internals dumps are written
// elsewhere in this ecosystem.
func DumpTrial(t *Trial) string {
	return fmt.Sprint(pretty.Formatter(t))
}
