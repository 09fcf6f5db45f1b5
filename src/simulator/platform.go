package simulator

import (
	"syncfifo/src/misc"
)

// Platform is the unit the Simulator drives one cycle at a time.
type Platform interface {
	Init(command_line_parser *misc.CommandLineParser)
	Fini()
	IsFinished() bool
	Cycle()
	Dump()
}

func newPlatform() Platform {
	return new(FifoPlatform)
}
