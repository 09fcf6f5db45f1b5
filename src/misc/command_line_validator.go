package misc

import (
	"errors"
	"fmt"
)

type CommandLineValidator struct {
	command_line_parser *CommandLineParser
}

func (this *CommandLineValidator) Init(command_line_parser *CommandLineParser) {
	this.command_line_parser = command_line_parser
}

func (this *CommandLineValidator) Validate() {
	if this.command_line_parser.IntParameter("depth") <= 0 {
		err := errors.New("depth <= 0")
		panic(err)
	}

	if this.command_line_parser.IntParameter("data_width") <= 0 {
		err := errors.New("data_width <= 0")
		panic(err)
	}

	if this.command_line_parser.IntParameter("num_ticks") <= 0 {
		err := errors.New("num_ticks <= 0")
		panic(err)
	}

	stimulus_mode := this.command_line_parser.StringParameter("stimulus_mode")
	if _, ok := StimulusModeFromString(stimulus_mode); !ok {
		err := fmt.Errorf("stimulus_mode %s is not supported", stimulus_mode)
		panic(err)
	}

	if this.command_line_parser.StringParameter("log_dirpath") == "" {
		err := errors.New("log_dirpath is empty")
		panic(err)
	}
}
