package main

import (
	"fmt"
	"os"
	"path/filepath"
	"syncfifo/src/misc"
	"syncfifo/src/simulator"
)

func main() {
	command_line_parser := InitCommandLineParser()
	command_line_parser.Parse(os.Args)

	if command_line_parser.IsArgSet("help") {
		fmt.Printf("%s", command_line_parser.StringifyHelpMsgs())
		return
	}

	misc.ConfigureRuntime(command_line_parser)

	command_line_validator := new(misc.CommandLineValidator)
	command_line_validator.Init(command_line_parser)
	command_line_validator.Validate()

	config_loader := new(misc.ConfigLoader)
	config_loader.Init()

	config_validator := new(misc.ConfigValidator)
	config_validator.Init(config_loader)
	config_validator.Validate()

	log_dirpath := config_loader.LogDirpath()

	args_file_dumper := new(misc.FileDumper)
	args_file_dumper.Init(filepath.Join(log_dirpath, "args.txt"))
	args_file_dumper.WriteLines([]string{command_line_parser.StringifyArgs()})

	options_file_dumper := new(misc.FileDumper)
	options_file_dumper.Init(filepath.Join(log_dirpath, "options.txt"))
	options_file_dumper.WriteLines([]string{command_line_parser.StringifyOptions()})

	simulator_ := new(simulator.Simulator)
	simulator_.Init(command_line_parser)

	for !simulator_.IsFinished() {
		simulator_.Cycle()
	}

	simulator_.Dump()
	simulator_.Fini()

	if config_loader.Verbose() >= 1 {
		fmt.Printf("[fifo] simulation finished, results in %s\n", log_dirpath)
	}
}

func InitCommandLineParser() *misc.CommandLineParser {
	command_line_parser := new(misc.CommandLineParser)
	command_line_parser.Init()

	// NOTE: Explanation of verbose level
	// level 0: Only prints the scoreboard verdict
	// level 1: level 0 + prints the run banner and completion line
	// level 2: level 1 + prints per-tick FIFO state
	command_line_parser.AddOption(misc.INT, "verbose", "0", "verbosity of the simulation")

	command_line_parser.AddOption(misc.INT, "depth", "8",
		"FIFO depth in slots (must be a power of two)")
	command_line_parser.AddOption(misc.INT, "data_width", "8",
		"stored word width in bits (1-64)")

	command_line_parser.AddOption(
		misc.STRING,
		"stimulus_mode",
		string(misc.DefaultStimulusMode()),
		"stimulus mode (directed|random|soak)",
	)
	command_line_parser.AddOption(misc.INT, "num_ticks", "1024",
		"number of ticks to simulate in open-ended stimulus modes")
	command_line_parser.AddOption(misc.INT, "seed", "1", "stimulus random seed")
	command_line_parser.AddOption(
		misc.INT,
		"write_density",
		"60",
		"probability in percent that a tick asserts write_request (random mode)",
	)
	command_line_parser.AddOption(
		misc.INT,
		"read_density",
		"40",
		"probability in percent that a tick asserts read_request (random mode)",
	)

	command_line_parser.AddOption(misc.INT, "trace", "0",
		"record a per-tick signal trace (0|1)")
	command_line_parser.AddOption(misc.STRING, "log_dirpath", "log",
		"path to the log directory")

	return command_line_parser
}
