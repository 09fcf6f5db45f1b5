package simulator

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"syncfifo/src/misc"
	"syncfifo/src/simulator/fifo"
	"syncfifo/src/simulator/stimulus"
)

// FifoPlatform drives the FIFO core with a stimulus generator, checks every
// tick against the scoreboard, and records an optional signal trace. One
// Cycle is exactly one Tick of the core.
type FifoPlatform struct {
	config_loader *misc.ConfigLoader

	fifo       *fifo.Fifo
	generator  stimulus.Generator
	scoreboard *Scoreboard
	trace      *TraceRecorder

	run_id    string
	tick      int64
	num_ticks int64
	verbose   int

	finished  bool
	check_err error
}

func (this *FifoPlatform) Init(command_line_parser *misc.CommandLineParser) {
	this.config_loader = new(misc.ConfigLoader)
	this.config_loader.Init()

	depth := uint64(this.config_loader.Depth())
	data_width := this.config_loader.DataWidth()

	fifo_, err := fifo.NewFifo(fifo.Config{Depth: depth, DataWidth: data_width})
	if err != nil {
		panic(err)
	}
	this.fifo = fifo_

	mode := misc.RuntimeStimulusMode()
	switch mode {
	case misc.StimulusModeDirected:
		directed := stimulus.NewDirected(depth)
		this.generator = directed
		this.num_ticks = directed.Length()
	case misc.StimulusModeRandom:
		this.generator = stimulus.NewRandom(
			this.config_loader.Seed(),
			this.config_loader.WriteDensity(),
			this.config_loader.ReadDensity(),
		)
		this.num_ticks = this.config_loader.NumTicks()
	case misc.StimulusModeSoak:
		this.generator = stimulus.NewSoak(depth, this.config_loader.Seed())
		this.num_ticks = this.config_loader.NumTicks()
	default:
		panic(fmt.Sprintf("unsupported stimulus mode: %s", mode))
	}

	this.scoreboard = NewScoreboard(depth, data_width)
	this.trace = NewTraceRecorder(this.config_loader.TraceEnabled())
	this.run_id = uuid.NewString()
	this.verbose = this.config_loader.Verbose()

	if this.verbose >= 1 {
		fmt.Printf("[fifo] run %s: depth=%d data_width=%d mode=%s ticks=%d\n",
			this.run_id, depth, data_width, mode, this.num_ticks)
	}
}

func (this *FifoPlatform) Fini() {
}

func (this *FifoPlatform) IsFinished() bool {
	return this.finished || this.tick >= this.num_ticks || this.generator.Finished(this.tick)
}

func (this *FifoPlatform) Cycle() {
	if this.IsFinished() {
		return
	}

	in := this.generator.Next(this.tick)
	out := this.fifo.Tick(in)

	this.trace.Record(this.tick, in, out)
	if this.verbose >= 2 {
		fmt.Printf("[fifo] tick=%d occupancy=%d empty=%v full=%v dout=%#x\n",
			this.tick, this.fifo.Occupancy(), out.Empty, out.Full, out.Data)
	}

	if err := this.scoreboard.Check(this.tick, in, out); err != nil {
		this.check_err = err
		this.finished = true
		fmt.Printf("[fifo] scoreboard: %v\n", err)
	}

	this.tick++
}

// CheckError returns the first scoreboard mismatch, if any.
func (this *FifoPlatform) CheckError() error {
	return this.check_err
}

// Ticks returns how many ticks have been simulated so far.
func (this *FifoPlatform) Ticks() int64 {
	return this.tick
}

func (this *FifoPlatform) Dump() {
	log_dirpath := this.config_loader.LogDirpath()

	summary := []string{
		fmt.Sprintf("run_id: %s", this.run_id),
		fmt.Sprintf("stimulus_mode: %s", misc.RuntimeStimulusMode()),
		fmt.Sprintf("depth: %d", this.fifo.Depth()),
		fmt.Sprintf("data_width: %d", this.fifo.DataWidth()),
	}
	summary = append(summary, this.scoreboard.Summary()...)
	if this.check_err != nil {
		summary = append(summary, fmt.Sprintf("scoreboard_error: %v", this.check_err))
	} else {
		summary = append(summary, "scoreboard_error: none")
	}

	summary_dumper := new(misc.FileDumper)
	summary_dumper.Init(filepath.Join(log_dirpath, "fifo_summary.txt"))
	summary_dumper.WriteLines(summary)

	if this.trace.Enabled() {
		trace_dumper := new(misc.FileDumper)
		trace_dumper.Init(filepath.Join(log_dirpath, "fifo_trace.txt"))
		trace_dumper.WriteLines(this.trace.Lines())
	}
}
