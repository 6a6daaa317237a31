// Package driver turns the building blocks used to stage Audacity for manual
// screenshots (clearing tracks, importing the sample recordings, generating
// tones, capturing windows) into fixed command sequences.
//
// Sequences never branch on response content. A command Audacity reports as
// failed is logged and skipped unless the driver stops on failure; transport
// errors always stop the sequence.
package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"docimages/internal/config"
	"docimages/internal/logging"
	"docimages/internal/session"
	"docimages/internal/textutil"
)

// Executor runs one command and returns its response.
type Executor interface {
	Execute(ctx context.Context, command string) (string, error)
}

// Options configures where screenshots go and which recordings are imported.
type Options struct {
	OutputPrefix  string
	MonoSample    string
	StereoSample  string
	StopOnFailure bool
}

// OptionsFromConfig derives driver options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		OutputPrefix:  cfg.OutputPrefix(),
		MonoSample:    cfg.Samples.Mono,
		StereoSample:  cfg.Samples.Stereo,
		StopOnFailure: cfg.Pipe.StopOnFailure,
	}
}

// Driver issues command sequences through an Executor.
type Driver struct {
	exec     Executor
	opts     Options
	logger   *slog.Logger
	failures int
}

// New constructs a driver.
func New(exec Executor, opts Options, logger *slog.Logger) *Driver {
	return &Driver{
		exec:   exec,
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "driver"),
	}
}

// Failures reports how many commands Audacity rejected so far.
func (d *Driver) Failures() int {
	return d.failures
}

// Do executes one command.
func (d *Driver) Do(ctx context.Context, command string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := d.exec.Execute(ctx, command)
	if err == nil {
		return nil
	}
	if errors.Is(err, session.ErrCommandFailed) {
		d.failures++
		if d.opts.StopOnFailure {
			return err
		}
		logging.WithContext(ctx, d.logger).Warn("command failed; continuing",
			logging.String(logging.FieldCommand, command),
			logging.Error(err),
		)
		return nil
	}
	return err
}

func (d *Driver) doAll(ctx context.Context, commands ...string) error {
	for _, command := range commands {
		if err := d.Do(ctx, command); err != nil {
			return err
		}
	}
	return nil
}

// QuickTest asks Audacity for the help text of the Help command.
func (d *Driver) QuickTest(ctx context.Context) error {
	return d.Do(ctx, "Help: Command=Help")
}

// ImageSet logs the banner that starts an image set.
func (d *Driver) ImageSet(ctx context.Context, name string) {
	logging.WithContext(ctx, d.logger).Info(fmt.Sprintf("****************** %s ***************************", textutil.Title(name)),
		logging.String(logging.FieldImageSet, name),
	)
}

// ClearTracks selects the first tracks and removes them.
func (d *Driver) ClearTracks(ctx context.Context) error {
	return d.doAll(ctx, "Select: First=0 Last=20", "RemoveTracks")
}

// Capture takes a screenshot of what into the output directory.
func (d *Driver) Capture(ctx context.Context, name, what string) error {
	return d.Do(ctx, CaptureCommand(d.opts.OutputPrefix, name, what))
}

// CaptureCommand renders a Screenshot command. The name is sanitized so it
// cannot break out of the quoted Path argument.
func CaptureCommand(prefix, name, what string) string {
	return `Screenshot: Path="` + prefix + textutil.SanitizeFileName(name) + `" CaptureWhat=` + what
}

// LoadMonoTrack replaces all tracks with the first 150 seconds of the mono sample.
func (d *Driver) LoadMonoTrack(ctx context.Context) error {
	return d.loadTrack(ctx, d.opts.MonoSample)
}

// LoadStereoTrack replaces all tracks with the first 150 seconds of the stereo sample.
func (d *Driver) LoadStereoTrack(ctx context.Context) error {
	return d.loadTrack(ctx, d.opts.StereoSample)
}

func (d *Driver) loadTrack(ctx context.Context, sample string) error {
	if err := d.ClearTracks(ctx); err != nil {
		return err
	}
	return d.doAll(ctx,
		`Import2: Filename="`+sample+`"`,
		"Select: First=0 Last=0 Start=0 End=150",
		"Trim",
		"ZoomSel",
	)
}

// LoadMonoTracks loads the mono sample and duplicates it into n tracks.
func (d *Driver) LoadMonoTracks(ctx context.Context, n int) error {
	return d.loadTracks(ctx, n, d.LoadMonoTrack, "Select: Start=55 End=70")
}

// LoadStereoTracks loads the stereo sample and duplicates it into n tracks.
func (d *Driver) LoadStereoTracks(ctx context.Context, n int) error {
	return d.loadTracks(ctx, n, d.LoadStereoTrack, "Select: Start=55 End=70 First=0 Last="+strconv.Itoa(n*2-1))
}

func (d *Driver) loadTracks(ctx context.Context, n int, load func(context.Context) error, finalSelect string) error {
	if err := d.ClearTracks(ctx); err != nil {
		return err
	}
	if err := load(ctx); err != nil {
		return err
	}
	if err := d.Do(ctx, `SetTrack: Track=0 Name="Foxy Lady"`); err != nil {
		return err
	}
	for i := 0; i < n-1; i++ {
		if err := d.Do(ctx, "Duplicate"); err != nil {
			return err
		}
	}
	return d.doAll(ctx, "FitInWindow", finalSelect)
}

// MakeMonoTracks creates n empty mono tracks and fills them with a
// wah-wahed chirp.
func (d *Driver) MakeMonoTracks(ctx context.Context, n int) error {
	return d.makeTracks(ctx, n, "NewMonoTrack", "Foxy Lady", n-1)
}

// MakeStereoTracks creates n empty stereo tracks and fills them with a
// wah-wahed chirp.
func (d *Driver) MakeStereoTracks(ctx context.Context, n int) error {
	return d.makeTracks(ctx, n, "NewStereoTrack", "Voodoo Children IN STEREO", n*2-1)
}

func (d *Driver) makeTracks(ctx context.Context, n int, newTrack, name string, last int) error {
	if err := d.ClearTracks(ctx); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := d.Do(ctx, newTrack); err != nil {
			return err
		}
	}
	return d.doAll(ctx,
		`SetTrack: Track=0 Name="`+name+`"`,
		"Select: Start=0 End=150 First=0 Last="+strconv.Itoa(last),
		"Chirp: StartAmp=0.5",
		"Wahwah",
		"FitInWindow",
		"Select: Start=55 End=70",
	)
}
