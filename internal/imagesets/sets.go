package imagesets

import (
	"context"
	"fmt"
	"strings"

	"docimages/internal/driver"
	"docimages/internal/logging"
)

// Set is one named screenshot script.
type Set struct {
	Name        string
	Description string
	Run         func(ctx context.Context, d *driver.Driver) error
}

var registry = []Set{
	{Name: "tracks", Description: "Mono, stereo and multi-track audio track panels", Run: tracks},
	{Name: "labels", Description: "Label tracks alongside audio", Run: labels},
	{Name: "spectro", Description: "Spectrogram track views", Run: spectro},
	{Name: "after", Description: "Toolbars and effect menus captured last", Run: after},
}

// All returns every set in run order.
func All() []Set {
	return append([]Set(nil), registry...)
}

// Names returns the set names in run order.
func Names() []string {
	names := make([]string, len(registry))
	for i, set := range registry {
		names[i] = set.Name
	}
	return names
}

// Lookup finds a set by name, ignoring case.
func Lookup(name string) (Set, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, set := range registry {
		if set.Name == name {
			return set, true
		}
	}
	return Set{}, false
}

// RunAll runs every set in order.
func RunAll(ctx context.Context, d *driver.Driver) error {
	return Run(ctx, d, Names()...)
}

// Run runs the named sets in the given order and stops at the first error.
// Every name is resolved before any command is sent.
func Run(ctx context.Context, d *driver.Driver, names ...string) error {
	sets := make([]Set, 0, len(names))
	for _, name := range names {
		set, ok := Lookup(name)
		if !ok {
			return fmt.Errorf("unknown image set %q (available: %s)", name, strings.Join(Names(), ", "))
		}
		sets = append(sets, set)
	}
	for _, set := range sets {
		setCtx := logging.WithImageSet(ctx, set.Name)
		d.ImageSet(setCtx, set.Name)
		if err := set.Run(setCtx, d); err != nil {
			return fmt.Errorf("image set %s: %w", set.Name, err)
		}
	}
	return nil
}

func tracks(ctx context.Context, d *driver.Driver) error {
	if err := d.LoadMonoTracks(ctx, 1); err != nil {
		return err
	}
	if err := d.Capture(ctx, "MonoTrack.png", "First_Track"); err != nil {
		return err
	}
	if err := d.LoadStereoTracks(ctx, 1); err != nil {
		return err
	}
	if err := d.Capture(ctx, "StereoTrack.png", "First_Track"); err != nil {
		return err
	}
	if err := d.MakeMonoTracks(ctx, 3); err != nil {
		return err
	}
	if err := d.Capture(ctx, "ThreeMonoTracks.png", "First_Three_Tracks"); err != nil {
		return err
	}
	if err := d.MakeStereoTracks(ctx, 2); err != nil {
		return err
	}
	return d.Capture(ctx, "TwoStereoTracks.png", "First_Two_Tracks")
}

func labels(ctx context.Context, d *driver.Driver) error {
	if err := d.LoadMonoTracks(ctx, 1); err != nil {
		return err
	}
	steps := []string{
		"NewLabelTrack",
		"Select: Start=20 End=30 First=1 Last=1",
		"AddLabel",
		`SetLabel: Label=0 Text="Verse"`,
		"Select: Start=55 End=70 First=1 Last=1",
		"AddLabel",
		`SetLabel: Label=1 Text="Chorus"`,
	}
	for _, step := range steps {
		if err := d.Do(ctx, step); err != nil {
			return err
		}
	}
	return d.Capture(ctx, "LabelTrack.png", "First_Two_Tracks")
}

func spectro(ctx context.Context, d *driver.Driver) error {
	if err := d.LoadMonoTracks(ctx, 1); err != nil {
		return err
	}
	if err := d.Do(ctx, "SetTrack: Track=0 Display=Spectrogram"); err != nil {
		return err
	}
	if err := d.Capture(ctx, "SpectrogramMono.png", "First_Track"); err != nil {
		return err
	}
	if err := d.MakeStereoTracks(ctx, 1); err != nil {
		return err
	}
	if err := d.Do(ctx, "SetTrack: Track=0 Display=Spectrogram"); err != nil {
		return err
	}
	return d.Capture(ctx, "SpectrogramStereo.png", "First_Track")
}

func after(ctx context.Context, d *driver.Driver) error {
	if err := d.MakeMonoTracks(ctx, 1); err != nil {
		return err
	}
	captures := []struct{ name, what string }{
		{"Window.png", "Window"},
		{"AllTracks.png", "All_Tracks"},
		{"Toolbars.png", "Toolbars"},
		{"ToolsToolbar.png", "Tools"},
		{"TransportToolbar.png", "Transport"},
		{"MeterToolbar.png", "Meter"},
		{"SelectionToolbar.png", "Selectionbar"},
		{"Effects.png", "Effects"},
	}
	for _, c := range captures {
		if err := d.Capture(ctx, c.name, c.what); err != nil {
			return err
		}
	}
	return d.ClearTracks(ctx)
}
