// Package karifa runs an LED ornament's animations on a host computer. The
// daemon plays a built-in animation catalog and sends the brightness levels
// to a USB replica, an Open Pixel Control server or a terminal preview.
package karifa

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"libdb.so/karifa/animation"
	"libdb.so/karifa/internal/battery"
	"libdb.so/karifa/internal/button"
	"libdb.so/karifa/internal/led"
	"libdb.so/karifa/internal/output"
	"libdb.so/karifa/internal/preview"
	"libdb.so/karifa/internal/timebase"
	"libdb.so/karifa/persist"
)

// ErrPowerDown is returned internally when the ornament powers itself down.
// Run reports it as a clean exit.
var ErrPowerDown = errors.New("powered down")

// Pin is the interface for the button's input pin.
type Pin interface {
	// Pressed returns true while the button is held down.
	Pressed() bool
}

type releasedPin struct{}

func (releasedPin) Pressed() bool { return false }

// Daemon is the main Karifa daemon.
type Daemon struct {
	cfg     *Config
	logger  *slog.Logger
	catalog *animation.Catalog

	mono *led.Buffer
	rgb  *led.Buffer // nil without an RGB stream

	pin   Pin
	sinks []output.Sink
}

// NewDaemon creates a new Karifa daemon.
func NewDaemon(cfg *Config, logger *slog.Logger) (*Daemon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	catalog, err := animation.Lookup(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid catalog %q", cfg.Catalog)
	}

	d := &Daemon{
		cfg:     cfg,
		logger:  logger,
		catalog: catalog,
		mono:    led.NewBuffer(catalog.Mono.Channels),
		pin:     releasedPin{},
	}
	if catalog.HasRGB() {
		d.rgb = led.NewBuffer(catalog.RGB.Channels)
	}

	return d, nil
}

// Catalog returns the catalog being played.
func (d *Daemon) Catalog() *animation.Catalog {
	return d.catalog
}

// SetPin sets the button's input pin. It replaces the preview's pin and must
// be called before Run.
func (d *Daemon) SetPin(pin Pin) {
	d.pin = pin
}

// AddSink adds an output next to the configured ones. It must be called
// before Run.
func (d *Daemon) AddSink(sink output.Sink) {
	d.sinks = append(d.sinks, sink)
}

// outputs returns the buffers as engine outputs. A nil buffer must become a
// nil interface.
func (d *Daemon) outputs() (mono, rgb animation.Output) {
	mono = d.mono
	if d.rgb != nil {
		rgb = d.rgb
	}
	return mono, rgb
}

// Run starts the daemon. It blocks until the given context is canceled, the
// ornament powers down or the preview is closed.
func (d *Daemon) Run(ctx context.Context) error {
	store, err := d.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	sel, err := persist.LoadSelection(store)
	if err != nil {
		return err
	}
	d.logger.Debug(
		"loaded selection",
		"index", sel.Index(),
		"backend", d.cfg.Persist.Backend)

	if name := d.cfg.Animation; name != "" {
		i, ok := d.catalog.Index(name)
		if !ok {
			return errors.Errorf("catalog %q has no animation %q", d.catalog.Name, name)
		}
		sel.SetIndex(i)
		d.logger.Debug(
			"starting with configured animation",
			"animation", name,
			"index", i)
	}

	sinks, err := d.openSinks(sel)
	if err != nil {
		return err
	}

	clock := timebase.NewClock(time.Millisecond)
	sampler := output.NewSampler(d.mono, d.rgb, d.cfg.Rate, d.logger, sinks...)

	errg, ctx := errgroup.WithContext(ctx)
	errg.Go(func() error {
		return clock.Run(ctx)
	})
	errg.Go(func() error {
		return sampler.Run(ctx)
	})
	errg.Go(func() error {
		return d.mainLoop(ctx, clock, sel)
	})

	err = errg.Wait()
	if errors.Is(err, ErrPowerDown) || errors.Is(err, preview.ErrQuit) {
		return nil
	}
	return err
}

func (d *Daemon) openStore() (persist.Store, error) {
	switch d.cfg.Persist.Backend {
	case FilePersistBackend:
		return persist.OpenFileStore(d.cfg.Persist.Path, persist.DefaultPageSize)
	case SQLitePersistBackend:
		return persist.OpenSQLiteStore(d.cfg.Persist.Path)
	default:
		return &persist.MemoryStore{}, nil
	}
}

func (d *Daemon) openSinks(sel *persist.Selection) ([]output.Sink, error) {
	sinks := append([]output.Sink(nil), d.sinks...)

	numRGB := 0
	if d.rgb != nil {
		numRGB = d.rgb.Len()
	}

	if cfg := d.cfg.Serial; cfg != nil {
		s, err := output.OpenSerial(cfg.Device, cfg.Baud, d.mono.Len(), numRGB, d.logger)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s)
	}

	if cfg := d.cfg.OPC; cfg != nil {
		s, err := output.DialOPC(cfg.Address, cfg.Channel)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s)
	}

	if d.cfg.Preview {
		pin := &preview.Pin{}
		p, err := preview.Open(pin, func() string {
			return d.animationName(sel.Index())
		})
		if err != nil {
			return nil, err
		}
		if _, ok := d.pin.(releasedPin); ok {
			d.pin = pin
		}
		sinks = append(sinks, p)
	}

	if len(sinks) == 0 {
		d.logger.Warn("no outputs configured, animations are not shown anywhere")
	}

	return sinks, nil
}

func (d *Daemon) animationName(i uint8) string {
	if int(i) < d.catalog.Len() {
		return d.catalog.Animations[i].Name
	}
	return d.catalog.Animations[0].Name
}

func (d *Daemon) mainLoop(ctx context.Context, clock *timebase.Clock, sel *persist.Selection) error {
	start := time.Now()
	mono, rgb := d.outputs()

	if mv := d.cfg.Battery.Millivolts; mv > 0 {
		d.logger.Info(
			"showing battery gauge",
			"millivolts", mv)

		if err := battery.Show(ctx, mv, d.mono, rgb, d.mono.Len(), time.Duration(d.cfg.Battery.Show)); err != nil {
			return err
		}
	}

	ticker := time.NewTicker(time.Duration(d.cfg.Tick))
	defer ticker.Stop()

	// A press that was already held at power-up is not a press.
	for d.pin.Pressed() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	engine := animation.NewEngine(d.catalog, clock, sel, mono, rgb)
	engine.SetTracer(func(ev animation.Event) {
		d.logger.Debug(
			"evaluated instruction",
			"animation", d.animationName(ev.Animation),
			"stream", ev.Stream,
			"instruction", ev.Instruction,
			"repeats", ev.Repeats)
	})

	btn := button.New(d.cfg.Button.Durations())

	var autoOff <-chan time.Time // nil when disabled
	if d.cfg.AutoOff > 0 {
		timer := time.NewTimer(time.Duration(d.cfg.AutoOff) - time.Since(start))
		defer timer.Stop()
		autoOff = timer.C
	}

	d.logger.Info(
		"playing animation",
		"animation", d.animationName(engine.Current()))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-autoOff:
			d.logger.Info("uptime limit reached, powering down", "auto_off", d.cfg.AutoOff)
			return d.powerDown(ctx)
		case <-ticker.C:
		}

		engine.Cycle()

		switch ev := btn.Poll(clock.Millis(), d.pin.Pressed()); ev {
		case button.Short:
			next := d.catalog.Next(engine.Current())
			engine.SetAnimation(next)
			if err := sel.Save(); err != nil {
				d.logger.Warn(
					"failed to save selection",
					"error", err)
			}
			d.logger.Info(
				"playing animation",
				"animation", d.animationName(next))

		case button.Long:
			d.logger.Debug("long press, turning off")
			engine.SetAnimation(d.catalog.Off())

		case button.LongReleased:
			d.logger.Info("powering down")
			return d.powerDown(ctx)
		}
	}
}

// powerDown turns every LED off and gives the outputs a couple of frames to
// show it.
func (d *Daemon) powerDown(ctx context.Context) error {
	d.mono.Clear()
	if d.rgb != nil {
		d.rgb.Clear()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(2 * time.Second / time.Duration(d.cfg.Rate)):
		return ErrPowerDown
	}
}
