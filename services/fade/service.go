package fade

import (
	"context"
	"io"
	"strconv"
	"sync"
	"time"

	"fadecode-go/bus"
	"fadecode-go/errcode"
	"fadecode-go/types"
	"fadecode-go/x/ramp"
	"fadecode-go/x/timex"
)

type channel struct {
	name  string
	fader *ramp.Fader
	ramps []types.PWMRamp
}

// Service runs each registered sink through its list of ramps, one
// goroutine per sink.
type Service struct {
	period time.Duration
	loop   bool
	out    io.Writer       // optional console mirror
	outMu  sync.Mutex      // channels log concurrently
	conn   *bus.Connection // optional status publisher
	chans  []channel
}

// Topic returns the retained status topic of channel name.
func Topic(name string) bus.Topic { return bus.T("fade", name) }

// New builds an empty service using the tick period and loop flag of cfg.
// Log lines also go to out and status goes to conn when they are non-nil.
func New(cfg types.FadeConfig, out io.Writer, conn *bus.Connection) *Service {
	return &Service{
		period: time.Duration(cfg.PeriodMs) * time.Millisecond,
		loop:   cfg.Loop,
		out:    out,
		conn:   conn,
	}
}

// Add registers sink under name. The sink is set to initial right away.
func (s *Service) Add(name string, sink ramp.Sink, top, initial uint16, ramps []types.PWMRamp) *ramp.Fader {
	f := ramp.NewFader(sink, top)
	f.Set(initial)
	s.chans = append(s.chans, channel{name: name, fader: f, ramps: ramps})
	return f
}

// Run drives every channel until all ramps are done (or forever when
// looping) or ctx is cancelled. The first channel failure stops the
// other channels and is returned.
func (s *Service) Run(ctx context.Context) error {
	if len(s.chans) == 0 {
		return errcode.InvalidParams
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var (
		wg    sync.WaitGroup
		once  sync.Once
		first error
	)
	for i := range s.chans {
		ch := &s.chans[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.runChannel(ctx, ch); err != nil {
				once.Do(func() {
					first = err
					cancel()
				})
			}
		}()
	}
	wg.Wait()
	return first
}

func (s *Service) runChannel(ctx context.Context, ch *channel) error {
	for {
		for _, r := range ch.ramps {
			if err := ch.fader.Start(r.To, r.Steps); err != nil {
				s.say("[fade] " + ch.name + ": " + err.Error())
				return &errcode.E{C: errcode.Of(err), Op: "fade." + ch.name, Err: err}
			}
			s.say("[fade] " + ch.name + " -> " + strconv.FormatUint(uint64(r.To), 10) +
				" in " + strconv.FormatUint(uint64(r.Steps), 10) + " steps")
			s.publish(ch, r.To)
			err := ch.fader.Run(ctx, s.interval(r))
			s.publish(ch, r.To)
			if err != nil {
				return nil // cancelled
			}
			if r.HoldMs > 0 && !ramp.ContextTick(ctx)(time.Duration(r.HoldMs)*time.Millisecond) {
				return nil
			}
		}
		if !s.loop || len(ch.ramps) == 0 {
			s.say("[fade] " + ch.name + " done")
			return nil
		}
	}
}

// interval spreads a ramp's duration over its steps; ramps without a
// duration tick at the service period.
func (s *Service) interval(r types.PWMRamp) time.Duration {
	if r.DurationMs == 0 {
		return s.period
	}
	return timex.StepInterval(time.Duration(r.DurationMs)*time.Millisecond, r.Steps)
}

func (s *Service) publish(ch *channel, target uint16) {
	if s.conn == nil {
		return
	}
	st := types.FadeStatus{Level: ch.fader.Level(), Target: target, Active: ch.fader.Active()}
	s.conn.Publish(bus.NewMessage(Topic(ch.name), st, true))
}

func (s *Service) say(msg string) {
	println(msg)
	if s.out != nil {
		s.outMu.Lock()
		_, _ = s.out.Write([]byte(msg + "\r\n"))
		s.outMu.Unlock()
	}
}
