package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	natsgo "github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"voyager.com/zonk/dice"
	"voyager.com/zonk/logging"
	"voyager.com/zonk/sorting"
	"voyager.com/zonk/util"
	"voyager.com/zonk/zonk"
)

const (
	demoObserver = "observer"
	demoStrategy = "strategy"
	demoAll      = "all"
)

var demo *string
var configFile *string
var scripted *bool
var showMetrics *bool
var mainLogger = logging.GetZeroLogger("main::main", nil)

func init() {
	demo = flag.String("demo", demoAll, "demo to run: observer, strategy or all")
	configFile = flag.String("config", "", "YAML file with the demo settings")
	scripted = flag.Bool("scripted", false, "roll the scripted hands from the config instead of random dice")
	showMetrics = flag.Bool("metrics", false, "print the counters collected during the demo")
}

func main() {
	err := run()
	if err != nil {
		mainLogger.Error().Msg(err.Error())
		os.Exit(1)
	}
}

func run() error {
	zerolog.SetGlobalLevel(util.Env.GetZeroLogLogLevel())
	flag.Parse()

	var err error
	config := util.DefaultDemoConfig()
	if *configFile != "" {
		config, err = util.ParseDemoConfig(*configFile)
		if err != nil {
			return errors.Wrap(err, "Error while parsing demo config")
		}
	}

	switch *demo {
	case demoObserver:
		err = runObserverDemo(config, os.Stdout)
	case demoStrategy:
		err = runStrategyDemo(config, os.Stdout)
	case demoAll:
		err = runObserverDemo(config, os.Stdout)
		if err == nil {
			err = runStrategyDemo(config, os.Stdout)
		}
	default:
		err = fmt.Errorf("Unknown demo [%s]", *demo)
	}
	if err != nil {
		return err
	}

	if *showMetrics {
		return writeMetrics(os.Stdout)
	}
	return nil
}

func runObserverDemo(config util.DemoConfig, out io.Writer) error {
	roller, err := newRoller(config)
	if err != nil {
		return err
	}

	sink, err := newHandSink()
	if err != nil {
		return err
	}
	defer sink.close()

	history := zonk.NewHandHistory(config.Player, roller)
	saver := zonk.NewSaveHandObserver(history, sink)
	history.Attach(saver)

	hand, err := history.Start()
	if err != nil {
		return errors.Wrap(err, "Error while starting the hand")
	}
	fmt.Fprintf(out, "Start: %v\n", hand)
	for i := 0; i < config.Rolls; i++ {
		hand, err = history.Roll()
		if err != nil {
			return errors.Wrapf(err, "Error on roll %d", i+1)
		}
		fmt.Fprintf(out, "Roll %d: %v\n", i+1, hand)
	}

	err = history.Detach(saver)
	if err != nil {
		return err
	}
	event := mainLogger.Info().Str(logging.PlayerKey, config.Player).Int(logging.SequenceKey, saver.Count())
	if sink.redis != nil {
		records, err := sink.redis.Records(history.ID)
		if err != nil {
			return errors.Wrap(err, "Error reading back hand records")
		}
		event = event.Str(logging.HandIDKey, history.ID).Int("stored", len(records))
	}
	event.Msg("Hand history saved")
	return nil
}

func runStrategyDemo(config util.DemoConfig, out io.Writer) error {
	names := config.Strategies
	if envStrategy := util.Env.GetSortStrategy(); envStrategy != "" {
		names = []string{envStrategy}
	}
	if len(names) == 0 {
		return fmt.Errorf("No sort strategies configured")
	}

	first, err := sorting.StrategyByName(names[0])
	if err != nil {
		return err
	}
	sorter := sorting.NewSorter(first)
	for _, name := range names {
		strategy, err := sorting.StrategyByName(name)
		if err != nil {
			return err
		}
		sorter.SetStrategy(strategy)

		data := make([]int, len(config.SortData))
		copy(data, config.SortData)
		fmt.Fprintf(out, "%s: %v\n", strategyLabel(strategy), sorter.Sort(data))
	}
	return nil
}

func strategyLabel(strategy sorting.SortStrategy) string {
	switch strategy.Name() {
	case sorting.BubbleSortName:
		return "Bubble Sort"
	case sorting.QuickSortName:
		return "Quick Sort"
	}
	return strategy.Name()
}

func newRoller(config util.DemoConfig) (dice.Roller, error) {
	if *scripted {
		return dice.NewScriptedDice(config.ScriptedHands)
	}
	return dice.NewDiceSet(config.DiceCount, nil)
}

// handSink keeps the concrete redis sink around so the demo can read the
// records back after the turn.
type handSink struct {
	zonk.HandSink
	redis *zonk.RedisSink
	close func()
}

func newLogSink() *zonk.LogSink {
	if util.Env.GetLogFormat() == util.LogFormatJSON {
		return zonk.NewLogSink(logging.GetJSONLogger("zonk::savehand", nil))
	}
	return zonk.NewLogSink(nil)
}

func newHandSink() (*handSink, error) {
	noop := func() {}
	sinkType := util.Env.GetHandSink()
	mainLogger.Debug().Str(logging.SinkKey, sinkType).Msg("Creating hand sink")

	switch sinkType {
	case util.SinkMemory:
		return &handSink{HandSink: zonk.NewMemorySink(), close: noop}, nil
	case util.SinkRedis:
		redisSink := zonk.NewRedisSink(util.Env.GetRedisAddr(), util.Env.GetRedisPW(), util.Env.GetRedisDB())
		// Records also go to the console so the demo output stays readable.
		return &handSink{
			HandSink: zonk.MultiSink{newLogSink(), redisSink},
			redis:    redisSink,
			close: func() {
				if err := redisSink.Close(); err != nil {
					mainLogger.Warn().Msgf("Error closing redis client: %v", err)
				}
			},
		}, nil
	case util.SinkNats:
		natsURL := util.Env.GetNatsURL()
		nc, err := natsgo.Connect(natsURL)
		if err != nil {
			return nil, errors.Wrapf(err, "Error connecting to NATS server %s", natsURL)
		}
		return &handSink{
			HandSink: zonk.MultiSink{newLogSink(), zonk.NewNatsSink(nc)},
			close: func() {
				if err := nc.Flush(); err != nil {
					mainLogger.Warn().Msgf("Error flushing NATS connection: %v", err)
				}
				nc.Close()
			},
		}, nil
	default:
		return &handSink{HandSink: newLogSink(), close: noop}, nil
	}
}

// writeMetrics prints every counter in the default registry as
// "name{label="value"} count".
func writeMetrics(out io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return errors.Wrap(err, "Error gathering metrics")
	}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			labels := make([]string, 0, len(m.GetLabel()))
			for _, label := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", label.GetName(), label.GetValue()))
			}
			name := family.GetName()
			if len(labels) > 0 {
				name = fmt.Sprintf("%s{%s}", name, strings.Join(labels, ","))
			}
			fmt.Fprintf(out, "%s %v\n", name, m.GetCounter().GetValue())
		}
	}
	return nil
}
