// Package config describes a set of generator streams in TOML and builds
// them.
//
//	algorithm   = "dsfmt"
//	streams     = 8
//	seed        = "run-2024-07"
//	strategy    = "jump"
//	compression = "zstd"
//	log_level   = "info"
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/moontrade/bitgen"
	"github.com/moontrade/bitgen/logger"
	"github.com/moontrade/bitgen/registry"
	"github.com/moontrade/bitgen/snapshot"
)

const (
	// StrategyJump seeds one generator and jumps it once per stream.
	StrategyJump = "jump"
	// StrategyEntropy seeds every stream from its own entropy words.
	StrategyEntropy = "entropy"
)

var ErrInvalid = errors.New("invalid config")

// Config is the decoded configuration. Zero fields take their defaults.
type Config struct {
	// Algorithm names a registered engine. Default "pcg32"
	Algorithm string `toml:"algorithm"`

	// Streams is the number of generators to build. Default 1
	Streams int `toml:"streams"`

	// Seed is hashed into the seed material. Empty means system entropy,
	// in which case runs are not reproducible.
	Seed string `toml:"seed"`

	// Strategy is StrategyJump or StrategyEntropy. Default StrategyJump
	Strategy string `toml:"strategy"`

	// Compression is the snapshot codec. Default "snappy"
	Compression string `toml:"compression"`

	// LogLevel [trace,debug,info,warn,error,silent]. Default "warn"
	LogLevel string `toml:"log_level"`
}

func (conf *Config) def() {
	if conf.Algorithm == "" {
		conf.Algorithm = "pcg32"
	}
	if conf.Streams == 0 {
		conf.Streams = 1
	}
	if conf.Strategy == "" {
		conf.Strategy = StrategyJump
	}
	if conf.Compression == "" {
		conf.Compression = "snappy"
	}
	if conf.LogLevel == "" {
		conf.LogLevel = "warn"
	}
}

// Validate fills the defaults and checks every field.
func (conf *Config) Validate() error {
	conf.def()
	conf.Algorithm = strings.ToLower(conf.Algorithm)
	if _, err := registry.Lookup(conf.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if conf.Streams < 0 {
		return fmt.Errorf("%w: streams %d", ErrInvalid, conf.Streams)
	}
	switch conf.Strategy {
	case StrategyJump, StrategyEntropy:
	default:
		return fmt.Errorf("%w: strategy %q", ErrInvalid, conf.Strategy)
	}
	if _, err := snapshot.ParseCodec(conf.Compression); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := logger.ParseLevel(conf.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, conf.LogLevel)
	}
	return nil
}

// Parse decodes and validates a TOML document. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	var conf Config
	md, err := toml.Decode(string(data), &conf)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// Load reads and parses the TOML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	conf, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return conf, nil
}

// ApplyLogLevel sets the package logger level.
func (conf *Config) ApplyLogLevel() error {
	level, err := logger.ParseLevel(conf.LogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	return nil
}

// Entropy returns the seed material described by Seed.
func (conf *Config) Entropy() bitgen.Entropy {
	if conf.Seed == "" {
		return bitgen.SystemEntropy
	}
	return bitgen.Hashed([]byte(conf.Seed))
}

// Codec returns the snapshot codec.
func (conf *Config) Codec() (snapshot.Codec, error) {
	return snapshot.ParseCodec(conf.Compression)
}

// Build returns Streams generators. Under StrategyJump stream i is the seed
// generator jumped i times, so the streams do not overlap. Engines without
// a jump fall back to StrategyEntropy.
func (conf *Config) Build() ([]bitgen.BitGenerator, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	entry, err := registry.Lookup(conf.Algorithm)
	if err != nil {
		return nil, err
	}
	entropy := conf.Entropy()
	strategy := conf.Strategy
	if strategy == StrategyJump && !entry.Jumps {
		logger.Info("algorithm", conf.Algorithm, "strategy", StrategyEntropy,
			"no jump available")
		strategy = StrategyEntropy
	}

	streams := make([]bitgen.BitGenerator, 0, conf.Streams)
	for i := 0; i < conf.Streams; i++ {
		var g bitgen.BitGenerator
		if strategy == StrategyJump && i > 0 {
			g, err = streams[i-1].JumpedGenerator(1)
		} else {
			g, err = entry.Seed(entropy)
		}
		if err != nil {
			return nil, fmt.Errorf("stream %d: %w", i, err)
		}
		streams = append(streams, g)
	}
	logger.Debug("algorithm", conf.Algorithm, "strategy", strategy,
		"streams", len(streams), "streams built")
	return streams, nil
}

// Snapshot encodes the state of g with the configured codec.
func (conf *Config) Snapshot(g bitgen.BitGenerator) ([]byte, error) {
	codec, err := conf.Codec()
	if err != nil {
		return nil, err
	}
	return snapshot.Encode(g.State(), codec)
}

// Restore rebuilds a generator from a snapshot frame. The frame's algorithm
// need not match Algorithm.
func Restore(frame []byte) (bitgen.BitGenerator, error) {
	s, err := snapshot.Decode(frame)
	if err != nil {
		return nil, err
	}
	return registry.RestoreState(s)
}
