package hashmap

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	DefaultInitialCapacity = 16
	DefaultMaxLoadFactor   = 0.75
	DefaultMigrationBatch  = 16
)

// Collision selects the bucket layout and collision resolution algorithm.
type Collision uint8

const (
	// LinkedList chains colliding entries in a singly-linked list.
	LinkedList Collision = iota
	// DynamicArray chains colliding entries in a per-bucket growable slice.
	DynamicArray
	// LinearProbing stores one entry per slot and probes forward on collision.
	LinearProbing
)

var collisionNames = [...]string{
	LinkedList:    "linked-list",
	DynamicArray:  "dynamic-array",
	LinearProbing: "linear-probing",
}

func (c Collision) String() string {
	if int(c) < len(collisionNames) {
		return collisionNames[c]
	}

	return fmt.Sprintf("Collision(%d)", uint8(c))
}

func (c Collision) MarshalText() ([]byte, error) {
	if int(c) >= len(collisionNames) {
		return nil, errors.Wrapf(ErrInvalidConfig, "unknown collision strategy %d", uint8(c))
	}

	return []byte(c.String()), nil
}

func (c *Collision) UnmarshalText(text []byte) error {
	for i, name := range collisionNames {
		if name == string(text) {
			*c = Collision(i)
			return nil
		}
	}

	return errors.Wrapf(ErrInvalidConfig, "unknown collision strategy %q", text)
}

// Resize selects when and how the bucket store is replaced.
type Resize uint8

const (
	// FullCopy rehashes every entry into a store of double capacity in one go.
	FullCopy Resize = iota
	// Incremental allocates the bigger store at once, but moves old entries
	// over in small batches on subsequent puts.
	Incremental
	// Fixed never resizes.
	Fixed
)

var resizeNames = [...]string{
	FullCopy:    "full-copy",
	Incremental: "incremental",
	Fixed:       "fixed",
}

func (r Resize) String() string {
	if int(r) < len(resizeNames) {
		return resizeNames[r]
	}

	return fmt.Sprintf("Resize(%d)", uint8(r))
}

func (r Resize) MarshalText() ([]byte, error) {
	if int(r) >= len(resizeNames) {
		return nil, errors.Wrapf(ErrInvalidConfig, "unknown resize strategy %d", uint8(r))
	}

	return []byte(r.String()), nil
}

func (r *Resize) UnmarshalText(text []byte) error {
	for i, name := range resizeNames {
		if name == string(text) {
			*r = Resize(i)
			return nil
		}
	}

	return errors.Wrapf(ErrInvalidConfig, "unknown resize strategy %q", text)
}

// Config describes how a map is built. Zero fields take their defaults.
type Config struct {
	// Number of buckets the map starts with, and returns to on Clear.
	InitialCapacity int `toml:"initial-capacity"`

	Collision Collision `toml:"collision"`
	Resize    Resize    `toml:"resize"`

	// A put resizes the map when (len + 1) / capacity reaches this value.
	MaxLoadFactor float64 `toml:"max-load-factor"`

	// Max number of entries moved per put during an incremental resize.
	MigrationBatch int `toml:"migration-batch"`
}

func DefaultConfig() Config {
	return Config{
		InitialCapacity: DefaultInitialCapacity,
		Collision:       LinkedList,
		Resize:          FullCopy,
		MaxLoadFactor:   DefaultMaxLoadFactor,
		MigrationBatch:  DefaultMigrationBatch,
	}
}

func (c Config) withDefaults() Config {
	if c.InitialCapacity == 0 {
		c.InitialCapacity = DefaultInitialCapacity
	}
	if c.MaxLoadFactor == 0 {
		c.MaxLoadFactor = DefaultMaxLoadFactor
	}
	if c.MigrationBatch == 0 {
		c.MigrationBatch = DefaultMigrationBatch
	}

	return c
}

func (c Config) Validate() error {
	if c.InitialCapacity <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "initial capacity must be positive, got %d", c.InitialCapacity)
	}
	// Above 1 an open-addressed store could fill up completely.
	if !(c.MaxLoadFactor > 0 && c.MaxLoadFactor <= 1) {
		return errors.Wrapf(ErrInvalidConfig, "max load factor must be in (0, 1], got %v", c.MaxLoadFactor)
	}
	if c.MigrationBatch <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "migration batch must be positive, got %d", c.MigrationBatch)
	}
	if int(c.Collision) >= len(collisionNames) {
		return errors.Wrapf(ErrInvalidConfig, "unknown collision strategy %d", uint8(c.Collision))
	}
	if int(c.Resize) >= len(resizeNames) {
		return errors.Wrapf(ErrInvalidConfig, "unknown resize strategy %d", uint8(c.Resize))
	}
	if c.Resize == Fixed && c.Collision == LinearProbing {
		return errors.Wrapf(ErrUnsupportedStrategy, "%s with %s", c.Resize, c.Collision)
	}

	return nil
}

// ParseConfig decodes a TOML document on top of DefaultConfig and validates
// the result.
//
//	initial-capacity = 64
//	collision = "linear-probing"
//	resize = "incremental"
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "hashmap: decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "unknown keys %v", undecoded)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
