package hashmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 16, cfg.InitialCapacity)
	require.Equal(t, LinkedList, cfg.Collision)
	require.Equal(t, FullCopy, cfg.Resize)
	require.Equal(t, 0.75, cfg.MaxLoadFactor)
	require.Equal(t, 16, cfg.MigrationBatch)
	require.NoError(t, cfg.Validate())

	// The zero config means defaults
	require.Equal(t, cfg, Config{}.withDefaults())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		want   error
	}{
		{
			name:   "Negative capacity",
			modify: func(c *Config) { c.InitialCapacity = -1 },
			want:   ErrInvalidConfig,
		},
		{
			name:   "Load factor above one",
			modify: func(c *Config) { c.MaxLoadFactor = 1.5 },
			want:   ErrInvalidConfig,
		},
		{
			name:   "Negative load factor",
			modify: func(c *Config) { c.MaxLoadFactor = -0.5 },
			want:   ErrInvalidConfig,
		},
		{
			name:   "Negative batch",
			modify: func(c *Config) { c.MigrationBatch = -4 },
			want:   ErrInvalidConfig,
		},
		{
			name:   "Unknown collision",
			modify: func(c *Config) { c.Collision = Collision(42) },
			want:   ErrInvalidConfig,
		},
		{
			name:   "Unknown resize",
			modify: func(c *Config) { c.Resize = Resize(42) },
			want:   ErrInvalidConfig,
		},
		{
			name: "Fixed linear probing",
			modify: func(c *Config) {
				c.Collision = LinearProbing
				c.Resize = Fixed
			},
			want: ErrUnsupportedStrategy,
		},
		{
			name:   "Load factor of one",
			modify: func(c *Config) { c.MaxLoadFactor = 1 },
		},
		{
			name:   "Capacity not a power of two",
			modify: func(c *Config) { c.InitialCapacity = 3 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)

			// New refuses to build a map from it
			m, err := New[int, int](cfg)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, m)
		})
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
initial-capacity = 64
collision = "linear-probing"
resize = "incremental"
max-load-factor = 0.5
migration-batch = 8
`))
	require.NoError(t, err)
	require.Equal(t, Config{
		InitialCapacity: 64,
		Collision:       LinearProbing,
		Resize:          Incremental,
		MaxLoadFactor:   0.5,
		MigrationBatch:  8,
	}, cfg)

	m, err := New[string, int](cfg)
	require.NoError(t, err)
	require.Equal(t, 64, m.Stats().Capacity)
}

func TestParseConfig_Partial(t *testing.T) {
	cfg, err := ParseConfig([]byte(`collision = "dynamic-array"`))
	require.NoError(t, err)

	want := DefaultConfig()
	want.Collision = DynamicArray
	require.Equal(t, want, cfg)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{name: "Unknown strategy", data: `collision = "cuckoo"`},
		{name: "Unknown key", data: `buckets = 4`, want: ErrInvalidConfig},
		{name: "Wrong type", data: `initial-capacity = "big"`},
		{name: "Syntax", data: `initial-capacity = `},
		{name: "Invalid value", data: `initial-capacity = -8`, want: ErrInvalidConfig},
		{
			name: "Unsupported combination",
			data: "collision = \"linear-probing\"\nresize = \"fixed\"",
			want: ErrUnsupportedStrategy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			require.Error(t, err)

			if tt.want != nil {
				require.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestStrategyNames(t *testing.T) {
	for _, c := range collisions {
		text, err := c.MarshalText()
		require.NoError(t, err)

		var got Collision
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, c, got)
	}

	for _, r := range []Resize{FullCopy, Incremental, Fixed} {
		text, err := r.MarshalText()
		require.NoError(t, err)

		var got Resize
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, r, got)
	}

	assert.Equal(t, "linear-probing", LinearProbing.String())
	assert.Equal(t, "incremental", Incremental.String())
	assert.Equal(t, "Collision(9)", Collision(9).String())
	assert.Equal(t, "Resize(9)", Resize(9).String())

	_, err := Collision(9).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidConfig)

	var r Resize
	assert.ErrorIs(t, r.UnmarshalText([]byte("stop-the-world")), ErrInvalidConfig)
}
