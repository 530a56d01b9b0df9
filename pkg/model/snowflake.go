package model

import (
	"math/bits"
	"strconv"
	"time"

	"github.com/bwmarrin/snowflake"
)

// DiscordEpoch is the first millisecond of 2015, the zero point of the
// timestamp embedded in every Discord snowflake.
const DiscordEpoch int64 = 1420070400000

func init() {
	snowflake.Epoch = DiscordEpoch
}

// Snowflake is Discord's 64-bit unique identifier. It is a plain integer
// with the creation time and generator information packed into its bits,
// and the only catalog type that is not substitutable through the registry.
type Snowflake int64

func ParseSnowflake(s string) (Snowflake, error) {
	id, err := snowflake.ParseString(s)
	if err != nil {
		return 0, err
	}

	return Snowflake(id.Int64()), nil
}

func (s Snowflake) String() string {
	return strconv.FormatInt(int64(s), 10)
}

// Time returns the point in time the snowflake was generated.
func (s Snowflake) Time() time.Time {
	return time.UnixMilli(snowflake.ParseInt64(int64(s)).Time())
}

// Increment is the per-process counter of the generating worker.
func (s Snowflake) Increment() int64 {
	return int64(s) & 0xFFF
}

func (s Snowflake) ProcessID() int64 {
	return (int64(s) & 0x1F000) >> 12
}

func (s Snowflake) WorkerID() int64 {
	return (int64(s) & 0x3E0000) >> 17
}

// Valid reports whether the value could plausibly be a Discord ID: it must
// be positive, use at least the timestamp bits, and carry a timestamp
// between the Discord epoch and now.
func (s Snowflake) Valid() bool {
	if s <= 0 {
		return false
	}

	if bits.Len64(uint64(s)) < 22 {
		return false
	}

	t := s.Time()
	if t.Before(time.UnixMilli(DiscordEpoch)) {
		return false
	}

	return !t.After(time.Now())
}
