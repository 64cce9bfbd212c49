package mines

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a board cannot be built from the
// given dimensions and mine count.
var ErrInvalidConfiguration = errors.New("invalid board configuration")

func invalidConfiguration(width, height, mineCount int, reason string) error {
	return fmt.Errorf(
		"%w: %s (width = %d, height = %d, mine_count = %d)",
		ErrInvalidConfiguration, reason, width, height, mineCount,
	)
}
