package domain

import "time"

// Represents a single shipment request handled by the system.
// An Order has a unique identifier, a destination location key and a cargo
// weight. Orders are immutable values: an allocation run only decides which
// truck carries them, or records why none could.
type Order struct {
	ID          string
	Destination string
	Deadline    time.Time
	WeightKg    float64
	Note        string
}
