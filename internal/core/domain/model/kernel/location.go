package kernel

import (
	"errors"
	"fmt"
	"math"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// Coordinate represents a position value on the simulation grid.
// Valid coordinates range from LocationMinX/Y to LocationMaxX/Y inclusive.
type Coordinate int

const (
	// LocationMinX is the minimum valid X coordinate on the grid.
	LocationMinX Coordinate = 1
	// LocationMinY is the minimum valid Y coordinate on the grid.
	LocationMinY Coordinate = 1
	// LocationMaxX is the maximum valid X coordinate on the grid.
	LocationMaxX Coordinate = 100
	// LocationMaxY is the maximum valid Y coordinate on the grid.
	LocationMaxY Coordinate = 100
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location represents a point on the simulation grid with validated coordinates.
// Location is an immutable value object; the zero value is invalid and fails
// validation, so use the constructor to create instances.
//
// Example:
//
//	loc, err := kernel.NewLocation(5, 7)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Location: %s", loc) // Output: Location(5,7)
type Location struct { //nolint:recvcheck //using for validation
	x     Coordinate
	y     Coordinate
	guard guard.ConstructorGuard
}

// NewLocation creates a new Location with the specified coordinates.
// Both coordinates must be within [LocationMinX..LocationMaxX] and
// [LocationMinY..LocationMaxY]. Returns an error if either coordinate is
// outside the valid bounds.
func NewLocation(x Coordinate, y Coordinate) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks if the Location was properly constructed using the constructor.
// The zero value of Location is invalid and will fail this validation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// X returns the X coordinate of the location.
func (l Location) X() Coordinate {
	return l.x
}

// Y returns the Y coordinate of the location.
func (l Location) Y() Coordinate {
	return l.y
}

// String returns a human-readable representation in the format "Location(x,y)".
// This method implements the fmt.Stringer interface.
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.x, l.y)
}

// IsEqual compares two locations for equality. Two locations are equal if
// they have the same X and Y coordinates. Both locations must pass
// validation for the comparison to succeed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// Distance calculates the Euclidean distance between two locations:
// sqrt((x1-x2)² + (y1-y2)²). Delivery and return travel costs are derived
// from this value. Both locations must pass validation for the calculation
// to succeed.
//
// Example:
//
//	loc1, _ := NewLocation(1, 1)
//	loc2, _ := NewLocation(4, 5)
//
//	distance, err := loc1.Distance(loc2)
//	// distance = 5 (sqrt(3² + 4²)), err = nil
func (l Location) Distance(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dx := float64(l.x - other.x)
	dy := float64(l.y - other.y)
	return math.Sqrt(dx*dx + dy*dy), nil
}

// setX sets the x coordinate with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (l *Location) setX(x Coordinate) error {
	if x < LocationMinX || x > LocationMaxX {
		return errs.NewValueIsOutOfRangeError("x", x, LocationMinX, LocationMaxX)
	}

	l.x = x
	return nil
}

// setY sets the y coordinate with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (l *Location) setY(y Coordinate) error {
	if y < LocationMinY || y > LocationMaxY {
		return errs.NewValueIsOutOfRangeError("y", y, LocationMinY, LocationMaxY)
	}

	l.y = y
	return nil
}
