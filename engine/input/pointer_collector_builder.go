package input

// PointerCollectorOption is a functional option for configuring a PointerCollector.
type PointerCollectorOption func(*PointerCollector)

// WithAxisSensitivity sets the multiplier converting cursor pixels to axis units.
//
// Parameters:
//   - sensitivity: axis units per pixel
//
// Returns:
//   - PointerCollectorOption: functional option to set the axis sensitivity
func WithAxisSensitivity(sensitivity float32) PointerCollectorOption {
	return func(pc *PointerCollector) {
		pc.axisSensitivity = sensitivity
	}
}

// WithScrollSensitivity sets the multiplier converting wheel steps to axis units.
//
// Parameters:
//   - sensitivity: axis units per wheel step
//
// Returns:
//   - PointerCollectorOption: functional option to set the scroll sensitivity
func WithScrollSensitivity(sensitivity float32) PointerCollectorOption {
	return func(pc *PointerCollector) {
		pc.scrollSensitivity = sensitivity
	}
}

// WithViewportHeight sets the initial viewport height used to flip cursor positions.
//
// Parameters:
//   - height: viewport height in pixels
//
// Returns:
//   - PointerCollectorOption: functional option to set the viewport height
func WithViewportHeight(height float32) PointerCollectorOption {
	return func(pc *PointerCollector) {
		pc.viewportHeight = height
	}
}
