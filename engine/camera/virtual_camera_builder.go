package camera

// VirtualCameraOption is a functional option for configuring a VirtualCamera.
type VirtualCameraOption func(*virtualCameraImpl)

// WithPriority sets the initial camera priority.
//
// Parameters:
//   - priority: camera priority
//
// Returns:
//   - VirtualCameraOption: functional option to set the priority
func WithPriority(priority int) VirtualCameraOption {
	return func(vc *virtualCameraImpl) {
		vc.priority = priority
	}
}

// WithFollow sets the initial follow target.
//
// Parameters:
//   - target: the target to follow
//
// Returns:
//   - VirtualCameraOption: functional option to set the follow target
func WithFollow(target Target) VirtualCameraOption {
	return func(vc *virtualCameraImpl) {
		vc.follow = target
	}
}

// WithEuler sets the initial rotation from Euler angles.
//
// Parameters:
//   - pitch: rotation around X in degrees (positive looks down)
//   - yaw: rotation around Y in degrees (positive turns right)
//   - roll: rotation around Z in degrees
//
// Returns:
//   - VirtualCameraOption: functional option to set the rotation
func WithEuler(pitch, yaw, roll float32) VirtualCameraOption {
	return func(vc *virtualCameraImpl) {
		vc.pitch = pitch
		vc.yaw = yaw
		vc.roll = roll
	}
}

// WithDistance sets the initial follow distance.
//
// Parameters:
//   - distance: distance behind the target
//
// Returns:
//   - VirtualCameraOption: functional option to set the distance
func WithDistance(distance float32) VirtualCameraOption {
	return func(vc *virtualCameraImpl) {
		vc.distance = distance
	}
}

// WithDistanceBounds sets the minimum and maximum follow distance.
//
// Parameters:
//   - min: minimum distance
//   - max: maximum distance
//
// Returns:
//   - VirtualCameraOption: functional option to set distance bounds
func WithDistanceBounds(min, max float32) VirtualCameraOption {
	return func(vc *virtualCameraImpl) {
		vc.minDistance = min
		vc.maxDistance = max
	}
}

// WithLens sets the projection settings.
//
// Parameters:
//   - lens: the lens
//
// Returns:
//   - VirtualCameraOption: functional option to set the lens
func WithLens(lens Lens) VirtualCameraOption {
	return func(vc *virtualCameraImpl) {
		vc.lens = lens
	}
}

// WithFieldOfView sets the vertical field of view.
//
// Parameters:
//   - degrees: vertical field of view in degrees
//
// Returns:
//   - VirtualCameraOption: functional option to set the field of view
func WithFieldOfView(degrees float32) VirtualCameraOption {
	return func(vc *virtualCameraImpl) {
		vc.lens.FieldOfView = degrees
	}
}

// WithViewport sets the viewport size.
//
// Parameters:
//   - width, height: viewport size in pixels
//
// Returns:
//   - VirtualCameraOption: functional option to set the viewport
func WithViewport(width, height float32) VirtualCameraOption {
	return func(vc *virtualCameraImpl) {
		vc.lens.Width = width
		vc.lens.Height = height
	}
}
