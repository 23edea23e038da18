package tensor

// Device represents the compute device for tensor operations.
type Device int

// CPU is the only device; tensors never migrate.
const CPU Device = 0

// String returns a human-readable device name.
func (d Device) String() string {
	if d == CPU {
		return "CPU"
	}
	return "Unknown"
}
