package speech

import (
	"context"
	"fmt"
	"io"
	"os"
)

// DeviceCamera acquires a video capture device by opening its device node.
// Holding the handle open marks the stream as in use; closing it releases
// the device.
type DeviceCamera struct {
	Path string
}

// NewDeviceCamera builds the camera source, or ErrUnavailable when no
// device is configured.
func NewDeviceCamera(path string) (*DeviceCamera, error) {
	if path == "" {
		return nil, fmt.Errorf("camera: %w: no device configured", ErrUnavailable)
	}
	return &DeviceCamera{Path: path}, nil
}

func (c *DeviceCamera) Acquire(ctx context.Context) (io.Closer, error) {
	f, err := os.OpenFile(c.Path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open camera device %s: %w", c.Path, err)
	}
	return f, nil
}
