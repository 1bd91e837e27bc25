package camera

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"sync"

	ffmpeg_go "github.com/u2takey/ffmpeg-go"
)

// V4L2 has no portable optical zoom control, so zoom is implemented as a
// centered crop-and-rescale and these bounds are reported as the device
// capability.
var ffmpegZoomCaps = ZoomCaps{Min: 1.0, Max: 4.0, Step: 0.1}

const (
	frameWidth  = 1280
	frameHeight = 720
)

// FFmpegDriver grabs single frames from a V4L2 device through an ffmpeg
// pipeline.
type FFmpegDriver struct {
	device string

	mu   sync.Mutex
	open bool
	zoom float64
}

// NewFFmpegDriver creates a driver for the given device path (e.g. /dev/video0)
func NewFFmpegDriver(device string) *FFmpegDriver {
	return &FFmpegDriver{device: device, zoom: ffmpegZoomCaps.Min}
}

// Open probes the device by grabbing one frame; a device that cannot
// produce a frame now is treated as absent.
func (d *FFmpegDriver) Open(ctx context.Context) error {
	d.mu.Lock()
	d.open = true
	d.mu.Unlock()

	if _, err := d.Grab(ctx); err != nil {
		d.mu.Lock()
		d.open = false
		d.mu.Unlock()
		return fmt.Errorf("device %s: %w", d.device, err)
	}
	return nil
}

// Grab runs a one-frame ffmpeg capture and decodes the PNG output
func (d *FFmpegDriver) Grab(ctx context.Context) (image.Image, error) {
	d.mu.Lock()
	open := d.open
	zoom := d.zoom
	d.mu.Unlock()

	if !open {
		return nil, ErrUnavailable
	}

	stream := ffmpeg_go.Input(d.device, ffmpeg_go.KwArgs{
		"f":          "v4l2",
		"video_size": fmt.Sprintf("%dx%d", frameWidth, frameHeight),
	})
	if zoom > ffmpegZoomCaps.Min {
		stream = stream.
			Filter("crop", ffmpeg_go.Args{
				fmt.Sprintf("iw/%.2f", zoom),
				fmt.Sprintf("ih/%.2f", zoom),
			}).
			Filter("scale", ffmpeg_go.Args{
				fmt.Sprintf("%d", frameWidth),
				fmt.Sprintf("%d", frameHeight),
			})
	}

	var buf bytes.Buffer
	err := stream.
		Output("pipe:", ffmpeg_go.KwArgs{"vframes": 1, "format": "image2", "vcodec": "png"}).
		WithOutput(&buf).
		WithErrorOutput(io.Discard).
		OverWriteOutput().
		Run()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg capture: %w", err)
	}
	if buf.Len() == 0 {
		return nil, ErrNoFrame
	}

	img, _, err := image.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("frame decode: %w", err)
	}
	return img, nil
}

// ZoomCaps reports the crop-zoom bounds
func (d *FFmpegDriver) ZoomCaps() (ZoomCaps, bool) {
	return ffmpegZoomCaps, true
}

// ApplyZoom records the crop factor used by subsequent grabs
func (d *FFmpegDriver) ApplyZoom(value float64) error {
	if value < ffmpegZoomCaps.Min || value > ffmpegZoomCaps.Max {
		return fmt.Errorf("zoom %.2f outside [%.1f, %.1f]", value, ffmpegZoomCaps.Min, ffmpegZoomCaps.Max)
	}
	d.mu.Lock()
	d.zoom = value
	d.mu.Unlock()
	return nil
}

// Close releases the device
func (d *FFmpegDriver) Close() error {
	d.mu.Lock()
	d.open = false
	d.mu.Unlock()
	return nil
}

var _ Driver = (*FFmpegDriver)(nil)
