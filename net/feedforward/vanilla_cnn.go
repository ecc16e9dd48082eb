package feedforward

import "fmt"
import "math/rand"

import "github.com/neurlang/emotion/layer/conv2d"
import "github.com/neurlang/emotion/layer/full"
import "github.com/neurlang/emotion/layer/maxpool2d"
import "github.com/neurlang/emotion/layer/relu"

// NewVanillaCNN builds a small convolutional classifier over a single
// channel height x width feature map:
// conv(8,3x3) relu pool(2) conv(16,3x3) relu pool(2) full(64) relu full(classes).
func NewVanillaCNN(height, width, classes int, seed int64) (*FeedforwardNetwork, error) {
	if height < 4 || width < 4 {
		return nil, fmt.Errorf("feature map %dx%d is too small, need at least 4x4", height, width)
	}
	if classes < 2 {
		return nil, fmt.Errorf("need at least 2 classes, got %d", classes)
	}
	var rng = rand.New(rand.NewSource(seed))
	var net FeedforwardNetwork

	net.NewLayer(conv2d.MustNew(1, height, width, 8, 3, rng))
	net.NewLayer(relu.New(8 * height * width))
	pool1 := maxpool2d.MustNew(8, height, width, 2)
	net.NewLayer(pool1)
	h, w := pool1.Output()

	net.NewLayer(conv2d.MustNew(8, h, w, 16, 3, rng))
	net.NewLayer(relu.New(16 * h * w))
	pool2 := maxpool2d.MustNew(16, h, w, 2)
	net.NewLayer(pool2)
	h, w = pool2.Output()

	net.NewLayer(full.MustNew(16*h*w, 64, rng))
	net.NewLayer(relu.New(64))
	net.NewLayer(full.MustNew(64, classes, rng))
	return &net, nil
}
