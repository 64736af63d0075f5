package sampler

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/h2non/filetype"
	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is returned when the input is not a recognizable image.
var ErrNotImage = errors.New("not an image")

// filetype needs at most this many leading bytes
const sniffLen = 261

// Load decodes the image file at path into a Buffer.
func Load(path string) (*Buffer, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer f.Close()

	b, e := Decode(f)
	if e != nil {
		return nil, fmt.Errorf("%s: %w", path, e)
	}
	return b, nil
}

// Decode sniffs r for an image type and decodes it into a Buffer.
func Decode(r io.Reader) (*Buffer, error) {
	br := bufio.NewReaderSize(r, 4096)
	head, e := br.Peek(sniffLen)
	if e != nil && !errors.Is(e, io.EOF) && !errors.Is(e, bufio.ErrBufferFull) {
		return nil, e
	}
	if !filetype.IsImage(head) {
		return nil, ErrNotImage
	}

	i, format, e := image.Decode(br)
	if e != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotImage, e)
	}

	b := i.Bounds()
	log.Debug().Str("format", format).Int("width", b.Dx()).Int("height", b.Dy()).Msg("decoded image")

	return FromImage(i), nil
}
