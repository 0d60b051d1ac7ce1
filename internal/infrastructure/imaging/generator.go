package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"path"
	"strings"

	// Register decoders for the formats the pipeline accepts.
	_ "image/gif"

	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"

	"mediacore/internal/apperror"
	"mediacore/internal/domain/entity"
	"mediacore/internal/domain/model"
	"mediacore/pkg/logger"
)

// decodableImageTypes are the image MIME types the generator can decode.
// Other image/* types (svg, ico, ...) are stored verbatim like any
// unrecognized upload instead of being rejected.
var decodableImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// Generator is the deterministic byte-to-variant-set transformation. It only
// produces in-memory buffers; durable writes are the blob store's job.
type Generator struct {
	cfg    *Config
	frames FrameExtractor
}

func NewGenerator(cfg *Config, frames FrameExtractor) *Generator {
	return &Generator{
		cfg:    cfg,
		frames: frames,
	}
}

func (g *Generator) Generate(ctx context.Context, data []byte, mimeType, filename string) (*entity.VariantSet, error) {
	cleaned := strings.TrimSpace(strings.Split(mimeType, ";")[0])

	switch {
	case isDecodableImage(cleaned):
		return g.generateFromImage(data, cleaned)
	case strings.HasPrefix(cleaned, "video/"):
		return g.generateFromVideo(ctx, data, filename)
	default:
		// Not an error: the primary asset is stored verbatim with no
		// variants.
		return &entity.VariantSet{Kind: entity.KindOther}, nil
	}
}

func isDecodableImage(mimeType string) bool {
	_, ok := decodableImageTypes[mimeType]

	return ok
}

func (g *Generator) generateFromImage(data []byte, mimeType string) (*entity.VariantSet, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, apperror.NewUnprocessableMedia(
			fmt.Sprintf("cannot decode %s image", mimeType), err)
	}

	bounds := src.Bounds()
	set := &entity.VariantSet{
		Kind:   entity.KindImage,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	thumb, err := g.encodeThumb(src)
	if err != nil {
		return nil, err
	}
	set.Variants = append(set.Variants, thumb)

	web, err := g.encodeWeb(src, format)
	if err != nil {
		return nil, err
	}
	set.Variants = append(set.Variants, web)

	blur, err := g.encodeBlurPlaceholder(src)
	if err != nil {
		return nil, err
	}
	set.BlurPlaceholder = blur

	return set, nil
}

func (g *Generator) generateFromVideo(ctx context.Context, data []byte, filename string) (*entity.VariantSet, error) {
	if g.frames == nil {
		// No frame extractor in this deployment: keep the upload instead of
		// rejecting it, just without a poster.
		logger.Warn("no frame extractor configured, storing video without poster", "filename", filename)

		return &entity.VariantSet{Kind: entity.KindVideo}, nil
	}

	posterBytes, err := g.frames.ExtractPoster(ctx, data, path.Ext(filename))
	if err != nil {
		return nil, apperror.NewUnprocessableMedia("cannot extract poster frame from video", err)
	}

	// The poster runs back through the image pipeline for its own thumb and
	// blur representations.
	poster, _, err := image.Decode(bytes.NewReader(posterBytes))
	if err != nil {
		return nil, apperror.NewUnprocessableMedia("cannot decode extracted poster frame", err)
	}

	bounds := poster.Bounds()
	set := &entity.VariantSet{
		Kind:   entity.KindVideo,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Poster: &entity.GeneratedVariant{
			Name:     "poster",
			Bytes:    posterBytes,
			MimeType: "image/jpeg",
			Width:    bounds.Dx(),
			Height:   bounds.Dy(),
		},
	}

	thumb, err := g.encodeThumb(poster)
	if err != nil {
		return nil, err
	}
	set.Variants = append(set.Variants, thumb)

	blur, err := g.encodeBlurPlaceholder(poster)
	if err != nil {
		return nil, err
	}
	set.BlurPlaceholder = blur

	return set, nil
}

func (g *Generator) encodeThumb(src image.Image) (entity.GeneratedVariant, error) {
	scaled := scaleDown(src, g.cfg.thumbMaxEdge())

	buf, err := encodeJPEG(scaled, thumbQuality)
	if err != nil {
		return entity.GeneratedVariant{}, err
	}

	return entity.GeneratedVariant{
		Name:     model.VariantThumb,
		Bytes:    buf,
		MimeType: "image/jpeg",
		Width:    scaled.Bounds().Dx(),
		Height:   scaled.Bounds().Dy(),
	}, nil
}

// encodeWeb produces the size-capped main representation. PNG sources stay
// PNG to keep transparency; everything else re-encodes as JPEG at the
// configured quality.
func (g *Generator) encodeWeb(src image.Image, format string) (entity.GeneratedVariant, error) {
	scaled := scaleDown(src, g.cfg.webMaxEdge())

	var (
		buf      []byte
		mimeType string
		err      error
	)
	if format == "png" {
		var out bytes.Buffer
		err = png.Encode(&out, scaled)
		buf = out.Bytes()
		mimeType = "image/png"
	} else {
		buf, err = encodeJPEG(scaled, g.cfg.webQuality())
		mimeType = "image/jpeg"
	}
	if err != nil {
		return entity.GeneratedVariant{}, apperror.NewInternal(err)
	}

	return entity.GeneratedVariant{
		Name:     model.VariantWeb,
		Bytes:    buf,
		MimeType: mimeType,
		Width:    scaled.Bounds().Dx(),
		Height:   scaled.Bounds().Dy(),
	}, nil
}

// encodeBlurPlaceholder returns a data URI small enough to inline in a page
// response for instant perceived load.
func (g *Generator) encodeBlurPlaceholder(src image.Image) (string, error) {
	scaled := scaleDown(src, g.cfg.blurMaxEdge())

	buf, err := encodeJPEG(scaled, blurQuality)
	if err != nil {
		return "", err
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf), nil
}

// scaleDown fits src inside a maxEdge bounding box preserving aspect ratio.
// Images already inside the box are returned as-is, never upscaled.
func scaleDown(src image.Image, maxEdge int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxEdge && h <= maxEdge {
		return src
	}

	newW, newH := w, h
	if w >= h {
		newW = maxEdge
		newH = h * maxEdge / w
	} else {
		newH = maxEdge
		newW = w * maxEdge / h
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	return dst
}

func encodeJPEG(src image.Image, quality int) ([]byte, error) {
	var out bytes.Buffer
	if err := jpeg.Encode(&out, src, &jpeg.Options{Quality: quality}); err != nil {
		return nil, apperror.NewInternal(err)
	}

	return out.Bytes(), nil
}
