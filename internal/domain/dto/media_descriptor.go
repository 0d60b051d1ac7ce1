package dto

import "mediacore/internal/domain/model"

// MediaDescriptor is the JSON shape of one media asset returned to the
// admin UI.
type MediaDescriptor struct {
	ID               string                 `json:"id"`
	URL              string                 `json:"url"`
	OriginalFilename string                 `json:"originalFilename"`
	MimeType         string                 `json:"mimeType"`
	ByteSize         int64                  `json:"byteSize"`
	Width            int                    `json:"width,omitempty"`
	Height           int                    `json:"height,omitempty"`
	Variants         map[string]VariantInfo `json:"variants"`
	PosterURL        string                 `json:"posterUrl,omitempty"`
	BlurPlaceholder  string                 `json:"blurPlaceholder,omitempty"`
	Title            string                 `json:"title,omitempty"`
	AltText          string                 `json:"altText,omitempty"`
	Tags             []string               `json:"tags,omitempty"`
	Created          int64                  `json:"created"`
	Updated          int64                  `json:"updated"`
}

type VariantInfo struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// DescriptorFromModel flattens a stored asset into its API shape.
func DescriptorFromModel(asset *model.MediaAsset) MediaDescriptor {
	desc := MediaDescriptor{
		ID:               asset.ID,
		URL:              asset.URL,
		OriginalFilename: asset.OriginalFilename,
		MimeType:         asset.MimeType,
		ByteSize:         asset.ByteSize,
		Variants:         make(map[string]VariantInfo, len(asset.Variants)),
		PosterURL:        asset.PosterURL,
		BlurPlaceholder:  asset.BlurPlaceholder,
		Title:            asset.Title,
		AltText:          asset.AltText,
		Tags:             asset.Tags,
		Created:          asset.CreatedAt.Unix(),
		Updated:          asset.UpdatedAt.Unix(),
	}

	if asset.Dimensions != nil {
		desc.Width = asset.Dimensions.Width
		desc.Height = asset.Dimensions.Height
	}

	for name, v := range asset.Variants {
		desc.Variants[name] = VariantInfo{URL: v.URL, Width: v.Width, Height: v.Height}
	}

	return desc
}
