package types

import "encoding/base64"

type MediaType string

const (
	MediaAudio        MediaType = "AUDIO"
	MediaDynamicImage MediaType = "DYNAMIC_IMAGE"
	MediaIcon         MediaType = "ICON"
	MediaImage        MediaType = "IMAGE"
	MediaStandardIcon MediaType = "STANDARD_ICON"
	MediaVideo        MediaType = "VIDEO"
	MediaBundle       MediaType = "MEDIA_BUNDLE"
)

var mediaXsiTypes = map[MediaType]string{
	MediaAudio:  "Audio",
	MediaImage:  "Image",
	MediaVideo:  "Video",
	MediaBundle: "MediaBundle",
}

type MediaSize string

type Dimensions struct {
	Width  int `xml:"width" json:"width"`
	Height int `xml:"height" json:"height"`
}

type MediaSizeDimensionsMapEntry struct {
	Key   MediaSize  `xml:"key" json:"key"`
	Value Dimensions `xml:"value" json:"value"`
}

type MediaSizeStringMapEntry struct {
	Key   MediaSize `xml:"key" json:"key"`
	Value string    `xml:"value" json:"value"`
}

// Media is a tagged variant of Audio, Image, Video and MediaBundle selected by Type.
type Media struct {
	XsiType                              string                        `xml:"xsi:type,attr,omitempty" json:"-"`
	MediaID                              string                        `xml:"mediaId,omitempty" json:"mediaId,omitempty"`
	Type                                 MediaType                     `xml:"type,omitempty" json:"type,omitempty"`
	ReferenceID                          string                        `xml:"referenceId,omitempty" json:"referenceId,omitempty"`
	Dimensions                           []MediaSizeDimensionsMapEntry `xml:"dimensions,omitempty" json:"dimensions,omitempty"`
	URLs                                 []MediaSizeStringMapEntry     `xml:"urls,omitempty" json:"urls,omitempty"`
	MimeType                             string                        `xml:"mimeType,omitempty" json:"mimeType,omitempty"`
	SourceURL                            string                        `xml:"sourceUrl,omitempty" json:"sourceUrl,omitempty"`
	Name                                 string                        `xml:"name,omitempty" json:"name,omitempty"`
	FileSize                             int64                         `xml:"fileSize,omitempty" json:"fileSize,omitempty"`
	CreationTime                         string                        `xml:"creationTime,omitempty" json:"creationTime,omitempty"`
	Data                                 string                        `xml:"data,omitempty" json:"data,omitempty"`
	DurationMillis                       int64                         `xml:"durationMillis,omitempty" json:"durationMillis,omitempty"`
	StreamingURL                         string                        `xml:"streamingUrl,omitempty" json:"streamingUrl,omitempty"`
	ReadyToPlayOnTheWeb                  *bool                         `xml:"readyToPlayOnTheWeb,omitempty" json:"readyToPlayOnTheWeb,omitempty"`
	IndustryStandardCommercialIdentifier string                        `xml:"industryStandardCommercialIdentifier,omitempty" json:"industryStandardCommercialIdentifier,omitempty"`
	AdvertisingID                        string                        `xml:"advertisingId,omitempty" json:"advertisingId,omitempty"`
	YouTubeVideoIDString                 string                        `xml:"youTubeVideoIdString,omitempty" json:"youTubeVideoIdString,omitempty"`
	MediaTypeName                        string                        `xml:"Media.Type,omitempty" json:"mediaType,omitempty"`
}

// Base64Encode encodes file contents for the Data field of an uploaded media.
func Base64Encode(file []byte) string {
	return base64.StdEncoding.EncodeToString(file)
}

func NewImage(name string, contents []byte) Media {
	return Media{
		Type: MediaImage,
		Name: name,
		Data: Base64Encode(contents),
	}
}

// Typed returns a copy of the media with its xsi:type derived from Type.
func (m Media) Typed() Media {
	if xsiType, ok := mediaXsiTypes[m.Type]; ok {
		m.XsiType = xsiType
	}
	return m
}
