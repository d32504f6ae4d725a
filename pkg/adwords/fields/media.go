package fields

var Media = NewVocabulary(
	"Media",
	"AdvertisingId",
	"CreationTime",
	"Dimensions",
	"DurationMillis",
	"FileSize",
	"IndustryStandardCommercialIdentifier",
	"MediaId",
	"MimeType",
	"Name",
	"ReadyToPlayOnTheWeb",
	"ReferenceId",
	"SourceUrl",
	"StreamingUrl",
	"Type",
	"Urls",
	"YouTubeVideoIdString",
)
