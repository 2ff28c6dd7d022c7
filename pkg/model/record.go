// Package model defines the record type parsed from an export manifest and
// the derivation logic for its timestamp, coordinates, media kind and dedup
// fingerprint.
package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the fixed date format used by export manifests,
// e.g. "2023-04-16 18:06:33 UTC".
const TimestampLayout = "2006-01-02 15:04:05 UTC"

// fingerprintSeparator joins the raw date and media URL before hashing.
const fingerprintSeparator = "|"

// MediaKind is the closed set of media types a record can carry.
type MediaKind int

const (
	// MediaKindImage is the normalization target for every media-type label
	// that is not recognized as video. This is an explicit policy at the
	// parse boundary, not a fallthrough.
	MediaKindImage MediaKind = iota
	// MediaKindVideo marks records whose payload must be staged to a file
	// before being handed to the asset store.
	MediaKindVideo
)

// String returns the canonical lower-case name of the media kind.
func (k MediaKind) String() string {
	if k == MediaKindVideo {
		return "video"
	}
	return "image"
}

// ParseMediaKind normalizes a raw media-type label case-insensitively.
// Only "video" maps to MediaKindVideo; everything else is an image.
func ParseMediaKind(raw string) MediaKind {
	if strings.EqualFold(strings.TrimSpace(raw), "video") {
		return MediaKindVideo
	}
	return MediaKindImage
}

// Coordinates is a parsed latitude/longitude pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// locationPattern matches the fixed export format
// "Latitude, Longitude: 52.60789, -1.994181".
var locationPattern = regexp.MustCompile(`^Latitude, Longitude:\s*(-?\d+(?:\.\d+)?),\s*(-?\d+(?:\.\d+)?)\s*$`)

// ParseCoordinates extracts a coordinate pair from the raw location string.
// It returns nil when the string does not match the expected pattern or the
// pair is exactly (0,0), which exports use to mean "no location".
func ParseCoordinates(raw string) *Coordinates {
	match := locationPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if match == nil {
		return nil
	}
	lat, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return nil
	}
	lon, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return nil
	}
	if lat == 0 && lon == 0 {
		return nil
	}
	return &Coordinates{Latitude: lat, Longitude: lon}
}

// Record is one entry of an export manifest. IDs are generated locally at
// parse time and are only stable for the lifetime of the in-memory session;
// the fingerprint is the cross-session identity used for deduplication.
type Record struct {
	ID               uuid.UUID
	DateRaw          string
	ParsedTimestamp  *time.Time
	RawKind          string
	Kind             MediaKind
	LocationRaw      string
	Coordinates      *Coordinates
	DownloadLink     string
	MediaDownloadURL string
}

// NewRecord builds a record from the raw manifest fields, deriving the
// timestamp, media kind and coordinates. Malformed optional fields never
// fail record construction; only the derived field stays empty.
func NewRecord(dateRaw, mediaType, downloadLink, mediaDownloadURL, locationRaw string) *Record {
	r := &Record{
		ID:               uuid.New(),
		DateRaw:          dateRaw,
		RawKind:          mediaType,
		Kind:             ParseMediaKind(mediaType),
		LocationRaw:      locationRaw,
		DownloadLink:     downloadLink,
		MediaDownloadURL: mediaDownloadURL,
	}
	if ts, err := time.Parse(TimestampLayout, dateRaw); err == nil {
		utc := ts.UTC()
		r.ParsedTimestamp = &utc
	}
	if locationRaw != "" {
		r.Coordinates = ParseCoordinates(locationRaw)
	}
	return r
}

// Fingerprint derives the dedup key from the raw date and media URL. Two
// records with the same (DateRaw, MediaDownloadURL) produce the same
// fingerprint in every process and session.
func (r *Record) Fingerprint() string {
	return Fingerprint(r.DateRaw, r.MediaDownloadURL)
}

// Fingerprint hashes a (raw date, media URL) pair into an 8-hex-digit key
// using a polynomial rolling hash over the Unicode code points.
func Fingerprint(dateRaw, mediaDownloadURL string) string {
	var h uint32
	for _, r := range dateRaw + fingerprintSeparator + mediaDownloadURL {
		h = h*31 + uint32(r)
	}
	return fmt.Sprintf("%08x", h)
}

// DisplayLabel returns the human-readable identifier used in progress lines
// and failure messages.
func (r *Record) DisplayLabel() string {
	if r.DateRaw != "" {
		return r.DateRaw
	}
	return r.ID.String()[:8]
}
