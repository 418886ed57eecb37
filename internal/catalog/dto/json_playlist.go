package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// JSONPlaylist is the on-disk playlist manifest.
//
//	{
//	  "title": "Road Trip",
//	  "tracks": [
//	    {"title": "Midnight Drive", "artist": "Neon Lights", "duration": "3:30", "artwork": "🌃"},
//	    {"title": "Ocean Breeze", "artist": "Coastal Waves", "duration": 185, "file": "02.mp3"}
//	  ]
//	}
type JSONPlaylist struct {
	Title  string      `json:"title"`
	Tracks []JSONTrack `json:"tracks"`
}

// Seconds is a duration in seconds that unmarshals from either a JSON number
// or an "m:ss" / "h:mm:ss" string.
type Seconds float64

// UnmarshalJSON accepts 185, 185.5, "185", "3:05" and "1:02:03".
func (s *Seconds) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*s = Seconds(n)
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("duration must be a number or a string: %w", err)
	}

	v, err := parseClock(text)
	if err != nil {
		return err
	}
	*s = Seconds(v)
	return nil
}

// parseClock parses "ss", "m:ss" or "h:mm:ss".
func parseClock(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}

	parts := strings.Split(text, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("unable to parse duration: %s", text)
	}

	var total float64
	for _, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("unable to parse duration: %s", text)
		}
		total = total*60 + v
	}
	return total, nil
}
