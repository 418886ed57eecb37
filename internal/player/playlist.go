package player

import "github.com/handiism/deskwidgets/internal/model"

// DefaultPlaylist returns the built-in demo playlist used when no library is
// configured.
func DefaultPlaylist() []model.Track {
	return []model.Track{
		model.NewTrack("Midnight Drive", "Neon Lights", 210, "🌃", ""),
		model.NewTrack("Ocean Breeze", "Coastal Waves", 185, "🌊", ""),
		model.NewTrack("Mountain High", "Summit Sounds", 240, "🏔", ""),
		model.NewTrack("City Lights", "Urban Beats", 195, "🌆", ""),
	}
}
