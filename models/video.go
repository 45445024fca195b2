package models

import "time"

// VideoRecord is a durable history entry for one successfully generated video.
// Records are append-only: a retried generation creates a second record.
type VideoRecord struct {
	ID            string    `json:"id"`
	UserID        string    `json:"-"`
	VideoID       string    `json:"videoId"`
	VideoURL      string    `json:"videoUrl"`
	ThumbnailURL  string    `json:"thumbnailUrl"`
	Title         string    `json:"title"`
	Duration      float64   `json:"duration"`
	FileSize      int64     `json:"fileSize"`
	Template      string    `json:"template"`
	ArticlesCount int       `json:"articlesCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// MusicTrack is one entry of the render service's music catalog
type MusicTrack struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Filename string `json:"filename"`
}

// DefaultMusicTrack is substituted when the music catalog cannot be fetched,
// so the configuration surface keeps working without the upstream service.
var DefaultMusicTrack = MusicTrack{
	ID:       "default",
	Name:     "Upbeat Pop",
	Filename: "upbeat-pop.mp3",
}
