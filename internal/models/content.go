package models

// Publish status for content documents.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

// BlogPost is an article shown on the public blog.
type BlogPost struct {
	Title    string `json:"title"`
	Author   string `json:"author,omitempty"`
	Category string `json:"category,omitempty"`
	Body     string `json:"body"`
	CoverURL string `json:"cover_url,omitempty"`
	Status   string `json:"status"`
}

// Speaker is a listed event speaker.
type Speaker struct {
	Name        string `json:"name"`
	Designation string `json:"designation,omitempty"`
	Bio         string `json:"bio,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
	Status      string `json:"status"`
}

// MediaItem is a gallery photo or video.
type MediaItem struct {
	Caption  string `json:"caption,omitempty"`
	Category string `json:"category,omitempty"`
	MediaURL string `json:"media_url"`
	ThumbURL string `json:"thumb_url,omitempty"`
	Status   string `json:"status"`
}

// AVSpot is an audio or video promotional spot.
type AVSpot struct {
	Title    string `json:"title"`
	Kind     string `json:"kind"` // audio or video
	MediaURL string `json:"media_url"`
	Status   string `json:"status"`
}

// NewsClipping is a scanned press clipping.
type NewsClipping struct {
	Title    string `json:"title"`
	Outlet   string `json:"outlet,omitempty"`
	ImageURL string `json:"image_url"`
	Status   string `json:"status"`
}

// Creative is a designed promotional asset.
type Creative struct {
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	ImageURL string `json:"image_url"`
	Status   string `json:"status"`
}

// Sponsor is a confirmed sponsor shown on the site.
type Sponsor struct {
	Name    string `json:"name"`
	Tier    string `json:"tier,omitempty"`
	LogoURL string `json:"logo_url,omitempty"`
	SiteURL string `json:"site_url,omitempty"`
	Status  string `json:"status"`
}
