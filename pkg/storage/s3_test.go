package storage

import "testing"

func TestMediaKey(t *testing.T) {
	key := MediaKey(PrefixRegistrations, "abc-123", "photo.jpg")
	if key != "registrations/abc-123/photo.jpg" {
		t.Fatalf("got %q", key)
	}
}

func TestMediaKeyStripsDirectories(t *testing.T) {
	key := MediaKey(PrefixGallery, "abc", "../../etc/passwd")
	if key != "gallery/abc/passwd" {
		t.Fatalf("got %q, path segments must be stripped", key)
	}
}

func TestValidMediaType(t *testing.T) {
	cases := []struct {
		contentType, filename string
		want                  bool
	}{
		{"image/jpeg", "photo.jpg", true},
		{"image/png", "shot.png", true},
		{"video/mp4", "speech.mp4", true},
		{"", "clip.mov", true},
		{"", "photo.JPEG", true},
		{"application/pdf", "doc.pdf", false},
		{"", "archive.zip", false},
		{"text/html", "page.html", false},
	}
	for _, tc := range cases {
		if got := ValidMediaType(tc.contentType, tc.filename); got != tc.want {
			t.Errorf("ValidMediaType(%q, %q) = %v, want %v", tc.contentType, tc.filename, got, tc.want)
		}
	}
}

func TestContentTypeForFilename(t *testing.T) {
	if ct := ContentTypeForFilename("a.webp"); ct != "image/webp" {
		t.Fatalf("got %q", ct)
	}
	if ct := ContentTypeForFilename("a.bin"); ct != "application/octet-stream" {
		t.Fatalf("got %q", ct)
	}
}
