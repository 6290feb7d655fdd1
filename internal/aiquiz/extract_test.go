package aiquiz

import "testing"

func TestExtractText(t *testing.T) {
	t.Run("PlainTextPassthrough", func(t *testing.T) {
		for _, name := range []string{"notes.txt", "notes.md", "NOTES.TXT"} {
			text, err := ExtractText(name, []byte("some study material"))
			if err != nil {
				t.Errorf("%s: unexpected error: %v", name, err)
				continue
			}
			if text != "some study material" {
				t.Errorf("%s: content altered: %q", name, text)
			}
		}
	})

	t.Run("UnsupportedExtension", func(t *testing.T) {
		for _, name := range []string{"slides.pptx", "archive.zip", "noextension"} {
			if _, err := ExtractText(name, []byte("data")); err == nil {
				t.Errorf("%s: expected rejection", name)
			}
		}
	})

	t.Run("CorruptPDF", func(t *testing.T) {
		_, err := ExtractText("broken.pdf", []byte("not a real pdf"))
		if err == nil {
			t.Fatal("expected extraction error")
		}
		if err.Filename != "broken.pdf" {
			t.Errorf("error should name the file, got %q", err.Filename)
		}
	})
}
