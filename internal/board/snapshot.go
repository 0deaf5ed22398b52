package board

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// fit shrinks img so its longest side is at most maxSize. Zero disables it.
func (s *Snapshot) fit(maxSize int) image.Image {
	b := s.Image.Bounds()
	if maxSize <= 0 || (b.Dx() <= maxSize && b.Dy() <= maxSize) {
		return s.Image
	}
	return imaging.Fit(s.Image, maxSize, maxSize, imaging.Lanczos)
}

// Save writes the snapshot to path, choosing the encoder from the extension.
func (s *Snapshot) Save(path string, maxSize int) error {
	if err := imaging.Save(s.fit(maxSize), path); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Encode writes the snapshot to w in the given format ("png", "jpg", "bmp", ...).
func (s *Snapshot) Encode(w io.Writer, format string, maxSize int) error {
	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return imaging.Encode(w, s.fit(maxSize), f)
}

// Save exports mode and writes it to path, the way a save button would.
func (b *Board) Save(mode ExportMode, path string, maxSize int) error {
	snap, err := b.Export(mode)
	if err != nil {
		return err
	}
	if err := snap.Save(path, maxSize); err != nil {
		return err
	}
	Logger().Info("snapshot saved", "path", path, "mode", mode.String(), "origin", snap.Origin)
	return nil
}
