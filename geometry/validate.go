package geometry

// ValidateAssignment checks that assignment has exactly imageSize entries
// and that every StickerRole entry names a sticker in [0, faceletCount).
func ValidateAssignment(assignment []PixelRole, imageSize, faceletCount int) error {
	if len(assignment) != imageSize {
		return ErrAssignmentLengthMismatch
	}

	for _, role := range assignment {
		if role.Kind == StickerRole && (role.Sticker < 0 || role.Sticker >= faceletCount) {
			return ErrStickerOutOfRange
		}
	}

	return nil
}

// ValidateImage checks that image has exactly imageSize entries.
func ValidateImage(image []RGB, imageSize int) error {
	if len(image) != imageSize {
		return ErrImageLengthMismatch
	}

	return nil
}
