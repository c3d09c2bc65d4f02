package lensconfig

import (
	"errors"
	"fmt"
)

// MaxFileSize is the largest accepted prescription upload: 5 MiB.
const MaxFileSize = 5 * 1024 * 1024

// allowedMIMETypes lists the exact MIME types accepted for prescription
// uploads. image/jpg is not a registered type but browsers send it.
var allowedMIMETypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"application/pdf": true,
}

// ErrFileTooLarge is returned when an upload exceeds MaxFileSize.
var ErrFileTooLarge = fmt.Errorf("file exceeds the %d MB limit", MaxFileSize/(1024*1024))

// ErrUnsupportedFileType is returned for uploads that are not JPEG, PNG or PDF.
var ErrUnsupportedFileType = errors.New("file must be a JPEG, PNG or PDF")

// ValidateFile checks an upload's MIME type and size against the
// prescription-file constraints.
func ValidateFile(mimeType string, size int64) error {
	if !allowedMIMETypes[mimeType] {
		return ErrUnsupportedFileType
	}
	if size > MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// Eligibility is the result of checking whether a configuration is complete
// enough to be added to the cart and checked out.
type Eligibility struct {
	// Eligible is true when checkout actions may be enabled.
	Eligible bool

	// Reason explains what is missing (empty when eligible).
	Reason string
}

// CheckEligibility decides whether a configuration can proceed to checkout.
//
// A configuration is eligible iff the product offers no lens options, or a
// lens type has been chosen and either no eyesight correction is wanted or
// the chosen prescription branch actually carries input (an attached file
// for upload, at least one filled field for manual entry).
func CheckEligibility(cfg Configuration, offersLensOptions bool) *Eligibility {
	if !offersLensOptions {
		return &Eligibility{Eligible: true}
	}

	if cfg.LensTypeID == "" {
		return &Eligibility{Reason: "no lens type selected"}
	}

	if !cfg.HasEyesight {
		return &Eligibility{Eligible: true}
	}

	if cfg.Method == "" {
		return &Eligibility{Reason: "no prescription input method selected"}
	}

	if !cfg.HasPrescriptionInput() {
		switch cfg.Method {
		case MethodUpload:
			return &Eligibility{Reason: "no prescription file attached"}
		default:
			return &Eligibility{Reason: "no prescription values entered"}
		}
	}

	return &Eligibility{Eligible: true}
}
