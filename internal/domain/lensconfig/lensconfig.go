// Package lensconfig models the lens and prescription configuration a
// shopper builds up on a product page.
//
// The configuration is assembled field-by-field through Builder operations
// and frozen into an immutable Configuration snapshot after every change.
// The snapshot is what gets priced, validated for checkout, attached to a
// cart item, and copied verbatim onto the order at checkout.
package lensconfig

// Method selects which of the two prescription input branches is active.
type Method string

const (
	// MethodUpload means the shopper attached a photo/scan of their prescription.
	MethodUpload Method = "upload"

	// MethodManual means the shopper typed the prescription values in.
	MethodManual Method = "manual"
)

// Eye identifies which eye a prescription field belongs to.
type Eye string

const (
	EyeRight Eye = "right"
	EyeLeft  Eye = "left"
)

// EyeField names one scalar of an eye's prescription values.
type EyeField string

const (
	FieldSPH  EyeField = "sph"
	FieldCYL  EyeField = "cyl"
	FieldAxis EyeField = "axis"
	FieldAdd  EyeField = "add"
	FieldPD   EyeField = "pd"
)

// PrismField names one scalar of an eye's prism correction.
type PrismField string

const (
	FieldVerticalPrism   PrismField = "vertical_prism"
	FieldVerticalBase    PrismField = "vertical_base"
	FieldHorizontalPrism PrismField = "horizontal_prism"
	FieldHorizontalBase  PrismField = "horizontal_base"
)

// EyeData holds the prescription values for a single eye. Values are kept
// as the exact strings the shopper picked from the option lists; they are
// never re-parsed or re-formatted so the order record shows what was chosen.
type EyeData struct {
	SPH  string `json:"sph,omitempty"`
	CYL  string `json:"cyl,omitempty"`
	Axis string `json:"axis,omitempty"`
	Add  string `json:"add,omitempty"`
	PD   string `json:"pd,omitempty"`
}

// Empty reports whether no field of the eye has been filled in.
func (d EyeData) Empty() bool {
	return d.SPH == "" && d.CYL == "" && d.Axis == "" && d.Add == "" && d.PD == ""
}

// PrismData holds the prism correction for a single eye.
type PrismData struct {
	VerticalPrism   string `json:"vertical_prism,omitempty"`
	VerticalBase    string `json:"vertical_base,omitempty"`
	HorizontalPrism string `json:"horizontal_prism,omitempty"`
	HorizontalBase  string `json:"horizontal_base,omitempty"`
}

// Empty reports whether no prism field has been filled in.
func (p PrismData) Empty() bool {
	return p.VerticalPrism == "" && p.VerticalBase == "" &&
		p.HorizontalPrism == "" && p.HorizontalBase == ""
}

// PrescriptionRecord is a manually entered prescription: per-eye values,
// the pupillary-distance mode, and optional prism correction.
type PrescriptionRecord struct {
	RightEye EyeData `json:"right_eye"`
	LeftEye  EyeData `json:"left_eye"`

	// TwoPDNumbers is false when a single shared PD is used (both eyes carry
	// the same value) and true when each eye has its own.
	TwoPDNumbers bool `json:"two_pd_numbers"`

	// AddPrism gates the prism sub-records. When false the prism values are
	// not part of the effective prescription.
	AddPrism   bool       `json:"add_prism"`
	RightPrism *PrismData `json:"right_prism,omitempty"`
	LeftPrism  *PrismData `json:"left_prism,omitempty"`
}

// FileRef is a durable reference to an uploaded prescription file.
type FileRef struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	MIMEType   string `json:"mime_type"`
	Size       int64  `json:"size"`
	StorageKey string `json:"storage_key"`
}

// Configuration is an immutable snapshot of the shopper's lens choices.
// Exactly one prescription branch (Image or Manual) is populated, selected
// by Method; neither is populated when HasEyesight is false.
type Configuration struct {
	// HasEyesight is false for zero-power lenses and true when a
	// prescription lens is being configured.
	HasEyesight bool `json:"has_eyesight"`

	// LensTypeID references a catalog lens type. It can be set independent
	// of HasEyesight and always contributes its price adjustment.
	LensTypeID string `json:"lens_type_id,omitempty"`

	Method Method              `json:"prescription_method,omitempty"`
	Image  *FileRef            `json:"prescription_image,omitempty"`
	Manual *PrescriptionRecord `json:"prescription_data,omitempty"`
}

// HasPrescriptionInput reports whether the active branch actually carries
// data: an attached file for upload, at least one filled field for manual.
func (c Configuration) HasPrescriptionInput() bool {
	switch c.Method {
	case MethodUpload:
		return c.Image != nil
	case MethodManual:
		return c.Manual != nil && (!c.Manual.RightEye.Empty() || !c.Manual.LeftEye.Empty())
	default:
		return false
	}
}
