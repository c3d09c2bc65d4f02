package lensconfig

import (
	"errors"
	"fmt"
)

// Builder maintains the evolving lens configuration as the shopper answers
// the product page's questions. Each operation mutates the working state and
// notifies the change callback with a fresh immutable snapshot.
//
// The builder deliberately retains data for the inactive prescription branch
// (and for prism while it is toggled off) so the shopper can switch back and
// forth without re-entering values. Retained-but-inactive data never appears
// in emitted snapshots.
type Builder struct {
	hasEyesight bool
	lensTypeID  string
	method      Method
	image       *FileRef
	manual      PrescriptionRecord

	onChange func(Configuration)
}

// NewBuilder creates an empty builder. The callback may be nil; it is
// invoked with a full snapshot after every successful operation.
func NewBuilder(onChange func(Configuration)) *Builder {
	return &Builder{onChange: onChange}
}

// Snapshot freezes the current state into an immutable Configuration.
// Only the active prescription branch is included, and prism records are
// stripped while AddPrism is off.
func (b *Builder) Snapshot() Configuration {
	cfg := Configuration{
		HasEyesight: b.hasEyesight,
		LensTypeID:  b.lensTypeID,
	}

	if !b.hasEyesight {
		return cfg
	}

	cfg.Method = b.method
	switch b.method {
	case MethodUpload:
		if b.image != nil {
			img := *b.image
			cfg.Image = &img
		}
	case MethodManual:
		rec := b.manual
		if !rec.AddPrism {
			rec.RightPrism = nil
			rec.LeftPrism = nil
		} else {
			if rec.RightPrism != nil {
				p := *rec.RightPrism
				rec.RightPrism = &p
			}
			if rec.LeftPrism != nil {
				p := *rec.LeftPrism
				rec.LeftPrism = &p
			}
		}
		cfg.Manual = &rec
	}

	return cfg
}

func (b *Builder) emit() {
	if b.onChange != nil {
		b.onChange(b.Snapshot())
	}
}

// SelectEyesightMode answers "do you need eyesight correction?". Switching
// to false does not clear the lens type and keeps any entered prescription
// data in working state; only the emitted snapshots exclude it.
func (b *Builder) SelectEyesightMode(hasEyesight bool) {
	b.hasEyesight = hasEyesight
	b.emit()
}

// SelectLensType records the chosen lens type. It applies regardless of the
// current eyesight mode so the lens type's price contribution is never lost
// by mode switching.
func (b *Builder) SelectLensType(id string) {
	b.lensTypeID = id
	b.emit()
}

// SelectPrescriptionMethod chooses between uploading a prescription and
// entering it manually. Picking either is itself evidence of wanting
// eyesight correction, so the eyesight flag is forced on.
func (b *Builder) SelectPrescriptionMethod(method Method) error {
	if method != MethodUpload && method != MethodManual {
		return fmt.Errorf("unknown prescription method %q", method)
	}
	b.method = method
	b.hasEyesight = true
	b.emit()
	return nil
}

// AttachPrescriptionFile validates and attaches an uploaded prescription
// file. On rejection the builder is left exactly as it was and no snapshot
// is emitted. On success the eyesight flag and the upload method are forced.
func (b *Builder) AttachPrescriptionFile(ref FileRef) error {
	if err := ValidateFile(ref.MIMEType, ref.Size); err != nil {
		return err
	}
	b.image = &ref
	b.hasEyesight = true
	b.method = MethodUpload
	b.emit()
	return nil
}

// RemovePrescriptionFile clears the attached file without touching any
// other field.
func (b *Builder) RemovePrescriptionFile() {
	b.image = nil
	b.emit()
}

// SetEyeField updates one scalar of the chosen eye's prescription and
// forces manual entry mode. In single-PD mode a PD write is mirrored to
// both eyes so they stay identical.
func (b *Builder) SetEyeField(eye Eye, field EyeField, value string) error {
	target, err := b.eyeData(eye)
	if err != nil {
		return err
	}

	switch field {
	case FieldSPH:
		target.SPH = value
	case FieldCYL:
		target.CYL = value
	case FieldAxis:
		target.Axis = value
	case FieldAdd:
		target.Add = value
	case FieldPD:
		target.PD = value
		if !b.manual.TwoPDNumbers {
			b.manual.RightEye.PD = value
			b.manual.LeftEye.PD = value
		}
	default:
		return fmt.Errorf("unknown eye field %q", field)
	}

	b.hasEyesight = true
	b.method = MethodManual
	b.emit()
	return nil
}

// SetPupillaryDistanceMode toggles between a single shared PD and two
// independent per-eye values. Switching dual to single does not reconcile
// previously entered values; only subsequent writes are mirrored.
func (b *Builder) SetPupillaryDistanceMode(dual bool) {
	b.manual.TwoPDNumbers = dual
	b.emit()
}

// TogglePrism enables or disables prism correction. Disabling keeps the
// entered prism values in working state but drops them from snapshots.
func (b *Builder) TogglePrism(enabled bool) {
	b.manual.AddPrism = enabled
	b.emit()
}

// SetPrismField updates one scalar of the chosen eye's prism correction.
// The values only take effect in snapshots while prism is toggled on.
func (b *Builder) SetPrismField(eye Eye, field PrismField, value string) error {
	var target *PrismData
	switch eye {
	case EyeRight:
		if b.manual.RightPrism == nil {
			b.manual.RightPrism = &PrismData{}
		}
		target = b.manual.RightPrism
	case EyeLeft:
		if b.manual.LeftPrism == nil {
			b.manual.LeftPrism = &PrismData{}
		}
		target = b.manual.LeftPrism
	default:
		return fmt.Errorf("unknown eye %q", eye)
	}

	switch field {
	case FieldVerticalPrism:
		target.VerticalPrism = value
	case FieldVerticalBase:
		target.VerticalBase = value
	case FieldHorizontalPrism:
		target.HorizontalPrism = value
	case FieldHorizontalBase:
		target.HorizontalBase = value
	default:
		return fmt.Errorf("unknown prism field %q", field)
	}

	b.emit()
	return nil
}

func (b *Builder) eyeData(eye Eye) (*EyeData, error) {
	switch eye {
	case EyeRight:
		return &b.manual.RightEye, nil
	case EyeLeft:
		return &b.manual.LeftEye, nil
	default:
		return nil, errors.New("unknown eye " + string(eye))
	}
}
