package term

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/civicpulse/civicpulse-cli/internal/core/ports"
)

// FormView is the terminal rendition of one submission form: a busy
// line while the attempt is in flight, a framed result afterwards, and
// a staged-field register so a successful attempt can clear its inputs.
type FormView struct {
	out io.Writer

	mu     sync.Mutex
	busy   bool
	fields map[string]string
}

var _ ports.FormView = (*FormView)(nil)

// NewFormView creates a form view writing to out. A nil out defaults to
// stdout.
func NewFormView(out io.Writer) *FormView {
	if out == nil {
		out = os.Stdout
	}
	return &FormView{out: out, fields: make(map[string]string)}
}

// StageField records an entered field value. Staged values survive a
// failed attempt for correction and are cleared on success.
func (v *FormView) StageField(name, value string) {
	v.mu.Lock()
	v.fields[name] = value
	v.mu.Unlock()
}

// Field returns a staged field value.
func (v *FormView) Field(name string) (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	value, ok := v.fields[name]
	return value, ok
}

// InFlight reports whether an attempt is currently submitting.
func (v *FormView) InFlight() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.busy
}

// Busy disables the form and prints the in-flight label.
func (v *FormView) Busy(label string) {
	v.mu.Lock()
	v.busy = true
	v.mu.Unlock()
	fmt.Fprintln(v.out, styleWarning.Render("… "+label))
}

// Ready re-enables the form.
func (v *FormView) Ready() {
	v.mu.Lock()
	v.busy = false
	v.mu.Unlock()
}

// ShowSuccess renders the receipt in a success-styled frame.
func (v *FormView) ShowSuccess(body string) {
	fmt.Fprintln(v.out, styleSuccessBox.Render(styleSuccess.Render("✓ Submitted")+"\n"+body))
}

// ShowError renders the generic failure message in an error-styled
// frame.
func (v *FormView) ShowError(body string) {
	fmt.Fprintln(v.out, styleErrorBox.Render(styleError.Render("✗ "+body)))
}

// ShowValidation renders the field-level prompt without the error
// frame; the input was never sent anywhere.
func (v *FormView) ShowValidation(message string) {
	fmt.Fprintln(v.out, styleWarning.Render("! "+message))
}

// ResetFields clears every staged field.
func (v *FormView) ResetFields() {
	v.mu.Lock()
	v.fields = make(map[string]string)
	v.mu.Unlock()
}
