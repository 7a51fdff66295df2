package form

// FileSelection describes a file picked for a file input.
type FileSelection struct {
	Path      string
	Name      string
	Size      int64
	MediaType string
}

// Accessor reads and writes field values and their error messages.
// Front ends implement it (or use Values) so validation never touches
// a concrete UI.
type Accessor interface {
	Value(name string) string
	SetValue(name, value string)
	File(name string) *FileSelection
	SetFile(name string, f *FileSelection)
	Error(name string) string
	SetError(name, msg string)
	ClearErrors(names ...string)
}

// Values is the in-memory Accessor. It is not safe for concurrent use;
// callers keep it on one goroutine.
type Values struct {
	values map[string]string
	files  map[string]*FileSelection
	errors map[string]string
}

// NewValues creates an empty form.
func NewValues() *Values {
	return &Values{
		values: make(map[string]string),
		files:  make(map[string]*FileSelection),
		errors: make(map[string]string),
	}
}

func (v *Values) Value(name string) string { return v.values[name] }

func (v *Values) SetValue(name, value string) { v.values[name] = value }

func (v *Values) File(name string) *FileSelection { return v.files[name] }

// SetFile stores f for name; a nil f clears the selection.
func (v *Values) SetFile(name string, f *FileSelection) {
	if f == nil {
		delete(v.files, name)
		return
	}
	v.files[name] = f
}

func (v *Values) Error(name string) string { return v.errors[name] }

// SetError sets the message for name; an empty msg clears it.
func (v *Values) SetError(name, msg string) {
	if msg == "" {
		delete(v.errors, name)
		return
	}
	v.errors[name] = msg
}

// ClearErrors drops the messages of the given fields, or of every field
// when none are named.
func (v *Values) ClearErrors(names ...string) {
	if len(names) == 0 {
		v.errors = make(map[string]string)
		return
	}
	for _, n := range names {
		delete(v.errors, n)
	}
}

// Errors returns a copy of the current error messages.
func (v *Values) Errors() map[string]string {
	out := make(map[string]string, len(v.errors))
	for k, msg := range v.errors {
		out[k] = msg
	}
	return out
}
