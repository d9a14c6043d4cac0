package appointment

// Field names one required booking slot.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldDate    Field = "date"
	FieldTime    Field = "time"
	FieldPurpose Field = "purpose"
)

func (f Field) String() string {
	return string(f)
}

// RequiredFields is the fixed collection order of the dialogue.
var RequiredFields = []Field{FieldName, FieldEmail, FieldDate, FieldTime, FieldPurpose}
