package domain

// Default availability configuration applied when an administrator
// has not saved a slot config yet
const (
	DefaultWorkStart           = "09:00"
	DefaultWorkEnd             = "17:00"
	DefaultLunchStart          = "12:00"
	DefaultLunchEnd            = "13:00"
	DefaultSlotDurationMinutes = 30
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// ConsultationMode is how a consultation is held
type ConsultationMode string

const (
	ModeOnline   ConsultationMode = "online"
	ModeInPerson ConsultationMode = "in_person"
)

// IsValid returns true if the mode is one of the known consultation modes
func (m ConsultationMode) IsValid() bool {
	return m == ModeOnline || m == ModeInPerson
}
