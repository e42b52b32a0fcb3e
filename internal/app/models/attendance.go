package models

// AttendanceEntry is one class session: a date plus present/absent flags
// keyed by student ID.
type AttendanceEntry struct {
	Date    string          `json:"date"`
	Records map[string]bool `json:"records"`
}

// AttendanceRecord is the per-offering attendance document from
// 'attendances', shared by every student taking the offering. One entry is
// appended per session.
type AttendanceRecord struct {
	OfferingID  string            `json:"assignCourseId"`
	Attendances []AttendanceEntry `json:"attendances"`

	// Version of the backing document, for conditional writes.
	Version int64 `json:"-"`
}

// Entry returns the session entry for a date.
func (r *AttendanceRecord) Entry(date string) (*AttendanceEntry, bool) {
	for i := range r.Attendances {
		if r.Attendances[i].Date == date {
			return &r.Attendances[i], true
		}
	}
	return nil, false
}

// PresenceRate returns the fraction of sessions the student was marked
// present in, over the sessions that include the student at all.
func (r *AttendanceRecord) PresenceRate(studentID string) (present, total int) {
	for _, entry := range r.Attendances {
		if p, ok := entry.Records[studentID]; ok {
			total++
			if p {
				present++
			}
		}
	}
	return present, total
}
